package filescomwr_test

import (
	"context"
	"io"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/filestore/filescomwr"
)

type remoteMock struct {
	mock.Mock
}

func (m *remoteMock) Find(ctx context.Context, path string) (filestore.FileAttributes, error) {
	args := m.Called(ctx, path)
	attrs, _ := args.Get(0).(filestore.FileAttributes)
	return attrs, args.Error(1)
}

func (m *remoteMock) Upload(ctx context.Context, content io.Reader, destinationPath string) error {
	return m.Called(ctx, content, destinationPath).Error(0)
}

func (m *remoteMock) Download(ctx context.Context, path string, w io.Writer) error {
	return m.Called(ctx, path, w).Error(0)
}

func (m *remoteMock) Move(ctx context.Context, from, to string) error {
	return m.Called(ctx, from, to).Error(0)
}

func (m *remoteMock) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *remoteMock) List(ctx context.Context, path string) ([]filestore.FileAttributes, error) {
	args := m.Called(ctx, path)
	entries, _ := args.Get(0).([]filestore.FileAttributes)
	return entries, args.Error(1)
}

func (m *remoteMock) Mkdir(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

// writes returns a Run func that writes content into the writer argument of Download.
func writes(content string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		w, _ := args.Get(2).(io.Writer)
		_, _ = io.WriteString(w, content)
	}
}

func newClient(t *testing.T) (*filescomwr.Client, *remoteMock) {
	t.Helper()

	remote := &remoteMock{}
	t.Cleanup(func() { remote.AssertExpectations(t) })

	client, err := filescomwr.New(filescomwr.Config{
		Enable:  true,
		BaseURL: "https://acme.files.com",
		APIKey:  "key",
	}, filescomwr.WithRemote(remote))
	require.NoError(t, err)

	return client, remote
}

func notFound(path string) error {
	return errx.New("not found",
		errx.WithCode(filestore.CodeFileNotFound),
		errx.WithType(errx.T_NotFound),
		errx.WithDetails(errx.D{"path": path}),
	)
}
