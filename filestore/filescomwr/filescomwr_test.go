package filescomwr_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/val"
)

func TestUploadFile(t *testing.T) {
	client, remote := newClient(t)
	content := strings.NewReader("a,b\n1,2\n")
	remote.On("Upload", mock.Anything, content, "out/data.csv").Return(nil).Once()

	path, err := client.UploadFile(t.Context(), content, "out/data.csv")

	require.NoError(t, err)
	assert.Equal(t, "out/data.csv", path)
}

func TestUploadFileFailure(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Upload", mock.Anything, mock.Anything, "out/data.csv").Return(errors.New("quota exceeded")).Once()

	_, err := client.UploadFile(t.Context(), strings.NewReader("x"), "out/data.csv")

	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, filestore.CodeUploadFailed))
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, "out/data.csv", errx.AsErrorX(err).Details()["destination_path"])
}

func TestUploadFileBlankDestination(t *testing.T) {
	client, remote := newClient(t)

	_, err := client.UploadFile(t.Context(), strings.NewReader("x"), "")

	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, val.CodeValidationFailed))
	remote.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestRejectsPathsEscapingTheSite(t *testing.T) {
	client, remote := newClient(t)

	_, err := client.DownloadFileAsString(t.Context(), "in/../../etc/passwd")
	require.Error(t, err)
	assert.Equal(t, errx.M{"path": "Must be a remote path without '..' segments"}, errx.AsErrorX(err).Fields())

	err = client.MoveFile(t.Context(), "in/a.txt", "../a.txt")
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, val.CodeValidationFailed))
	assert.Contains(t, errx.AsErrorX(err).Fields(), "destination_path")

	remote.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	remote.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything)
}

func TestDownloadFileAsString(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Find", mock.Anything, "in/a.txt").
		Return(filestore.FileAttributes{DisplayName: "a.txt", Type: filestore.TypeFile}, nil).Once()
	remote.On("Download", mock.Anything, "in/a.txt", mock.Anything).Run(writes(helloContent)).Return(nil).Once()

	content, err := client.DownloadFileAsString(t.Context(), "in/a.txt")

	require.NoError(t, err)
	assert.Equal(t, helloContent, content)
}

func TestDownloadFileAsStringNotFound(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Find", mock.Anything, "in/a.txt").Return(nil, notFound("in/a.txt")).Once()

	_, err := client.DownloadFileAsString(t.Context(), "in/a.txt")

	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, filestore.CodeDownloadFailed))
	remote.AssertNotCalled(t, "Download", mock.Anything, mock.Anything, mock.Anything)
}

func TestDownloadFileToStream(t *testing.T) {
	client, remote := newClient(t)
	var sink bytes.Buffer
	remote.On("Find", mock.Anything, "in/a.txt").
		Return(filestore.FileAttributes{DisplayName: "a.txt", Size: 11}, nil).Once()
	remote.On("Download", mock.Anything, "in/a.txt", &sink).Run(writes(helloContent)).Return(nil).Once()

	err := client.DownloadFileToStream(t.Context(), "in/a.txt", &sink)

	require.NoError(t, err)
	assert.Equal(t, helloContent, sink.String())
}

func TestDownloadFileToStreamFailure(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Find", mock.Anything, "in/a.txt").Return(filestore.FileAttributes{DisplayName: "a.txt"}, nil).Once()
	remote.On("Download", mock.Anything, "in/a.txt", mock.Anything).Return(errors.New("reset")).Once()

	err := client.DownloadFileToStream(t.Context(), "in/a.txt", &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, filestore.CodeDownloadFailed))
	assert.Equal(t, "in/a.txt", errx.AsErrorX(err).Details()["path"])
}

func TestMoveFile(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Find", mock.Anything, "in/a.txt").Return(filestore.FileAttributes{Path: "in/a.txt"}, nil).Once()
	remote.On("Move", mock.Anything, "in/a.txt", "done/a.txt").Return(nil).Once()

	require.NoError(t, client.MoveFile(t.Context(), "in/a.txt", "done/a.txt"))
}

func TestMoveFileFailureCarriesBothPaths(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Find", mock.Anything, "in/a.txt").Return(filestore.FileAttributes{Path: "in/a.txt"}, nil).Once()
	remote.On("Move", mock.Anything, "in/a.txt", "done/a.txt").Return(errors.New("destination exists")).Once()

	err := client.MoveFile(t.Context(), "in/a.txt", "done/a.txt")

	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, filestore.CodeMoveFailed))
	details := errx.AsErrorX(err).Details()
	assert.Equal(t, "in/a.txt", details["current_path"])
	assert.Equal(t, "done/a.txt", details["destination_path"])
}

func TestDeleteFile(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Delete", mock.Anything, "in/a.txt").Return(nil).Once()
	remote.On("Delete", mock.Anything, "in/b.txt").Return(notFound("in/b.txt")).Once()

	require.NoError(t, client.DeleteFile(t.Context(), "in/a.txt"))

	err := client.DeleteFile(t.Context(), "in/b.txt")
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, filestore.CodeDeleteFailed))
}

func TestFileExists(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Find", mock.Anything, "in/a.txt").Return(filestore.FileAttributes{Path: "in/a.txt"}, nil).Once()
	remote.On("Find", mock.Anything, "in/b.txt").Return(nil, notFound("in/b.txt")).Once()
	remote.On("Find", mock.Anything, "in/c.txt").Return(nil, errors.New("401 unauthorized")).Once()

	ok, err := client.FileExists(t.Context(), "in/a.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.FileExists(t.Context(), "in/b.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = client.FileExists(t.Context(), "in/c.txt")
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, filestore.CodeExistsCheckFailed))
}

func TestCreateDirectory(t *testing.T) {
	client, remote := newClient(t)
	remote.On("Mkdir", mock.Anything, "out/2024/01").Return(nil).Once()
	remote.On("Mkdir", mock.Anything, "locked").Return(errors.New("403 forbidden")).Once()

	require.NoError(t, client.CreateDirectory(t.Context(), "out/2024/01"))

	err := client.CreateDirectory(t.Context(), "locked")
	require.Error(t, err)
	assert.True(t, errx.IsCodeIn(err, filestore.CodeCreateDirectoryFailed))
}

func TestSessionIDEmptyForInjectedRemote(t *testing.T) {
	client, _ := newClient(t)

	assert.Empty(t, client.SessionID())
	assert.Equal(t, "/usr/src/app/local-storage", client.LocalStoragePath())
}
