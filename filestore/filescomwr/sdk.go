package filescomwr

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	files_sdk "github.com/Files-com/files-sdk-go/v3"
	"github.com/Files-com/files-sdk-go/v3/file"
	"github.com/Files-com/files-sdk-go/v3/folder"
	"github.com/Files-com/files-sdk-go/v3/session"
	"github.com/code19m/errx"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/logger"
)

// sdkRemote implements Remote with the official Files.com SDK.
type sdkRemote struct {
	files     *file.Client
	folders   *folder.Client
	retry     retrier
	sessionID string
}

func newSDKRemote(ctx context.Context, cfg Config, log logger.Logger) (*sdkRemote, error) {
	// The SDK appends /api/rest/v1 to the endpoint and keeps an explicit http scheme.
	sdkCfg := files_sdk.Config{EndpointOverride: strings.TrimSuffix(cfg.BaseURL, "/")}
	sdkCfg = sdkCfg.Init().SetCustomClient(&http.Client{Timeout: cfg.Network.Timeout})

	r := &sdkRemote{
		retry: retrier{cfg: cfg.Network, logger: log, retryable: isRetryable},
	}

	if cfg.usesSession() {
		sessions := session.Client{Config: sdkCfg}
		s, err := sessions.Create(
			files_sdk.SessionCreateParams{Username: cfg.Username, Password: cfg.Password},
			files_sdk.WithContext(ctx),
		)
		if err != nil {
			return nil, errx.Wrap(err,
				errx.WithCode(filestore.CodeAuthenticationFailed),
				errx.WithType(errx.T_Authentication),
				errx.WithDetails(errx.D{"username": cfg.Username}),
			)
		}
		sdkCfg.SessionId = s.Id
		r.sessionID = s.Id
	} else {
		sdkCfg.APIKey = cfg.APIKey
	}

	r.files = &file.Client{Config: sdkCfg}
	r.folders = &folder.Client{Config: sdkCfg}
	return r, nil
}

func (r *sdkRemote) Find(ctx context.Context, path string) (filestore.FileAttributes, error) {
	var f files_sdk.File
	err := r.retry.do(ctx, "find", func() error {
		var err error
		f, err = r.files.Find(files_sdk.FileFindParams{Path: path}, files_sdk.WithContext(ctx))
		return err
	})
	if err != nil {
		return filestore.FileAttributes{}, mapSDKError(err, path)
	}
	return toAttributes(f), nil
}

// Upload is not retried since content may be partially consumed.
func (r *sdkRemote) Upload(ctx context.Context, content io.Reader, destinationPath string) error {
	err := r.files.Upload(
		file.UploadWithContext(ctx),
		file.UploadWithReader(content),
		file.UploadWithDestinationPath(destinationPath),
	)
	return mapSDKError(err, destinationPath)
}

// Download is not retried since w may already hold partial content.
func (r *sdkRemote) Download(ctx context.Context, path string, w io.Writer) error {
	_, err := r.files.Download(
		files_sdk.FileDownloadParams{Path: path},
		files_sdk.WithContext(ctx),
		files_sdk.ResponseBodyOption(func(body io.ReadCloser) error {
			defer body.Close()
			_, copyErr := io.Copy(w, body)
			return copyErr
		}),
	)
	return mapSDKError(err, path)
}

func (r *sdkRemote) Move(ctx context.Context, from, to string) error {
	err := r.retry.do(ctx, "move", func() error {
		_, err := r.files.Move(
			files_sdk.FileMoveParams{Path: from, Destination: to},
			files_sdk.WithContext(ctx),
		)
		return err
	})
	return mapSDKError(err, from)
}

func (r *sdkRemote) Delete(ctx context.Context, path string) error {
	err := r.retry.do(ctx, "delete", func() error {
		return r.files.Delete(files_sdk.FileDeleteParams{Path: path}, files_sdk.WithContext(ctx))
	})
	return mapSDKError(err, path)
}

// List drains the SDK iterator, which fetches further pages on demand.
func (r *sdkRemote) List(ctx context.Context, path string) ([]filestore.FileAttributes, error) {
	var entries []filestore.FileAttributes
	err := r.retry.do(ctx, "list", func() error {
		entries = nil

		it, err := r.folders.ListFor(files_sdk.FolderListForParams{Path: path}, files_sdk.WithContext(ctx))
		if err != nil {
			return err
		}
		for it.Next() {
			entries = append(entries, toAttributes(it.File()))
		}
		return it.Err()
	})
	if err != nil {
		return nil, mapSDKError(err, path)
	}
	return entries, nil
}

func (r *sdkRemote) Mkdir(ctx context.Context, path string) error {
	err := r.retry.do(ctx, "mkdir", func() error {
		_, err := r.folders.Create(
			files_sdk.FolderCreateParams{Path: path, MkdirParents: lo.ToPtr(true)},
			files_sdk.WithContext(ctx),
		)
		return err
	})
	if files_sdk.IsExist(err) {
		return nil
	}
	return mapSDKError(err, path)
}

// mapSDKError marks missing paths with CodeFileNotFound and keeps other errors as they are.
func mapSDKError(err error, path string) error {
	if err == nil {
		return nil
	}
	if files_sdk.IsNotExist(err) {
		return errx.Wrap(err,
			errx.WithCode(filestore.CodeFileNotFound),
			errx.WithType(errx.T_NotFound),
			errx.WithDetails(errx.D{"path": path}),
		)
	}
	return errx.Wrap(err)
}

func toAttributes(f files_sdk.File) filestore.FileAttributes {
	return filestore.FileAttributes{
		Path:             f.Path,
		DisplayName:      f.DisplayName,
		Type:             f.Type,
		Size:             cast.ToInt64(f.Size),
		CreatedAt:        timeOf(f.CreatedAt),
		Mtime:            timeOf(f.Mtime),
		ProvidedMtime:    timeOf(f.ProvidedMtime),
		Crc32:            f.Crc32,
		Md5:              f.Md5,
		MimeType:         f.MimeType,
		Region:           f.Region,
		Permissions:      f.Permissions,
		SubfoldersLocked: cast.ToBool(f.SubfoldersLocked),
		DownloadURI:      f.DownloadUri,
		PriorityColor:    f.PriorityColor,
		PreviewID:        cast.ToInt64(f.PreviewId),
		Preview:          filestore.PreviewFrom(f.Preview),
	}
}

// timeOf accepts time.Time or *time.Time and returns nil for zero or missing values.
func timeOf(v any) *time.Time {
	t, err := cast.ToTimeE(v)
	if err != nil || t.IsZero() {
		return nil
	}
	return &t
}
