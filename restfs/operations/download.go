package operations

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/filestore/localfile"
	"github.com/rise-and-shine/filescom/hasher"
	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/restfs/client"
	"github.com/rise-and-shine/filescom/restfs/types"
)

type Downloader struct {
	Client           *client.Client
	LocalStoragePath string
	Logger           logger.Logger
}

func NewDownloader(cl *client.Client, localStoragePath string, log logger.Logger) *Downloader {
	return &Downloader{
		Client:           cl,
		LocalStoragePath: localStoragePath,
		Logger:           log,
	}
}

// Metadata fetches the file object, including its download_uri.
func (d *Downloader) Metadata(ctx context.Context, path string) (types.File, error) {
	var f types.File
	resp, err := d.Client.R(ctx).SetResult(&f).Get("/files/" + client.EscapePath(path))
	if err = client.Check(resp, err); err != nil {
		return types.File{}, err
	}
	if f.DownloadURI == "" {
		return types.File{}, types.MissingField(types.CodeMissingDownloadURI, "download_uri")
	}
	return f, nil
}

// DownloadToStream returns the content of the file at path. The caller must close it.
func (d *Downloader) DownloadToStream(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := d.Metadata(ctx, path)
	if err != nil {
		return nil, d.fail(ctx, err, filestore.CodeDownloadFailed, errx.D{"path": path})
	}

	body, err := d.open(ctx, f.DownloadURI)
	if err != nil {
		return nil, d.fail(ctx, err, filestore.CodeDownloadFailed, errx.D{"path": path})
	}
	return body, nil
}

// Download writes the file at path into localDir/<display_name> and returns the local path.
// An empty localDir selects LocalStoragePath.
func (d *Downloader) Download(ctx context.Context, path, localDir string) (string, error) {
	if localDir == "" {
		localDir = d.LocalStoragePath
	}
	details := errx.D{"path": path, "local_dir": localDir}

	if err := os.MkdirAll(localDir, localfile.DirPerm); err != nil {
		return "", d.fail(ctx, err, filestore.CodeDownloadToDiskFailed, details)
	}

	f, err := d.Metadata(ctx, path)
	if err != nil {
		return "", d.fail(ctx, err, filestore.CodeDownloadToDiskFailed, details)
	}

	localPath := filepath.Join(localDir, localfile.SafeName(f.DisplayName, path))

	err = localfile.WriteAtomically(localPath, hasher.Expected{MD5: f.Md5, CRC32: f.Crc32}, func(w io.Writer) error {
		body, err := d.open(ctx, f.DownloadURI)
		if err != nil {
			return err
		}
		defer body.Close()

		_, err = io.Copy(w, body)
		return errx.Wrap(err)
	})
	if err != nil {
		return "", d.fail(ctx, err, filestore.CodeDownloadToDiskFailed, details)
	}

	return localPath, nil
}

func (d *Downloader) open(ctx context.Context, uri string) (io.ReadCloser, error) {
	resp, err := d.Client.Transfer(ctx).SetDoNotParseResponse(true).Get(uri)
	if err = client.Check(resp, err); err != nil {
		if resp != nil && resp.RawBody() != nil {
			_ = resp.RawBody().Close()
		}
		return nil, err
	}
	return resp.RawBody(), nil
}

func (d *Downloader) fail(ctx context.Context, err error, code string, details errx.D) error {
	err = keepCode(err, code, details)
	d.Logger.WithContext(ctx).Errorx(err)
	return err
}
