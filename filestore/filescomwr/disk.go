package filescomwr

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/filestore/localfile"
	"github.com/rise-and-shine/filescom/hasher"
	"github.com/rise-and-shine/filescom/meta"
	"github.com/rise-and-shine/filescom/val"
)

// DownloadFileToDisk downloads the file at remotePath into localDir, creating it when missing.
// The local file is named after the remote display name and appears only once complete.
func (c *Client) DownloadFileToDisk(ctx context.Context, remotePath, localDir string) (_ string, err error) {
	ctx, span := c.begin(ctx, opDownloadFileToDisk, map[meta.ContextKey]string{
		meta.RemotePath: remotePath,
		meta.LocalPath:  localDir,
	})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(remotePath, "path"); err != nil {
		return "", err
	}
	if !val.IsNotBlank(localDir) {
		return "", val.Fail("local_dir", "This field is required")
	}

	details := errx.D{"path": remotePath, "local_dir": localDir}

	if err = os.MkdirAll(localDir, localfile.DirPerm); err != nil {
		return "", wrap(err, filestore.CodeDownloadToDiskFailed, details)
	}

	attrs, err := c.remote.Find(ctx, remotePath)
	if errx.IsCodeIn(err, filestore.CodeFileNotFound) {
		return "", errx.Wrap(err, errx.WithDetails(details))
	}
	if err != nil {
		return "", wrap(err, filestore.CodeDownloadToDiskFailed, details)
	}
	if attrs.IsDir() {
		return "", errx.New("remote path is a directory",
			errx.WithCode(filestore.CodeDownloadToDiskFailed),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(details),
		)
	}

	localPath := filepath.Join(localDir, localfile.SafeName(attrs.DisplayName, remotePath))
	c.logger.WithContext(ctx).Debugf("file found: %s size: %d", attrs.DisplayName, attrs.Size)

	err = localfile.WriteAtomically(localPath, hasher.Expected{MD5: attrs.Md5, CRC32: attrs.Crc32}, func(w io.Writer) error {
		return c.remote.Download(ctx, remotePath, w)
	})
	if errx.IsCodeIn(err, filestore.CodeChecksumMismatch) {
		return "", err
	}
	if err != nil {
		return "", wrap(err, filestore.CodeDownloadToDiskFailed, details)
	}

	return localPath, nil
}
