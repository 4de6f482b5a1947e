// Package localfile writes downloaded content to the local filesystem.
package localfile

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/code19m/errx"
	"github.com/google/uuid"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/hasher"
)

const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// SafeName picks a base name for the local copy of a remote file.
// Path elements in displayName are dropped so the file always lands inside its directory.
func SafeName(displayName, remotePath string) string {
	for _, candidate := range []string{displayName, path.Base(remotePath)} {
		name := filepath.Base(filepath.Clean("/" + candidate))
		if name != "/" && name != "." && name != ".." && name != string(filepath.Separator) {
			return name
		}
	}
	return uuid.NewString()
}

// WriteAtomically calls fill with a temp file next to localPath and renames it
// into place once fill returns and the written bytes match want.
// md5 is verified when reported, crc32 otherwise. On any failure the temp file is removed.
func WriteAtomically(localPath string, want hasher.Expected, fill func(w io.Writer) error) (err error) {
	tmpPath := filepath.Join(
		filepath.Dir(localPath),
		fmt.Sprintf(".%s.%s.part", filepath.Base(localPath), uuid.NewString()),
	)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, FilePerm)
	if err != nil {
		return errx.Wrap(err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	digest := hasher.New()
	if err = fill(io.MultiWriter(f, digest)); err != nil {
		return err
	}

	if !digest.Matches(want) {
		return errx.New("downloaded content does not match remote checksum",
			errx.WithCode(filestore.CodeChecksumMismatch),
			errx.WithDetails(errx.D{
				"local_path":     localPath,
				"expected_md5":   want.MD5,
				"expected_crc32": want.CRC32,
				"actual_md5":     digest.MD5(),
				"actual_crc32":   digest.CRC32(),
			}),
		)
	}

	if err = f.Close(); err != nil {
		return errx.Wrap(err)
	}

	return errx.Wrap(os.Rename(tmpPath, localPath))
}
