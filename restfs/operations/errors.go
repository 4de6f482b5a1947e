package operations

import (
	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/filestore"
)

// keepCode tags err with code unless it already carries a code callers branch on.
func keepCode(err error, code string, details errx.D) error {
	if errx.IsCodeIn(err, filestore.CodeFileNotFound, filestore.CodeChecksumMismatch, filestore.CodeAuthenticationFailed) {
		return errx.Wrap(err, errx.WithDetails(details))
	}
	return errx.Wrap(err, errx.WithCode(code), errx.WithDetails(details))
}
