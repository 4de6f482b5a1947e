package filescomwr

import (
	"context"
	"io"

	"github.com/rise-and-shine/filescom/filestore"
)

// Remote is the set of Files.com primitives the Client is built on.
// Errors for missing paths must carry filestore.CodeFileNotFound.
type Remote interface {
	// Find returns the metadata of a file or folder.
	Find(ctx context.Context, path string) (filestore.FileAttributes, error)

	// Upload writes content to destinationPath, replacing any existing file.
	Upload(ctx context.Context, content io.Reader, destinationPath string) error

	// Download streams the bytes of the file at path into w.
	Download(ctx context.Context, path string, w io.Writer) error

	// Move renames the file at from to to.
	Move(ctx context.Context, from, to string) error

	// Delete removes the file at path.
	Delete(ctx context.Context, path string) error

	// List returns every entry of the folder at path, across all pages.
	List(ctx context.Context, path string) ([]filestore.FileAttributes, error)

	// Mkdir creates the folder at path with its parents. Existing folders are not an error.
	Mkdir(ctx context.Context, path string) error
}
