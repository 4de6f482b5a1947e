package restfs

import (
	"context"
	"io"

	"github.com/rise-and-shine/filescom/filestore"
)

// RawService talks to the Files.com REST API directly, for the operations
// that are simpler over plain HTTP than through the SDK.
type RawService interface {
	// DownloadToStream fetches the file metadata, then opens its download URI.
	// The caller must close the returned reader.
	DownloadToStream(ctx context.Context, path string) (io.ReadCloser, error)

	// Download writes the file at path into localDir, named after its display name,
	// and returns the local path once the write is complete.
	// An empty localDir selects the configured local storage path.
	Download(ctx context.Context, path, localDir string) (string, error)

	// ListFoldersByPath returns the entries of the folder at path.
	ListFoldersByPath(ctx context.Context, path string) ([]filestore.FileAttributes, error)

	// MoveFile moves fromPath/name to toPath/name.
	MoveFile(ctx context.Context, name, fromPath, toPath string) error

	// UploadCSVFile uploads content as destinationPath/name using the
	// put, transfer, end upload protocol.
	UploadCSVFile(ctx context.Context, content, destinationPath, name string) error
}
