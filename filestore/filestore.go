// Package filestore defines the file storage contract used by application code
// that talks to Files.com.
//
// The FileStore interface is the boundary other packages depend on. It is
// implemented by filestore/filescomwr on top of the Files.com SDK, and the
// data model here is shared with the raw REST client in restfs.
package filestore

import (
	"context"
	"io"
)

// FileStore defines the file operations exposed to callers.
// Implementations must be safe for concurrent use.
type FileStore interface {
	// UploadFile uploads content to destinationPath and returns the remote path.
	UploadFile(ctx context.Context, content io.Reader, destinationPath string) (string, error)

	// DownloadFileAsString downloads the file at path and returns its content as text.
	DownloadFileAsString(ctx context.Context, path string) (string, error)

	// DownloadFileToStream streams the file at path into sink.
	DownloadFileToStream(ctx context.Context, path string, sink io.Writer) error

	// DownloadFileToDisk downloads the file at path into localDir, creating the
	// directory when missing. The local file is named after the remote display name.
	// Returns the local file path.
	DownloadFileToDisk(ctx context.Context, path, localDir string) (string, error)

	// MoveFile moves the file at currentPath to destinationPath.
	MoveFile(ctx context.Context, currentPath, destinationPath string) error

	// DeleteFile removes the file at path.
	DeleteFile(ctx context.Context, path string) error

	// ListFiles lists entries of cfg.DirectoryPath.
	// A nil slice with a nil error means the directory has no entries at all.
	// A non-nil empty slice means entries existed but all were filtered out.
	ListFiles(ctx context.Context, cfg ListFilesConfig) ([]FileResponse, error)

	// ListDirectories lists only the directory entries under path.
	ListDirectories(ctx context.Context, path string) ([]FileResponse, error)

	// FileExists reports whether a file or folder exists at path.
	FileExists(ctx context.Context, path string) (bool, error)

	// CreateDirectory creates the folder at path including missing parents.
	CreateDirectory(ctx context.Context, path string) error
}
