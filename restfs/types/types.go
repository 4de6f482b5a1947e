// Package types holds the JSON payloads of the Files.com REST API.
package types

import (
	"time"

	"github.com/rise-and-shine/filescom/filestore"
)

// File is the file or folder object returned by the files and folders endpoints.
type File struct {
	Path             string         `json:"path"`
	DisplayName      string         `json:"display_name"`
	Type             string         `json:"type"`
	Size             int64          `json:"size"`
	CreatedAt        *time.Time     `json:"created_at"`
	Mtime            *time.Time     `json:"mtime"`
	ProvidedMtime    *time.Time     `json:"provided_mtime"`
	Crc32            string         `json:"crc32"`
	Md5              string         `json:"md5"`
	MimeType         string         `json:"mime_type"`
	Region           string         `json:"region"`
	Permissions      string         `json:"permissions"`
	SubfoldersLocked bool           `json:"subfolders_locked?"`
	DownloadURI      string         `json:"download_uri"`
	PriorityColor    string         `json:"priority_color"`
	PreviewID        int64          `json:"preview_id"`
	Preview          map[string]any `json:"preview"`
}

// Attributes converts the REST object into the shared file model.
func (f File) Attributes() filestore.FileAttributes {
	return filestore.FileAttributes{
		Path:             f.Path,
		DisplayName:      f.DisplayName,
		Type:             f.Type,
		Size:             f.Size,
		CreatedAt:        f.CreatedAt,
		Mtime:            f.Mtime,
		ProvidedMtime:    f.ProvidedMtime,
		Crc32:            f.Crc32,
		Md5:              f.Md5,
		MimeType:         f.MimeType,
		Region:           f.Region,
		Permissions:      f.Permissions,
		SubfoldersLocked: f.SubfoldersLocked,
		DownloadURI:      f.DownloadURI,
		PriorityColor:    f.PriorityColor,
		PreviewID:        f.PreviewID,
		Preview:          filestore.PreviewFrom(f.Preview),
	}
}

// Upload actions of the files endpoint.
const (
	ActionPut = "put"
	ActionEnd = "end"
)

// UploadAction is the body of POST files/{path}.
type UploadAction struct {
	Action string `json:"action"`
	Ref    string `json:"ref,omitempty"`
}

// UploadIntent is the response to an "put" upload action.
type UploadIntent struct {
	UploadURI  string            `json:"upload_uri"`
	Ref        string            `json:"ref"`
	HTTPMethod string            `json:"http_method"`
	Headers    map[string]string `json:"headers"`
}

// MoveAction is the body of POST file_actions/move/{path}.
type MoveAction struct {
	Destination string `json:"destination"`
}

// SessionRequest is the body of POST sessions.
type SessionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the response to POST sessions.
type Session struct {
	ID string `json:"id"`
}

// APIError is the error body returned by the REST API.
type APIError struct {
	Type     string `json:"type"`
	HTTPCode int    `json:"http-code"`
	Title    string `json:"title"`
	Message  string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Title
}
