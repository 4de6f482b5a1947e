package filestore

import (
	"cmp"
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/rise-and-shine/filescom/sorter"
)

// Entry types reported by Files.com.
const (
	TypeFile      = "file"
	TypeDirectory = "directory"
)

// FileAttributes mirrors the file metadata returned by Files.com.
// It is an immutable snapshot of the remote state and is never persisted locally.
type FileAttributes struct {
	Path             string     `json:"path"`
	DisplayName      string     `json:"display_name"`
	Type             string     `json:"type"`
	Size             int64      `json:"size"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	Mtime            *time.Time `json:"mtime,omitempty"`
	ProvidedMtime    *time.Time `json:"provided_mtime,omitempty"`
	Crc32            string     `json:"crc32"`
	Md5              string     `json:"md5"`
	MimeType         string     `json:"mime_type"`
	Region           string     `json:"region"`
	Permissions      string     `json:"permissions"`
	SubfoldersLocked bool       `json:"subfolders_locked"`
	DownloadURI      string     `json:"download_uri,omitempty"`
	PriorityColor    string     `json:"priority_color,omitempty"`
	PreviewID        int64      `json:"preview_id,omitempty"`
	Preview          *Preview   `json:"preview,omitempty"`
}

// IsDir reports whether the entry is a directory.
func (a FileAttributes) IsDir() bool {
	return a.Type == TypeDirectory
}

// Preview describes a generated preview of a file.
type Preview struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	DownloadURI string `json:"download_uri"`
	Type        string `json:"type"`
	Size        string `json:"size"`
}

// PreviewFrom converts a vendor preview value (struct, pointer or decoded JSON map)
// into a Preview. Returns nil when v carries no preview.
func PreviewFrom(v any) *Preview {
	m, ok := v.(map[string]any)
	if !ok {
		data, err := json.Marshal(v)
		if err != nil || json.Unmarshal(data, &m) != nil {
			return nil
		}
	}

	p := &Preview{
		ID:          cast.ToInt64(m["id"]),
		Status:      cast.ToString(m["status"]),
		DownloadURI: cast.ToString(m["download_uri"]),
		Type:        cast.ToString(m["type"]),
		Size:        cast.ToString(m["size"]),
	}
	if *p == (Preview{}) {
		return nil
	}
	return p
}

// FileResponse is the unit returned by list, upload and download operations.
type FileResponse struct {
	Attributes FileAttributes `json:"attributes"`
	Options    map[string]any `json:"options"`
}

// NewFileResponse wraps attributes into a FileResponse with an empty options bag.
func NewFileResponse(attrs FileAttributes) FileResponse {
	return FileResponse{
		Attributes: attrs,
		Options:    map[string]any{},
	}
}

// ListFilesConfig shapes a single ListFiles call.
type ListFilesConfig struct {
	// DirectoryPath is the remote folder to list. Must not be blank.
	DirectoryPath string `json:"directory_path" validate:"notblank,remote_path"`

	// SortBy optionally sorts the result on one attribute field.
	SortBy *sorter.Opt `json:"sort_by,omitempty"`

	// ExcludeZeroSize drops entries whose size is 0.
	ExcludeZeroSize bool `json:"exclude_zero_size"`
}

// Sortable attribute fields, named after their JSON keys.
const (
	FieldPath          = "path"
	FieldDisplayName   = "display_name"
	FieldType          = "type"
	FieldSize          = "size"
	FieldCreatedAt     = "created_at"
	FieldMtime         = "mtime"
	FieldProvidedMtime = "provided_mtime"
	FieldCrc32         = "crc32"
	FieldMd5           = "md5"
	FieldMimeType      = "mime_type"
	FieldRegion        = "region"
	FieldPermissions   = "permissions"
	FieldPriorityColor = "priority_color"
	FieldPreviewID     = "preview_id"
)

//nolint:gochecknoglobals // static lookup table
var comparators = map[string]func(a, b FileAttributes) int{
	FieldPath:          func(a, b FileAttributes) int { return strings.Compare(a.Path, b.Path) },
	FieldDisplayName:   func(a, b FileAttributes) int { return strings.Compare(a.DisplayName, b.DisplayName) },
	FieldType:          func(a, b FileAttributes) int { return strings.Compare(a.Type, b.Type) },
	FieldSize:          func(a, b FileAttributes) int { return cmp.Compare(a.Size, b.Size) },
	FieldCreatedAt:     func(a, b FileAttributes) int { return compareTime(a.CreatedAt, b.CreatedAt) },
	FieldMtime:         func(a, b FileAttributes) int { return compareTime(a.Mtime, b.Mtime) },
	FieldProvidedMtime: func(a, b FileAttributes) int { return compareTime(a.ProvidedMtime, b.ProvidedMtime) },
	FieldCrc32:         func(a, b FileAttributes) int { return strings.Compare(a.Crc32, b.Crc32) },
	FieldMd5:           func(a, b FileAttributes) int { return strings.Compare(a.Md5, b.Md5) },
	FieldMimeType:      func(a, b FileAttributes) int { return strings.Compare(a.MimeType, b.MimeType) },
	FieldRegion:        func(a, b FileAttributes) int { return strings.Compare(a.Region, b.Region) },
	FieldPermissions:   func(a, b FileAttributes) int { return strings.Compare(a.Permissions, b.Permissions) },
	FieldPriorityColor: func(a, b FileAttributes) int { return strings.Compare(a.PriorityColor, b.PriorityColor) },
	FieldPreviewID:     func(a, b FileAttributes) int { return cmp.Compare(a.PreviewID, b.PreviewID) },
}

// SortableFields returns the attribute fields ListFiles can sort on.
func SortableFields() []string {
	return []string{
		FieldPath, FieldDisplayName, FieldType, FieldSize, FieldCreatedAt, FieldMtime,
		FieldProvidedMtime, FieldCrc32, FieldMd5, FieldMimeType, FieldRegion,
		FieldPermissions, FieldPriorityColor, FieldPreviewID,
	}
}

// CompareBy returns an ascending comparator of file responses on field.
// The second result is false when field is not sortable.
func CompareBy(field string) (func(a, b FileResponse) int, bool) {
	fn, ok := comparators[field]
	if !ok {
		return nil, false
	}
	return func(a, b FileResponse) int {
		return fn(a.Attributes, b.Attributes)
	}, true
}

// compareTime orders nil timestamps first.
func compareTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}
