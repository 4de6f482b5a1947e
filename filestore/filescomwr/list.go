package filescomwr

import (
	"context"
	"strings"

	"github.com/code19m/errx"
	"github.com/samber/lo"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/meta"
	"github.com/rise-and-shine/filescom/sorter"
	"github.com/rise-and-shine/filescom/val"
)

// ListFiles lists entries of cfg.DirectoryPath, optionally filtered and sorted.
// An empty directory yields a nil slice. Entries that were all filtered out
// yield an empty, non-nil slice.
func (c *Client) ListFiles(ctx context.Context, cfg filestore.ListFilesConfig) (_ []filestore.FileResponse, err error) {
	dir := strings.TrimSpace(cfg.DirectoryPath)

	ctx, span := c.begin(ctx, opListFiles, map[meta.ContextKey]string{meta.RemotePath: dir})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(dir, "directory_path"); err != nil {
		return nil, err
	}

	cmp, err := listComparator(cfg)
	if err != nil {
		return nil, err
	}

	entries, err := c.remote.List(ctx, dir)
	if err != nil {
		return nil, wrap(err, filestore.CodeListFailed, errx.D{"directory_path": dir})
	}

	if len(entries) == 0 {
		return nil, nil
	}

	if cfg.ExcludeZeroSize {
		entries = lo.Filter(entries, func(a filestore.FileAttributes, _ int) bool {
			return a.Size > 0
		})
	}

	files := lo.Map(entries, func(a filestore.FileAttributes, _ int) filestore.FileResponse {
		return filestore.NewFileResponse(a)
	})

	if cmp != nil {
		sorter.Sort(files, *cfg.SortBy, cmp)
	}

	return files, nil
}

// ListDirectories returns only the folder entries under path.
func (c *Client) ListDirectories(ctx context.Context, path string) (_ []filestore.FileResponse, err error) {
	ctx, span := c.begin(ctx, opListDirectories, map[meta.ContextKey]string{meta.RemotePath: path})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(path, "path"); err != nil {
		return nil, err
	}

	entries, err := c.remote.List(ctx, path)
	if err != nil {
		return nil, wrap(err, filestore.CodeFolderListFailed, errx.D{"path": path})
	}

	return lo.FilterMap(entries, func(a filestore.FileAttributes, _ int) (filestore.FileResponse, bool) {
		return filestore.NewFileResponse(a), a.IsDir()
	}), nil
}

// listComparator validates cfg and returns the comparator for its sort field, if any.
func listComparator(cfg filestore.ListFilesConfig) (func(a, b filestore.FileResponse) int, error) {
	if err := val.ValidateSchema(cfg); err != nil {
		return nil, err
	}

	if cfg.SortBy == nil {
		return nil, nil //nolint:nilnil // no sorting requested
	}

	cmp, ok := filestore.CompareBy(cfg.SortBy.F)
	if !ok {
		return nil, val.Fail(
			"sort_by.field",
			"Must be one of: "+strings.Join(filestore.SortableFields(), ", "),
		)
	}
	return cmp, nil
}
