package operations

import (
	"context"
	"strconv"

	"github.com/code19m/errx"
	"github.com/samber/lo"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/restfs/client"
	"github.com/rise-and-shine/filescom/restfs/types"
)

const (
	pageSize = 1000

	headerCursorNext   = "X-Files-Cursor-Next"
	headerCursorLegacy = "X-Files-Cursor"
)

type Lister struct {
	Client *client.Client
	Logger logger.Logger
}

func NewLister(cl *client.Client, log logger.Logger) *Lister {
	return &Lister{
		Client: cl,
		Logger: log,
	}
}

// ListFoldersByPath returns every entry of the folder at path, following pagination cursors.
func (l *Lister) ListFoldersByPath(ctx context.Context, path string) ([]filestore.FileAttributes, error) {
	var (
		entries []types.File
		cursor  string
		seen    = map[string]bool{}
	)

	for {
		var page []types.File
		req := l.Client.R(ctx).
			SetQueryParam("per_page", strconv.Itoa(pageSize)).
			SetResult(&page)
		if cursor != "" {
			req.SetQueryParam("cursor", cursor)
		}

		resp, err := req.Get("/folders/" + client.EscapePath(path))
		if err = client.Check(resp, err); err != nil {
			err = keepCode(err, filestore.CodeFolderListFailed, errx.D{"path": path})
			l.Logger.WithContext(ctx).Errorx(err)
			return nil, err
		}
		entries = append(entries, page...)

		cursor = resp.Header().Get(headerCursorNext)
		if cursor == "" {
			cursor = resp.Header().Get(headerCursorLegacy)
		}
		if cursor == "" || seen[cursor] {
			break
		}
		seen[cursor] = true
	}

	return lo.Map(entries, func(f types.File, _ int) filestore.FileAttributes {
		return f.Attributes()
	}), nil
}
