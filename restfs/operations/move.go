package operations

import (
	"context"
	"path"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/restfs/client"
	"github.com/rise-and-shine/filescom/restfs/types"
)

type Mover struct {
	Client *client.Client
	Logger logger.Logger
}

func NewMover(cl *client.Client, log logger.Logger) *Mover {
	return &Mover{
		Client: cl,
		Logger: log,
	}
}

// MoveFile moves fromPath/name to toPath/name.
func (m *Mover) MoveFile(ctx context.Context, name, fromPath, toPath string) error {
	source := path.Join(fromPath, name)
	destination := path.Join(toPath, name)

	resp, err := m.Client.R(ctx).
		SetBody(types.MoveAction{Destination: destination}).
		Post("/file_actions/move/" + client.EscapePath(source))
	if err = client.Check(resp, err); err != nil {
		err = keepCode(err, filestore.CodeMoveFailed, errx.D{
			"current_path":     source,
			"destination_path": destination,
		})
		m.Logger.WithContext(ctx).Errorx(err)
		return err
	}

	return nil
}
