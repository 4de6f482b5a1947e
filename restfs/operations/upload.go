package operations

import (
	"context"
	"net/http"
	"path"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/restfs/client"
	"github.com/rise-and-shine/filescom/restfs/types"
)

// Upload steps, reported in error details.
const (
	stepPut      = "put"
	stepTransfer = "transfer"
	stepEnd      = "end"
)

type Uploader struct {
	Client *client.Client
	Logger logger.Logger
}

func NewUploader(cl *client.Client, log logger.Logger) *Uploader {
	return &Uploader{
		Client: cl,
		Logger: log,
	}
}

// UploadCSVFile uploads content as destinationPath/name in three steps:
// open an upload with action "put", send the bytes to the returned upload_uri,
// then close it with action "end". A failed step aborts the rest.
func (u *Uploader) UploadCSVFile(ctx context.Context, content, destinationPath, name string) error {
	target := path.Join(destinationPath, name)
	endpoint := "/files/" + client.EscapePath(target)

	var intent types.UploadIntent
	resp, err := u.Client.R(ctx).
		SetBody(types.UploadAction{Action: types.ActionPut}).
		SetResult(&intent).
		Post(endpoint)
	if err = client.Check(resp, err); err != nil {
		return u.fail(ctx, err, target, stepPut)
	}
	if intent.UploadURI == "" {
		return u.fail(ctx, types.MissingField(types.CodeMissingUploadURI, "upload_uri"), target, stepPut)
	}

	method := intent.HTTPMethod
	if method == "" {
		method = http.MethodPut
	}

	resp, err = u.Client.Transfer(ctx).
		SetHeaders(intent.Headers).
		SetHeader("Content-Type", filestore.ContentTypeCSV).
		SetContentLength(true).
		SetBody([]byte(content)).
		Execute(method, intent.UploadURI)
	if err = client.Check(resp, err); err != nil {
		return u.fail(ctx, err, target, stepTransfer)
	}

	resp, err = u.Client.R(ctx).
		SetBody(types.UploadAction{Action: types.ActionEnd, Ref: intent.Ref}).
		Post(endpoint)
	if err = client.Check(resp, err); err != nil {
		return u.fail(ctx, err, target, stepEnd)
	}

	return nil
}

func (u *Uploader) fail(ctx context.Context, err error, target, step string) error {
	err = errx.Wrap(err,
		errx.WithCode(filestore.CodeUploadFailed),
		errx.WithDetails(errx.D{"destination_path": target, "step": step}),
	)
	u.Logger.WithContext(ctx).Errorx(err)
	return err
}
