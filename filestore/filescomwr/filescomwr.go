// Package filescomwr provides a Files.com implementation of the filestore.FileStore interface.
package filescomwr

import (
	"bytes"
	"context"
	"io"

	"github.com/code19m/errx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/meta"
	"github.com/rise-and-shine/filescom/tracing"
	"github.com/rise-and-shine/filescom/val"
)

const (
	opUploadFile           = "upload_file"
	opDownloadFileAsString = "download_file_as_string"
	opDownloadFileToStream = "download_file_to_stream"
	opDownloadFileToDisk   = "download_file_to_disk"
	opMoveFile             = "move_file"
	opDeleteFile           = "delete_file"
	opListFiles            = "list_files"
	opListDirectories      = "list_directories"
	opFileExists           = "file_exists"
	opCreateDirectory      = "create_directory"
)

var _ filestore.FileStore = (*Client)(nil)

// Client implements the filestore.FileStore interface using Files.com.
// It is safe for concurrent use.
type Client struct {
	remote    Remote
	logger    logger.Logger
	cfg       Config
	sessionID string
}

type options struct {
	logger logger.Logger
	remote Remote
	ctx    context.Context //nolint:containedctx // only used during New
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRemote replaces the SDK-backed remote, skipping authentication.
func WithRemote(r Remote) Option {
	return func(o *options) {
		o.remote = r
	}
}

// WithContext sets the context used to create a session during New.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// New validates cfg and creates a Files.com client.
// With username/password credentials a session is created before New returns.
// A disabled config yields a client whose every operation fails with CodeDisabled.
func New(cfg Config, opts ...Option) (*Client, error) {
	o := &options{logger: logger.Nop(), ctx: context.Background()}
	for _, opt := range opts {
		opt(o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Network = cfg.Network.WithDefaults()
	if cfg.LocalStoragePath == "" {
		cfg.LocalStoragePath = DefaultLocalStoragePath
	}

	c := &Client{
		cfg:    cfg,
		logger: o.logger.Named("filescom"),
	}

	if !cfg.Enable {
		c.logger.Warn("Files.com integration is disabled")
		return c, nil
	}

	if o.remote != nil {
		c.remote = o.remote
		return c, nil
	}

	ctx, cancel := context.WithTimeout(o.ctx, cfg.Network.Timeout)
	defer cancel()

	r, err := newSDKRemote(ctx, cfg, c.logger)
	if err != nil {
		return nil, err
	}
	c.remote = r
	c.sessionID = r.sessionID

	return c, nil
}

// SessionID returns the id of the session created from username/password,
// or "" when the client authenticates with an API key.
func (c *Client) SessionID() string {
	return c.sessionID
}

// LocalStoragePath returns the configured default download directory.
func (c *Client) LocalStoragePath() string {
	return c.cfg.LocalStoragePath
}

func (c *Client) UploadFile(ctx context.Context, content io.Reader, destinationPath string) (_ string, err error) {
	ctx, span := c.begin(ctx, opUploadFile, map[meta.ContextKey]string{meta.DestinationPath: destinationPath})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(destinationPath, "destination_path"); err != nil {
		return "", err
	}

	err = c.remote.Upload(ctx, content, destinationPath)
	if err != nil {
		return "", wrap(err, filestore.CodeUploadFailed, errx.D{"destination_path": destinationPath})
	}

	return destinationPath, nil
}

func (c *Client) DownloadFileAsString(ctx context.Context, path string) (_ string, err error) {
	ctx, span := c.begin(ctx, opDownloadFileAsString, map[meta.ContextKey]string{meta.RemotePath: path})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(path, "path"); err != nil {
		return "", err
	}

	if _, err = c.remote.Find(ctx, path); err != nil {
		return "", wrap(err, filestore.CodeDownloadFailed, errx.D{"path": path})
	}

	var buf bytes.Buffer
	if err = c.remote.Download(ctx, path, &buf); err != nil {
		return "", wrap(err, filestore.CodeDownloadFailed, errx.D{"path": path})
	}

	return buf.String(), nil
}

func (c *Client) DownloadFileToStream(ctx context.Context, path string, sink io.Writer) (err error) {
	ctx, span := c.begin(ctx, opDownloadFileToStream, map[meta.ContextKey]string{meta.RemotePath: path})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(path, "path"); err != nil {
		return err
	}
	if sink == nil {
		return val.Fail("sink", "This field is required")
	}

	attrs, err := c.remote.Find(ctx, path)
	if err != nil {
		return wrap(err, filestore.CodeDownloadFailed, errx.D{"path": path})
	}
	c.logger.WithContext(ctx).Debugf("file found: %s size: %d", attrs.DisplayName, attrs.Size)

	if err = c.remote.Download(ctx, path, sink); err != nil {
		return wrap(err, filestore.CodeDownloadFailed, errx.D{"path": path})
	}

	return nil
}

func (c *Client) MoveFile(ctx context.Context, currentPath, destinationPath string) (err error) {
	ctx, span := c.begin(ctx, opMoveFile, map[meta.ContextKey]string{
		meta.RemotePath:      currentPath,
		meta.DestinationPath: destinationPath,
	})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(currentPath, "current_path"); err != nil {
		return err
	}
	if err = val.RemotePath("destination_path", destinationPath); err != nil {
		return err
	}

	details := errx.D{"current_path": currentPath, "destination_path": destinationPath}

	if _, err = c.remote.Find(ctx, currentPath); err != nil {
		return wrap(err, filestore.CodeMoveFailed, details)
	}

	if err = c.remote.Move(ctx, currentPath, destinationPath); err != nil {
		return wrap(err, filestore.CodeMoveFailed, details)
	}

	return nil
}

func (c *Client) DeleteFile(ctx context.Context, path string) (err error) {
	ctx, span := c.begin(ctx, opDeleteFile, map[meta.ContextKey]string{meta.RemotePath: path})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(path, "path"); err != nil {
		return err
	}

	if err = c.remote.Delete(ctx, path); err != nil {
		return wrap(err, filestore.CodeDeleteFailed, errx.D{"path": path})
	}

	return nil
}

func (c *Client) FileExists(ctx context.Context, path string) (_ bool, err error) {
	ctx, span := c.begin(ctx, opFileExists, map[meta.ContextKey]string{meta.RemotePath: path})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(path, "path"); err != nil {
		return false, err
	}

	_, err = c.remote.Find(ctx, path)
	if errx.IsCodeIn(err, filestore.CodeFileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrap(err, filestore.CodeExistsCheckFailed, errx.D{"path": path})
	}

	return true, nil
}

func (c *Client) CreateDirectory(ctx context.Context, path string) (err error) {
	ctx, span := c.begin(ctx, opCreateDirectory, map[meta.ContextKey]string{meta.RemotePath: path})
	defer func() { c.end(ctx, span, err) }()

	if err = c.check(path, "path"); err != nil {
		return err
	}

	if err = c.remote.Mkdir(ctx, path); err != nil {
		return wrap(err, filestore.CodeCreateDirectoryFailed, errx.D{"path": path})
	}

	return nil
}

// begin opens a span and attaches operation metadata to ctx.
func (c *Client) begin(
	ctx context.Context,
	op string,
	md map[meta.ContextKey]string,
) (context.Context, trace.Span) {
	md[meta.Operation] = op

	attrs := make([]attribute.KeyValue, 0, len(md))
	for k, v := range md {
		attrs = append(attrs, attribute.String(string(k), v))
	}

	ctx, span := tracing.Start(ctx, "filescom."+op, attrs...)
	md[meta.TraceID] = tracing.TraceIDFor(ctx)

	return meta.InjectMetaToContext(meta.WithServiceInfo(ctx), md), span
}

func (c *Client) end(ctx context.Context, span trace.Span, err error) {
	log := c.logger.WithContext(ctx)
	if err != nil {
		log.Errorx(err)
	} else {
		log.Debug("Files.com call succeeded")
	}
	tracing.End(span, err)
}

// check rejects calls on a disabled client and blank or escaping paths.
func (c *Client) check(path, field string) error {
	if c.remote == nil {
		return errx.New(
			"Files.com integration is disabled",
			errx.WithCode(filestore.CodeDisabled),
			errx.WithType(errx.T_Internal),
		)
	}
	return val.RemotePath(field, path)
}

func wrap(err error, code string, details errx.D) error {
	return errx.Wrap(err, errx.WithCode(code), errx.WithDetails(details))
}
