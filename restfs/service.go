// Package restfs implements RawService on top of the Files.com REST API.
package restfs

import (
	"context"
	"io"

	"github.com/code19m/errx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/filestore/filescomwr"
	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/restfs/client"
	"github.com/rise-and-shine/filescom/restfs/operations"
	"github.com/rise-and-shine/filescom/tracing"
	"github.com/rise-and-shine/filescom/val"
)

var _ RawService = (*Service)(nil)

// Service implements the RawService interface.
type Service struct {
	client     *client.Client
	downloader *operations.Downloader
	lister     *operations.Lister
	mover      *operations.Mover
	uploader   *operations.Uploader
}

type options struct {
	logger  logger.Logger
	rootURL string
	ctx     context.Context //nolint:containedctx // only used during NewService
}

// Option configures NewService.
type Option func(*options)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBaseURL overrides the REST root, client.DefaultRootURL by default.
func WithBaseURL(rootURL string) Option {
	return func(o *options) {
		o.rootURL = rootURL
	}
}

// WithContext sets the context used to create a session during NewService.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// NewService creates a REST service from the shared Files.com config.
// A disabled config is rejected since the REST path has no inert mode.
func NewService(cfg filescomwr.Config, opts ...Option) (*Service, error) {
	o := &options{logger: logger.Nop(), ctx: context.Background()}
	for _, opt := range opts {
		opt(o)
	}

	if !cfg.Enable {
		return nil, errx.New("Files.com integration is disabled",
			errx.WithCode(filestore.CodeDisabled),
			errx.WithType(errx.T_Internal),
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := o.logger.Named("filescom.rest")
	ccfg := client.FromFilesCom(cfg, o.rootURL)

	cl, err := client.New(o.ctx, ccfg, log)
	if err != nil {
		log.Errorx(err)
		return nil, errx.Wrap(err)
	}

	localStoragePath := cfg.LocalStoragePath
	if localStoragePath == "" {
		localStoragePath = filescomwr.DefaultLocalStoragePath
	}

	return &Service{
		client:     cl,
		downloader: operations.NewDownloader(cl, localStoragePath, log),
		lister:     operations.NewLister(cl, log),
		mover:      operations.NewMover(cl, log),
		uploader:   operations.NewUploader(cl, log),
	}, nil
}

// SessionID returns the session created from username/password, or "" with an API key.
func (s *Service) SessionID() string {
	return s.client.SessionID()
}

func (s *Service) DownloadToStream(ctx context.Context, path string) (_ io.ReadCloser, err error) {
	ctx, span := tracing.Start(ctx, "filescom.rest.download_to_stream", attribute.String("remote_path", path))
	defer func() { tracing.End(span, err) }()

	if err = val.RemotePath("path", path); err != nil {
		return nil, err
	}

	body, err := s.downloader.DownloadToStream(ctx, path)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return body, nil
}

func (s *Service) Download(ctx context.Context, path, localDir string) (_ string, err error) {
	ctx, span := tracing.Start(ctx, "filescom.rest.download",
		attribute.String("remote_path", path),
		attribute.String("local_path", localDir),
	)
	defer func() { tracing.End(span, err) }()

	if err = val.RemotePath("path", path); err != nil {
		return "", err
	}

	localPath, err := s.downloader.Download(ctx, path, localDir)
	if err != nil {
		return "", errx.Wrap(err)
	}
	return localPath, nil
}

func (s *Service) ListFoldersByPath(ctx context.Context, path string) (_ []filestore.FileAttributes, err error) {
	ctx, span := tracing.Start(ctx, "filescom.rest.list_folders_by_path", attribute.String("remote_path", path))
	defer func() { tracing.End(span, err) }()

	if err = val.RemotePath("path", path); err != nil {
		return nil, err
	}

	entries, err := s.lister.ListFoldersByPath(ctx, path)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return entries, nil
}

func (s *Service) MoveFile(ctx context.Context, name, fromPath, toPath string) (err error) {
	ctx, span := tracing.Start(ctx, "filescom.rest.move_file",
		attribute.String("remote_path", fromPath),
		attribute.String("destination_path", toPath),
	)
	defer func() { tracing.End(span, err) }()

	if err = checkPaths(
		"name", name,
		"from_path", fromPath,
		"to_path", toPath,
	); err != nil {
		return err
	}

	return errx.Wrap(s.mover.MoveFile(ctx, name, fromPath, toPath))
}

func (s *Service) UploadCSVFile(ctx context.Context, content, destinationPath, name string) (err error) {
	ctx, span := tracing.Start(ctx, "filescom.rest.upload_csv_file", attribute.String("destination_path", destinationPath))
	defer func() { tracing.End(span, err) }()

	if err = checkPaths("name", name, "destination_path", destinationPath); err != nil {
		return err
	}

	return errx.Wrap(s.uploader.UploadCSVFile(ctx, content, destinationPath, name))
}

// checkPaths validates field/value pairs with val.RemotePath, stopping at the first failure.
func checkPaths(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := val.RemotePath(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
