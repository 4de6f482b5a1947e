package main

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filescom/cfgloader"
	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/filestore/filescomwr"
	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/meta"
	"github.com/rise-and-shine/filescom/restfs"
	"github.com/rise-and-shine/filescom/tracing"
)

// Config is everything the CLI reads at startup.
type Config struct {
	FilesCom filescomwr.Config `yaml:"files_com" envPrefix:"FILES_COM_"`
	Logger   logger.Config     `yaml:"logger"`
	Tracing  tracing.Config    `yaml:"tracing"`

	// RestRootURL overrides the REST root used by the raw commands.
	RestRootURL string `yaml:"rest_root_url" env:"FILES_COM_REST_ROOT_URL"`
}

type app struct {
	configFile  string
	envFiles    []string
	printConfig bool

	cfg      Config
	log      logger.Logger
	store    filestore.FileStore
	raw      restfs.RawService
	shutdown func() error
}

// boot loads config and builds the logger, tracer and SDK client.
// Anything already set is kept.
func (a *app) boot(ctx context.Context) error {
	if a.store != nil {
		return nil
	}

	opts := []cfgloader.Option{cfgloader.WithEnvFiles(a.envFiles...)}
	if a.configFile != "" {
		opts = append(opts, cfgloader.WithFile(a.configFile))
	}
	if !a.printConfig {
		opts = append(opts, cfgloader.WithSilent())
	}

	cfg, err := cfgloader.Load[Config](opts...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	meta.SetServiceInfo(serviceName, serviceVersion)

	a.log, err = logger.New(cfg.Logger)
	if err != nil {
		return errx.Wrap(err)
	}

	a.shutdown, err = tracing.InitGlobalTracer(cfg.Tracing)
	if err != nil {
		return errx.Wrap(err)
	}

	store, err := filescomwr.New(cfg.FilesCom,
		filescomwr.WithLogger(a.log),
		filescomwr.WithContext(ctx),
	)
	if err != nil {
		return errx.Wrap(err)
	}
	a.store = store
	return nil
}

// rawService builds the REST service on first use.
func (a *app) rawService(ctx context.Context) (restfs.RawService, error) {
	if a.raw != nil {
		return a.raw, nil
	}

	svc, err := restfs.NewService(a.cfg.FilesCom,
		restfs.WithLogger(a.log),
		restfs.WithBaseURL(a.cfg.RestRootURL),
		restfs.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	a.raw = svc
	return svc, nil
}

// close flushes spans and syncs the logger. It is safe to call more than once.
func (a *app) close() {
	if a.shutdown != nil {
		if err := a.shutdown(); err != nil && a.log != nil {
			a.log.Warnx(err)
		}
		a.shutdown = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
