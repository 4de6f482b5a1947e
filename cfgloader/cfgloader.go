// Package cfgloader loads and validates configuration at the start of an application.
//
// Sources are applied in order, later ones overriding earlier ones:
//
//  1. `default` struct tags
//  2. an optional YAML file (with ${VAR} references expanded from the environment)
//  3. environment variables, including those read from .env files
//
// An explicit false or 0 from YAML or the environment therefore survives a non-zero default.
// The result is validated with the `validate` struct tags.
//
// Example:
//
//	type Config struct {
//	    BaseURL string `yaml:"base_url" env:"FILES_COM_BASE_URL" validate:"required"`
//	    Timeout int    `yaml:"timeout"  env:"TIMEOUT" default:"30"`
//	}
//
//	cfg := cfgloader.MustLoad[Config](cfgloader.WithFile("./config/local.yaml"))
package cfgloader

import (
	"fmt"
	"os"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rise-and-shine/filescom/val"
)

const (
	CodeLoadFailed = "CONFIG_LOAD_FAILED"
)

// Load builds a T from the configured sources and validates it.
func Load[T any](opts ...Option) (T, error) {
	var config T

	if reflect.TypeOf(config) == nil || reflect.TypeOf(config).Kind() == reflect.Pointer {
		return config, errx.New("[cfgloader]: type argument must be a non-pointer struct", errx.WithCode(CodeLoadFailed))
	}

	o := buildOptions(opts)

	if err := defaults.Set(&config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeLoadFailed))
	}

	// .env files are optional
	_ = godotenv.Load(o.envFiles...)

	if o.file != "" {
		if err := readYAML(o.file, &config); err != nil {
			return config, err
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.environment != nil {
		envOpts.Environment = o.environment
	}
	if err := env.ParseWithOptions(&config, envOpts); err != nil {
		return config, errx.Wrap(err,
			errx.WithCode(CodeLoadFailed),
			errx.WithDetails(errx.D{"source": "environment"}),
		)
	}

	if err := val.ValidateSchema(config); err != nil {
		return config, errx.Wrap(err)
	}

	if !o.silent {
		printConfig(o.out, config)
	}

	return config, nil
}

// MustLoad works like Load but exits the process when loading fails.
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[cfgloader]: %v\n", describe(err))
		os.Exit(1)
	}
	return config
}

func readYAML(path string, config any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errx.Wrap(err,
			errx.WithCode(CodeLoadFailed),
			errx.WithDetails(errx.D{"path": path}),
		)
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err = yaml.Unmarshal(data, config); err != nil {
		return errx.Wrap(err,
			errx.WithCode(CodeLoadFailed),
			errx.WithDetails(errx.D{"path": path}),
		)
	}
	return nil
}

// describe appends per-field validation messages to the error text.
func describe(err error) string {
	e := errx.AsErrorX(err)
	if len(e.Fields()) == 0 {
		return err.Error()
	}
	return fmt.Sprintf("%s %v", err.Error(), e.Fields())
}
