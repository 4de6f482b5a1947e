package cfgloader

import (
	"io"
	"os"
)

type options struct {
	file        string
	envFiles    []string
	prefix      string
	environment map[string]string
	silent      bool
	out         io.Writer
}

// Option is a functional option for configuring Load behavior.
type Option func(*options)

// WithFile reads the given YAML file before applying environment variables.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithEnvFiles loads the given .env files instead of the default ".env".
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = paths
	}
}

// WithPrefix prepends prefix to every env tag name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvironment reads variables from m instead of the process environment.
func WithEnvironment(m map[string]string) Option {
	return func(o *options) {
		o.environment = m
	}
}

// WithSilent disables printing of the loaded config.
func WithSilent() Option {
	return func(o *options) {
		o.silent = true
	}
}

// WithOutput sets where the loaded config is printed. Defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

func buildOptions(opts []Option) *options {
	o := &options{out: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
