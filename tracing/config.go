package tracing

import "time"

const (
	reconnectionPeriod = 30 * time.Second
	shutdownTimeout    = 5 * time.Second
)

// Config holds the configuration for the tracing system.
type Config struct {
	// Disable, if true, completely disables tracing. No spans will be collected or exported.
	Disable bool `yaml:"disable" env:"TRACING_DISABLE" default:"true"`

	// SampleRate determines the sampling rate for traces, between 0.0 and 1.0.
	SampleRate float64 `yaml:"sample_rate" env:"TRACING_SAMPLE_RATE" validate:"gte=0,lte=1" default:"1"`

	// ExporterHost is the hostname or IP address of the OTLP collector.
	ExporterHost string `yaml:"exporter_host" env:"TRACING_EXPORTER_HOST" validate:"required_if=Disable false"`

	// ExporterPort is the gRPC port of the OTLP collector.
	ExporterPort int `yaml:"exporter_port" env:"TRACING_EXPORTER_PORT" default:"4317"`

	// Tags are added as resource attributes to all spans.
	Tags map[string]string `yaml:"tags" env:"TRACING_TAGS"`
}
