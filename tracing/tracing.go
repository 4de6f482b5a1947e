// Package tracing provides distributed tracing capabilities using OpenTelemetry.
// It initializes a global tracer provider exporting to an OTLP endpoint and
// offers span helpers used by the Files.com clients.
package tracing

import (
	"context"
	"net"

	"github.com/code19m/errx"
	"github.com/spf13/cast"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.23.1"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/rise-and-shine/filescom/meta"
)

const tracerName = "github.com/rise-and-shine/filescom"

// InitGlobalTracer installs a global tracer provider exporting over OTLP gRPC.
// Service name and version are taken from meta.SetServiceInfo.
// It returns a shutdown function that flushes pending spans.
//
// If cfg.Disable is true, a no-op tracer is used.
func InitGlobalTracer(cfg Config) (func() error, error) {
	if cfg.Disable {
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func() error { return nil }, nil
	}

	exporterAddr := net.JoinHostPort(cfg.ExporterHost, cast.ToString(cfg.ExporterPort))

	exporter, err := otlptrace.New(
		context.Background(),
		otlptracegrpc.NewClient(
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithEndpoint(exporterAddr),
			otlptracegrpc.WithReconnectionPeriod(reconnectionPeriod),
		),
	)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	attrs := make([]attribute.KeyValue, 0, len(cfg.Tags)+2) //nolint:mnd // service name and version
	for k, v := range cfg.Tags {
		attrs = append(attrs, attribute.String(k, v))
	}
	attrs = append(attrs,
		semconv.ServiceNameKey.String(meta.ServiceName()),
		semconv.ServiceVersionKey.String(meta.ServiceVersion()),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(
			sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRate)),
		),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
	)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := tp.ForceFlush(ctx); err != nil {
			return errx.Wrap(err)
		}
		return errx.Wrap(tp.Shutdown(ctx))
	}, nil
}

// Start opens a span named name on the global tracer.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("error.code", errx.AsErrorX(err).Code()))
	}
	span.End()
}
