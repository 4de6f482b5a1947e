// Package meta carries per-operation metadata through context.
package meta

import (
	"context"
	"sync"

	"github.com/code19m/errx"
)

// ContextKey is a type for keys used in context values for metadata.
type ContextKey string

const (
	// TraceID identifies a single operation across logs and spans.
	TraceID ContextKey = "trace_id"

	// Operation names the file operation being performed, e.g. "upload_file".
	Operation ContextKey = "operation"

	// RemotePath is the Files.com path the operation reads from.
	RemotePath ContextKey = "remote_path"

	// DestinationPath is the Files.com path the operation writes to.
	DestinationPath ContextKey = "destination_path"

	// LocalPath is the local filesystem path involved in a download.
	LocalPath ContextKey = "local_path"

	// ServiceNameKey carries the name recorded by SetServiceInfo.
	ServiceNameKey ContextKey = "service_name"

	// ServiceVersionKey carries the version recorded by SetServiceInfo.
	ServiceVersionKey ContextKey = "service_version"
)

//nolint:gochecknoglobals // fixed key order for extraction
var allKeys = []ContextKey{
	TraceID,
	Operation,
	RemotePath,
	DestinationPath,
	LocalPath,
	ServiceNameKey,
	ServiceVersionKey,
}

type serviceInfo struct {
	name    string
	version string
}

//nolint:gochecknoglobals // set once by the binary at startup
var (
	service     serviceInfo
	serviceOnce sync.Once
)

// SetServiceInfo records the name and version of the running binary.
// Only the first call has effect.
func SetServiceInfo(name, version string) {
	serviceOnce.Do(func() {
		service = serviceInfo{name: name, version: version}
	})
}

// ServiceName returns the name recorded by SetServiceInfo.
func ServiceName() string {
	return service.name
}

// ServiceVersion returns the version recorded by SetServiceInfo.
func ServiceVersion() string {
	return service.version
}

// WithServiceInfo attaches the recorded service name and version to ctx.
// Nothing is attached before SetServiceInfo is called.
func WithServiceInfo(ctx context.Context) context.Context {
	return InjectMetaToContext(ctx, map[ContextKey]string{
		ServiceNameKey:    service.name,
		ServiceVersionKey: service.version,
	})
}

// InjectMetaToContext adds metadata from the provided map to the context.
// It only adds values that are not empty strings and returns a new context
// with the added values.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // allow due to finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext extracts all metadata from the provided context.
// Only non-empty string values of predefined keys are included.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range allKeys {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			data[k] = v
		}
	}
	return data
}

// Find returns the string value stored under key, or "" when absent.
func Find(ctx context.Context, key ContextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// ShouldGetMeta returns the string value stored under key.
// It fails when the key is missing or holds a non-string value.
func ShouldGetMeta(ctx context.Context, key ContextKey) (string, error) {
	raw := ctx.Value(key)
	if raw == nil {
		return "", errx.New("meta key not found", errx.WithDetails(errx.D{"key": string(key)}))
	}
	v, ok := raw.(string)
	if !ok {
		return "", errx.New("meta value type mismatch", errx.WithDetails(errx.D{"key": string(key)}))
	}
	return v, nil
}
