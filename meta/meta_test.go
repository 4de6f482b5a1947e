// Package meta_test contains tests for the meta package.
package meta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filescom/meta"
)

func TestInjectMetaToContext(t *testing.T) {
	tests := []struct {
		name        string
		initialCtx  context.Context
		metaData    map[meta.ContextKey]string
		keyToVerify meta.ContextKey
		valueExpect string
		nilValue    bool
	}{
		{
			name:        "inject single value",
			initialCtx:  t.Context(),
			metaData:    map[meta.ContextKey]string{meta.TraceID: "abc-123"},
			keyToVerify: meta.TraceID,
			valueExpect: "abc-123",
		},
		{
			name:       "inject operation and paths",
			initialCtx: t.Context(),
			metaData: map[meta.ContextKey]string{
				meta.Operation:       "move_file",
				meta.RemotePath:      "/in/a.txt",
				meta.DestinationPath: "/out/a.txt",
			},
			keyToVerify: meta.DestinationPath,
			valueExpect: "/out/a.txt",
		},
		{
			name:       "skip empty values",
			initialCtx: t.Context(),
			metaData: map[meta.ContextKey]string{
				meta.TraceID:   "trace-123",
				meta.LocalPath: "",
			},
			keyToVerify: meta.LocalPath,
			nilValue:    true,
		},
		{
			name:        "overwrite existing value",
			initialCtx:  context.WithValue(t.Context(), meta.TraceID, "old-trace-id"),
			metaData:    map[meta.ContextKey]string{meta.TraceID: "new-trace-id"},
			keyToVerify: meta.TraceID,
			valueExpect: "new-trace-id",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := meta.InjectMetaToContext(tc.initialCtx, tc.metaData)

			if tc.nilValue {
				assert.Nil(t, ctx.Value(tc.keyToVerify))
			} else {
				assert.Equal(t, tc.valueExpect, ctx.Value(tc.keyToVerify))
			}
		})
	}
}

func TestExtractMetaFromContext(t *testing.T) {
	ctx := t.Context()
	ctx = context.WithValue(ctx, meta.TraceID, "trace-123")
	ctx = context.WithValue(ctx, meta.Operation, "delete_file")
	ctx = context.WithValue(ctx, meta.RemotePath, 42)
	ctx = context.WithValue(ctx, meta.LocalPath, "")
	ctx = context.WithValue(ctx, meta.ContextKey("custom_key"), "custom_value")

	assert.Equal(t, map[meta.ContextKey]string{
		meta.TraceID:   "trace-123",
		meta.Operation: "delete_file",
	}, meta.ExtractMetaFromContext(ctx))
}

func TestShouldGetMeta(t *testing.T) {
	ctx := context.WithValue(t.Context(), meta.TraceID, "trace-xyz")
	ctx = context.WithValue(ctx, meta.RemotePath, 12345)

	v, err := meta.ShouldGetMeta(ctx, meta.TraceID)
	require.NoError(t, err)
	assert.Equal(t, "trace-xyz", v)

	_, err = meta.ShouldGetMeta(ctx, meta.LocalPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = meta.ShouldGetMeta(ctx, meta.RemotePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type mismatch")

	assert.Equal(t, "trace-xyz", meta.Find(ctx, meta.TraceID))
	assert.Empty(t, meta.Find(ctx, meta.RemotePath))
}

func TestServiceInfo(t *testing.T) {
	meta.SetServiceInfo("filescom", "v1.2.3")
	meta.SetServiceInfo("ignored", "v0")

	assert.Equal(t, "filescom", meta.ServiceName())
	assert.Equal(t, "v1.2.3", meta.ServiceVersion())

	ctx := meta.WithServiceInfo(t.Context())
	assert.Equal(t, map[meta.ContextKey]string{
		meta.ServiceNameKey:    "filescom",
		meta.ServiceVersionKey: "v1.2.3",
	}, meta.ExtractMetaFromContext(ctx))
}
