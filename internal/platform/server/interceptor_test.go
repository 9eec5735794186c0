package server

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/mockemployee.v1.EmployeeService/GetEmployee"}

func TestLoggingInterceptor_AttachesLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := zerolog.New(&buf)

	_, err := LoggingInterceptor(base)(context.Background(), nil, testInfo, func(ctx context.Context, _ any) (any, error) {
		zerolog.Ctx(ctx).Info().Msg("inside")
		return "ok", nil
	})
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inner, summary map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inner))
	require.NoError(t, json.Unmarshal(lines[1], &summary))
	assert.Equal(t, testInfo.FullMethod, inner["method"])
	assert.Equal(t, "OK", summary["code"])
	assert.Equal(t, "info", summary["level"])
}

func TestLoggingInterceptor_ErrorLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := LoggingInterceptor(zerolog.New(&buf))(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Internal, "boom")
	})
	require.Error(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &summary))
	assert.Equal(t, "error", summary["level"])
	assert.Equal(t, "Internal", summary["code"])
}

func TestRecoveryInterceptor_LogsThroughBase(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := RecoveryInterceptor(zerolog.New(&buf))(context.Background(), nil, testInfo, func(context.Context, any) (any, error) {
		panic("kaboom")
	})
	assert.Equal(t, codes.Internal, status.Code(err))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "recovered from panic", entry["message"])
	assert.Equal(t, "kaboom", entry["panic"])
	assert.Equal(t, testInfo.FullMethod, entry["method"])
}
