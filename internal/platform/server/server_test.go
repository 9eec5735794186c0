package server

import (
	"bytes"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhishk002/mock-employee-service/internal/adapters/grpc/handler"
	"github.com/abhishk002/mock-employee-service/internal/adapters/repository/memory"
	"github.com/abhishk002/mock-employee-service/internal/core/employee"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type fixedHandle string

func (f fixedHandle) GenerateHandle() string { return string(f) }

type panickingUseCase struct {
	employee.UseCase
}

func (panickingUseCase) GetHighestSalary(context.Context) (int, error) {
	panic("salary table exploded")
}

// syncBuffer はサーバーゴルーチンとテストから同時に触られるログ出力先です。
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func startServer(t *testing.T) *handler.Client {
	t.Helper()

	repo := memory.NewEmployeeRepository()
	svc := employee.NewService(repo, fixedHandle("Tester"), nil, memory.NewTransactionManager(repo))
	return serve(t, New("bufconn", svc, Options{ShutdownTimeout: time.Second}))
}

func serve(t *testing.T, srv *Server) *handler.Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		require.NoError(t, <-done)
	})

	return handler.NewClient(conn)
}

func TestServer_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := startServer(t)

	_, err := client.GetHighestSalary(ctx)
	assert.Equal(t, codes.NotFound, status.Code(err))

	created, err := client.CreateEmployee(ctx, map[string]any{"name": "John Doe", "salary": 10000, "age": 34, "title": "SE"})
	require.NoError(t, err)
	assert.Equal(t, "tester@company.com", created.GetFields()[handler.FieldEmail].GetStringValue())

	_, err = client.CreateEmployee(ctx, map[string]any{"name": "Johny Deb", "salary": 15000, "age": 32, "title": "SSE"})
	require.NoError(t, err)

	highest, err := client.GetHighestSalary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), highest)

	top, err := client.GetTopTenHighestEarningEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, top.GetValues(), 2)
	assert.Equal(t, "Johny Deb", top.GetValues()[0].GetStructValue().GetFields()[handler.FieldName].GetStringValue())

	_, err = client.CreateEmployee(ctx, map[string]any{"salary": 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_PanicIsRecoveredAndLogged(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	srv := New("bufconn", panickingUseCase{}, Options{ShutdownTimeout: time.Second, Logger: zerolog.New(&out)})
	client := serve(t, srv)

	_, err := client.GetHighestSalary(context.Background())
	assert.Equal(t, codes.Internal, status.Code(err))

	logged := out.String()
	assert.True(t, strings.Contains(logged, `"message":"recovered from panic"`), "panic not logged: %s", logged)
	assert.True(t, strings.Contains(logged, `"panic":"salary table exploded"`), "panic value not logged: %s", logged)
	assert.True(t, strings.Contains(logged, `"code":"Internal"`), "rpc summary not logged: %s", logged)
}
