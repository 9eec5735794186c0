package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/abhishk002/mock-employee-service/internal/adapters/grpc/handler"
	"github.com/abhishk002/mock-employee-service/internal/core/employee"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

const defaultShutdownTimeout = 10 * time.Second

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr      string
	shutdownTimeout time.Duration
	logger          zerolog.Logger
	grpcServer      *grpc.Server
}

// Options はサーバー構築時の任意設定です。
type Options struct {
	ShutdownTimeout time.Duration
	Logger          zerolog.Logger
	ServerOptions   []grpc.ServerOption
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, svc employee.UseCase, opts Options) *Server {
	serverOpts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(opts.Logger),
			RecoveryInterceptor(opts.Logger),
		),
	}, opts.ServerOptions...)

	srv := grpc.NewServer(serverOpts...)
	handler.RegisterEmployeeServiceServer(srv, handler.NewEmployeeGrpcHandler(svc))

	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &Server{
		listenAddr:      listenAddr,
		shutdownTimeout: timeout,
		logger:          opts.Logger,
		grpcServer:      srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	return s.Serve(ctx, lis)
}

// Serve は lis 上でサーバーを動かします。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("gRPC server listening")

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.stop()
		case <-stopped:
		}
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.stop()
}

// stop は処理中の呼び出しを shutdownTimeout まで待ち、超えたら強制停止します。
func (s *Server) stop() {
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		s.logger.Warn().Dur("timeout", s.shutdownTimeout).Msg("graceful stop timed out, forcing")
		s.grpcServer.Stop()
	}
}
