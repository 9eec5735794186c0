package server

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor は呼び出しごとのロガーをコンテキストに載せ、結果を記録します。
func LoggingInterceptor(base zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		logger := base.With().Str("method", info.FullMethod).Logger()
		ctx = logger.WithContext(ctx)

		start := time.Now()
		resp, err := next(ctx, req)

		code := status.Code(err)
		event := logger.Info()
		switch code {
		case codes.OK, codes.NotFound, codes.InvalidArgument:
		default:
			event = logger.Error().Err(err)
		}
		event.Str("code", code.String()).Dur("elapsed", time.Since(start)).Msg("handled rpc")

		return resp, err
	}
}

// RecoveryInterceptor はハンドラ内の panic を Internal エラーに変換します。
// コンテキストにロガーが無ければ base に記録します。
func RecoveryInterceptor(base zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger := loggerFromContext(ctx, base)
				logger.Error().Interface("panic", r).Str("method", info.FullMethod).Msg("recovered from panic")
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return next(ctx, req)
	}
}

func loggerFromContext(ctx context.Context, base zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &base
}
