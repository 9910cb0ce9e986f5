// Package grpcx holds the pieces shared by the three service binaries:
// the serve loop with graceful shutdown and the mapping from domain
// sentinel errors to grpc status codes.
package grpcx

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dberestov/microblog/internal/common"
	"github.com/dberestov/microblog/internal/logging"
)

// Serve listens on addr, lets register add services, and serves until ctx
// is cancelled, then stops gracefully.
func Serve(ctx context.Context, addr string, logger logging.Logger, register func(*grpc.Server)) error {
	listen, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()
	register(srv)

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "stopping grpc server")
		srv.GracefulStop()
	}()

	logger.Info(ctx, "starting grpc server", "address", addr)
	return srv.Serve(listen)
}

// Status translates a domain error into the grpc status the caller sees.
// Store failures keep their message but surface as Internal; they are
// never swallowed or retried.
func Status(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrWrongCredentials):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
