package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/repositories/repomanager"
	"github.com/dberestov/microblog/internal/rpc"
	"github.com/dberestov/microblog/internal/server/category"
	"github.com/dberestov/microblog/internal/server/config"
	"github.com/dberestov/microblog/internal/server/grpcx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger()

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer rm.Close()

	srv := category.New(rm.Categories(), logger)

	err = grpcx.Serve(ctx, cfg.CategoryAddr, logger, func(s *grpc.Server) {
		rpc.RegisterCategoryServiceServer(s, srv)
	})
	if err != nil {
		logger.Error(ctx, "server stopped", "error", err.Error())
	}
}
