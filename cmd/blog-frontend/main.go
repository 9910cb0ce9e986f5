package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dberestov/microblog/internal/logging"
	"github.com/dberestov/microblog/internal/rpc"
	"github.com/dberestov/microblog/internal/server/config"
	"github.com/dberestov/microblog/internal/web/frontend"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg := config.LoadConfig()
	logger := logging.NewJSONLogger()

	cateConn, err := rpc.Dial(cfg.CategoryTarget)
	if err != nil {
		log.Fatalf("dial category service: %v", err)
	}
	defer cateConn.Close()

	topicConn, err := rpc.Dial(cfg.TopicTarget)
	if err != nil {
		log.Fatalf("dial topic service: %v", err)
	}
	defer topicConn.Close()

	app := frontend.New(
		rpc.NewCategoryServiceClient(cateConn),
		rpc.NewTopicServiceClient(topicConn),
		logger,
	)

	srv := &http.Server{Addr: cfg.FrontendAddr, Handler: app.Router()}

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "stopping http server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info(ctx, "starting reader frontend", "address", cfg.FrontendAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(ctx, "server stopped", "error", err.Error())
	}
}
