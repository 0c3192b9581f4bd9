package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/collabhub-io/collabhub/internal/bootstrap"
	"github.com/collabhub-io/collabhub/internal/config"
	"github.com/collabhub-io/collabhub/internal/infra/cache"
	"github.com/collabhub-io/collabhub/internal/infra/db"
	"github.com/collabhub-io/collabhub/internal/modules/handler"
	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/router"
	"github.com/collabhub-io/collabhub/internal/telemetry"
)

//	@title			CollabHub API
//	@version		0.1.0
//	@description	Community collaboration directory and AI tools library.
//	@BasePath		/api/v1

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync() //nolint:errcheck

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Fatal("failed to set up tracing", zap.Error(err))
	}
	if tp != nil {
		gdb := do.MustInvoke[*gorm.DB](inj)
		if err := db.RegisterOpenTelemetryPlugin(gdb); err != nil {
			log.Warn("failed to instrument gorm", zap.Error(err))
		}
		rdb := do.MustInvoke[*redis.Client](inj)
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Warn("failed to instrument redis", zap.Error(err))
		}
	}

	r := router.NewRouter(router.RouterDeps{
		Config:               cfg,
		Log:                  log,
		Identity:             do.MustInvoke[model.Identity](inj),
		CollaborationHandler: do.MustInvoke[*handler.CollaborationHandler](inj),
		DirectoryHandler:     do.MustInvoke[*handler.DirectoryHandler](inj),
		ToolHandler:          do.MustInvoke[*handler.ToolHandler](inj),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("server shutdown", zap.Error(err))
		}
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
		if rdb, err := do.Invoke[*redis.Client](inj); err == nil {
			_ = rdb.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
	log.Info("server stopped")
}
