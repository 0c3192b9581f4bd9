package bootstrap

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabhub-io/collabhub/internal/config"
	"github.com/collabhub-io/collabhub/internal/infra/cache"
	"github.com/collabhub-io/collabhub/internal/infra/db"
	"github.com/collabhub-io/collabhub/internal/infra/logger"
	"github.com/collabhub-io/collabhub/internal/modules/handler"
	"github.com/collabhub-io/collabhub/internal/modules/mapper"
	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/repo"
	"github.com/collabhub-io/collabhub/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			_ = d.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto")

			_ = d.AutoMigrate(
				&model.Collaboration{},
				&model.Tool{},
				&model.ToolInsight{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// current identity, fixed via config until real auth lands
	do.Provide(inj, func(i *do.Injector) (model.Identity, error) {
		cfg := do.MustInvoke[*config.Config](i)
		id, err := uuid.Parse(cfg.Identity.UserID)
		if err != nil {
			return model.Identity{}, fmt.Errorf("invalid identity.user_id: %w", err)
		}
		return model.Identity{ID: id, Name: cfg.Identity.UserName}, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.DirectoryRepo, error) {
		return repo.NewDefaultDirectoryRepo(), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CollaborationRepo, error) {
		return repo.NewCollaborationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ToolRepo, error) {
		return repo.NewToolRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ToolInsightRepo, error) {
		return repo.NewToolInsightRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// row <-> display mapper
	do.Provide(inj, func(i *do.Injector) (*mapper.Mapper, error) {
		return mapper.New(
			do.MustInvoke[model.Identity](i),
			do.MustInvoke[repo.DirectoryRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.CollaborationService, error) {
		return service.NewCollaborationService(
			do.MustInvoke[repo.CollaborationRepo](i),
			do.MustInvoke[*mapper.Mapper](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DirectoryService, error) {
		return service.NewDirectoryService(do.MustInvoke[repo.DirectoryRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ToolService, error) {
		return service.NewToolService(
			do.MustInvoke[repo.ToolRepo](i),
			do.MustInvoke[repo.ToolInsightRepo](i),
			do.MustInvoke[model.Identity](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.CollaborationHandler, error) {
		return handler.NewCollaborationHandler(do.MustInvoke[service.CollaborationService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DirectoryHandler, error) {
		return handler.NewDirectoryHandler(do.MustInvoke[service.DirectoryService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ToolHandler, error) {
		return handler.NewToolHandler(do.MustInvoke[service.ToolService](i)), nil
	})

	return inj
}
