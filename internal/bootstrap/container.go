package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/vimco/vimco-api/internal/config"
	"github.com/vimco/vimco-api/internal/infra/blob"
	"github.com/vimco/vimco-api/internal/infra/cache"
	"github.com/vimco/vimco-api/internal/infra/db"
	"github.com/vimco/vimco-api/internal/infra/httpclient"
	"github.com/vimco/vimco-api/internal/infra/logger"
	"github.com/vimco/vimco-api/internal/infra/mq"
	"github.com/vimco/vimco-api/internal/modules/handler"
	"github.com/vimco/vimco-api/internal/modules/model"
	"github.com/vimco/vimco-api/internal/modules/repo"
	"github.com/vimco/vimco-api/internal/modules/schema"
	"github.com/vimco/vimco-api/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uploadPrefix = "uploads"

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
			if err := d.AutoMigrate(model.All()...); err != nil {
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
		}
		return d, nil
	})

	// Redis, optional: nil disables token revocation
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		return cache.New(do.MustInvoke[*config.Config](i)), nil
	})

	// RabbitMQ, optional: nil when rabbitmq.url is empty
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		conn := do.MustInvoke[*amqp.Connection](i)
		if conn == nil {
			return nil, nil
		}
		cfg := do.MustInvoke[*config.Config](i)
		return mq.NewPublisher(conn, cfg.RabbitMQ.Exchange, do.MustInvoke[*zap.Logger](i))
	})

	// lead webhook, optional
	do.Provide(inj, func(i *do.Injector) (*httpclient.WebhookClient, error) {
		return httpclient.NewWebhookClient(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i)), nil
	})

	// blob store (local disk or S3)
	do.Provide(inj, func(i *do.Injector) (blob.Store, error) {
		return blob.New(context.Background(), do.MustInvoke[*config.Config](i))
	})

	do.Provide(inj, func(i *do.Injector) (*schema.Validator, error) {
		return schema.New(), nil
	})

	// Repo
	provideRepo[model.Certificate](inj)
	provideRepo[model.Event](inj)
	provideRepo[model.Logo](inj)
	provideRepo[model.Project](inj)
	provideRepo[model.Testimonial](inj)
	provideRepo[model.ContactSubmission](inj)

	// Service
	provideCrudService[model.Certificate](inj, repo.ByDisplayOrder)
	provideCrudService[model.Event](inj, repo.ByDisplayOrderThenEvent)
	provideCrudService[model.Logo](inj, repo.ByDisplayOrder)
	provideCrudService[model.Testimonial](inj, repo.ByDisplayOrderThenNewest)
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.CrudRepo[model.Project]](i), do.MustInvoke[*zap.Logger](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CrudService[model.Project], error) {
		return do.MustInvoke[service.ProjectService](i), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CrudService[model.ContactSubmission], error) {
		var pub service.EventPublisher
		if p := do.MustInvoke[*mq.Publisher](i); p != nil {
			pub = p
		}
		var hook service.Notifier
		if w := do.MustInvoke[*httpclient.WebhookClient](i); w != nil {
			hook = w
		}
		return service.NewContactService(
			do.MustInvoke[repo.CrudRepo[model.ContactSubmission]](i),
			pub,
			hook,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UploadService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewUploadService(do.MustInvoke[blob.Store](i), service.UploadOptions{
			Prefix:        uploadPrefix,
			MaxFileBytes:  int64(cfg.Upload.MaxFileMB) << 20,
			MaxImageWidth: cfg.Upload.MaxImageWidth,
		}, do.MustInvoke[*zap.Logger](i)), nil
	})
	// auth, nil when auth.enabled is false
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.Auth.Enabled {
			return nil, nil
		}
		var revoker service.Revoker
		if rdb := do.MustInvoke[*redis.Client](i); rdb != nil {
			revoker = cache.NewTokenRevocations(rdb)
		}
		return service.NewAuthService(service.AuthOptions{
			AdminEmail:        cfg.Auth.AdminEmail,
			AdminPassword:     cfg.Auth.AdminPassword,
			AdminPasswordHash: cfg.Auth.AdminPasswordHash,
			Secret:            []byte(cfg.Auth.JWTSecret),
			Issuer:            cfg.Auth.JWTIssuer,
			TTL:               time.Duration(cfg.Auth.TokenTTLMin) * time.Minute,
		}, revoker, do.MustInvoke[*zap.Logger](i))
	})

	// Handler
	provideResourceHandler(inj, handler.CertificateResource)
	provideResourceHandler(inj, handler.EventResource)
	provideResourceHandler(inj, handler.LogoResource)
	provideResourceHandler(inj, handler.ProjectResource)
	provideResourceHandler(inj, handler.TestimonialResource)
	provideResourceHandler(inj, handler.ContactResource)
	do.Provide(inj, func(i *do.Injector) (*handler.ImportHandler, error) {
		return handler.NewImportHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UploadHandler, error) {
		return handler.NewUploadHandler(do.MustInvoke[service.UploadService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})

	return inj
}

func provideRepo[M any](inj *do.Injector) {
	do.Provide(inj, func(i *do.Injector) (repo.CrudRepo[M], error) {
		return repo.NewCrudRepo[M](do.MustInvoke[*gorm.DB](i)), nil
	})
}

func provideCrudService[M any](inj *do.Injector, order repo.Order) {
	do.Provide(inj, func(i *do.Injector) (service.CrudService[M], error) {
		return service.NewCrudService(do.MustInvoke[repo.CrudRepo[M]](i), order), nil
	})
}

func provideResourceHandler[M any](inj *do.Injector, res handler.Resource[M]) {
	do.Provide(inj, func(i *do.Injector) (*handler.ResourceHandler[M], error) {
		return handler.NewResourceHandler(
			res,
			do.MustInvoke[service.CrudService[M]](i),
			do.MustInvoke[*schema.Validator](i),
		), nil
	})
}
