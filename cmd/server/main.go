package main

//go:generate swag init --dir ../.. --generalInfo cmd/server/main.go --output ../../docs --outputTypes go --parseInternal

//	@title			Vimco API
//	@version		1.0
//	@description	Content and lead API behind the Vimco solar website and back office.
//	@schemes		http https
//	@BasePath		/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin bearer token from /api/auth/login (e.g., "Bearer eyJhbGci...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/vimco/vimco-api/internal/bootstrap"
	"github.com/vimco/vimco-api/internal/config"
	"github.com/vimco/vimco-api/internal/infra/mq"
	"github.com/vimco/vimco-api/internal/modules/handler"
	"github.com/vimco/vimco-api/internal/modules/model"
	"github.com/vimco/vimco-api/internal/modules/service"
	"github.com/vimco/vimco-api/internal/router"
	"github.com/vimco/vimco-api/internal/telemetry"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if cfg.Telemetry.Enabled {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Sugar().Errorw("failed to shutdown tracer", "err", err)
		}
	}()

	// init gin
	gin.SetMode(cfg.App.Env)

	auth := do.MustInvoke[service.AuthService](inj)
	if auth == nil {
		log.Sugar().Warn("admin auth disabled: every endpoint is open (set auth.enabled to protect writes)")
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:             cfg,
		Log:                log,
		Auth:               auth,
		CertificateHandler: handler.CertificateHandler{ResourceHandler: do.MustInvoke[*handler.ResourceHandler[model.Certificate]](inj)},
		EventHandler:       handler.EventHandler{ResourceHandler: do.MustInvoke[*handler.ResourceHandler[model.Event]](inj)},
		LogoHandler:        handler.LogoHandler{ResourceHandler: do.MustInvoke[*handler.ResourceHandler[model.Logo]](inj)},
		ProjectHandler:     handler.ProjectHandler{ResourceHandler: do.MustInvoke[*handler.ResourceHandler[model.Project]](inj)},
		TestimonialHandler: handler.TestimonialHandler{ResourceHandler: do.MustInvoke[*handler.ResourceHandler[model.Testimonial]](inj)},
		ContactHandler:     handler.ContactHandler{ResourceHandler: do.MustInvoke[*handler.ResourceHandler[model.ContactSubmission]](inj)},
		ImportHandler:      do.MustInvoke[*handler.ImportHandler](inj),
		UploadHandler:      do.MustInvoke[*handler.UploadHandler](inj),
		AuthHandler:        do.MustInvoke[*handler.AuthHandler](inj),
	})

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Trace-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	// a stuck client gets cut off after the socket timeout
	timeout := time.Duration(cfg.App.SocketTimeoutSec) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           corsHandler(engine),
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
		IdleTimeout:       timeout,
	}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	closeBrokers(inj, log)
	log.Sugar().Info("server exited")
}

func closeBrokers(inj *do.Injector, log *zap.Logger) {
	if pub := do.MustInvoke[*mq.Publisher](inj); pub != nil {
		if err := pub.Close(); err != nil {
			log.Sugar().Warnw("close amqp channel", "err", err)
		}
	}
	if conn := do.MustInvoke[*amqp.Connection](inj); conn != nil {
		if err := conn.Close(); err != nil {
			log.Sugar().Warnw("close amqp connection", "err", err)
		}
	}
	if rdb := do.MustInvoke[*redis.Client](inj); rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Sugar().Warnw("close redis", "err", err)
		}
	}
}
