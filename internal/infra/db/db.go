package db

import (
	"fmt"
	"time"

	"github.com/vimco/vimco-api/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Log.Level == "debug" {
		logLevel = logger.Info
	}

	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	if len(cfg.Database.ReplicaDSNs) > 0 {
		if err := d.Use(replicas(cfg)); err != nil {
			return nil, fmt.Errorf("register replicas: %w", err)
		}
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return d, nil
}

// replicas routes plain reads to the configured replicas; writes and
// transactions stay on the primary.
func replicas(cfg *config.Config) *dbresolver.DBResolver {
	dials := make([]gorm.Dialector, 0, len(cfg.Database.ReplicaDSNs))
	for _, dsn := range cfg.Database.ReplicaDSNs {
		dials = append(dials, postgres.Open(dsn))
	}
	r := dbresolver.Register(dbresolver.Config{
		Replicas: dials,
		Policy:   dbresolver.RandomPolicy{},
	}).SetConnMaxLifetime(time.Hour)
	if cfg.Database.MaxOpen > 0 {
		r.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		r.SetMaxIdleConns(cfg.Database.MaxIdle)
	}
	return r
}
