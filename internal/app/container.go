package app

import (
	"context"
	"log"
	"time"

	"talent-screen/internal/config"
	"talent-screen/internal/database"
	dbpostgres "talent-screen/internal/database/postgres"
	"talent-screen/internal/infrastructure/cache"
	"talent-screen/internal/infrastructure/storage"
	"talent-screen/internal/ws"
)

type Container struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	Storage *storage.Client
	Hub     *ws.Hub
	Logger  *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	var store *storage.Client
	if cfg.Storage.Enabled() {
		store, err = storage.New(ctx, cfg.Storage)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	} else {
		logger.Printf("storage not configured, resume uploads disabled")
	}

	return &Container{
		Config:  cfg,
		DB:      db,
		Cache:   cache.NewRedis(logger),
		Storage: store,
		Hub:     ws.NewHub(logger),
		Logger:  logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
