package app

import (
	"context"
	"time"

	"talent-map/internal/config"
	"talent-map/internal/database"
	"talent-map/internal/database/migration"
	dbpostgres "talent-map/internal/database/postgres"
)

type Container struct {
	Config config.Config
	DB     database.DB
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{Config: cfg, DB: db}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
