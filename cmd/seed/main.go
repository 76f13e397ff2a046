package main

import (
	"context"
	"log"
	"time"

	"talent-map/internal/app"
	"talent-map/internal/config"
	"talent-map/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, s := range seeder.Defaults() {
		log.Printf("running seeder: %s", s.Name())
		if err := s.Run(ctx, c.DB); err != nil {
			log.Fatalf("seeder %s failed: %v", s.Name(), err)
		}
	}

	log.Printf("seeding complete")
}
