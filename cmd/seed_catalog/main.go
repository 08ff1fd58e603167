package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/pageza/skinroutine/backend/config"
	"github.com/pageza/skinroutine/backend/internal/database"
	"github.com/pageza/skinroutine/backend/internal/logger"
	"github.com/pageza/skinroutine/backend/internal/seed"
	"github.com/pageza/skinroutine/backend/internal/service"
	"github.com/pageza/skinroutine/backend/internal/store"
)

func main() {
	file := flag.String("file", "", "Load the catalog from a local JSON file")
	s3Key := flag.String("s3-key", "", "Load the catalog from this object in the configured S3 bucket")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.New("info", "text").WithError(err).Fatal("Failed to load configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var catalog *seed.Catalog
	switch {
	case *file != "" && *s3Key != "":
		log.Fatal("Use only one of -file and -s3-key")
	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			log.WithError(err).Fatal("Failed to read catalog file")
		}
		catalog, err = seed.Parse(data)
		if err != nil {
			log.WithError(err).Fatal("Invalid catalog file")
		}
	case *s3Key != "":
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.WithError(err).Fatal("Failed to configure S3")
		}
		data, err := s3cfg.FetchObject(ctx, *s3Key)
		if err != nil {
			log.WithError(err).WithField("key", *s3Key).Fatal("Failed to download catalog")
		}
		catalog, err = seed.Parse(data)
		if err != nil {
			log.WithError(err).Fatal("Invalid catalog object")
		}
	default:
		catalog, err = seed.Default()
		if err != nil {
			log.WithError(err).Fatal("Invalid embedded catalog")
		}
	}

	if cfg.StorageDriver == config.DriverMemory {
		log.Fatal("The memory driver is seeded on start-up; choose postgres or sqlite")
	}
	db, err := database.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir, log); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	res, err := seed.LoadCatalog(ctx, service.NewCatalogService(store.NewGormStore(db)), catalog, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to seed catalog")
	}
	log.WithField("products", res.Products).Info("Catalog seeding complete")
}
