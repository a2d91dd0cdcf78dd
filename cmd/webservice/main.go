package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/config"
	"github.com/aryaduta/ecommerce-admin-service/internal/app"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/database/mongodb"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/objectstorage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := mongodb.ConnectToMongoDB(ctx, conf.MongoDBConfig.URI, conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	storage, err := objectstorage.CreateS3ObjectStorage(ctx, conf.S3Config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}

	application := app.App{
		DB:      db,
		Storage: storage,
		Config:  conf,
	}

	go func() {
		if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := application.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to shut down server gracefully")
	}
}
