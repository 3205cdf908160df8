package main

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	recipeBoxFactory "github.com/plateful/recipe-box/internal/factories/recipe-box-factory"
	"github.com/plateful/recipe-box/internal/services/docstore"
	postgresStore "github.com/plateful/recipe-box/internal/services/docstore/postgres"
	sqliteStore "github.com/plateful/recipe-box/internal/services/docstore/sqlite"
	"github.com/plateful/recipe-box/pkg/config/env"
	"go.uber.org/zap"
)

func main() {
	config, err := env.NewConfig()
	if err != nil {
		panic("cannot load configuration: " + err.Error())
	}

	logger, err := newLogger(config.Environment)
	if err != nil {
		panic("cannot build logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := openStore(config)
	if err != nil {
		logger.Fatal("could not open document store", zap.Error(err))
	}

	server, err := recipeBoxFactory.New(config, store, logger)
	if err != nil {
		logger.Fatal("could not build server", zap.Error(err))
	}

	logger.Info("starting server",
		zap.String("address", config.ServerAddress),
		zap.String("db_driver", config.DBDriver),
	)
	if err := server.Start(config.ServerAddress); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func openStore(config env.Config) (docstore.Store, error) {
	ctx := context.Background()

	if config.DBDriver == "sqlite" {
		return sqliteStore.Open(ctx, config.DBSource)
	}

	conn, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		return nil, err
	}
	return postgresStore.New(ctx, conn)
}
