package main

import (
	"context"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/food-hero/cmd/config"
	redisclient "github.com/muhammadheryan/food-hero/cmd/redis"
	"github.com/muhammadheryan/food-hero/migrations"
	redisRepo "github.com/muhammadheryan/food-hero/repository/redis"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"go.uber.org/zap"
)

// Applies the schema and records the applied version in Redis.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "food-hero-migrate", cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = rdb.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repo := redisRepo.NewRepository(rdb)
	current, err := repo.GetSeedVersion(ctx)
	if err != nil {
		logger.Fatal("err read seed version", zap.Error(err))
	}
	if current == migrations.Version {
		logger.Info("Schema up to date", zap.String("version", current))
		return
	}

	if err := migrations.Apply(ctx, db.DB); err != nil {
		logger.Fatal("err apply migrations", zap.Error(err))
	}
	if err := repo.SetSeedVersion(ctx, migrations.Version); err != nil {
		logger.Fatal("err store seed version", zap.Error(err))
	}
	logger.Info("Migrations applied", zap.String("from", current), zap.String("to", migrations.Version))
}
