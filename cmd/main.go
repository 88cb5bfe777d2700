package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	gamificationapp "github.com/muhammadheryan/food-hero/application/gamification"
	leaderboardapp "github.com/muhammadheryan/food-hero/application/leaderboard"
	requestapp "github.com/muhammadheryan/food-hero/application/request"
	userapp "github.com/muhammadheryan/food-hero/application/user"
	"github.com/muhammadheryan/food-hero/cmd/config"
	redisclient "github.com/muhammadheryan/food-hero/cmd/redis"
	redisRepo "github.com/muhammadheryan/food-hero/repository/redis"
	requestRepo "github.com/muhammadheryan/food-hero/repository/request"
	txRepo "github.com/muhammadheryan/food-hero/repository/tx"
	userRepo "github.com/muhammadheryan/food-hero/repository/user"
	"github.com/muhammadheryan/food-hero/thirdparty/rabbitmq"
	"github.com/muhammadheryan/food-hero/transport"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"go.uber.org/zap"
)

// @title FOOD HERO API
// @version 1.0
// @description Community food delivery: requesters ask, heroes deliver and earn rewards
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "food-hero-api", cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = rdb.Close()
	}()

	// requests still work without the broker, they just never expire on their own
	var publisher requestapp.ExpirationPublisher
	rmq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, request expiry disabled", zap.Error(err))
	} else {
		publisher = rmq
		defer rmq.Close()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RequestRepo := requestRepo.NewRequestRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)

	// Initialize application layers
	handler := &transport.RestHandler{
		UserApp:         userapp.NewUserApp(cfg, UserRepo, RequestRepo, RedisRepo),
		RequestApp:      requestapp.NewRequestApp(cfg, TxRepo, RequestRepo, UserRepo, publisher),
		GamificationApp: gamificationapp.NewGamificationApp(cfg, TxRepo, UserRepo, RequestRepo),
		LeaderboardApp:  leaderboardapp.NewLeaderboardApp(UserRepo),
	}

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      transport.NewTransport(appCtx, cfg, handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	stopApp()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
