package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/food-hero/cmd/config"
	"github.com/muhammadheryan/food-hero/thirdparty/rabbitmq"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"go.uber.org/zap"
)

// Expiry consumer: receives delayed expiration messages and asks the API to expire the request.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "food-hero-consumer", cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Server.InternalURL,
		cfg.Auth.InternalAPIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Request expiration consumer running", zap.String("api", cfg.Server.InternalURL))
	<-ctx.Done()
	logger.Info("Consumer stopped")
}
