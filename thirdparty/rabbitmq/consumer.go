package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/food-hero/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		expirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if c.handle(ctx, msg.Body) {
					_ = msg.Ack(false)
				} else {
					_ = msg.Nack(false, true)
				}
			}
		}
	}()

	return nil
}

// handle processes one message body and reports whether it should be acked.
// Undecodable messages are acked so they are not redelivered forever.
func (c *Consumer) handle(ctx context.Context, body []byte) bool {
	var expMsg RequestExpirationMessage
	if err := json.Unmarshal(body, &expMsg); err != nil {
		logger.Error("[Consumer] unmarshal message", zap.String("error", err.Error()))
		return true
	}

	if err := c.callExpireRequestAPI(ctx, expMsg.RequestID); err != nil {
		logger.Error("[Consumer] expire request", zap.String("request_id", expMsg.RequestID), zap.String("error", err.Error()))
		return false
	}

	logger.Info("[Consumer] request expiry processed", zap.String("request_id", expMsg.RequestID))
	return true
}

func (c *Consumer) callExpireRequestAPI(ctx context.Context, requestID string) error {
	url := fmt.Sprintf("%s/internal/v1/requests/%s/expire", c.apiURL, requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "request-expiration-consumer")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// 4xx means the request is gone or otherwise final; retry server errors and throttling
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
