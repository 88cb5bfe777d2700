package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	expirationExchange   = "request_expiration_exchange"
	expirationQueue      = "request_expiration_queue"
	expirationRoutingKey = "request_expiration"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// RequestExpirationMessage asks for a food request to be expired once nobody accepted it.
type RequestExpirationMessage struct {
	RequestID   string    `json:"request_id"`
	RequesterID string    `json:"requester_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
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

	return &Publisher{conn: conn, channel: channel}, nil
}

// declareTopology sets up the delayed exchange, the queue and their binding.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		expirationExchange,  // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		expirationQueue, // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		expirationQueue,      // queue name
		expirationRoutingKey, // routing key
		expirationExchange,   // exchange
		false,                // no-wait
		nil,                  // arguments
	)
}

func (p *Publisher) PublishRequestExpiration(msg RequestExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.Publish(
		expirationExchange,   // exchange
		expirationRoutingKey, // routing key
		false,                // mandatory
		false,                // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Headers: amqp091.Table{
				"x-delay": delayMillis(msg.ExpiresAt, time.Now()),
			},
		},
	)
}

func delayMillis(expiresAt, now time.Time) int64 {
	delayMs := expiresAt.Sub(now).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}
	return delayMs
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
