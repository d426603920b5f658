package rabbitmq_common

import (
	"errors"
	"net/url"
	"time"
)

// Config - общие параметры подключения к RabbitMQ.
type Config struct {
	URL string
	// ReconnectInterval - как часто проверять и восстанавливать соединение
	ReconnectInterval time.Duration
}

// Validate проверяет, что URL задан и имеет схему amqp/amqps.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("rabbitmq: URL is required")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return errors.New("rabbitmq: URL is malformed")
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return errors.New("rabbitmq: URL scheme must be amqp or amqps")
	}
	return nil
}
