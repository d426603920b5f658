package rabbitmq_producer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/muzikology/Live2Share/pkg/rabbitmq/rabbitmq_common"
)

// ChannelProvider отдает канал на общем соединении.
type ChannelProvider interface {
	GetChannel() (*amqp.Connection, *amqp.Channel, error)
}

// PublisherConfig настраивает обменник, в который пишет производитель.
type PublisherConfig struct {
	ExchangeName string
	// ExchangeType - direct, fanout, topic или headers
	ExchangeType       string
	DurableExchange    bool
	AutoDeleteExchange bool
	ExchangeArgs       amqp.Table

	// DeclareExchangeIfMissing=false означает, что обменник уже создан снаружи
	DeclareExchangeIfMissing bool

	Logger rabbitmq_common.Logger
}

func (c PublisherConfig) validate() error {
	if c.DeclareExchangeIfMissing && (c.ExchangeName == "") != (c.ExchangeType == "") {
		return errors.New("producer: exchange name and type must be set together when declaring an exchange")
	}
	return nil
}

// Publisher публикует сообщения в один обменник.
type Publisher struct {
	config PublisherConfig
	logger rabbitmq_common.Logger

	mu         sync.Mutex
	provider   ChannelProvider
	connection *amqp.Connection
	channel    *amqp.Channel
}

func NewPublisher(cfg PublisherConfig, provider ChannelProvider) (*Publisher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	p := &Publisher{config: cfg, logger: logger, provider: provider}
	if err := p.openChannel(); err != nil {
		return nil, err
	}
	return p, nil
}

// openChannel вызывается под p.mu либо из конструктора.
func (p *Publisher) openChannel() error {
	conn, ch, err := p.provider.GetChannel()
	if err != nil {
		return fmt.Errorf("producer: failed to get channel: %w", err)
	}

	if p.config.DeclareExchangeIfMissing {
		p.logger.Debug("Declaring exchange", "name", p.config.ExchangeName, "type", p.config.ExchangeType)
		err = ch.ExchangeDeclare(
			p.config.ExchangeName,
			p.config.ExchangeType,
			p.config.DurableExchange,
			p.config.AutoDeleteExchange,
			false, // internal
			false, // no-wait
			p.config.ExchangeArgs,
		)
		if err != nil {
			_ = ch.Close()
			return fmt.Errorf("producer: failed to declare exchange '%s': %w", p.config.ExchangeName, err)
		}
	}

	p.connection = conn
	p.channel = ch
	return nil
}

// Publish отправляет сообщение. Закрытый канал переоткрывается один раз.
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() || p.connection == nil || p.connection.IsClosed() {
		p.logger.Warn("Producer: channel closed, reopening")
		if err := p.openChannel(); err != nil {
			return err
		}
	}

	if err := p.channel.PublishWithContext(ctx, p.config.ExchangeName, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("producer: failed to publish message: %w", err)
	}
	return nil
}

// Close закрывает канал. Соединением владеет ConnectionManager.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil {
		return nil
	}
	err := p.channel.Close()
	p.channel = nil
	if err != nil {
		p.logger.Error(err, "Producer: error closing channel")
		return err
	}
	p.logger.Info("Producer closed")
	return nil
}
