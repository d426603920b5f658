package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/muzikology/Live2Share/internal/constants"
	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

const publishTimeout = 10 * time.Second

// Producer - то, что нужно адаптеру от rabbitmq_producer.Publisher.
type Producer interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// EventPublisher отправляет доменные события в обменник. Реализует NotifierPort.
type EventPublisher struct {
	producer Producer
}

func NewEventPublisher(producer Producer) (*EventPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &EventPublisher{producer: producer}, nil
}

// RoutingKeyFor возвращает ключ маршрутизации для типа события.
func RoutingKeyFor(t domain.EventType) (string, bool) {
	switch t {
	case domain.EventInquiryCreated:
		return constants.RoutingKeyInquiryCreated, true
	case domain.EventApplicationCreated:
		return constants.RoutingKeyApplicationCreated, true
	case domain.EventApplicationStatusChanged:
		return constants.RoutingKeyApplicationStatusChanged, true
	}
	return "", false
}

// Notify публикует событие. Ошибка публикации только логируется: запрос, вызвавший событие, уже выполнен.
func (p *EventPublisher) Notify(ctx context.Context, event domain.Event) {
	if err := p.Publish(ctx, event); err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to publish domain event", err, port.Fields{
			"component":  "EventPublisher",
			"event_type": event.Type,
		})
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	routingKey, ok := RoutingKeyFor(event.Type)
	if !ok {
		return fmt.Errorf("rabbitmq adapter: no routing key for event type %q", event.Type)
	}

	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "EventPublisher",
		"routing_key": routingKey,
		"event_type":  event.Type,
	})

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Debug("Publishing domain event", nil)
	if err := p.producer.Publish(publishCtx, routingKey, msg); err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to publish %s: %w", event.Type, err)
	}

	adapterLogger.Info("Successfully published domain event", port.Fields{"recipient_user_id": event.RecipientUserID})
	return nil
}
