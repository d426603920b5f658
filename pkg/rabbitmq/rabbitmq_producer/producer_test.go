package rabbitmq_producer

import (
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{ calls int }

func (f *failingProvider) GetChannel() (*amqp.Connection, *amqp.Channel, error) {
	f.calls++
	return nil, nil, errors.New("broker down")
}

func TestNewPublisher_ValidatesExchange(t *testing.T) {
	_, err := NewPublisher(PublisherConfig{DeclareExchangeIfMissing: true, ExchangeName: "events"}, &failingProvider{})
	assert.Error(t, err)
}

func TestNewPublisher_PropagatesChannelError(t *testing.T) {
	provider := &failingProvider{}
	_, err := NewPublisher(PublisherConfig{ExchangeName: "events", ExchangeType: "topic"}, provider)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.Equal(t, 1, provider.calls)
}
