package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

const (
	eventBufferSize  = 100
	clientBufferSize = 32
)

// ClientChannel - канал одного SSE-соединения. Один пользователь может держать несколько вкладок.
type ClientChannel chan []byte

type eventWithContext struct {
	ctx   context.Context
	event domain.Event
}

// SSENotifier раздает события открытым SSE-соединениям адресата.
type SSENotifier struct {
	mu      sync.RWMutex
	clients map[int][]ClientChannel

	events chan eventWithContext
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	logger port.LoggerPort
}

func NewSSENotifier(baseLogger port.LoggerPort) *SSENotifier {
	n := &SSENotifier{
		clients: make(map[int][]ClientChannel),
		events:  make(chan eventWithContext, eventBufferSize),
		done:    make(chan struct{}),
		logger:  baseLogger.WithFields(port.Fields{"component": "SSENotifier"}),
	}

	n.wg.Add(1)
	go n.dispatcher()
	return n
}

func (n *SSENotifier) dispatcher() {
	defer n.wg.Done()
	n.logger.Debug("Notifier dispatcher started", nil)

	for {
		select {
		case <-n.done:
			n.logger.Debug("Notifier dispatcher stopped", nil)
			return
		case pkg := <-n.events:
			n.dispatch(pkg.ctx, pkg.event)
		}
	}
}

func (n *SSENotifier) dispatch(ctx context.Context, event domain.Event) {
	eventLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "SSENotifier.dispatcher",
		"event_type": event.Type,
		"user_id":    event.RecipientUserID,
	})

	message, err := formatEvent(event)
	if err != nil {
		eventLogger.Error("Failed to marshal event", err, nil)
		return
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	channels := n.clients[event.RecipientUserID]
	if len(channels) == 0 {
		eventLogger.Debug("No active clients for user, event dropped", nil)
		return
	}

	eventLogger.Debug("Dispatching event to clients", port.Fields{"channels_count": len(channels)})
	for _, ch := range channels {
		// медленный клиент не должен тормозить остальных
		select {
		case ch <- message:
		default:
			eventLogger.Warn("Client channel is full, skipping", nil)
		}
	}
}

// formatEvent собирает кадр SSE: имя события и JSON всего события.
func formatEvent(event domain.Event) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event.Type, body)), nil
}

// Notify не блокирует вызывающий use case: при переполненном буфере событие теряется.
func (n *SSENotifier) Notify(ctx context.Context, event domain.Event) {
	select {
	case <-n.done:
		return
	default:
	}

	select {
	case n.events <- eventWithContext{ctx: ctx, event: event}:
	default:
		contextkeys.LoggerFromContext(ctx).Warn("Notifier buffer is full, event dropped", port.Fields{
			"component":  "SSENotifier",
			"event_type": event.Type,
		})
	}
}

// AddClient регистрирует новое SSE-соединение пользователя.
func (n *SSENotifier) AddClient(userID int) ClientChannel {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(ClientChannel, clientBufferSize)
	n.clients[userID] = append(n.clients[userID], ch)

	n.logger.Info("Client connected for user", port.Fields{
		"user_id":                    userID,
		"total_connections_for_user": len(n.clients[userID]),
	})
	return ch
}

// RemoveClient вызывается хендлером, когда клиент закрыл соединение.
func (n *SSENotifier) RemoveClient(userID int, ch ClientChannel) {
	n.mu.Lock()
	defer n.mu.Unlock()

	channels, found := n.clients[userID]
	if !found {
		return
	}

	remaining := make([]ClientChannel, 0, len(channels))
	for _, c := range channels {
		if c != ch {
			remaining = append(remaining, c)
		}
	}

	if len(remaining) == 0 {
		delete(n.clients, userID)
		n.logger.Debug("Last client disconnected for user", port.Fields{"user_id": userID})
		return
	}
	n.clients[userID] = remaining
	n.logger.Info("Client disconnected for user", port.Fields{
		"user_id":               userID,
		"remaining_connections": len(remaining),
	})
}

// ClientCount - число открытых соединений пользователя.
func (n *SSENotifier) ClientCount(userID int) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.clients[userID])
}

// Close останавливает диспетчер. Повторный вызов безопасен.
func (n *SSENotifier) Close() {
	n.once.Do(func() {
		close(n.done)
		n.wg.Wait()
	})
}
