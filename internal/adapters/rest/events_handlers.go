package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/muzikology/Live2Share/internal/adapters/notifier"
	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/port"
)

const defaultKeepAlive = 15 * time.Second

// EventStream - регистрация SSE-клиентов, реализуется notifier.SSENotifier.
type EventStream interface {
	AddClient(userID int) notifier.ClientChannel
	RemoveClient(userID int, ch notifier.ClientChannel)
}

type EventsHandler struct {
	stream    EventStream
	keepAlive time.Duration
}

// NewEventsHandler: keepAlive <= 0 означает 15 секунд.
func NewEventsHandler(stream EventStream, keepAlive time.Duration) *EventsHandler {
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}
	return &EventsHandler{stream: stream, keepAlive: keepAlive}
}

// Subscribe обрабатывает GET /api/v1/events/subscribe?userId=
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubscribeToEvents"})

	userID, err := strconv.Atoi(r.URL.Query().Get("userId"))
	if err != nil || userID <= 0 {
		WriteJSONError(w, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("Response writer does not support streaming", nil, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"user_id": userID})
	handlerLogger.Info("New client subscribing to SSE events", nil)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := h.stream.AddClient(userID)
	defer h.stream.RemoveClient(userID, clientChan)

	fmt.Fprint(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case data := <-clientChan:
			if _, err := w.Write(data); err != nil {
				handlerLogger.Error("Error writing to client, closing SSE connection", err, nil)
				return
			}
			flusher.Flush()
			handlerLogger.Debug("Sent SSE event to client", nil)

		case <-ticker.C:
			// строки с двоеточием в начале - комментарии SSE, клиент их игнорирует
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			handlerLogger.Info("SSE client disconnected", nil)
			return
		}
	}
}
