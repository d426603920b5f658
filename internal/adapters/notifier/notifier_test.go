package notifier

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
)

func testEvent(recipient int) domain.Event {
	return domain.Event{
		Type:            domain.EventApplicationCreated,
		Variant:         domain.VariantStudent,
		RecipientUserID: recipient,
		OccurredAt:      time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
		Data:            map[string]int{"id": 7},
	}
}

func receive(t *testing.T, ch ClientChannel) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return ""
	}
}

func TestSSENotifier_DeliversToRecipientOnly(t *testing.T) {
	n := NewSSENotifier(contextkeys.NoopLogger())
	defer n.Close()

	landlord := n.AddClient(4)
	otherTab := n.AddClient(4)
	stranger := n.AddClient(1)
	assert.Equal(t, 2, n.ClientCount(4))

	n.Notify(context.Background(), testEvent(4))

	for _, ch := range []ClientChannel{landlord, otherTab} {
		msg := receive(t, ch)
		require.True(t, strings.HasPrefix(msg, "event: application_created\ndata: "))
		require.True(t, strings.HasSuffix(msg, "\n\n"))

		payload := strings.TrimSuffix(strings.TrimPrefix(msg, "event: application_created\ndata: "), "\n\n")
		var decoded domain.Event
		require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
		assert.Equal(t, 4, decoded.RecipientUserID)
	}

	select {
	case <-stranger:
		t.Fatal("event leaked to another user")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSSENotifier_RemoveClient(t *testing.T) {
	n := NewSSENotifier(contextkeys.NoopLogger())
	defer n.Close()

	a := n.AddClient(2)
	b := n.AddClient(2)

	n.RemoveClient(2, a)
	assert.Equal(t, 1, n.ClientCount(2))
	n.RemoveClient(2, b)
	assert.Equal(t, 0, n.ClientCount(2))

	n.RemoveClient(3, b)
}

func TestSSENotifier_NotifyAfterClose(t *testing.T) {
	n := NewSSENotifier(contextkeys.NoopLogger())
	n.Close()
	n.Close()

	assert.NotPanics(t, func() { n.Notify(context.Background(), testEvent(1)) })
}

type countingNotifier struct{ got []domain.Event }

func (c *countingNotifier) Notify(_ context.Context, e domain.Event) { c.got = append(c.got, e) }

func TestMultiNotifier_FanOut(t *testing.T) {
	a, b := &countingNotifier{}, &countingNotifier{}
	m := NewMultiNotifier(a, nil, b)

	m.Notify(context.Background(), testEvent(1))

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}
