package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/muzikology/Live2Share/internal/adapters/memory"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/seed"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recordingNotifier) Notify(_ context.Context, e domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingNotifier) recorded() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

func realtyStore(t *testing.T) *memory.RealtyStore {
	t.Helper()
	s, err := seed.Realty()
	require.NoError(t, err)
	return memory.NewRealtyStore(s, memory.WithClock(tickingClock()))
}

func studentStore(t *testing.T) *memory.StudentStore {
	t.Helper()
	s, err := seed.Student()
	require.NoError(t, err)
	return memory.NewStudentStore(s, memory.WithClock(tickingClock()))
}

// tickingClock гарантирует строго возрастающие createdAt.
func tickingClock() func() time.Time {
	var (
		mu  sync.Mutex
		now = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func ptr[T any](v T) *T { return &v }
