package memory

import (
	"sync"
	"time"
)

var baseTime = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

// steppingClock возвращает время, которое сдвигается на секунду при каждом вызове.
func steppingClock() func() time.Time {
	var (
		mu sync.Mutex
		n  int
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		n++
		return baseTime.Add(time.Duration(n) * time.Second)
	}
}

func ptr[T any](v T) *T { return &v }
