package notifier

import (
	"context"

	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

// MultiNotifier рассылает событие всем вложенным нотификаторам по очереди.
type MultiNotifier struct {
	notifiers []port.NotifierPort
}

func NewMultiNotifier(notifiers ...port.NotifierPort) *MultiNotifier {
	active := make([]port.NotifierPort, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	return &MultiNotifier{notifiers: active}
}

func (m *MultiNotifier) Notify(ctx context.Context, event domain.Event) {
	for _, n := range m.notifiers {
		n.Notify(ctx, event)
	}
}
