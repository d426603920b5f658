package port

import (
	"context"

	"github.com/muzikology/Live2Share/internal/core/domain"
)

// NotifierPort - контракт для рассылки доменных событий подписчикам.
// Ошибки доставки не должны ломать основной сценарий, поэтому метод ничего не возвращает.
type NotifierPort interface {
	Notify(ctx context.Context, event domain.Event)
}
