package usecase

import (
	"context"
	"time"

	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, domain.Event) {}

func notifierOrNoop(n port.NotifierPort) port.NotifierPort {
	if n == nil {
		return noopNotifier{}
	}
	return n
}

// userLookup - общая часть хранилищ для проверки уникальности при регистрации.
type userLookup interface {
	usernameTaken(ctx context.Context, username string) bool
	emailInUse(ctx context.Context, email string) bool
}

type realtyUsers struct{ store port.RealtyStoragePort }

func (r realtyUsers) usernameTaken(ctx context.Context, username string) bool {
	_, ok := r.store.GetUserByUsername(ctx, username)
	return ok
}

func (r realtyUsers) emailInUse(ctx context.Context, email string) bool {
	_, ok := r.store.GetUserByEmail(ctx, email)
	return ok
}

type studentUsers struct{ store port.StudentStoragePort }

func (s studentUsers) usernameTaken(ctx context.Context, username string) bool {
	_, ok := s.store.GetUserByUsername(ctx, username)
	return ok
}

func (s studentUsers) emailInUse(ctx context.Context, email string) bool {
	_, ok := s.store.GetUserByEmail(ctx, email)
	return ok
}

// checkUnique возвращает ErrUsernameTaken или ErrEmailInUse.
// Проверка и создание не атомарны: при гонке двух регистраций выигрывает последняя запись.
func checkUnique(ctx context.Context, users userLookup, username, email string) error {
	if users.usernameTaken(ctx, username) {
		return domain.ErrUsernameTaken
	}
	if users.emailInUse(ctx, email) {
		return domain.ErrEmailInUse
	}
	return nil
}

func newEvent(t domain.EventType, variant string, recipient int, data any) domain.Event {
	return domain.Event{
		Type:            t,
		Variant:         variant,
		RecipientUserID: recipient,
		OccurredAt:      time.Now().UTC(),
		Data:            data,
	}
}
