package usecases_port

import "context"

type SearchSuggestionsUseCasePort interface {
	Execute(ctx context.Context, query string) ([]string, error)
}
