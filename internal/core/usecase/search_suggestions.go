package usecase

import "context"

type suggestionSource interface {
	SearchSuggestions(ctx context.Context, query string) []string
}

// SearchSuggestionsUseCase работает с любым из двух хранилищ.
type SearchSuggestionsUseCase struct {
	source suggestionSource
}

func NewSearchSuggestionsUseCase(source suggestionSource) *SearchSuggestionsUseCase {
	return &SearchSuggestionsUseCase{source: source}
}

func (uc *SearchSuggestionsUseCase) Execute(ctx context.Context, query string) ([]string, error) {
	return uc.source.SearchSuggestions(ctx, query), nil
}
