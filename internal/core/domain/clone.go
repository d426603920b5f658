package domain

// Хранилище отдает наружу только копии, поэтому срезы и указатели копируются.

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// StringsOrEmpty возвращает пустой срез вместо nil.
func StringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
