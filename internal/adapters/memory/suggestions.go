package memory

const maxSuggestions = 10

// collectSuggestions отбирает уникальные значения, содержащие query без учета регистра.
// Группы просматриваются по порядку, внутри группы порядок сохраняется.
func collectSuggestions(query string, groups ...[]string) []string {
	out := make([]string, 0, maxSuggestions)
	if query == "" {
		return out
	}

	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, candidate := range group {
			if _, dup := seen[candidate]; dup {
				continue
			}
			seen[candidate] = struct{}{}
			if !containsFold(candidate, query) {
				continue
			}
			out = append(out, candidate)
			if len(out) == maxSuggestions {
				return out
			}
		}
	}
	return out
}
