package match

import (
	"sort"
	"strings"
)

// MinSimilarity is the lowest score Suggest reports.
const MinSimilarity = 0.6

// Normalize folds case and drops underscores.
func Normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// candidate is a scored suggestion.
type candidate struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates closest to name, best first. Exact
// matches and candidates scoring below MinSimilarity are left out. Ties keep
// the order of candidates.
func Suggest(name string, candidates []string, limit int) []string {
	var scored []candidate

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if score < MinSimilarity {
			continue
		}

		scored = append(scored, candidate{name: c, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	names := make([]string, 0, len(scored))
	for _, c := range scored {
		names = append(names, c.name)
	}

	return names
}
