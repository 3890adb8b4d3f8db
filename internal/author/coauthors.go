// Package author computes statistics over the author lists of stored
// articles.
package author

import (
	"sort"

	"github.com/hoppe93/PublicationManager/internal/article"
)

// CoauthorCount is the number of publications shared with a single coauthor.
type CoauthorCount struct {
	Name         string `json:"name"`
	Publications int    `json:"publications"`
}

// TopCoauthors counts how often each coauthor appears across the given
// articles, excluding the owner's own name. The result is sorted by
// publication count, most frequent first, with ties broken alphabetically.
func TopCoauthors(arts []article.Article, owner string) []CoauthorCount {
	counts := make(map[string]int)
	for _, art := range arts {
		for _, name := range art.Authors {
			if name == owner {
				continue
			}
			counts[name]++
		}
	}

	result := make([]CoauthorCount, 0, len(counts))
	for name, n := range counts {
		result = append(result, CoauthorCount{Name: name, Publications: n})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Publications != result[j].Publications {
			return result[i].Publications > result[j].Publications
		}
		return result[i].Name < result[j].Name
	})

	return result
}
