// internal/match/browse/sort.go
package browse

import (
	"sort"
	"strconv"
	"strings"

	"matchmaking-engine/internal/models"
)

// SortOption selects the project table ordering.
type SortOption string

const (
	// SortRelevance keeps the incoming order, which is already relevance-ranked.
	SortRelevance SortOption = "relevance"
	// SortMatchScore orders by match score, highest first.
	SortMatchScore SortOption = "match-score"
	// SortRecent orders by posted recency, newest first.
	SortRecent SortOption = "recent"
)

// Valid reports whether the option is recognized.
func (o SortOption) Valid() bool {
	return o == SortRelevance || o == SortMatchScore || o == SortRecent
}

// ApplySort orders projects in place. Sorts are stable so equal rows keep
// their relevance order.
func ApplySort(projects []models.Project, option SortOption) {
	switch option {
	case SortMatchScore:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].MatchScore > projects[j].MatchScore
		})
	case SortRecent:
		sort.SliceStable(projects, func(i, j int) bool {
			return postedHours(projects[i].Posted) < postedHours(projects[j].Posted)
		})
	}
}

// postedHours converts a recency label like "4h ago", "2d ago" or "1w ago"
// to an age in hours. Unparseable labels sort as age zero, i.e. newest.
func postedHours(posted string) int {
	n, err := strconv.Atoi(leadingDigits(posted))
	if err != nil {
		return 0
	}
	switch {
	case strings.Contains(posted, "h"):
		return n
	case strings.Contains(posted, "d"):
		return n * 24
	case strings.Contains(posted, "w"):
		return n * 24 * 7
	default:
		return 0
	}
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
