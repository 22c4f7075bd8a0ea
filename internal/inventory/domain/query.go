package domain

import "strings"

// Query is the list view's search box and type filter.
type Query struct {
	SearchText      string `json:"searchText" form:"q"`
	DevelopmentType string `json:"developmentType" form:"type"`
}

// Matches applies the type filter (exact, or "all"/empty for none) and a
// case-insensitive substring search on name or purpose.
func (q Query) Matches(p Project) bool {
	if q.DevelopmentType != "" && q.DevelopmentType != TypeAll &&
		p.DevelopmentType.String() != q.DevelopmentType {
		return false
	}
	if q.SearchText == "" {
		return true
	}
	needle := strings.ToLower(q.SearchText)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Purpose), needle)
}

// Stats backs the dashboard cards.
type Stats struct {
	Total   int `json:"total"`
	Web     int `json:"web"`
	Desktop int `json:"desktop"`
	Legacy  int `json:"legacy"`
	Other   int `json:"other"`
}

func (s *Stats) Add(p Project) {
	s.Total++
	switch p.DevelopmentType.Kind() {
	case KindWeb:
		s.Web++
	case KindDesktop:
		s.Desktop++
	case KindLegacy:
		s.Legacy++
	default:
		s.Other++
	}
}

const (
	EmptyNoProjects = "no_projects"
	EmptyNoMatches  = "no_matches"
)

// EmptyState tells the list view which placeholder to show, or "" when there are results.
func EmptyState(total, matched int) string {
	switch {
	case matched > 0:
		return ""
	case total == 0:
		return EmptyNoProjects
	default:
		return EmptyNoMatches
	}
}
