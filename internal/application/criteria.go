package application

import (
	"strings"

	"github.com/samber/lo"
)

// Criteria is the list query shared by every collection. Each dimension only
// applies to the collections that have it. An empty value, "all" or an
// "All ..." label means no constraint.
type Criteria struct {
	Status       string
	Assignee     string
	Client       string
	Category     string
	Tag          string
	Creator      string
	Search       string
	Role         string
	Skill        string
	Availability string
	Sort         string
}

// Work sort options.
const (
	SortRecent       = "recent"
	SortPopular      = "popular"
	SortAlphabetical = "alphabetical"
)

// isSet reports whether a filter value constrains the result.
func isSet(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	lower := strings.ToLower(v)
	return lower != "all" && !strings.HasPrefix(lower, "all ")
}

// normalized returns a copy with unset dimensions cleared and values trimmed.
func (c Criteria) normalized() Criteria {
	clean := func(v string) string {
		if !isSet(v) {
			return ""
		}
		return strings.TrimSpace(v)
	}
	return Criteria{
		Status:       clean(c.Status),
		Assignee:     clean(c.Assignee),
		Client:       clean(c.Client),
		Category:     clean(c.Category),
		Tag:          clean(c.Tag),
		Creator:      clean(c.Creator),
		Search:       clean(c.Search),
		Role:         clean(c.Role),
		Skill:        clean(c.Skill),
		Availability: clean(c.Availability),
		Sort:         strings.ToLower(clean(c.Sort)),
	}
}

// containsFold is a case-insensitive substring test.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// anyContainsFold reports whether any of the fields contains the needle.
func anyContainsFold(needle string, fields ...string) bool {
	return lo.SomeBy(fields, func(f string) bool { return containsFold(f, needle) })
}
