package listview

import "strings"

// SortField selects the key records are ordered by.
type SortField string

const (
	SortByName SortField = "name"
	SortByID   SortField = "id"
)

// SortOrder is the direction of the active sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// DefaultPageSize is the page size a fresh view starts with.
const DefaultPageSize = 10

// PageSizes lists the selectable page sizes.
var PageSizes = []int{5, 10, 25, 50}

// Params is the complete state of a view. Nothing else influences a Result.
type Params struct {
	SearchTerm string
	SortField  SortField
	SortOrder  SortOrder
	PageIndex  int
	PageSize   int
}

// DefaultParams returns the parameters of a freshly mounted view.
func DefaultParams() Params {
	return Params{
		SortField: SortByID,
		SortOrder: Ascending,
		PageIndex: 1,
		PageSize:  DefaultPageSize,
	}
}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// ParseSortField accepts "name" or "id" in any case.
func ParseSortField(s string) (SortField, bool) {
	switch SortField(strings.ToLower(strings.TrimSpace(s))) {
	case SortByName:
		return SortByName, true
	case SortByID:
		return SortByID, true
	}
	return "", false
}

// ParseSortOrder accepts "asc"/"ascending" or "desc"/"descending".
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	}
	return "", false
}

// Toggled returns the order opposite to o.
func (o SortOrder) Toggled() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}
