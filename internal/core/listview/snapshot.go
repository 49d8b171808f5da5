package listview

import (
	"fmt"

	"itemdeck/internal/domain/item"
)

// Snapshot is the payload handed to a view's consumer after every
// recomputation, and the body of GET /api/items/view.
type Snapshot struct {
	Items       []item.Item `json:"items"`
	SearchTerm  string      `json:"searchTerm"`
	SortBy      SortField   `json:"sortBy"`
	SortOrder   SortOrder   `json:"sortOrder"`
	PageSize    int         `json:"pageSize"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
	TotalItems  int         `json:"totalItems"`
}

// Snapshot flattens r into the consumer payload.
func (r Result) Snapshot() Snapshot {
	items := r.PageItems
	if items == nil {
		items = []item.Item{}
	}
	return Snapshot{
		Items:       items,
		SearchTerm:  r.Params.SearchTerm,
		SortBy:      r.Params.SortField,
		SortOrder:   r.Params.SortOrder,
		PageSize:    r.Params.PageSize,
		CurrentPage: r.Params.PageIndex,
		TotalPages:  r.TotalPages,
		TotalItems:  r.TotalMatched,
	}
}

// HasPrevious reports whether the previous-page control is enabled.
func (s Snapshot) HasPrevious() bool {
	return s.CurrentPage > 1
}

// HasNext reports whether the next-page control is enabled.
func (s Snapshot) HasNext() bool {
	return s.TotalPages > 0 && s.CurrentPage < s.TotalPages
}

// PageLabel renders "Page X of Y".
func (s Snapshot) PageLabel() string {
	return fmt.Sprintf("Page %d of %d", s.CurrentPage, s.TotalPages)
}

// ResultsLabel renders "Showing N of M items".
func (s Snapshot) ResultsLabel() string {
	return fmt.Sprintf("Showing %d of %d items", len(s.Items), s.TotalItems)
}

// SortLabel renders the caption of the sort control for field, with an arrow
// when field is the active one.
func (s Snapshot) SortLabel(field SortField) string {
	caption := "ID"
	if field == SortByName {
		caption = "Name"
	}
	if field != s.SortBy {
		return caption
	}
	if s.SortOrder == Descending {
		return caption + " ↓"
	}
	return caption + " ↑"
}
