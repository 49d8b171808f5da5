// Package listview derives a page of records from a collection and a set of
// view parameters: search filter, then sort, then paginate.
//
// Every function here is pure. Input slices are never modified and results
// never alias them.
package listview

import (
	"cmp"
	"slices"
	"strings"

	"itemdeck/internal/domain/item"
)

// Result is one materialized view of a collection.
type Result struct {
	PageItems    []item.Item
	Params       Params
	TotalMatched int
	TotalPages   int
}

// Filter keeps the records whose display name or description contains term,
// ignoring case. A blank term keeps everything.
func Filter(records []item.Item, term string) []item.Item {
	if strings.TrimSpace(term) == "" {
		return slices.Clone(nonNil(records))
	}
	needle := strings.ToLower(term)
	out := make([]item.Item, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.DisplayName()), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders records by field. Equal keys keep their input order in both
// directions: descending negates the comparator instead of reversing output.
func Sort(records []item.Item, field SortField, order SortOrder) []item.Item {
	out := slices.Clone(nonNil(records))
	compare := compareByID
	if field == SortByName {
		compare = compareByName
	}
	if order == Descending {
		asc := compare
		compare = func(a, b item.Item) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

func compareByName(a, b item.Item) int {
	return strings.Compare(a.DisplayName(), b.DisplayName())
}

func compareByID(a, b item.Item) int {
	return cmp.Compare(a.ID, b.ID)
}

// TotalPages is ceil(total/pageSize), or 0 when there is nothing to show.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total-1)/pageSize + 1
}

// Paginate returns page pageIndex (1-based) of sorted. Pages past the end are
// empty; pageIndex is not clamped.
func Paginate(sorted []item.Item, pageIndex, pageSize int) []item.Item {
	if pageIndex < 1 || pageSize <= 0 {
		return []item.Item{}
	}
	// checked before multiplying so a huge pageIndex cannot overflow
	if pageIndex > TotalPages(len(sorted), pageSize) {
		return []item.Item{}
	}
	start := (pageIndex - 1) * pageSize
	end := start + min(pageSize, len(sorted)-start)
	return slices.Clone(sorted[start:end])
}

// Compute runs the whole pipeline.
func Compute(records []item.Item, p Params) Result {
	sorted := Sort(Filter(records, p.SearchTerm), p.SortField, p.SortOrder)
	return Result{
		PageItems:    Paginate(sorted, p.PageIndex, p.PageSize),
		Params:       p,
		TotalMatched: len(sorted),
		TotalPages:   TotalPages(len(sorted), p.PageSize),
	}
}

func nonNil(records []item.Item) []item.Item {
	if records == nil {
		return []item.Item{}
	}
	return records
}
