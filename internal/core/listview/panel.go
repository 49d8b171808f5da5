package listview

import (
	"slices"

	"itemdeck/internal/domain/item"
)

// Consumer receives the snapshot of every recomputation.
type Consumer func(Snapshot)

// Panel owns the view parameters for one mounted list and applies the user
// transitions to them. After each transition that changes the parameters it
// recomputes the view and reports it to the consumer before returning.
//
// A Panel is not safe for concurrent use.
type Panel struct {
	records  []item.Item
	params   Params
	result   Result
	consumer Consumer
}

// NewPanel mounts a view over records with default parameters and reports the
// initial snapshot. consumer may be nil.
func NewPanel(records []item.Item, consumer Consumer) *Panel {
	p := &Panel{
		records:  slices.Clone(records),
		params:   DefaultParams(),
		consumer: consumer,
	}
	p.recompute()
	return p
}

// Params returns the current parameters.
func (p *Panel) Params() Params { return p.params }

// Result returns the last computed result.
func (p *Panel) Result() Result { return p.result }

// Snapshot returns the last reported snapshot.
func (p *Panel) Snapshot() Snapshot { return p.result.Snapshot() }

// SetRecords replaces the collection and recomputes with unchanged parameters.
func (p *Panel) SetRecords(records []item.Item) {
	p.records = slices.Clone(records)
	p.recompute()
}

// Search sets the search term and returns to the first page.
func (p *Panel) Search(term string) bool {
	next := p.params
	next.SearchTerm = term
	next.PageIndex = 1
	return p.apply(next)
}

// SortBy activates field. Activating the active field flips the order; any
// other field becomes active in ascending order. The page index is kept.
func (p *Panel) SortBy(field SortField) bool {
	next := p.params
	if next.SortField == field {
		next.SortOrder = next.SortOrder.Toggled()
	} else {
		next.SortField = field
		next.SortOrder = Ascending
	}
	return p.apply(next)
}

// SetPageSize switches to one of PageSizes and returns to the first page.
// Other sizes are ignored.
func (p *Panel) SetPageSize(size int) bool {
	if !ValidPageSize(size) {
		return false
	}
	next := p.params
	next.PageSize = size
	next.PageIndex = 1
	return p.apply(next)
}

// Previous moves one page back unless already on the first page.
func (p *Panel) Previous() bool {
	if !p.CanPrevious() {
		return false
	}
	next := p.params
	next.PageIndex--
	return p.apply(next)
}

// Next moves one page forward unless already on the last page.
func (p *Panel) Next() bool {
	if !p.CanNext() {
		return false
	}
	next := p.params
	next.PageIndex++
	return p.apply(next)
}

// CanPrevious reports whether Previous would move.
func (p *Panel) CanPrevious() bool { return p.Snapshot().HasPrevious() }

// CanNext reports whether Next would move.
func (p *Panel) CanNext() bool { return p.Snapshot().HasNext() }

func (p *Panel) apply(next Params) bool {
	if next == p.params {
		return false
	}
	p.params = next
	p.recompute()
	return true
}

func (p *Panel) recompute() {
	p.result = Compute(p.records, p.params)
	if p.consumer != nil {
		p.consumer(p.result.Snapshot())
	}
}
