package collection

import (
	"slices"

	"itemdeck/internal/domain/item"
)

// State is the client-side view of the remote collection.
type State struct {
	Items   []item.Item
	Loading bool
	// Error holds the message of the most recent failed call, or "".
	Error string
}

// Event is one of FetchStarted, FetchSucceeded, Failed, ItemAdded,
// ItemUpdated, ItemDeleted.
type Event interface {
	isEvent()
}

type FetchStarted struct{}

type FetchSucceeded struct {
	Items []item.Item
}

type Failed struct {
	Message string
}

type ItemAdded struct {
	Item item.Item
}

type ItemUpdated struct {
	Item item.Item
}

type ItemDeleted struct {
	ID int64
}

func (FetchStarted) isEvent()   {}
func (FetchSucceeded) isEvent() {}
func (Failed) isEvent()         {}
func (ItemAdded) isEvent()      {}
func (ItemUpdated) isEvent()    {}
func (ItemDeleted) isEvent()    {}

// Reduce returns the state that follows s after e. s is not modified.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case FetchStarted:
		s.Loading = true
		s.Error = ""
	case FetchSucceeded:
		s.Items = slices.Clone(ev.Items)
		if s.Items == nil {
			s.Items = []item.Item{}
		}
		s.Loading = false
	case Failed:
		s.Error = ev.Message
		s.Loading = false
	case ItemAdded:
		s.Items = append(slices.Clip(s.Items), ev.Item)
	case ItemUpdated:
		items := make([]item.Item, len(s.Items))
		for i, it := range s.Items {
			if it.ID == ev.Item.ID {
				it = ev.Item
			}
			items[i] = it
		}
		s.Items = items
	case ItemDeleted:
		s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(it item.Item) bool {
			return it.ID == ev.ID
		})
	}
	return s
}
