package item

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no record exists for an id.
	ErrNotFound = errors.New("item not found")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid item")
)

const maxNameLen = 200

// Item is a single record of the collection. Records carry either a name or a
// title; both are treated as the record's display name.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// DisplayName returns Name, or Title when Name is empty.
func (i Item) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Title
}

// IsNew reports whether the item has not been stored yet.
func (i Item) IsNew() bool {
	return i.ID == 0
}

// Validate checks the required display name.
func (i Item) Validate() error {
	name := strings.TrimSpace(i.DisplayName())
	if name == "" {
		return fmt.Errorf("%w: name or title is required", ErrInvalid)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalid, maxNameLen)
	}
	if i.ID < 0 {
		return fmt.Errorf("%w: negative id %d", ErrInvalid, i.ID)
	}
	return nil
}

// Values converts a pointer slice into a value slice, skipping nils.
func Values(items []*Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}
