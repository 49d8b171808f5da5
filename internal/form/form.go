// Package form edits a single record and submits it to the collection.
package form

import (
	"context"
	"fmt"
	"strings"

	"itemdeck/internal/domain/item"
)

// Submitter is the part of the collection store the form writes through.
type Submitter interface {
	Create(ctx context.Context, in item.Item) (item.Item, error)
	Update(ctx context.Context, in item.Item) (item.Item, error)
}

// Form holds the values being edited. A zero id means a new record.
type Form struct {
	store    Submitter
	values   item.Item
	onCancel func()
}

// New creates an empty form. onCancel runs after every submit and cancel; it
// may be nil.
func New(store Submitter, onCancel func()) *Form {
	return &Form{store: store, onCancel: onCancel}
}

// Load pre-fills the form from editing, or clears it when editing is nil.
func (f *Form) Load(editing *item.Item) {
	if editing == nil {
		f.values = item.Item{}
		return
	}
	f.values = *editing
}

// Set changes one field: name, title or description.
func (f *Form) Set(field, value string) error {
	switch strings.ToLower(field) {
	case "name":
		f.values.Name = value
	case "title":
		f.values.Title = value
	case "description":
		f.values.Description = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// Values returns the current values.
func (f *Form) Values() item.Item { return f.values }

// Editing reports whether the form holds an existing record.
func (f *Form) Editing() bool { return !f.values.IsNew() }

// Submit creates or updates the record, then clears the form. A form whose
// name and title are both blank is not submitted and submitted is false.
// The form is cleared even when the store reports an error.
func (f *Form) Submit(ctx context.Context) (saved item.Item, submitted bool, err error) {
	if strings.TrimSpace(f.values.DisplayName()) == "" {
		return item.Item{}, false, nil
	}
	if f.Editing() {
		saved, err = f.store.Update(ctx, f.values)
	} else {
		saved, err = f.store.Create(ctx, f.values)
	}
	f.Cancel()
	return saved, true, err
}

// Cancel clears the form and notifies the owner.
func (f *Form) Cancel() {
	f.values = item.Item{}
	if f.onCancel != nil {
		f.onCancel()
	}
}
