package repositories

import (
	"context"

	"itemdeck/internal/domain/item"
)

// ItemRepository defines the contract for item data access
type ItemRepository interface {
	// FindAll returns every item ordered by id.
	FindAll(ctx context.Context) ([]*item.Item, error)
	// FindByID returns item.ErrNotFound when no item has the id.
	FindByID(ctx context.Context, id int64) (*item.Item, error)
	// Save inserts an item with a zero id, assigning one, and updates any
	// other. Updating a missing item returns item.ErrNotFound.
	Save(ctx context.Context, it *item.Item) error
	// Delete returns item.ErrNotFound when no item has the id.
	Delete(ctx context.Context, id int64) error
	Close() error
}
