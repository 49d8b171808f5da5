// Package memory keeps items in process memory. It backs STORE_DRIVER=memory
// and the tests of everything above the repository.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"itemdeck/internal/domain/item"
)

type itemRepository struct {
	mu    sync.RWMutex
	items map[int64]item.Item
	seq   int64
}

// NewItemRepository creates an empty in-memory repository
func NewItemRepository() *itemRepository {
	return &itemRepository{items: make(map[int64]item.Item)}
}

func (r *itemRepository) FindAll(_ context.Context) ([]*item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*item.Item, 0, len(r.items))
	for _, it := range r.items {
		it := it
		out = append(out, &it)
	}
	slices.SortFunc(out, func(a, b *item.Item) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *itemRepository) FindByID(_ context.Context, id int64) (*item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return nil, item.ErrNotFound
	}
	return &it, nil
}

func (r *itemRepository) Save(_ context.Context, it *item.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it.ID == 0 {
		r.seq++
		it.ID = r.seq
	} else if _, ok := r.items[it.ID]; !ok {
		return item.ErrNotFound
	}
	r.items[it.ID] = *it
	return nil
}

func (r *itemRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return item.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *itemRepository) Close() error { return nil }
