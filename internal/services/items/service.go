package items

import (
	"context"

	"itemdeck/internal/core/listview"
	"itemdeck/internal/domain/item"
	"itemdeck/internal/metrics"
	"itemdeck/internal/store/repositories"

	"github.com/rs/zerolog/log"
)

// Service handles item operations on top of a repository
type Service struct {
	repo repositories.ItemRepository
}

// NewService creates a new item service
func NewService(repo repositories.ItemRepository) *Service {
	return &Service{repo: repo}
}

// List returns every item ordered by id
func (s *Service) List(ctx context.Context) ([]item.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, &ServiceError{Op: "list_items", Err: err}
	}
	return item.Values(items), nil
}

// Get returns one item
func (s *Service) Get(ctx context.Context, id int64) (*item.Item, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &ServiceError{Op: "get_item", Err: err}
	}
	return it, nil
}

// Create validates and stores a new item. A client-supplied id is ignored.
func (s *Service) Create(ctx context.Context, in item.Item) (*item.Item, error) {
	in.ID = 0
	if err := in.Validate(); err != nil {
		return nil, &ServiceError{Op: "create_item", Err: err}
	}
	if err := s.repo.Save(ctx, &in); err != nil {
		return nil, &ServiceError{Op: "create_item", Err: err}
	}
	metrics.ItemMutations.WithLabelValues("create").Inc()
	log.Info().Int64("item_id", in.ID).Msg("item created")
	return &in, nil
}

// Update replaces the item with the given id
func (s *Service) Update(ctx context.Context, id int64, in item.Item) (*item.Item, error) {
	in.ID = id
	if id <= 0 {
		return nil, &ServiceError{Op: "update_item", Err: item.ErrNotFound}
	}
	if err := in.Validate(); err != nil {
		return nil, &ServiceError{Op: "update_item", Err: err}
	}
	if err := s.repo.Save(ctx, &in); err != nil {
		return nil, &ServiceError{Op: "update_item", Err: err}
	}
	metrics.ItemMutations.WithLabelValues("update").Inc()
	log.Info().Int64("item_id", id).Msg("item updated")
	return &in, nil
}

// Delete removes an item
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &ServiceError{Op: "delete_item", Err: err}
	}
	metrics.ItemMutations.WithLabelValues("delete").Inc()
	log.Info().Int64("item_id", id).Msg("item deleted")
	return nil
}

// View runs the list view pipeline over the whole collection
func (s *Service) View(ctx context.Context, params listview.Params) (listview.Snapshot, error) {
	items, err := s.List(ctx)
	if err != nil {
		return listview.Snapshot{}, err
	}
	metrics.ViewComputations.Inc()
	return listview.Compute(items, params).Snapshot(), nil
}

// Seed stores seed items when the repository is empty and reports how many
// were added. Seed ids are reassigned by the repository.
func (s *Service) Seed(ctx context.Context, seed []item.Item) (int, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, &ServiceError{Op: "seed_items", Err: err}
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i, it := range seed {
		it.ID = 0
		if err := s.repo.Save(ctx, &it); err != nil {
			return i, &ServiceError{Op: "seed_items", Err: err}
		}
	}
	return len(seed), nil
}

// ServiceError represents an item service error
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return "item service " + e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
