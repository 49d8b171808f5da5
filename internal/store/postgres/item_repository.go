package postgres

import (
	"context"
	"errors"

	"itemdeck/internal/domain/item"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// itemRepository implements ItemRepository on a pgx pool
type itemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *pgxpool.Pool) *itemRepository {
	return &itemRepository{db: db}
}

// FindAll returns every item ordered by id
func (r *itemRepository) FindAll(ctx context.Context) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, title, description
		FROM items
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*item.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// FindByID finds an item by ID
func (r *itemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, title, description
		FROM items
		WHERE id = $1`, id)

	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, item.ErrNotFound
	}
	return it, err
}

// Save saves an item (insert or update)
func (r *itemRepository) Save(ctx context.Context, it *item.Item) error {
	if it.ID == 0 {
		return r.insert(ctx, it)
	}
	return r.update(ctx, it)
}

// Delete removes an item
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

func (r *itemRepository) Close() error {
	r.db.Close()
	return nil
}

func (r *itemRepository) insert(ctx context.Context, it *item.Item) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO items (name, title, description)
		VALUES ($1, $2, $3)
		RETURNING id`,
		it.Name, it.Title, it.Description).Scan(&it.ID)
}

func (r *itemRepository) update(ctx context.Context, it *item.Item) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items
		SET name = $1, title = $2, description = $3, updated_at = now()
		WHERE id = $4`,
		it.Name, it.Title, it.Description, it.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return item.ErrNotFound
	}
	return nil
}

// scanItem scans a single row into an item
func scanItem(row pgx.Row) (*item.Item, error) {
	var it item.Item
	if err := row.Scan(&it.ID, &it.Name, &it.Title, &it.Description); err != nil {
		return nil, err
	}
	return &it, nil
}
