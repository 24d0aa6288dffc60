package repository

import (
	"context"
	"database/sql"
	"fmt"

	"lostfound-backend/models"
)

// ItemStore defines the item-store queries the match notifier needs.
type ItemStore interface {
	FoundItemByID(ctx context.Context, id string) (*models.FoundItem, error)
	ActiveLostByCategory(ctx context.Context, category, excludeOwner string) ([]models.LostItem, error)
}

// itemStore implements ItemStore
type itemStore struct {
	db *sql.DB
}

// NewItemStore creates a new item store backed by PostgreSQL.
func NewItemStore(db *sql.DB) ItemStore {
	return &itemStore{db: db}
}

// FoundItemByID retrieves a single found item. Returns models.ErrItemNotFound
// when no row matches.
func (r *itemStore) FoundItemByID(ctx context.Context, id string) (*models.FoundItem, error) {
	query := `
		SELECT id, title, category, COALESCE(description, ''), COALESCE(location, ''), user_id
		FROM items WHERE id = $1 AND type = 'found'
	`

	item := &models.FoundItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Category,
		&item.Description, &item.Location, &item.ReporterID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrItemNotFound
		}
		return nil, fmt.Errorf("error getting found item: %w", err)
	}

	return item, nil
}

// ActiveLostByCategory retrieves active lost items in a category, excluding
// rows owned by excludeOwner so the finder never notifies themselves.
func (r *itemStore) ActiveLostByCategory(ctx context.Context, category, excludeOwner string) ([]models.LostItem, error) {
	query := `
		SELECT id, title, user_id, COALESCE(contact_info, '')
		FROM items
		WHERE type = 'lost' AND status = 'active' AND category = $1 AND user_id <> $2
	`

	rows, err := r.db.QueryContext(ctx, query, category, excludeOwner)
	if err != nil {
		return nil, fmt.Errorf("error querying lost items: %w", err)
	}
	defer rows.Close()

	var items []models.LostItem
	for rows.Next() {
		var item models.LostItem
		if err := rows.Scan(&item.ID, &item.Title, &item.OwnerID, &item.ContactInfo); err != nil {
			return nil, fmt.Errorf("error scanning lost item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading lost items: %w", err)
	}

	return items, nil
}
