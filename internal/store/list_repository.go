package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

// Categories returns all categories in insertion order.
func (s *Store) Categories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, icon FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// IsListNameUnique reports whether no list with the given name exists in the
// category. Used by the dialog's advisory live check.
func (s *Store) IsListNameUnique(ctx context.Context, categoryID int64, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM lists WHERE category_id = ? AND name = ?`,
		categoryID, name,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateList persists a list with its items and their tags in a single
// transaction and returns the created item IDs in step order. A duplicate
// name within the category fails on the UNIQUE constraint; nothing is
// written in that case.
func (s *Store) CreateList(ctx context.Context, categoryID int64, name, description string, items []model.StepItem) ([]int64, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("list name is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("a list needs at least one item")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO lists (category_id, name, description) VALUES (?, ?, ?)`,
		categoryID, name, description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert list: %w", err)
	}

	listID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	itemIDs := make([]int64, 0, len(items))
	for i, item := range items {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO list_items (list_id, position, label) VALUES (?, ?, ?)`,
			listID, i+1, item.Label,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert item %d: %w", i+1, err)
		}

		itemID, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}

		for pos, tag := range item.Tags {
			_, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO item_tags (item_id, position, tag) VALUES (?, ?, ?)`,
				itemID, pos+1, tag,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to insert tag %q: %w", tag, err)
			}
		}

		itemIDs = append(itemIDs, itemID)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return itemIDs, nil
}

// ItemTags returns the tags of a list item in their stored order.
func (s *Store) ItemTags(ctx context.Context, itemID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag FROM item_tags WHERE item_id = ? ORDER BY position`,
		itemID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
