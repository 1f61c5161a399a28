package store

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS lists (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
			UNIQUE (category_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS list_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			list_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			FOREIGN KEY (list_id) REFERENCES lists(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS item_tags (
			item_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (item_id, tag),
			FOREIGN KEY (item_id) REFERENCES list_items(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS speed_dials (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			icon TEXT NOT NULL,
			background_color TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_list_items_list
			ON list_items(list_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return seedDefaultCategories(ctx, db)
}

// seedDefaultCategories inserts default categories if the table is empty
func seedDefaultCategories(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultCategories := []struct {
		name string
		icon string
	}{
		{"General", "📁"},
		{"Development", "💻"},
		{"Productivity", "⚡"},
	}

	for _, cat := range defaultCategories {
		_, err := db.ExecContext(ctx,
			"INSERT INTO categories (name, icon) VALUES (?, ?)",
			cat.name, cat.icon,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
