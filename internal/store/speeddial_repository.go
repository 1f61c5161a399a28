package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

// AddSpeedDial inserts a new speed dial at the end of the grid and returns
// its assigned ID.
func (s *Store) AddSpeedDial(ctx context.Context, d model.SpeedDial) (string, error) {
	id := uuid.NewString()

	var maxPos int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) FROM speed_dials`,
	).Scan(&maxPos)
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO speed_dials (id, title, url, icon, background_color, position)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, d.Title, d.URL, d.Icon, d.BackgroundColor, maxPos+1,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert speed dial: %w", err)
	}
	return id, nil
}

// UpdateSpeedDial rewrites an existing record by ID. Unknown IDs fail.
func (s *Store) UpdateSpeedDial(ctx context.Context, d model.SpeedDial) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE speed_dials SET title = ?, url = ?, icon = ?, background_color = ? WHERE id = ?`,
		d.Title, d.URL, d.Icon, d.BackgroundColor, d.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("speed dial not found: %s", d.ID)
	}
	return nil
}

// GetAllSpeedDials returns all speed dials in grid order.
func (s *Store) GetAllSpeedDials(ctx context.Context) ([]model.SpeedDial, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, url, icon, background_color FROM speed_dials ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dials []model.SpeedDial
	for rows.Next() {
		var d model.SpeedDial
		if err := rows.Scan(&d.ID, &d.Title, &d.URL, &d.Icon, &d.BackgroundColor); err != nil {
			return nil, err
		}
		dials = append(dials, d)
	}
	return dials, rows.Err()
}

// DeleteSpeedDial removes a record by ID. Deleting an unknown ID is not an
// error.
func (s *Store) DeleteSpeedDial(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM speed_dials WHERE id = ?`, id)
	return err
}
