package listcreator

import (
	"context"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

// ListCreator persists a finished step list and returns the IDs of the
// created items, in step order.
type ListCreator interface {
	CreateList(ctx context.Context, categoryID int64, name, description string, items []model.StepItem) ([]int64, error)
}

// NameChecker answers the advisory live uniqueness check while the user is
// typing the list name. It never gates submission; the create call is the
// authoritative check.
type NameChecker interface {
	IsListNameUnique(ctx context.Context, categoryID int64, name string) (bool, error)
}
