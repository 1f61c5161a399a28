package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/widgetsidebar/widget-sidebar/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	db, err := InitDB(ctx, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return New(db)
}

func TestInitDB_SeedsDefaultCategories(t *testing.T) {
	s := newTestStore(t)

	categories, err := s.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	require.Equal(t, "General", categories[0].Name)
	require.NotZero(t, categories[0].ID)
}

func TestCreateList_ReturnsItemIDsInOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	categories, err := s.Categories(ctx)
	require.NoError(t, err)
	catID := categories[0].ID

	items := []model.StepItem{
		{Label: "Build", Tags: []string{"lista", "Nightly", "git"}},
		{Label: "Ship", Tags: []string{"lista", "Nightly", "git"}},
	}

	ids, err := s.CreateList(ctx, catID, "Nightly", "nightly deploy", items)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.Less(t, ids[0], ids[1], "item IDs should follow step order")

	tags, err := s.ItemTags(ctx, ids[0])
	require.NoError(t, err)
	require.Equal(t, []string{"lista", "Nightly", "git"}, tags)
}

func TestCreateList_DuplicateNameInCategoryFails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	categories, err := s.Categories(ctx)
	require.NoError(t, err)
	first, second := categories[0].ID, categories[1].ID

	items := []model.StepItem{{Label: "Build", Tags: []string{"lista"}}}

	_, err = s.CreateList(ctx, first, "Nightly", "", items)
	require.NoError(t, err)

	_, err = s.CreateList(ctx, first, "Nightly", "", items)
	require.Error(t, err, "duplicate name within a category must fail")

	// Same name in a different category is fine.
	_, err = s.CreateList(ctx, second, "Nightly", "", items)
	require.NoError(t, err)
}

func TestCreateList_RejectsEmptyInput(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateList(ctx, 1, "  ", "", []model.StepItem{{Label: "x"}})
	require.Error(t, err)

	_, err = s.CreateList(ctx, 1, "Nightly", "", nil)
	require.Error(t, err)
}

func TestIsListNameUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	categories, err := s.Categories(ctx)
	require.NoError(t, err)
	catID := categories[0].ID

	unique, err := s.IsListNameUnique(ctx, catID, "Nightly")
	require.NoError(t, err)
	require.True(t, unique)

	_, err = s.CreateList(ctx, catID, "Nightly", "", []model.StepItem{{Label: "Build"}})
	require.NoError(t, err)

	unique, err = s.IsListNameUnique(ctx, catID, "Nightly")
	require.NoError(t, err)
	require.False(t, unique)
}

func TestSpeedDialLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddSpeedDial(ctx, model.SpeedDial{
		Title:           "Google",
		URL:             "https://google.com",
		Icon:            "🔍",
		BackgroundColor: "#16213e",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	id2, err := s.AddSpeedDial(ctx, model.SpeedDial{
		Title:           "GitHub",
		URL:             "https://github.com",
		Icon:            "🐙",
		BackgroundColor: "#0f3460",
	})
	require.NoError(t, err)
	require.NotEqual(t, id, id2)

	dials, err := s.GetAllSpeedDials(ctx)
	require.NoError(t, err)
	require.Len(t, dials, 2)
	require.Equal(t, "Google", dials[0].Title, "dials should come back in insertion order")

	err = s.UpdateSpeedDial(ctx, model.SpeedDial{
		ID:              id,
		Title:           "Google Search",
		URL:             "https://www.google.com",
		Icon:            "🔍",
		BackgroundColor: "#000000",
	})
	require.NoError(t, err)

	dials, err = s.GetAllSpeedDials(ctx)
	require.NoError(t, err)
	require.Equal(t, "Google Search", dials[0].Title)
	require.Equal(t, "#000000", dials[0].BackgroundColor)

	err = s.UpdateSpeedDial(ctx, model.SpeedDial{ID: "missing", Title: "x", URL: "https://x.com"})
	require.Error(t, err, "updating an unknown id must fail")

	require.NoError(t, s.DeleteSpeedDial(ctx, id))
	dials, err = s.GetAllSpeedDials(ctx)
	require.NoError(t, err)
	require.Len(t, dials, 1)
	require.Equal(t, "GitHub", dials[0].Title)
}
