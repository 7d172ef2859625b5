package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

func ptr[T any](v T) *T {
	return &v
}

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Enqueue() {
	m.Called()
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T, habits ...*domain.Habit) (*services.HabitService, *MockSaver, *manualClock) {
	t.Helper()
	saver := new(MockSaver)
	saver.On("Enqueue").Return()

	clk := &manualClock{now: time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)}
	svc := services.NewHabitService(
		newStore(t, habits...),
		saver,
		services.Clock{Now: clk.Now, Location: time.UTC},
		5*time.Second,
		zap.NewNop(),
	)
	return svc, saver, clk
}

func TestHabitService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Persists a valid habit", func(t *testing.T) {
		svc, saver, _ := newTestService(t)

		created, err := svc.Create(ctx, services.CreateHabitInput{Name: "Read Book", Category: "learning"})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Read Book", created.Name)
		assert.Empty(t, created.CompletedDates)

		stored, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, stored)
		saver.AssertNumberOfCalls(t, "Enqueue", 1)
	})

	t.Run("Fail: Validation error blocks persistence", func(t *testing.T) {
		svc, saver, _ := newTestService(t)

		_, err := svc.Create(ctx, services.CreateHabitInput{Name: "  "})

		assert.ErrorIs(t, err, domain.ErrHabitNameEmpty)
		assert.Empty(t, svc.List(ctx, services.ListFilter{}))
		saver.AssertNotCalled(t, "Enqueue")
	})
}

func TestHabitService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Partial edit keeps other fields", func(t *testing.T) {
		svc, saver, _ := newTestService(t, habit("h1", "health", "2024-01-01"))

		updated, err := svc.Update(ctx, services.UpdateHabitInput{ID: "h1", Name: ptr("Stretch")})

		require.NoError(t, err)
		assert.Equal(t, "Stretch", updated.Name)
		assert.Equal(t, "health", updated.Category)
		assert.Equal(t, []domain.DayKey{"2024-01-01"}, updated.CompletedDates)

		stored, _ := svc.Get(ctx, "h1")
		assert.Equal(t, "Stretch", stored.Name)
		saver.AssertNumberOfCalls(t, "Enqueue", 1)
	})

	t.Run("Success: Category change", func(t *testing.T) {
		svc, _, _ := newTestService(t, habit("h1", "health"))

		updated, err := svc.Update(ctx, services.UpdateHabitInput{ID: "h1", Category: ptr("fitness"), Description: ptr("legs")})
		require.NoError(t, err)
		assert.Equal(t, "fitness", updated.Category)
		assert.Equal(t, "legs", updated.Description)
	})

	t.Run("Fail: Not found", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.Update(ctx, services.UpdateHabitInput{ID: "ghost", Name: ptr("x")})
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Fail: Invalid name leaves stored habit untouched", func(t *testing.T) {
		svc, _, _ := newTestService(t, habit("h1", "health"))
		_, err := svc.Update(ctx, services.UpdateHabitInput{ID: "h1", Name: ptr("")})
		assert.ErrorIs(t, err, domain.ErrHabitNameEmpty)

		stored, _ := svc.Get(ctx, "h1")
		assert.Equal(t, "habit h1", stored.Name)
	})
}

func TestHabitService_Toggle(t *testing.T) {
	ctx := context.Background()
	svc, saver, _ := newTestService(t, habit("h1", "health", "2024-01-02"))

	h, done, err := svc.Toggle(ctx, "h1")
	require.NoError(t, err)
	assert.True(t, done)
	assert.ElementsMatch(t, []domain.DayKey{"2024-01-02", "2024-01-03"}, h.CompletedDates)

	h, done, err = svc.Toggle(ctx, "h1")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, []domain.DayKey{"2024-01-02"}, h.CompletedDates)

	stored, _ := svc.Get(ctx, "h1")
	assert.Equal(t, []domain.DayKey{"2024-01-02"}, stored.CompletedDates)
	saver.AssertNumberOfCalls(t, "Enqueue", 2)

	t.Run("Explicit day", func(t *testing.T) {
		_, done, err := svc.ToggleDay(ctx, "h1", "2023-12-31")
		require.NoError(t, err)
		assert.True(t, done)
	})

	t.Run("Fail: invalid day", func(t *testing.T) {
		_, _, err := svc.ToggleDay(ctx, "h1", "31/12/2023")
		assert.ErrorIs(t, err, domain.ErrInvalidDayKey)
	})

	t.Run("Fail: unknown habit", func(t *testing.T) {
		_, _, err := svc.Toggle(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestHabitService_DeleteAndUndo(t *testing.T) {
	ctx := context.Background()

	t.Run("Undo within window restores the exact habit at its position", func(t *testing.T) {
		svc, saver, clk := newTestService(t,
			habit("h1", "health"),
			habit("h2", "fitness", "2024-01-01", "2024-01-02"),
			habit("h3", "learning"),
		)
		original, _ := svc.Get(ctx, "h2")

		deleted, err := svc.Delete(ctx, "h2")
		require.NoError(t, err)
		assert.Equal(t, original, deleted)
		_, err = svc.Get(ctx, "h2")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		clk.Advance(4 * time.Second)

		restored, err := svc.Undo(ctx, "h2")
		require.NoError(t, err)
		assert.Equal(t, original, restored)

		list := svc.List(ctx, services.ListFilter{})
		require.Len(t, list, 3)
		assert.Equal(t, "h2", list[1].ID)
		assert.Equal(t, original, list[1])
		saver.AssertNumberOfCalls(t, "Enqueue", 2)
	})

	t.Run("Undo after window fails", func(t *testing.T) {
		svc, _, clk := newTestService(t, habit("h1", "health"))

		_, err := svc.Delete(ctx, "h1")
		require.NoError(t, err)

		clk.Advance(6 * time.Second)

		_, err = svc.Undo(ctx, "h1")
		assert.ErrorIs(t, err, domain.ErrUndoExpired)
		assert.Empty(t, svc.List(ctx, services.ListFilter{}))
	})

	t.Run("Undo twice fails the second time", func(t *testing.T) {
		svc, _, _ := newTestService(t, habit("h1", "health"))

		_, err := svc.Delete(ctx, "h1")
		require.NoError(t, err)
		_, err = svc.Undo(ctx, "h1")
		require.NoError(t, err)

		_, err = svc.Undo(ctx, "h1")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Delete unknown habit", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		_, err := svc.Delete(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Undo without delete", func(t *testing.T) {
		svc, _, _ := newTestService(t, habit("h1", "health"))
		_, err := svc.Undo(ctx, "h1")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestHabitService_List(t *testing.T) {
	ctx := context.Background()

	h1 := habit("h1", "health")
	h1.Name = "Drink Water"
	h2 := habit("h2", "learning")
	h2.Name = "Read"
	h2.Description = "Twenty pages of a BOOK"
	h3 := habit("h3", "health")
	h3.Name = "Sleep early"

	svc, _, _ := newTestService(t, h1, h2, h3)

	tests := []struct {
		name    string
		filter  services.ListFilter
		wantIDs []string
	}{
		{name: "No filter keeps order", filter: services.ListFilter{}, wantIDs: []string{"h1", "h2", "h3"}},
		{name: "Search name case-insensitive", filter: services.ListFilter{Search: "WATER"}, wantIDs: []string{"h1"}},
		{name: "Search description", filter: services.ListFilter{Search: "book"}, wantIDs: []string{"h2"}},
		{name: "Category", filter: services.ListFilter{Category: "health"}, wantIDs: []string{"h1", "h3"}},
		{name: "Search and category", filter: services.ListFilter{Search: "sleep", Category: "health"}, wantIDs: []string{"h3"}},
		{name: "No match", filter: services.ListFilter{Search: "zzz"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, h := range svc.List(ctx, tt.filter) {
				ids = append(ids, h.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
