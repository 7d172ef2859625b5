package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

const DefaultUndoWindow = 5 * time.Second

// SaveScheduler persists the store at some point after a change.
type SaveScheduler interface {
	Enqueue()
}

type tombstone struct {
	habit     *domain.Habit
	index     int
	expiresAt time.Time
}

type HabitService struct {
	store      domain.HabitStore
	saver      SaveScheduler
	clock      Clock
	undoWindow time.Duration
	logger     *zap.Logger

	mu         sync.Mutex
	tombstones map[string]tombstone
}

func NewHabitService(store domain.HabitStore, saver SaveScheduler, clock Clock, undoWindow time.Duration, logger *zap.Logger) *HabitService {
	if undoWindow <= 0 {
		undoWindow = DefaultUndoWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HabitService{
		store:      store,
		saver:      saver,
		clock:      clock,
		undoWindow: undoWindow,
		logger:     logger.Named("habits"),
		tombstones: make(map[string]tombstone),
	}
}

type CreateHabitInput struct {
	Name        string
	Description string
	Category    string
}

// UpdateHabitInput carries a partial edit; nil fields keep their value.
type UpdateHabitInput struct {
	ID          string
	Name        *string
	Description *string
	Category    *string
}

type ListFilter struct {
	Search   string
	Category string
}

func mergeString(newVal *string, oldVal string) string {
	if newVal == nil {
		return oldVal
	}
	return *newVal
}

func (s *HabitService) changed() {
	if s.saver != nil {
		s.saver.Enqueue()
	}
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Name, input.Description, input.Category, s.clock.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Add(habit.Clone()); err != nil {
		return nil, err
	}
	s.changed()

	s.logger.Info("habit added", zap.String("id", habit.ID), zap.String("name", habit.Name))
	return habit, nil
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	return s.store.Find(id)
}

func (s *HabitService) List(ctx context.Context, filter ListFilter) []*domain.Habit {
	habits := s.store.Get()

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	if term == "" && filter.Category == "" {
		return habits
	}

	out := make([]*domain.Habit, 0, len(habits))
	for _, h := range habits {
		if term != "" &&
			!strings.Contains(strings.ToLower(h.Name), term) &&
			!strings.Contains(strings.ToLower(h.Description), term) {
			continue
		}
		if filter.Category != "" && h.Category != filter.Category {
			continue
		}
		out = append(out, h)
	}
	return out
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, err := s.store.Find(input.ID)
	if err != nil {
		return nil, err
	}

	err = habit.Edit(
		mergeString(input.Name, habit.Name),
		mergeString(input.Description, habit.Description),
		mergeString(input.Category, habit.Category),
	)
	if err != nil {
		return nil, err
	}

	if err := s.store.Replace(habit); err != nil {
		return nil, err
	}
	s.changed()

	s.logger.Info("habit updated", zap.String("id", habit.ID))
	return habit, nil
}

// Toggle flips today's completion for the habit.
func (s *HabitService) Toggle(ctx context.Context, id string) (*domain.Habit, bool, error) {
	return s.ToggleDay(ctx, id, s.clock.Today())
}

func (s *HabitService) ToggleDay(ctx context.Context, id string, day domain.DayKey) (*domain.Habit, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, err := s.store.Find(id)
	if err != nil {
		return nil, false, err
	}

	done, err := habit.Toggle(day)
	if err != nil {
		return nil, false, err
	}

	if err := s.store.Replace(habit); err != nil {
		return nil, false, err
	}
	s.changed()

	s.logger.Debug("habit toggled",
		zap.String("id", id),
		zap.String("day", day.String()),
		zap.Bool("completed", done),
	)
	return habit, done, nil
}

// Delete removes the habit and keeps it restorable for the undo window.
func (s *HabitService) Delete(ctx context.Context, id string) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, index, err := s.store.Remove(id)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	s.pruneLocked(now)
	s.tombstones[id] = tombstone{
		habit:     habit.Clone(),
		index:     index,
		expiresAt: now.Add(s.undoWindow),
	}
	s.changed()

	s.logger.Info("habit deleted", zap.String("id", id), zap.Duration("undo_window", s.undoWindow))
	return habit, nil
}

// Undo restores a deleted habit, with its full completion history, at its
// previous position.
func (s *HabitService) Undo(ctx context.Context, id string) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.tombstones[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	delete(s.tombstones, id)

	if s.clock.now().After(ts.expiresAt) {
		return nil, domain.ErrUndoExpired
	}

	if err := s.store.Insert(ts.index, ts.habit.Clone()); err != nil {
		return nil, err
	}
	s.changed()

	s.logger.Info("habit restored", zap.String("id", id))
	return ts.habit, nil
}

func (s *HabitService) pruneLocked(now time.Time) {
	for id, ts := range s.tombstones {
		if now.After(ts.expiresAt) {
			delete(s.tombstones, id)
		}
	}
}
