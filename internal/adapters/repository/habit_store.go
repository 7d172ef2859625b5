package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var _ domain.HabitStore = (*SlotHabitStore)(nil)

// SlotHabitStore keeps the habit list in memory and persists it as a single
// serialized array in a Slot. Only a mutated list is ever written back, so
// unreadable stored data survives read-only sessions.
type SlotHabitStore struct {
	slot   domain.Slot
	logger *zap.Logger

	mu     sync.RWMutex
	habits []*domain.Habit
	dirty  bool
}

func NewSlotHabitStore(slot domain.Slot, logger *zap.Logger) *SlotHabitStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlotHabitStore{
		slot:   slot,
		logger: logger.Named("store"),
		habits: make([]*domain.Habit, 0),
	}
}

// Load replaces the in-memory list with the slot contents. Corrupted data
// loads as an empty collection; only slot I/O failures are returned.
func (s *SlotHabitStore) Load(ctx context.Context) error {
	data, err := s.slot.Read(ctx)
	if err != nil && !errors.Is(err, domain.ErrSlotEmpty) {
		return fmt.Errorf("failed to read %s slot: %w", s.slot.Name(), err)
	}

	habits := make([]*domain.Habit, 0)
	if err == nil {
		decoded, decErr := DecodeHabits(data)
		if decErr != nil {
			s.logger.Warn("persisted habits are unreadable, starting empty",
				zap.String("slot", s.slot.Name()),
				zap.Error(decErr),
			)
		} else {
			habits = decoded
		}
	}

	s.mu.Lock()
	s.habits = habits
	s.dirty = false
	s.mu.Unlock()

	s.logger.Info("habits loaded", zap.String("slot", s.slot.Name()), zap.Int("count", len(habits)))
	return nil
}

// Save writes the collection if it changed since the last Load or Save.
func (s *SlotHabitStore) Save(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	data, err := EncodeHabits(s.habits)
	if err == nil {
		s.dirty = false
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if err := s.slot.Write(ctx, data); err != nil {
		s.markDirty()
		return fmt.Errorf("failed to write %s slot: %w", s.slot.Name(), err)
	}
	return nil
}

// Dirty reports whether there are changes not yet written to the slot.
func (s *SlotHabitStore) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

func (s *SlotHabitStore) markDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

func (s *SlotHabitStore) Get() []*domain.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CloneHabits(s.habits)
}

func (s *SlotHabitStore) indexOf(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func (s *SlotHabitStore) Find(id string) (*domain.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrHabitNotFound
	}
	return s.habits[i].Clone(), nil
}

func (s *SlotHabitStore) Add(habit *domain.Habit) error {
	return s.Insert(math.MaxInt, habit)
}

func (s *SlotHabitStore) Replace(habit *domain.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(habit.ID)
	if i < 0 {
		return domain.ErrHabitNotFound
	}
	s.habits[i] = habit.Clone()
	s.dirty = true
	return nil
}

func (s *SlotHabitStore) Remove(id string) (*domain.Habit, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, -1, domain.ErrHabitNotFound
	}

	removed := s.habits[i]
	s.habits = append(s.habits[:i:i], s.habits[i+1:]...)
	s.dirty = true
	return removed, i, nil
}

func (s *SlotHabitStore) Insert(index int, habit *domain.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(habit.ID) >= 0 {
		return domain.ErrHabitExists
	}

	if index < 0 {
		index = 0
	}
	if index > len(s.habits) {
		index = len(s.habits)
	}

	clone := habit.Clone()
	s.habits = append(s.habits, nil)
	copy(s.habits[index+1:], s.habits[index:])
	s.habits[index] = clone
	s.dirty = true
	return nil
}
