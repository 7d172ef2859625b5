package domain

import (
	"context"
	"errors"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrHabitExists   = errors.New("habit id already exists")
	ErrSlotEmpty     = errors.New("storage slot is empty")
)

// Slot is a single-writer key/value persistence slot holding the serialized
// habit collection under one well-known key.
type Slot interface {
	// Read returns the last written payload, or ErrSlotEmpty if nothing was written yet.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the payload.
	Write(ctx context.Context, data []byte) error

	// Name identifies the backend in logs and health checks.
	Name() string
}

// HabitStore owns the authoritative habit list. Snapshots returned by Get are
// deep copies; callers never observe later mutations.
type HabitStore interface {
	Load(ctx context.Context) error
	Save(ctx context.Context) error
	Get() []*Habit

	Find(id string) (*Habit, error)
	Add(habit *Habit) error
	Replace(habit *Habit) error

	// Remove deletes the habit and returns it together with its former position.
	Remove(id string) (*Habit, int, error)

	// Insert puts a habit back at index, clamped to the collection bounds.
	Insert(index int, habit *Habit) error
}
