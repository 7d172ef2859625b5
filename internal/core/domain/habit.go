package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrHabitDescTooLong = errors.New("habit description is too long (max 500 chars)")
	ErrUndoExpired      = errors.New("undo window has expired")
)

const (
	MaxNameLen = 100
	MaxDescLen = 500
)

type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"createdAt"`
	CompletedDates []DayKey  `json:"completedDates"`
}

func validate(name, description string) (string, string, error) {
	cleanName := strings.TrimSpace(name)
	if cleanName == "" {
		return "", "", ErrHabitNameEmpty
	}
	if utf8.RuneCountInString(cleanName) > MaxNameLen {
		return "", "", ErrHabitNameTooLong
	}

	cleanDesc := strings.TrimSpace(description)
	if utf8.RuneCountInString(cleanDesc) > MaxDescLen {
		return "", "", ErrHabitDescTooLong
	}

	return cleanName, cleanDesc, nil
}

func NewHabit(name, description, category string, now time.Time) (*Habit, error) {
	cleanName, cleanDesc, err := validate(name, description)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(category) == "" {
		category = string(DefaultCategory)
	}

	return &Habit{
		ID:             uuid.New().String(),
		Name:           cleanName,
		Description:    cleanDesc,
		Category:       category,
		CreatedAt:      now.UTC(),
		CompletedDates: []DayKey{},
	}, nil
}

// Edit changes the user-editable fields. ID, CreatedAt and the completion
// history are never touched.
func (h *Habit) Edit(name, description, category string) error {
	cleanName, cleanDesc, err := validate(name, description)
	if err != nil {
		return err
	}

	if strings.TrimSpace(category) == "" {
		category = h.Category
	}

	h.Name = cleanName
	h.Description = cleanDesc
	h.Category = category
	return nil
}

func (h *Habit) IsCompletedOn(day DayKey) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// Toggle marks day as done, or clears it when already done. It reports
// whether the day is completed afterwards.
func (h *Habit) Toggle(day DayKey) (bool, error) {
	if !day.Valid() {
		return false, ErrInvalidDayKey
	}

	if h.IsCompletedOn(day) {
		kept := make([]DayKey, 0, len(h.CompletedDates))
		for _, d := range h.CompletedDates {
			if d != day {
				kept = append(kept, d)
			}
		}
		h.CompletedDates = kept
		return false, nil
	}

	h.CompletedDates = append(h.CompletedDates, day)
	return true, nil
}

// NormalizeDates collapses duplicate keys, keeping first occurrences in order.
func (h *Habit) NormalizeDates() {
	seen := make(map[DayKey]struct{}, len(h.CompletedDates))
	unique := make([]DayKey, 0, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	h.CompletedDates = unique
}

func (h *Habit) Clone() *Habit {
	clone := *h
	clone.CompletedDates = make([]DayKey, len(h.CompletedDates))
	copy(clone.CompletedDates, h.CompletedDates)
	return &clone
}

func CloneHabits(habits []*Habit) []*Habit {
	out := make([]*Habit, 0, len(habits))
	for _, h := range habits {
		out = append(out, h.Clone())
	}
	return out
}
