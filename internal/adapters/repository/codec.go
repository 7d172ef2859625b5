package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var ErrMalformedData = errors.New("malformed habit data")

// persistedHabit mirrors domain.Habit with pointer fields so that missing
// keys can be told apart from zero values.
type persistedHabit struct {
	ID             *string          `json:"id"`
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	CreatedAt      *time.Time       `json:"createdAt"`
	CompletedDates *[]domain.DayKey `json:"completedDates"`
}

func EncodeHabits(habits []*domain.Habit) ([]byte, error) {
	out := make([]*domain.Habit, 0, len(habits))
	for _, h := range habits {
		c := h.Clone()
		if c.CompletedDates == nil {
			c.CompletedDates = []domain.DayKey{}
		}
		out = append(out, c)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal habits: %w", err)
	}
	return data, nil
}

// DecodeHabits parses a serialized collection. Any structural problem fails
// the whole payload; callers decide how to recover.
func DecodeHabits(data []byte) ([]*domain.Habit, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: payload is not an array", ErrMalformedData)
	}

	var records []persistedHabit
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	habits := make([]*domain.Habit, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, r := range records {
		if r.ID == nil || r.Name == nil || r.Category == nil || r.CreatedAt == nil || r.CompletedDates == nil {
			return nil, fmt.Errorf("%w: record %d is missing required fields", ErrMalformedData, i)
		}
		if _, dup := seen[*r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrMalformedData, *r.ID)
		}
		seen[*r.ID] = struct{}{}

		h := &domain.Habit{
			ID:             *r.ID,
			Name:           *r.Name,
			Category:       *r.Category,
			CreatedAt:      *r.CreatedAt,
			CompletedDates: *r.CompletedDates,
		}
		if r.Description != nil {
			h.Description = *r.Description
		}
		h.NormalizeDates()

		habits = append(habits, h)
	}

	return habits, nil
}
