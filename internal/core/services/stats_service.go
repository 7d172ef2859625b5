package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

const WeekLength = 7

// Clock decides what "today" is. Location nil means the process-local zone.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func SystemClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Clock) Today() domain.DayKey {
	return domain.TodayKey(c.now(), c.Location)
}

type StatsService struct {
	store domain.HabitStore
	clock Clock
}

func NewStatsService(store domain.HabitStore, clock Clock) *StatsService {
	return &StatsService{
		store: store,
		clock: clock,
	}
}

func (s *StatsService) Today() domain.DayKey {
	return s.clock.Today()
}

// Snapshot computes statistics for the store's current habits as of today.
func (s *StatsService) Snapshot(ctx context.Context) domain.StatsSnapshot {
	return ComputeStats(s.store.Get(), s.Today())
}

// SnapshotAt computes statistics with an explicit reference day.
func (s *StatsService) SnapshotAt(ctx context.Context, today domain.DayKey) domain.StatsSnapshot {
	return ComputeStats(s.store.Get(), today)
}

func (s *StatsService) HabitStreaks(ctx context.Context, id string) (domain.Streaks, error) {
	habit, err := s.store.Find(id)
	if err != nil {
		return domain.Streaks{}, err
	}
	return ComputeStreaks(habit.CompletedDates), nil
}

func rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// ComputeStats is a pure function of the habits and the reference day.
func ComputeStats(habits []*domain.Habit, today domain.DayKey) domain.StatsSnapshot {
	stats := domain.StatsSnapshot{
		Today:       today,
		TotalHabits: len(habits),
		Weekly:      make([]domain.DayStat, 0, WeekLength),
		Categories:  make([]domain.CategoryStat, 0),
	}

	completedOn := func(day domain.DayKey) int {
		if !day.Valid() {
			return 0
		}
		n := 0
		for _, h := range habits {
			if h.IsCompletedOn(day) {
				n++
			}
		}
		return n
	}

	stats.CompletedToday = completedOn(today)
	stats.CompletionRate = rate(stats.CompletedToday, stats.TotalHabits)

	for i := WeekLength - 1; i >= 0; i-- {
		day, err := today.Offset(-i)
		if err != nil {
			day = ""
		}
		completed := completedOn(day)
		stats.Weekly = append(stats.Weekly, domain.DayStat{
			Date:      day,
			Weekday:   day.Weekday(),
			Completed: completed,
			Total:     len(habits),
			Rate:      rate(completed, len(habits)),
		})
	}

	index := make(map[string]int)
	for _, h := range habits {
		i, ok := index[h.Category]
		if !ok {
			i = len(stats.Categories)
			index[h.Category] = i
			stats.Categories = append(stats.Categories, domain.CategoryStat{
				Name:  h.Category,
				Label: domain.CategoryLabel(h.Category),
				Icon:  domain.Category(h.Category).Icon(),
			})
		}

		cs := &stats.Categories[i]
		cs.Total++
		if today.Valid() && h.IsCompletedOn(today) {
			cs.Completed++
		}
	}
	for i := range stats.Categories {
		stats.Categories[i].Rate = rate(stats.Categories[i].Completed, stats.Categories[i].Total)
	}

	for _, h := range habits {
		if s := ComputeStreaks(h.CompletedDates); s.Longest > stats.LongestStreak {
			stats.LongestStreak = s.Longest
		}
	}

	return stats
}
