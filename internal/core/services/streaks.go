package services

import (
	"sort"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

// ComputeStreaks returns the run ending at the most recent completion and the
// longest run ever seen. The current streak is anchored at the last completed
// day, not at today: a habit last done five days ago still reports the run
// that ended then. Unparsable keys are ignored. Both figures come from one
// ascending pass over the distinct keys, so the work is bounded by the input
// and never walks the calendar.
func ComputeStreaks(days []domain.DayKey) domain.Streaks {
	present := make(map[domain.DayKey]struct{}, len(days))
	sorted := make([]domain.DayKey, 0, len(days))

	for _, d := range days {
		if !d.Valid() {
			continue
		}
		if _, dup := present[d]; dup {
			continue
		}
		present[d] = struct{}{}
		sorted = append(sorted, d)
	}

	if len(sorted) == 0 {
		return domain.Streaks{}
	}

	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	longest := 1
	run := 1
	for i := 1; i < len(sorted); i++ {
		next, _ := sorted[i-1].Offset(1)
		if sorted[i] == next {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// run now holds the streak ending at the most recent key.
	return domain.Streaks{Current: run, Longest: longest}
}
