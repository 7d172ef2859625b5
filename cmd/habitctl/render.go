package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

const barWidth = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle = lipgloss.NewStyle().Width(14)
)

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func bar(rate float64) string {
	filled := int(math.Round(rate / 100 * barWidth))
	filled = max(0, min(barWidth, filled))
	return doneStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
}

func renderList(w io.Writer, habits []*domain.Habit, today domain.DayKey) {
	if len(habits) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No habits yet. Add one with: habitctl add NAME"))
		return
	}

	for _, h := range habits {
		mark := "[ ]"
		if h.IsCompletedOn(today) {
			mark = doneStyle.Render("[x]")
		}
		streak := services.ComputeStreaks(h.CompletedDates).Current

		fmt.Fprintf(w, "%s %s %s  %s  %s\n",
			mark,
			mutedStyle.Render(shortID(h.ID)),
			titleStyle.Render(h.Name),
			mutedStyle.Render(domain.CategoryLabel(h.Category)),
			days(streak),
		)
	}
}

func renderStats(w io.Writer, s domain.StatsSnapshot) {
	fmt.Fprintln(w, titleStyle.Render("Habit Statistics"))
	fmt.Fprintln(w, "────────────────")
	fmt.Fprintf(w, "Today (%s): %d/%d completed (%.0f%%)\n", s.Today, s.CompletedToday, s.TotalHabits, s.CompletionRate)
	fmt.Fprintf(w, "Longest streak: %s\n", days(s.LongestStreak))

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Last 7 days"))
	for _, d := range s.Weekly {
		fmt.Fprintf(w, "%s %s  %s %3.0f%%\n", d.Weekday, d.Date, bar(d.Rate), d.Rate)
	}

	if len(s.Categories) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Categories"))
	for _, c := range s.Categories {
		fmt.Fprintf(w, "%s %d/%d  %s %3.0f%%\n", labelStyle.Render(c.Label), c.Completed, c.Total, bar(c.Rate), c.Rate)
	}
}
