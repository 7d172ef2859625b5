package domain

type Streaks struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

type DayStat struct {
	Date      DayKey  `json:"date"`
	Weekday   string  `json:"day"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

type CategoryStat struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Icon      string  `json:"icon"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

// StatsSnapshot is derived on every query and never persisted.
type StatsSnapshot struct {
	Today          DayKey         `json:"today"`
	TotalHabits    int            `json:"total_habits"`
	CompletedToday int            `json:"completed_today"`
	CompletionRate float64        `json:"completion_rate"`
	Weekly         []DayStat      `json:"weekly"`
	Categories     []CategoryStat `json:"categories"`
	LongestStreak  int            `json:"longest_streak"`
}
