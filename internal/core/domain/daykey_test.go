package domain_test

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid key", input: "2024-01-03"},
		{name: "Leap day", input: "2024-02-29"},
		{name: "Not a leap year", input: "2023-02-29", wantErr: true},
		{name: "Month out of range", input: "2024-13-01", wantErr: true},
		{name: "Missing zero padding", input: "2024-1-3", wantErr: true},
		{name: "Timestamp instead of key", input: "2024-01-03T10:00:00Z", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := domain.ParseDayKey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidDayKey)
				assert.False(t, domain.DayKey(tt.input).Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.DayKey(tt.input), key)
			assert.True(t, key.Valid())
		})
	}
}

func TestDayKey_Offset(t *testing.T) {
	tests := []struct {
		name  string
		key   domain.DayKey
		delta int
		want  domain.DayKey
	}{
		{name: "Same day", key: "2024-01-03", delta: 0, want: "2024-01-03"},
		{name: "Previous day", key: "2024-01-03", delta: -1, want: "2024-01-02"},
		{name: "Month rollover backwards", key: "2024-03-01", delta: -1, want: "2024-02-29"},
		{name: "Year rollover backwards", key: "2024-01-01", delta: -1, want: "2023-12-31"},
		{name: "Year rollover forwards", key: "2023-12-31", delta: 1, want: "2024-01-01"},
		{name: "Non leap February", key: "2023-02-28", delta: 1, want: "2023-03-01"},
		{name: "Long jump", key: "2024-01-01", delta: 366, want: "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.key.Offset(tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Invalid key returns error", func(t *testing.T) {
		_, err := domain.DayKey("garbage").Offset(1)
		assert.ErrorIs(t, err, domain.ErrInvalidDayKey)
	})
}

func TestDayKey_OffsetRoundTrip(t *testing.T) {
	start := domain.DayKey("2023-11-15")
	for n := 0; n <= 800; n += 7 {
		back, err := start.Offset(-n)
		require.NoError(t, err)
		again, err := back.Offset(n)
		require.NoError(t, err)
		assert.Equal(t, start, again, "round trip failed for n=%d", n)
	}
}

func TestTodayKey(t *testing.T) {
	instant := time.Date(2024, 1, 3, 23, 30, 0, 0, time.UTC)

	t.Run("Uses the given location, not UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		assert.Equal(t, domain.DayKey("2024-01-04"), domain.TodayKey(instant, tokyo))
	})

	t.Run("UTC location", func(t *testing.T) {
		assert.Equal(t, domain.DayKey("2024-01-03"), domain.TodayKey(instant, time.UTC))
	})

	t.Run("Negative offset zone", func(t *testing.T) {
		early := time.Date(2024, 1, 3, 2, 0, 0, 0, time.UTC)
		ny := time.FixedZone("EST", -5*60*60)
		assert.Equal(t, domain.DayKey("2024-01-02"), domain.TodayKey(early, ny))
	})
}

func TestDayKey_Weekday(t *testing.T) {
	assert.Equal(t, "Wed", domain.DayKey("2024-01-03").Weekday())
	assert.Equal(t, "", domain.DayKey("nope").Weekday())
}
