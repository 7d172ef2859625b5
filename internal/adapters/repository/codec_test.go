package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

func sampleHabits() []*domain.Habit {
	created := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	return []*domain.Habit{
		{
			ID:             "a",
			Name:           "Drink water",
			Description:    "2 liters",
			Category:       "health",
			CreatedAt:      created,
			CompletedDates: []domain.DayKey{"2024-01-01", "2024-01-02"},
		},
		{
			ID:             "b",
			Name:           "Read",
			Category:       "reading",
			CreatedAt:      created,
			CompletedDates: []domain.DayKey{},
		},
	}
}

func TestEncodeHabits_FieldNames(t *testing.T) {
	data, err := EncodeHabits(sampleHabits()[1:])
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": "b",
		"name": "Read",
		"description": "",
		"category": "reading",
		"createdAt": "2024-01-01T10:30:00Z",
		"completedDates": []
	}]`, string(data))
}

func TestEncodeHabits_NilDatesBecomeEmptyArray(t *testing.T) {
	data, err := EncodeHabits([]*domain.Habit{{ID: "x", Name: "x", Category: "other"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"completedDates":[]`)

	empty, err := EncodeHabits(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestCodec_RoundTrip(t *testing.T) {
	in := sampleHabits()

	data, err := EncodeHabits(in)
	require.NoError(t, err)

	out, err := DecodeHabits(data)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Name, out[i].Name)
		assert.Equal(t, in[i].Description, out[i].Description)
		assert.Equal(t, in[i].Category, out[i].Category)
		assert.True(t, in[i].CreatedAt.Equal(out[i].CreatedAt))
		assert.Equal(t, in[i].CompletedDates, out[i].CompletedDates)
	}

	again, err := EncodeHabits(out)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestDecodeHabits_Normalizes(t *testing.T) {
	payload := `[{"id":"a","name":"n","category":"health","createdAt":"2024-01-01T00:00:00Z",
		"completedDates":["2024-01-01","2024-01-01","broken","2024-01-02"]}]`

	out, err := DecodeHabits([]byte(payload))
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "", out[0].Description, "description is optional")
	assert.Equal(t, []domain.DayKey{"2024-01-01", "broken", "2024-01-02"}, out[0].CompletedDates)
}

func TestDecodeHabits_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "Empty payload", payload: ""},
		{name: "Object instead of array", payload: `{"id":"a"}`},
		{name: "Null", payload: `null`},
		{name: "Broken JSON", payload: `[{"id":`},
		{name: "Wrong field type", payload: `[{"id":1,"name":"n","category":"c","createdAt":"2024-01-01T00:00:00Z","completedDates":[]}]`},
		{name: "Missing id", payload: `[{"name":"n","category":"c","createdAt":"2024-01-01T00:00:00Z","completedDates":[]}]`},
		{name: "Missing completedDates", payload: `[{"id":"a","name":"n","category":"c","createdAt":"2024-01-01T00:00:00Z"}]`},
		{name: "Null completedDates", payload: `[{"id":"a","name":"n","category":"c","createdAt":"2024-01-01T00:00:00Z","completedDates":null}]`},
		{name: "Missing createdAt", payload: `[{"id":"a","name":"n","category":"c","completedDates":[]}]`},
		{name: "Duplicate ids", payload: `[
			{"id":"a","name":"n","category":"c","createdAt":"2024-01-01T00:00:00Z","completedDates":[]},
			{"id":"a","name":"m","category":"c","createdAt":"2024-01-01T00:00:00Z","completedDates":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := DecodeHabits([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrMalformedData)
			assert.Nil(t, out)
		})
	}
}
