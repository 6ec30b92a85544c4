package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wilyamx/thinkittwice/pkg/utils"
)

func TestLocalDate(t *testing.T) {
	t.Parallel()

	// 22:00 UTC is already the next day at +8 and still the previous
	// day at -5 once shifted below midnight.
	instant := time.Date(2026, 8, 31, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset int
		want   time.Time
	}{
		{name: "utc", offset: 0, want: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{name: "plus eight", offset: 8, want: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{name: "minus five", offset: -5, want: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{name: "minus twenty three", offset: -23, want: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, utils.LocalDate(instant, tt.offset))
		})
	}
}

func TestDateComparisons(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 9, 2, 1, 0, 0, 0, time.UTC)

	assert.False(t, utils.DateBefore(morning, evening), "same calendar date never compares before")
	assert.False(t, utils.DateAfter(evening, morning))
	assert.True(t, utils.DateBefore(evening, tomorrow))
	assert.True(t, utils.DateAfter(tomorrow, morning))
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 66.67, utils.Round2(66.666666), 0.0001)
	assert.InDelta(t, 0.0, utils.Round2(0.001), 0.0001)
	assert.InDelta(t, 100.0, utils.Round2(99.999), 0.0001)
}
