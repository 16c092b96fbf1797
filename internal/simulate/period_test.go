package simulate

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("should partition all 24 hours with no gaps or overlaps", func(t *testing.T) {
		counts := map[Period]int{}
		for h := 0; h < 24; h++ {
			counts[Classify(h)]++
		}
		total := 0
		for _, n := range counts {
			total += n
		}
		assert.Equal(t, 24, total)
		assert.Len(t, counts, 4, "every period should own at least one hour")
	})

	t.Run("should assign the fixed windows", func(t *testing.T) {
		expected := map[Period][]int{
			RushHour:  {7, 8, 11, 12, 16, 17},
			Business:  {9, 10, 13, 14, 15},
			Evening:   {18, 19, 20, 21},
			Overnight: {0, 1, 2, 3, 4, 5, 6, 22, 23},
		}
		for period, hours := range expected {
			assert.Equal(t, hours, HoursFor(period), "hours for %s", period)
		}
	})
}

func TestClockTimestamp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	clock := NewClock(rng)
	format := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}$`)
	baseDay := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)

	t.Run("should format as HH:MM:SS.mmm and stay within the base day", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			ts, text := clock.Timestamp(baseDay)
			require.Regexp(t, format, text)
			assert.Equal(t, FormatTimestamp(ts), text)
			assert.Equal(t, baseDay.Year(), ts.Year())
			assert.Equal(t, baseDay.Month(), ts.Month())
			assert.Equal(t, baseDay.Day(), ts.Day())
		}
	})

	t.Run("should favor rush hour under the period weights", func(t *testing.T) {
		counts := map[Period]int{}
		for i := 0; i < 5000; i++ {
			ts, _ := clock.Timestamp(baseDay)
			counts[Classify(ts.Hour())]++
		}
		assert.Greater(t, counts[RushHour], counts[Business])
		assert.Greater(t, counts[Business], counts[Overnight])
	})

	t.Run("should use the current day when no base day is given", func(t *testing.T) {
		ts, _ := clock.Timestamp(time.Time{})
		now := time.Now().UTC()
		assert.Equal(t, now.Year(), ts.Year())
		assert.Equal(t, now.YearDay(), ts.YearDay())
	})
}
