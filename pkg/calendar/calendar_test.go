package calendar

import (
	"Meal-Planner/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekBounds(t *testing.T) {
	// 2024-05-15 is a Wednesday
	monday, sunday := WeekBounds(time.Date(2024, 5, 15, 21, 30, 0, 0, time.UTC))
	assert.Equal(t, day("2024-05-13"), monday)
	assert.Equal(t, day("2024-05-19"), sunday)

	monday, sunday = WeekBounds(day("2024-05-19"))
	assert.Equal(t, day("2024-05-13"), monday)
	assert.Equal(t, day("2024-05-19"), sunday)
}

func TestNextMonday(t *testing.T) {
	assert.Equal(t, day("2024-05-20"), NextMonday(day("2024-05-15")))
	assert.Equal(t, day("2024-05-20"), NextMonday(day("2024-05-13")))
	assert.Equal(t, day("2024-05-20"), NextMonday(day("2024-05-19")))
}

func TestDateForDay(t *testing.T) {
	ref := day("2024-05-15")

	assert.Equal(t, day("2024-05-13"), DateForDay("Понедельник", ref))
	assert.Equal(t, day("2024-05-17"), DateForDay("Пятница", ref))
	assert.Equal(t, day("2024-05-19"), DateForDay("воскресенье", ref))
	assert.Equal(t, day("2024-05-18"), DateForDay("Saturday", ref))
	assert.Equal(t, ref, DateForDay("someday", ref))
	assert.Equal(t, ref, DateForDay("", ref))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Среда", DayName(day("2024-05-15")))
	assert.Equal(t, "Воскресенье", DayName(day("2024-05-19")))
	assert.Len(t, DayNames(), 7)
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("", "")
	require.NoError(t, err)
	assert.False(t, r.Bounded())
	assert.True(t, r.Contains(day("1999-01-01")))

	r, err = ParseRange("2024-05-13", "2024-05-19")
	require.NoError(t, err)
	assert.True(t, r.Contains(day("2024-05-13")))
	assert.True(t, r.Contains(time.Date(2024, 5, 19, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(day("2024-05-20")))
	assert.False(t, r.Contains(day("2024-05-12")))
	assert.Equal(t, "2024-05-13..2024-05-19", r.String())

	_, err = ParseRange("2024-05-20", "2024-05-19")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = ParseRange("20.05.2024", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestOpenEndedRange(t *testing.T) {
	start := day("2024-05-13")
	r := Range{Start: &start}

	assert.True(t, r.Bounded())
	assert.True(t, r.Contains(day("2030-01-01")))
	assert.False(t, r.Contains(day("2024-05-12")))
	assert.Equal(t, "2024-05-13..*", r.String())
}
