package calendar

import (
	"Meal-Planner/domain"
	"fmt"
	"strings"
	"time"
)

var dayNames = [7]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота", "Воскресенье"}

var dayIndex = map[string]int{
	"понедельник": 0, "monday": 0, "mon": 0,
	"вторник": 1, "tuesday": 1, "tue": 1,
	"среда": 2, "wednesday": 2, "wed": 2,
	"четверг": 3, "thursday": 3, "thu": 3,
	"пятница": 4, "friday": 4, "fri": 4,
	"суббота": 5, "saturday": 5, "sat": 5,
	"воскресенье": 6, "sunday": 6, "sun": 6,
}

// Midnight keeps the calendar date of t and drops the clock, in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekdayIndex numbers days from Monday (0) to Sunday (6).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayName is the display label stored in day_of_week.
func DayName(t time.Time) string {
	return dayNames[WeekdayIndex(t)]
}

func DayNames() []string {
	return dayNames[:]
}

// ParseWeekday accepts Russian and English day names in any case.
func ParseWeekday(name string) (int, bool) {
	i, ok := dayIndex[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

// WeekBounds returns Monday and Sunday of the week containing ref.
func WeekBounds(ref time.Time) (time.Time, time.Time) {
	monday := Midnight(ref).AddDate(0, 0, -WeekdayIndex(ref))
	return monday, monday.AddDate(0, 0, 6)
}

// NextMonday is the Monday strictly after ref; on a Monday it is a week away.
func NextMonday(ref time.Time) time.Time {
	return Midnight(ref).AddDate(0, 0, 7-WeekdayIndex(ref))
}

// DateForDay resolves a day name to its date within the week of ref.
// Unknown names resolve to ref itself.
func DateForDay(name string, ref time.Time) time.Time {
	i, ok := ParseWeekday(name)
	if !ok {
		return Midnight(ref)
	}
	monday, _ := WeekBounds(ref)
	return monday.AddDate(0, 0, i)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// Range is an inclusive date range; a nil bound is open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

func Between(start, end time.Time) Range {
	s, e := Midnight(start), Midnight(end)
	return Range{Start: &s, End: &e}
}

// ParseRange builds a Range from optional YYYY-MM-DD strings.
func ParseRange(start, end string) (Range, error) {
	var r Range
	if start != "" {
		t, err := ParseDate(start)
		if err != nil {
			return Range{}, err
		}
		r.Start = &t
	}
	if end != "" {
		t, err := ParseDate(end)
		if err != nil {
			return Range{}, err
		}
		r.End = &t
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return Range{}, domain.ErrInvalidDateRange
	}
	return r, nil
}

// Bounded reports whether at least one side of the range is set.
func (r Range) Bounded() bool {
	return r.Start != nil || r.End != nil
}

func (r Range) Contains(t time.Time) bool {
	day := Midnight(t)
	if r.Start != nil && day.Before(Midnight(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(Midnight(*r.End)) {
		return false
	}
	return true
}

func (r Range) String() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "*"
		}
		return t.Format(domain.DateLayout)
	}
	return format(r.Start) + ".." + format(r.End)
}
