package domain

import (
	"errors"
	"time"
)

var ErrDayOutOfRange = errors.New("day is outside the displayed month")

var WeekdayLabels = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// CalendarCell is one slot of the month grid. Day is 0 for a blank slot.
type CalendarCell struct {
	Day      int
	Selected bool
}

func (c CalendarCell) Blank() bool {
	return c.Day == 0
}

// CalendarView anchors the displayed month and highlighted day on a single
// selected date.
type CalendarView struct {
	Selected time.Time
}

func NewCalendarView(selected time.Time) CalendarView {
	y, m, d := selected.Date()
	return CalendarView{Selected: time.Date(y, m, d, 0, 0, 0, 0, selected.Location())}
}

func (c CalendarView) Year() int {
	return c.Selected.Year()
}

func (c CalendarView) Month() time.Month {
	return c.Selected.Month()
}

func (c CalendarView) Day() int {
	return c.Selected.Day()
}

// Title is the heading above the grid, e.g. "March 2026".
func (c CalendarView) Title() string {
	return c.Selected.Format("January 2006")
}

func (c CalendarView) WeekdayName() string {
	return c.Selected.Weekday().String()
}

func (c CalendarView) DateString() string {
	return c.Selected.Format(DateLayout)
}

func (c CalendarView) DaysInMonth() int {
	return DaysIn(c.Year(), c.Month())
}

// StartDay is the weekday index of the first of the month, 0 = Sunday.
func (c CalendarView) StartDay() int {
	first := time.Date(c.Year(), c.Month(), 1, 0, 0, 0, 0, c.Selected.Location())
	return int(first.Weekday())
}

// Cells returns StartDay blanks followed by one cell per day of the month.
func (c CalendarView) Cells() []CalendarCell {
	start := c.StartDay()
	days := c.DaysInMonth()

	cells := make([]CalendarCell, 0, start+days)
	for i := 0; i < start; i++ {
		cells = append(cells, CalendarCell{})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, CalendarCell{Day: day, Selected: day == c.Day()})
	}
	return cells
}

// Weeks lays Cells out in rows of seven, padding the last row with blanks.
func (c CalendarView) Weeks() [][]CalendarCell {
	cells := c.Cells()
	for len(cells)%7 != 0 {
		cells = append(cells, CalendarCell{})
	}

	weeks := make([][]CalendarCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

func (c CalendarView) PreviousMonth() CalendarView {
	return CalendarView{Selected: AddMonths(c.Selected, -1)}
}

func (c CalendarView) NextMonth() CalendarView {
	return CalendarView{Selected: AddMonths(c.Selected, 1)}
}

// SelectDay moves the selection to day within the displayed month.
func (c CalendarView) SelectDay(day int) (CalendarView, error) {
	if day < 1 || day > c.DaysInMonth() {
		return c, ErrDayOutOfRange
	}
	return CalendarView{Selected: time.Date(c.Year(), c.Month(), day, 0, 0, 0, 0, c.Selected.Location())}, nil
}

// AddMonths shifts t by n months and clamps the day to the length of the
// target month, so Jan 31 + 1 month is the last day of February.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := DaysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
