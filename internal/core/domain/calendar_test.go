package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/stay_booking/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarView_Cells(t *testing.T) {
	tests := []struct {
		name      string
		selected  time.Time
		startDay  int
		days      int
		weekCount int
	}{
		{name: "october 2026 starts thursday", selected: date(2026, time.October, 14), startDay: 4, days: 31, weekCount: 5},
		{name: "february 2026 fills four rows", selected: date(2026, time.February, 1), startDay: 0, days: 28, weekCount: 4},
		{name: "leap february", selected: date(2024, time.February, 10), startDay: 4, days: 29, weekCount: 5},
		{name: "november 2026", selected: date(2026, time.November, 30), startDay: 0, days: 30, weekCount: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := domain.NewCalendarView(tt.selected)

			assert.Equal(t, tt.startDay, view.StartDay())
			assert.Equal(t, tt.days, view.DaysInMonth())

			cells := view.Cells()
			require.Len(t, cells, tt.startDay+tt.days)
			for i := 0; i < tt.startDay; i++ {
				assert.True(t, cells[i].Blank(), "cell %d should be blank", i)
			}
			for day := 1; day <= tt.days; day++ {
				assert.Equal(t, day, cells[tt.startDay+day-1].Day)
			}

			weeks := view.Weeks()
			assert.Len(t, weeks, tt.weekCount)
			for _, week := range weeks {
				assert.Len(t, week, 7)
			}
		})
	}
}

func TestCalendarView_MarksSelectedDay(t *testing.T) {
	view := domain.NewCalendarView(date(2026, time.October, 14))

	var selected []int
	for _, cell := range view.Cells() {
		if cell.Selected {
			selected = append(selected, cell.Day)
		}
	}

	assert.Equal(t, []int{14}, selected)
}

func TestCalendarView_Labels(t *testing.T) {
	view := domain.NewCalendarView(time.Date(2026, time.October, 14, 18, 30, 0, 0, time.UTC))

	assert.Equal(t, "October 2026", view.Title())
	assert.Equal(t, "Wednesday", view.WeekdayName())
	assert.Equal(t, "2026-10-14", view.DateString())
	assert.Equal(t, 14, view.Day())
	assert.Equal(t, "SUN", domain.WeekdayLabels[0])
}

func TestCalendarView_MonthNavigation(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		prev time.Time
		next time.Time
	}{
		{name: "mid month", from: date(2026, time.October, 14), prev: date(2026, time.September, 14), next: date(2026, time.November, 14)},
		{name: "clamps to short month", from: date(2026, time.January, 31), prev: date(2025, time.December, 31), next: date(2026, time.February, 28)},
		{name: "clamps into leap february", from: date(2024, time.March, 31), prev: date(2024, time.February, 29), next: date(2024, time.April, 30)},
		{name: "year boundary", from: date(2026, time.December, 5), prev: date(2026, time.November, 5), next: date(2027, time.January, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := domain.NewCalendarView(tt.from)

			assert.True(t, tt.prev.Equal(view.PreviousMonth().Selected), "prev = %s", view.PreviousMonth().DateString())
			assert.True(t, tt.next.Equal(view.NextMonth().Selected), "next = %s", view.NextMonth().DateString())
		})
	}
}

func TestCalendarView_SelectDay(t *testing.T) {
	view := domain.NewCalendarView(date(2026, time.February, 10))

	picked, err := view.SelectDay(28)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", picked.DateString())

	_, err = view.SelectDay(29)
	assert.ErrorIs(t, err, domain.ErrDayOutOfRange)

	_, err = view.SelectDay(0)
	assert.ErrorIs(t, err, domain.ErrDayOutOfRange)
}

func TestAddMonths_MultipleSteps(t *testing.T) {
	got := domain.AddMonths(date(2026, time.January, 31), 13)

	assert.Equal(t, "2027-02-28", got.Format(domain.DateLayout))
}
