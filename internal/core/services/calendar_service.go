package services

import (
	"context"
	"net/url"
	"time"

	"github.com/srgjo27/stay_booking/internal/core/domain"
	"github.com/srgjo27/stay_booking/internal/observability/metrics"
	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

const BookingPath = "/booking"

type CalendarService struct {
	now     func() time.Time
	logger  *logging.Logger
	metrics *metrics.SiteMetrics
}

func NewCalendarService(now func() time.Time, logger *logging.Logger, m *metrics.SiteMetrics) *CalendarService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CalendarService{now: now, logger: logger, metrics: m}
}

func (s *CalendarService) Today() domain.CalendarView {
	return domain.NewCalendarView(s.now())
}

// View returns the calendar anchored on selected, or on today when selected
// is empty or not a date.
func (s *CalendarService) View(selected string) domain.CalendarView {
	if t, ok := domain.ParseDate(selected); ok {
		return domain.NewCalendarView(t)
	}
	return s.Today()
}

// SelectDay picks day in the month shown for selected and returns the new
// view together with the booking screen URL for that date.
func (s *CalendarService) SelectDay(ctx context.Context, selected string, day int) (domain.CalendarView, string, error) {
	view, err := s.View(selected).SelectDay(day)
	if err != nil {
		return view, "", err
	}

	s.logger.DebugContext(ctx, "calendar day selected", "date", view.DateString())
	s.metrics.ObserveDaySelected()
	return view, BookingURL(view.DateString()), nil
}

func BookingURL(date string) string {
	q := url.Values{}
	q.Set("date", date)
	return BookingPath + "?" + q.Encode()
}
