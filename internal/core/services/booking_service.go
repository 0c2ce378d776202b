package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/srgjo27/stay_booking/internal/core/domain"
	"github.com/srgjo27/stay_booking/internal/observability/metrics"
	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

var ErrUnknownField = errors.New("unknown booking field")

// CheckResult is the outcome of validating a booking request without
// submitting it.
type CheckResult struct {
	Valid  bool                    `json:"valid"`
	Errors domain.ValidationErrors `json:"errors"`
}

type BookingService struct {
	logger  *logging.Logger
	metrics *metrics.SiteMetrics
}

func NewBookingService(logger *logging.Logger, m *metrics.SiteMetrics) *BookingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BookingService{
		logger:  logger,
		metrics: m,
	}
}

// NewForm opens a booking form, pre-filling the start date from the
// calendar's date parameter.
func (s *BookingService) NewForm(dateParam string) *domain.BookingForm {
	return domain.NewBookingForm(dateParam)
}

func (s *BookingService) SelectFile(ctx context.Context, form *domain.BookingForm, att *domain.Attachment) bool {
	if form.SelectFile(att) {
		return true
	}

	s.logger.InfoContext(ctx, "attachment rejected",
		"file_name", att.Name,
		"content_type", att.ContentType,
	)
	s.metrics.ObserveBooking(metrics.OutcomeFileRejected)
	return false
}

// Submit validates the form and returns the confirmation lines on success.
// Nothing is stored or sent anywhere.
func (s *BookingService) Submit(ctx context.Context, form *domain.BookingForm) ([]domain.SummaryLine, bool) {
	summary, ok := form.Submit()
	if !ok {
		fields := make([]string, 0, len(form.Errors))
		for _, field := range domain.Fields {
			if _, bad := form.Errors[field]; bad {
				fields = append(fields, field)
			}
		}
		s.logger.InfoContext(ctx, "booking rejected", "invalid_fields", fields)
		s.metrics.ObserveBooking(metrics.OutcomeInvalid)
		return nil, false
	}

	s.logger.InfoContext(ctx, "booking accepted",
		"from", form.Request.FromDate,
		"to", form.Request.ToDate,
		"rooms", form.Request.Rooms,
		"has_file", form.Request.File != nil,
	)
	s.metrics.ObserveBooking(metrics.OutcomeAccepted)
	return summary, true
}

// Check validates req without side effects. An empty field checks every
// field; otherwise only the named one is reported.
func (s *BookingService) Check(req domain.BookingRequest, field string) (CheckResult, error) {
	if field == "" {
		errs := domain.Validate(req)
		return CheckResult{Valid: errs.Valid(), Errors: errs}, nil
	}

	if !isBookingField(field) {
		return CheckResult{}, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	errs := domain.ValidationErrors{}
	if msg := domain.ValidateField(req, field); msg != "" {
		errs[field] = msg
	}
	return CheckResult{Valid: errs.Valid(), Errors: errs}, nil
}

func isBookingField(field string) bool {
	if field == domain.FieldNotes {
		return true
	}
	for _, f := range domain.Fields {
		if f == field {
			return true
		}
	}
	return false
}
