package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/srgjo27/stay_booking/internal/core/domain"
	"github.com/srgjo27/stay_booking/internal/core/services"
	"github.com/srgjo27/stay_booking/internal/platform/logging"
)

const defaultMaxUploadBytes = 10 << 20

type BookingHandler struct {
	svc            *services.BookingService
	renderer       *Renderer
	logger         *logging.Logger
	maxUploadBytes int64
	now            func() time.Time
}

func NewBookingHandler(svc *services.BookingService, renderer *Renderer, logger *logging.Logger, maxUploadBytes int64) *BookingHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &BookingHandler{
		svc:            svc,
		renderer:       renderer,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

type bookingPage struct {
	Form      *domain.BookingForm
	Today     string
	ToDateMin string
}

type confirmationPage struct {
	Summary []domain.SummaryLine
	Request domain.BookingRequest
}

func (h *BookingHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	form := h.svc.NewForm(r.URL.Query().Get("date"))
	h.renderForm(w, http.StatusOK, form)
}

func (h *BookingHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderer.RenderError(w, http.StatusRequestEntityTooLarge, "The uploaded file is too large.")
			return
		}
		h.renderer.RenderError(w, http.StatusBadRequest, "The booking form could not be read.")
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	form := h.svc.NewForm("")
	form.Request = decodeBookingForm(r)

	att, err := readAttachment(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "failed to read attachment", "error", err)
		h.renderer.RenderError(w, http.StatusBadRequest, "The uploaded file could not be read.")
		return
	}

	// A disallowed file is refused at selection, before anything is submitted.
	if !h.svc.SelectFile(r.Context(), form, att) {
		h.renderForm(w, http.StatusUnprocessableEntity, form)
		return
	}

	summary, ok := h.svc.Submit(r.Context(), form)
	if !ok {
		h.renderForm(w, http.StatusUnprocessableEntity, form)
		return
	}

	h.renderer.Render(w, http.StatusOK, pageConfirmation, confirmationPage{
		Summary: summary,
		Request: form.Request,
	})
}

// bookingPayload is the JSON shape accepted by the validation endpoint.
type bookingPayload struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Rooms    int    `json:"rooms"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
	Notes    string `json:"notes"`
	File     *struct {
		Name        string `json:"name"`
		ContentType string `json:"contentType"`
		Size        int64  `json:"size"`
	} `json:"file"`
}

// Validate checks a JSON booking without submitting it. ?field=x limits the
// report to one field for live feedback.
func (h *BookingHandler) Validate(w http.ResponseWriter, r *http.Request) {
	defaults := domain.NewBookingRequest("")
	payload := bookingPayload{Adults: defaults.Adults, Children: defaults.Children, Rooms: defaults.Rooms}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	req := domain.BookingRequest{
		FromDate: payload.FromDate,
		ToDate:   payload.ToDate,
		Adults:   payload.Adults,
		Children: payload.Children,
		Rooms:    payload.Rooms,
		Name:     payload.Name,
		Phone:    payload.Phone,
		Email:    payload.Email,
		Amount:   payload.Amount,
		Notes:    payload.Notes,
	}
	if payload.File != nil {
		req.File = &domain.Attachment{
			Name:        payload.File.Name,
			ContentType: payload.File.ContentType,
			Size:        payload.File.Size,
		}
	}

	result, err := h.svc.Check(req, r.URL.Query().Get("field"))
	if err != nil {
		if errors.Is(err, services.ErrUnknownField) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *BookingHandler) renderForm(w http.ResponseWriter, status int, form *domain.BookingForm) {
	today := h.now().Format(domain.DateLayout)
	toMin := today
	if form.Request.FromDate != "" {
		toMin = form.Request.FromDate
	}

	h.renderer.Render(w, status, pageBooking, bookingPage{
		Form:      form,
		Today:     today,
		ToDateMin: toMin,
	})
}

func decodeBookingForm(r *http.Request) domain.BookingRequest {
	return domain.BookingRequest{
		FromDate: strings.TrimSpace(r.FormValue(domain.FieldFromDate)),
		ToDate:   strings.TrimSpace(r.FormValue(domain.FieldToDate)),
		Adults:   domain.ParseCount(r.FormValue(domain.FieldAdults)),
		Children: domain.ParseCount(r.FormValue(domain.FieldChildren)),
		Rooms:    domain.ParseCount(r.FormValue(domain.FieldRooms)),
		Name:     r.FormValue(domain.FieldName),
		Phone:    r.FormValue(domain.FieldPhone),
		Email:    r.FormValue(domain.FieldEmail),
		Amount:   r.FormValue(domain.FieldAmount),
		Notes:    r.FormValue(domain.FieldNotes),
	}
}

// readAttachment returns the uploaded document, or nil when none was picked.
// The declared type wins; content sniffing only fills in a missing or
// generic declaration.
func readAttachment(r *http.Request) (*domain.Attachment, error) {
	file, header, err := r.FormFile(domain.FieldFile)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	contentType := declaredType(header)
	if contentType == "" || contentType == "application/octet-stream" {
		detected, err := mimetype.DetectReader(file)
		if err != nil {
			return nil, err
		}
		contentType = mediaType(detected.String())
	}

	return &domain.Attachment{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	}, nil
}

func declaredType(header *multipart.FileHeader) string {
	return mediaType(header.Header.Get("Content-Type"))
}

func mediaType(v string) string {
	if v == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return mt
}
