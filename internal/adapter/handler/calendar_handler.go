package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/srgjo27/stay_booking/internal/core/domain"
	"github.com/srgjo27/stay_booking/internal/core/services"
)

type CalendarHandler struct {
	svc      *services.CalendarService
	renderer *Renderer
}

func NewCalendarHandler(svc *services.CalendarService, renderer *Renderer) *CalendarHandler {
	return &CalendarHandler{svc: svc, renderer: renderer}
}

type calendarCell struct {
	Day      int
	Selected bool
	Href     string
}

type calendarPage struct {
	View     domain.CalendarView
	Labels   [7]string
	Weeks    [][]calendarCell
	PrevHref string
	NextHref string
}

func (h *CalendarHandler) Show(w http.ResponseWriter, r *http.Request) {
	view := h.svc.View(r.URL.Query().Get("selected"))
	h.renderer.Render(w, http.StatusOK, pageCalendar, newCalendarPage(view))
}

// SelectDay picks a day of the displayed month and hands over to the
// booking screen.
func (h *CalendarHandler) SelectDay(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		h.renderer.RenderError(w, http.StatusBadRequest, "Invalid day.")
		return
	}

	_, target, err := h.svc.SelectDay(r.Context(), r.URL.Query().Get("selected"), day)
	if err != nil {
		if errors.Is(err, domain.ErrDayOutOfRange) {
			h.renderer.RenderError(w, http.StatusBadRequest, "That day is not in the displayed month.")
			return
		}
		h.renderer.RenderError(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func newCalendarPage(view domain.CalendarView) calendarPage {
	selected := view.DateString()

	weeks := view.Weeks()
	rows := make([][]calendarCell, 0, len(weeks))
	for _, week := range weeks {
		row := make([]calendarCell, 0, len(week))
		for _, cell := range week {
			c := calendarCell{Day: cell.Day, Selected: cell.Selected}
			if !cell.Blank() {
				c.Href = dayHref(cell.Day, selected)
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}

	return calendarPage{
		View:     view,
		Labels:   domain.WeekdayLabels,
		Weeks:    rows,
		PrevHref: calendarHref(view.PreviousMonth()),
		NextHref: calendarHref(view.NextMonth()),
	}
}

func calendarHref(view domain.CalendarView) string {
	return "/?" + url.Values{"selected": {view.DateString()}}.Encode()
}

func dayHref(day int, selected string) string {
	return "/calendar/days/" + strconv.Itoa(day) + "?" + url.Values{"selected": {selected}}.Encode()
}
