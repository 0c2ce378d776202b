package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// InvalidCount marks a guest or room count that could not be read as an
// integer. It fails every count rule.
const InvalidCount = -1

const (
	FieldFromDate = "fromDate"
	FieldToDate   = "toDate"
	FieldAdults   = "adults"
	FieldChildren = "children"
	FieldRooms    = "rooms"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldAmount   = "amount"
	FieldFile     = "file"
	FieldNotes    = "notes"
)

// Fields lists every validated booking field in display order.
var Fields = []string{
	FieldFromDate,
	FieldToDate,
	FieldAdults,
	FieldChildren,
	FieldRooms,
	FieldName,
	FieldPhone,
	FieldEmail,
	FieldAmount,
	FieldFile,
}

const NoFileMarker = "No file uploaded"

type Attachment struct {
	Name        string
	ContentType string
	Size        int64
}

func (a *Attachment) IsAllowed() bool {
	return IsAllowedAttachmentType(a.ContentType)
}

func IsAllowedAttachmentType(contentType string) bool {
	return contentType == "application/pdf" || strings.HasPrefix(contentType, "image/")
}

type BookingRequest struct {
	FromDate string
	ToDate   string
	Adults   int
	Children int
	Rooms    int
	Name     string
	Phone    string
	Email    string
	Amount   string
	Notes    string
	File     *Attachment
}

// NewBookingRequest returns the request a freshly opened form starts with.
// initialDate is kept only when it is a well-formed calendar date.
func NewBookingRequest(initialDate string) BookingRequest {
	return BookingRequest{
		FromDate: NormalizeDate(initialDate),
		Adults:   1,
		Children: 0,
		Rooms:    1,
	}
}

// ParseCount reads a count input the way a numeric form control does: an
// empty input is zero and anything that is not an integer is InvalidCount.
func ParseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return InvalidCount
	}
	return n
}

// ParseDate reports whether s is a real YYYY-MM-DD date.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func NormalizeDate(s string) string {
	t, ok := ParseDate(strings.TrimSpace(s))
	if !ok {
		return ""
	}
	return t.Format(DateLayout)
}

type SummaryLine struct {
	Label string
	Value string
}

func (r BookingRequest) Summary() []SummaryLine {
	file := NoFileMarker
	if r.File != nil {
		file = r.File.Name
	}

	return []SummaryLine{
		{Label: "From", Value: r.FromDate},
		{Label: "To", Value: r.ToDate},
		{Label: "Adults", Value: strconv.Itoa(r.Adults)},
		{Label: "Children", Value: strconv.Itoa(r.Children)},
		{Label: "Rooms", Value: strconv.Itoa(r.Rooms)},
		{Label: "Name", Value: r.Name},
		{Label: "Phone", Value: r.Phone},
		{Label: "Email", Value: r.Email},
		{Label: "Amount", Value: r.Amount},
		{Label: "Notes", Value: r.Notes},
		{Label: "Document/File", Value: file},
	}
}

func (r BookingRequest) SummaryText() string {
	var b strings.Builder
	b.WriteString("Booking Details:\n")
	for _, line := range r.Summary() {
		fmt.Fprintf(&b, "%s: %s\n", line.Label, line.Value)
	}
	return b.String()
}

// BookingForm holds the state of one booking screen: the fields being
// edited, the messages from the last check and a pending blocking alert.
type BookingForm struct {
	Request BookingRequest
	Errors  ValidationErrors
	Alert   string
}

func NewBookingForm(initialDate string) *BookingForm {
	return &BookingForm{
		Request: NewBookingRequest(initialDate),
		Errors:  ValidationErrors{},
	}
}

// Validate recomputes every message from the current fields.
func (f *BookingForm) Validate() bool {
	f.Errors = Validate(f.Request)
	return f.Errors.Valid()
}

// SelectFile stores an allowed attachment and clears any earlier file
// message. A disallowed one clears the stored file and raises the alert.
// A nil attachment means nothing was picked and leaves the form untouched.
func (f *BookingForm) SelectFile(att *Attachment) bool {
	if att == nil {
		return true
	}
	if f.Errors == nil {
		f.Errors = ValidationErrors{}
	}

	if !att.IsAllowed() {
		f.Request.File = nil
		f.Errors[FieldFile] = MsgFileType
		f.Alert = AlertFileType
		return false
	}

	f.Request.File = att
	delete(f.Errors, FieldFile)
	return true
}

// Submit validates the form and, when it passes, returns the confirmation
// lines. The fields are left as they are either way.
func (f *BookingForm) Submit() ([]SummaryLine, bool) {
	if !f.Validate() {
		return nil, false
	}
	return f.Request.Summary(), true
}
