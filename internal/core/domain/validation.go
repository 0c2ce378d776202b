package domain

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	MsgFromDateRequired = "Please select a starting date."
	MsgToDateRequired   = "Please select an ending date."
	MsgToDateBeforeFrom = "End date cannot be earlier than start date."
	MsgAdultsMin        = "At least one adult is required."
	MsgChildrenNegative = "Children count cannot be negative."
	MsgRoomsMin         = "At least one room is required."
	MsgNameRequired     = "Please enter your full name."
	MsgPhoneRequired    = "Please enter a valid phone number."
	MsgPhoneFormat      = "Phone number format is invalid."
	MsgEmailRequired    = "Please enter your email address."
	MsgEmailFormat      = "Email format is invalid."
	MsgAmountRequired   = "Please enter the payment amount."
	MsgAmountInvalid    = "Amount must be a positive number."
	MsgFileType         = "Only PDF or image files are allowed."

	AlertFileType = "Only PDF or image files are allowed!"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-]{7,15}$`)
	emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
)

// ValidationErrors maps a field name to the message shown next to it.
type ValidationErrors map[string]string

func (v ValidationErrors) Valid() bool {
	return len(v) == 0
}

func (v ValidationErrors) Get(field string) string {
	return v[field]
}

// Validate checks every field of r and collects all messages at once.
func Validate(r BookingRequest) ValidationErrors {
	errs := ValidationErrors{}
	for _, field := range Fields {
		if msg := ValidateField(r, field); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// ValidateField returns the message for a single field, or "" when it passes.
// Unknown fields and notes always pass.
func ValidateField(r BookingRequest, field string) string {
	switch field {
	case FieldFromDate:
		if _, ok := ParseDate(r.FromDate); !ok {
			return MsgFromDateRequired
		}
	case FieldToDate:
		to, ok := ParseDate(r.ToDate)
		if !ok {
			return MsgToDateRequired
		}
		if from, ok := ParseDate(r.FromDate); ok && to.Before(from) {
			return MsgToDateBeforeFrom
		}
	case FieldAdults:
		if r.Adults < 1 {
			return MsgAdultsMin
		}
	case FieldChildren:
		if r.Children < 0 {
			return MsgChildrenNegative
		}
	case FieldRooms:
		if r.Rooms < 1 {
			return MsgRoomsMin
		}
	case FieldName:
		if strings.TrimSpace(r.Name) == "" {
			return MsgNameRequired
		}
	case FieldPhone:
		if strings.TrimSpace(r.Phone) == "" {
			return MsgPhoneRequired
		}
		if !phonePattern.MatchString(r.Phone) {
			return MsgPhoneFormat
		}
	case FieldEmail:
		if strings.TrimSpace(r.Email) == "" {
			return MsgEmailRequired
		}
		if !emailPattern.MatchString(r.Email) {
			return MsgEmailFormat
		}
	case FieldAmount:
		amount := strings.TrimSpace(r.Amount)
		if amount == "" {
			return MsgAmountRequired
		}
		if !isNonNegativeNumber(amount) {
			return MsgAmountInvalid
		}
	case FieldFile:
		if r.File != nil && !r.File.IsAllowed() {
			return MsgFileType
		}
	}
	return ""
}

func isNonNegativeNumber(s string) bool {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}
	if math.IsNaN(n) {
		return false
	}
	return n >= 0
}
