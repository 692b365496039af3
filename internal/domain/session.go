package domain

import (
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type DeliveryMode string

const (
	ModeVideo    DeliveryMode = "video"
	ModeInPerson DeliveryMode = "in-person"
)

// Valid reports whether m is one of the known delivery modes.
func (m DeliveryMode) Valid() bool {
	return m == ModeVideo || m == ModeInPerson
}

// SessionStatus is free text; the booking flow only ever writes pending.
type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionConfirmed SessionStatus = "confirmed"
)

const DefaultAvatar = "/placeholder.svg"

// Session is a booked learning session between the user and a counterpart.
// Date and Time are kept as the wall-clock strings the user entered.
type Session struct {
	ID          string        `json:"id"`
	Skill       string        `json:"skill"`
	Counterpart string        `json:"counterpart"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	DurationMin int           `json:"duration_min"`
	Mode        DeliveryMode  `json:"mode"`
	Status      SessionStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	Avatar      string        `json:"avatar,omitempty"`
}

// StartsAt combines Date and Time in loc. Unparseable values yield the zero time.
func (s Session) StartsAt(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, s.Date+" "+s.Time, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SessionDraft holds the booking form while the dialog is open.
type SessionDraft struct {
	Skill       string       `json:"skill"`
	Counterpart string       `json:"counterpart"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	DurationMin int          `json:"duration_min"`
	Mode        DeliveryMode `json:"mode"`
	Notes       string       `json:"notes"`
}

// Validate checks the draft in two passes: required fields first, then
// formats. A draft missing fields never reports format problems.
func (d SessionDraft) Validate() error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"skill", d.Skill},
		{"counterpart", d.Counterpart},
		{"date", d.Date},
		{"time", d.Time},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}

	if _, err := time.Parse(DateLayout, strings.TrimSpace(d.Date)); err != nil {
		return &InvalidFieldError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	if _, err := time.Parse(TimeLayout, strings.TrimSpace(d.Time)); err != nil {
		return &InvalidFieldError{Field: "time", Reason: "expected HH:MM"}
	}
	if d.DurationMin < 0 {
		return &InvalidFieldError{Field: "duration", Reason: "must not be negative"}
	}
	if d.Mode != "" && !d.Mode.Valid() {
		return &InvalidFieldError{Field: "mode", Reason: "expected video or in-person"}
	}
	return nil
}
