package models

import (
	"encoding/json"
	"time"
)

// AccessEvent is one recorded page view. Rows are append-only.
type AccessEvent struct {
	ID        int64     `json:"id" db:"id"`
	IPAddress string    `json:"ip_address" db:"ip_address"`
	UserAgent string    `json:"user_agent,omitempty" db:"user_agent"`
	Page      string    `json:"page" db:"page"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	UserID    *int64    `json:"user_id,omitempty" db:"user_id"`
}

// AccessLogEntry is an access event joined to the acting user's name.
// Username is empty for anonymous visitors.
type AccessLogEntry struct {
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent,omitempty"`
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username,omitempty"`
}

// IsAnonymous reports whether the event had no forum user attached
func (e *AccessLogEntry) IsAnonymous() bool {
	return e.Username == ""
}

// PageVisits is the number of views a page received
type PageVisits struct {
	Page   string `json:"page"`
	Visits int    `json:"visits"`
}

// DailyCount is a per-date tally. It encodes as ["2006-01-02", n].
type DailyCount struct {
	Date  string
	Count int
}

// MarshalJSON encodes the pair as a two-element array
func (d DailyCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.Date, d.Count})
}

// HourlyCount is a per-hour tally with Hour in "00".."23". It encodes as ["09", n].
type HourlyCount struct {
	Hour  string
	Count int
}

// MarshalJSON encodes the pair as a two-element array
func (h HourlyCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{h.Hour, h.Count})
}
