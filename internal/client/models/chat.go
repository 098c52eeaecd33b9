package models

import "time"

// Sender tags used by the chat backend.
const (
	SenderEmployee = "employee"
	SenderHR       = "hr"
)

type Message struct {
	ID        FlexString `json:"id"`
	From      string     `json:"from"`
	Body      string     `json:"message"`
	Timestamp FlexString `json:"timestamp"`
}

func (m Message) FromHR() bool { return m.From == SenderHR }

// SentAt parses Timestamp in loc.
func (m Message) SentAt(loc *time.Location) (time.Time, bool) {
	return m.Timestamp.Time(loc)
}
