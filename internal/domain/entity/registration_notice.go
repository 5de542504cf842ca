package entity

import (
	"fmt"
	"time"
)

// RegistrationNotice is a "someone just registered" message shown on the landing page
type RegistrationNotice struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	MinutesAgo int       `json:"minutesAgo"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TimeAgo renders the notice age as "N minutes ago"
func (n RegistrationNotice) TimeAgo() string {
	return fmt.Sprintf("%d minutes ago", n.MinutesAgo)
}

// Message renders the headline of the notice
func (n RegistrationNotice) Message() string {
	return n.Name + " just registered"
}

// NoticeEventType tells a notice display whether to show or hide
type NoticeEventType string

// Notice event types
const (
	NoticeShow NoticeEventType = "show"
	NoticeHide NoticeEventType = "hide"
)

// NoticeEvent is emitted by the registration ticker
type NoticeEvent struct {
	Type   NoticeEventType
	Notice RegistrationNotice
	At     time.Time
}

// Visible reports whether the notice should be on screen after this event
func (e NoticeEvent) Visible() bool {
	return e.Type == NoticeShow
}
