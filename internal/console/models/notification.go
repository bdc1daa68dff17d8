package models

type NotificationType string

const (
	NotificationApplication NotificationType = "application"
	NotificationInterview   NotificationType = "interview"
	NotificationMessage     NotificationType = "message"
	NotificationSelected    NotificationType = "selected"
	NotificationRejected    NotificationType = "rejected"
	NotificationRecruited   NotificationType = "recruited"
	NotificationJob         NotificationType = "job"
)

// Notification is an entry in the console's notification feed. The feed is
// ordered most recent first; entries are never removed, only marked read.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	// Time is a display string ("Just now", "2 minutes ago").
	Time string `json:"time"`
	Read bool   `json:"read"`
	// ReferenceID points at a person or opening id.
	ReferenceID string `json:"referenceId"`
}

type NotificationDraft struct {
	Type        NotificationType
	Title       string
	Message     string
	ReferenceID string
}

func CloneNotifications(in []Notification) []Notification {
	out := make([]Notification, len(in))
	copy(out, in)
	return out
}
