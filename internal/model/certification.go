package model

import "time"

// DefaultReminderDays is applied when a certification is created without an
// explicit reminder schedule.
var DefaultReminderDays = []int{90, 60, 30, 7}

// Certification is a user-owned record of a professional certification.
// IssueDate and ExpiryDate are calendar dates in YYYY-MM-DD form; Status is
// derived from ExpiryDate on every read and write and is never authoritative
// when read back from storage.
type Certification struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Provider     string    `json:"provider"`
	IssueDate    string    `json:"issueDate"`
	ExpiryDate   string    `json:"expiryDate"`
	ReminderDays []int     `json:"reminderDays"`
	DocumentURL  string    `json:"documentUrl,omitempty"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
