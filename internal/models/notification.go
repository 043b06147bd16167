package models

import (
	"time"
)

// NotificationSeverity mirrors the severity levels the dashboards display.
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeveritySuccess NotificationSeverity = "success"
	SeverityWarning NotificationSeverity = "warning"
	SeverityError   NotificationSeverity = "error"
)

// Notification represents a user-facing notification, written on appointment
// transitions and by the reminder job.
type Notification struct {
	BaseModel
	UserID   string               `gorm:"size:36;index" json:"userId"`
	Title    string               `gorm:"size:255" json:"title"`
	Message  string               `gorm:"type:text" json:"message"`
	Severity NotificationSeverity `gorm:"size:20;default:'info'" json:"severity"`
	ReadAt   *time.Time           `json:"readAt,omitempty"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
