package models

import (
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment request.
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusApproved AppointmentStatus = "approved"
	StatusDeclined AppointmentStatus = "declined"
)

// Appointment represents an appointment request between one patient and one doctor.
// Date and Time hold wall-clock values exactly as entered; no time zone conversion
// is applied anywhere in the system.
type Appointment struct {
	BaseModel
	PatientID   string            `gorm:"size:36;index" json:"patientId"`
	DoctorID    string            `gorm:"size:36;index" json:"doctorId"`
	Date        string            `gorm:"size:10" json:"date"` // YYYY-MM-DD
	Time        string            `gorm:"size:8" json:"time"`  // HH:MM:SS, 24-hour
	Type        string            `gorm:"size:100" json:"type"`
	Status      AppointmentStatus `gorm:"size:20;default:'pending'" json:"status"`
	Reason      string            `gorm:"size:255" json:"reason"`
	Notes       string            `gorm:"type:text" json:"notes"`
	SubmittedAt time.Time         `json:"submittedAt"` // set at creation, never mutated

	// Relations
	Patient User `gorm:"foreignKey:PatientID" json:"-"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"-"`
}
