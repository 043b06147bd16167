package repository

import (
	"gorm.io/gorm"

	"healthcare-scheduling-server/internal/models"
)

// NotificationRepository writes user-facing notifications. It backs the
// service layer's Notifier.
type NotificationRepository struct {
	DB *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

// Notify records a notification for the user.
func (r *NotificationRepository) Notify(userID, title, message string, severity models.NotificationSeverity) error {
	notification := models.Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Severity: severity,
	}
	return r.DB.Create(&notification).Error
}
