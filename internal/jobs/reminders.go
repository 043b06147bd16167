package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"healthcare-scheduling-server/internal/models"
	"healthcare-scheduling-server/internal/schedule"
)

// ReminderScheduler sends same-day appointment reminders on a cron schedule.
type ReminderScheduler struct {
	db   *gorm.DB
	cron *cron.Cron
	log  *zap.Logger
}

// NewReminderScheduler creates a scheduler that runs RunReminders on the given
// cron expression.
func NewReminderScheduler(db *gorm.DB, cronSpec string, log *zap.Logger) (*ReminderScheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &ReminderScheduler{db: db, cron: cron.New(), log: log}
	if _, err := s.cron.AddFunc(cronSpec, func() {
		if err := s.RunReminders(time.Now()); err != nil {
			s.log.Error("reminder run failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid reminder cron %q: %w", cronSpec, err)
	}
	return s, nil
}

// Start begins the cron loop in its own goroutine.
func (s *ReminderScheduler) Start() {
	s.cron.Start()
	s.log.Info("reminder scheduler started")
}

// Stop halts the cron loop.
func (s *ReminderScheduler) Stop() {
	s.cron.Stop()
}

// RunReminders notifies both parties of every approved appointment happening
// on the given day.
func (s *ReminderScheduler) RunReminders(now time.Time) error {
	today := now.Format(schedule.DateLayout)

	var appointments []models.Appointment
	err := s.db.
		Preload("Patient").
		Preload("Doctor").
		Where("date = ? AND status = ?", today, models.StatusApproved).
		Order("time asc").
		Find(&appointments).Error
	if err != nil {
		return fmt.Errorf("load today's appointments: %w", err)
	}

	for _, appt := range appointments {
		display, err := schedule.StorageToSlot(appt.Time)
		if err != nil {
			s.log.Warn("skipping reminder with malformed time",
				zap.String("appointmentId", appt.ID),
				zap.String("time", appt.Time))
			continue
		}

		patientMsg := fmt.Sprintf("Reminder: your %s with Dr. %s is today at %s.",
			appt.Type, appt.Doctor.DisplayName(), display)
		doctorMsg := fmt.Sprintf("Reminder: %s with %s is today at %s.",
			appt.Type, appt.Patient.DisplayName(), display)

		s.notify(appt.PatientID, patientMsg)
		s.notify(appt.DoctorID, doctorMsg)
	}

	s.log.Info("reminder run complete",
		zap.String("date", today),
		zap.Int("appointments", len(appointments)))
	return nil
}

func (s *ReminderScheduler) notify(userID, message string) {
	notification := models.Notification{
		UserID:   userID,
		Title:    "Appointment Reminder",
		Message:  message,
		Severity: models.SeverityInfo,
	}
	if err := s.db.Create(&notification).Error; err != nil {
		s.log.Error("failed to write reminder notification",
			zap.String("userId", userID), zap.Error(err))
	}
}
