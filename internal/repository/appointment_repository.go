// Package repository contains the GORM-backed storage implementations behind
// the service-layer interfaces.
package repository

import (
	"gorm.io/gorm"

	"healthcare-scheduling-server/internal/models"
)

// AppointmentRepository persists appointments through GORM.
type AppointmentRepository struct {
	DB *gorm.DB
}

// NewAppointmentRepository creates a new AppointmentRepository.
func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

// ListPendingForDoctor returns the doctor's pending requests in day-schedule
// order.
func (r *AppointmentRepository) ListPendingForDoctor(doctorID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.DB.Preload("Patient").
		Where("doctor_id = ? AND status = ?", doctorID, models.StatusPending).
		Order("date asc, time asc").
		Find(&appts).Error
	return appts, err
}

// ListForPatient returns every appointment the patient is involved in.
func (r *AppointmentRepository) ListForPatient(patientID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.DB.Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("date asc, time asc").
		Find(&appts).Error
	return appts, err
}

// ListForDoctor returns every appointment the doctor is involved in.
func (r *AppointmentRepository) ListForDoctor(doctorID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.DB.Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("date asc, time asc").
		Find(&appts).Error
	return appts, err
}

// ListAll returns every appointment in the store.
func (r *AppointmentRepository) ListAll() ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.DB.Preload("Patient").Preload("Doctor").
		Order("date asc, time asc").
		Find(&appts).Error
	return appts, err
}

// Get loads a single appointment; gorm.ErrRecordNotFound passes through so
// the service can translate it.
func (r *AppointmentRepository) Get(id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.DB.Preload("Patient").Preload("Doctor").First(&appt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

// Create inserts a new appointment.
func (r *AppointmentRepository) Create(appt *models.Appointment) error {
	return r.DB.Create(appt).Error
}

// Update saves a mutated appointment.
func (r *AppointmentRepository) Update(appt *models.Appointment) error {
	return r.DB.Save(appt).Error
}
