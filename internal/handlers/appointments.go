package handlers

import (
	"github.com/gin-gonic/gin"

	"healthcare-scheduling-server/internal/middleware"
	"healthcare-scheduling-server/internal/models"
	"healthcare-scheduling-server/internal/services"
	"healthcare-scheduling-server/internal/utils"
)

// AppointmentHandler exposes the appointment request lifecycle over HTTP.
type AppointmentHandler struct {
	Service *services.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	DoctorID     string `json:"doctorId" binding:"required,uuid"`
	PatientID    string `json:"patientId"` // optional; defaults to the acting patient
	Type         string `json:"type" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // 12-hour slot, e.g. "10:00 AM"
	Reason       string `json:"reason"`
	Notes        string `json:"notes"`
	SyncCalendar bool   `json:"syncCalendar"`
}

// CreateAppointment handles booking a new appointment. Patient bookings start
// pending; doctor- or admin-scheduled appointments start approved.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	actorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	role, _ := middleware.GetUserRoleFromContext(c)

	patientID := req.PatientID
	if role == models.RolePatient {
		// Patients can only book for themselves.
		if patientID != "" && patientID != actorID {
			utils.Forbidden(c, "Patients can only book appointments for themselves.")
			return
		}
		patientID = actorID
	}

	result, err := h.Service.Book(services.BookRequest{
		PatientID:    patientID,
		DoctorID:     req.DoctorID,
		Type:         req.Type,
		Date:         req.Date,
		Slot:         req.Time,
		Reason:       req.Reason,
		Notes:        req.Notes,
		SyncCalendar: req.SyncCalendar,
		BookedBy:     role,
	})
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Created(c, "Appointment created successfully", gin.H{
		"appointment": result.Appointment,
		"calendarUrl": result.CalendarURL,
	})
}

// GetAppointmentsForUser handles fetching appointments for the logged-in user.
func (h *AppointmentHandler) GetAppointmentsForUser(c *gin.Context) {
	actorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	role, _ := middleware.GetUserRoleFromContext(c)

	appointments, err := h.Service.ListFor(actorID, role)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetPendingRequests handles the doctor's request inbox: pending records only,
// ordered by date then time.
func (h *AppointmentHandler) GetPendingRequests(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	requests, err := h.Service.Inbox(doctorID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, "Pending requests fetched successfully", requests)
}

// GetAppointmentByID handles fetching a single appointment. Accessible by the
// involved patient, the involved doctor, or an admin.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.Service.Get(c.Param("id"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)
	if role != models.RoleAdmin && actorID != appointment.PatientID && actorID != appointment.DoctorID {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// ApproveAppointment handles a doctor approving a pending request. The
// response carries the calendar link when it could be built; approval stands
// either way.
func (h *AppointmentHandler) ApproveAppointment(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	result, err := h.Service.Approve(doctorID, c.Param("id"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Appointment approved successfully", gin.H{
		"appointment": result.Appointment,
		"calendarUrl": result.CalendarURL,
	})
}

// DeclineAppointment handles a doctor declining a pending request.
func (h *AppointmentHandler) DeclineAppointment(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	appointment, err := h.Service.Decline(doctorID, c.Param("id"))
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, "Appointment declined", appointment)
}

// RescheduleAppointmentRequest represents the request body for rescheduling.
type RescheduleAppointmentRequest struct {
	NewDate string `json:"newDate" binding:"required"` // YYYY-MM-DD
	NewTime string `json:"newTime" binding:"required"` // 12-hour slot
}

// RescheduleAppointment handles a doctor moving an appointment to a new date
// and time. The record ends up approved regardless of its previous state.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req RescheduleAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Service.Reschedule(doctorID, c.Param("id"), req.NewDate, req.NewTime)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}
	utils.Success(c, "Appointment rescheduled successfully", appointment)
}
