package services

import (
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"healthcare-scheduling-server/internal/models"
	"healthcare-scheduling-server/internal/schedule"
)

// AppointmentStore is the slice of the record store the lifecycle needs.
// The GORM implementation lives in internal/repository; tests use an
// in-memory fake.
type AppointmentStore interface {
	ListPendingForDoctor(doctorID string) ([]models.Appointment, error)
	ListForPatient(patientID string) ([]models.Appointment, error)
	ListForDoctor(doctorID string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
	Get(id string) (*models.Appointment, error)
	Create(appt *models.Appointment) error
	Update(appt *models.Appointment) error
}

// UserDirectory resolves a participant identifier to a display name.
type UserDirectory interface {
	DisplayName(userID string) (string, error)
}

// Notifier records a user-facing notification. Delivery failures are logged
// and never fail the action that produced them.
type Notifier interface {
	Notify(userID, title, message string, severity models.NotificationSeverity) error
}

// Config carries the scheduling policy knobs.
type Config struct {
	PatientWindowDays int    // how far ahead patients can book
	DoctorWindowDays  int    // how far ahead doctors can schedule
	CalendarLocation  string // location field of generated calendar links
}

// AppointmentService implements the appointment request lifecycle shared by
// the booking, pending-inbox and reschedule flows.
type AppointmentService struct {
	store  AppointmentStore
	users  UserDirectory
	notify Notifier
	cfg    Config
	log    *zap.Logger
}

// NewAppointmentService wires the lifecycle service. notifier may be nil.
func NewAppointmentService(store AppointmentStore, users UserDirectory, notifier Notifier, cfg Config, log *zap.Logger) *AppointmentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AppointmentService{store: store, users: users, notify: notifier, cfg: cfg, log: log}
}

// BookRequest carries the booking/scheduler dialog fields.
type BookRequest struct {
	PatientID    string
	DoctorID     string
	Type         string
	Date         string // YYYY-MM-DD
	Slot         string // 12-hour slot, e.g. "10:00 AM"
	Reason       string
	Notes        string
	SyncCalendar bool
	BookedBy     models.Role // the acting role decides the initial status
}

// BookResult is the outcome of a successful booking.
type BookResult struct {
	Appointment *models.Appointment
	CalendarURL string // set only when the sync flag was requested
}

// Book validates the request and creates a new appointment record. A booking
// by the patient starts pending; a doctor or admin scheduling directly starts
// approved.
func (s *AppointmentService) Book(req BookRequest) (*BookResult, error) {
	var missing []string
	if req.PatientID == "" {
		missing = append(missing, "patientId")
	}
	if req.DoctorID == "" {
		missing = append(missing, "doctorId")
	}
	if req.Type == "" {
		missing = append(missing, "type")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Slot == "" {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	window := schedule.Window{Days: s.cfg.PatientWindowDays}
	status := models.StatusPending
	if req.BookedBy == models.RoleDoctor || req.BookedBy == models.RoleAdmin {
		window = schedule.Window{Days: s.cfg.DoctorWindowDays}
		status = models.StatusApproved
	}
	inWindow, err := window.Contains(req.Date, time.Now())
	if err != nil {
		return nil, err
	}
	if !inWindow {
		return nil, &ValidationError{Fields: []string{"date"}, Reason: "date outside booking window"}
	}

	storedTime, err := schedule.SlotToStorage(req.Slot)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Date:        req.Date,
		Time:        storedTime,
		Type:        req.Type,
		Status:      status,
		Reason:      req.Reason,
		Notes:       req.Notes,
		SubmittedAt: time.Now(),
	}
	if err := s.store.Create(appt); err != nil {
		return nil, &StoreError{Op: "create appointment", Err: err}
	}

	res := &BookResult{Appointment: appt}
	if req.SyncCalendar {
		details := "Appointment Type: " + appt.Type
		if appt.Notes != "" {
			details += "\n\nNotes: " + appt.Notes
		}
		if url, linkErr := s.calendarLink(appt, details); linkErr != nil {
			// The booking stands even when the link cannot be built.
			s.log.Warn("calendar link not built", zap.String("appointment", appt.ID), zap.Error(linkErr))
		} else {
			res.CalendarURL = url
		}
	}
	return res, nil
}

// Inbox returns all pending requests owned by the doctor, in day-schedule
// order: date ascending, ties broken by time ascending.
func (s *AppointmentService) Inbox(doctorID string) ([]models.Appointment, error) {
	appts, err := s.store.ListPendingForDoctor(doctorID)
	if err != nil {
		return nil, &StoreError{Op: "list pending requests", Err: err}
	}
	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date < appts[j].Date
		}
		return appts[i].Time < appts[j].Time
	})
	return appts, nil
}

// DecisionResult is the outcome of resolving a pending request.
type DecisionResult struct {
	Appointment *models.Appointment
	CalendarURL string // approval only; empty if the link could not be built
}

// Approve transitions a pending request to approved and builds the calendar
// link for a one-hour event. Link failures never roll back the approval.
func (s *AppointmentService) Approve(doctorID, id string) (*DecisionResult, error) {
	appt, err := s.ownedPending(doctorID, id)
	if err != nil {
		return nil, err
	}

	appt.Status = models.StatusApproved
	if err := s.store.Update(appt); err != nil {
		return nil, &StoreError{Op: "approve appointment", Err: err}
	}

	res := &DecisionResult{Appointment: appt}
	if url, linkErr := s.calendarLink(appt, "Patient appointment approved through HealthCare AI"); linkErr != nil {
		s.log.Warn("calendar link not built", zap.String("appointment", appt.ID), zap.Error(linkErr))
	} else {
		res.CalendarURL = url
	}

	s.notifyPatient(appt, "Appointment Approved",
		"Your appointment on "+appt.Date+" has been confirmed.", models.SeveritySuccess)
	return res, nil
}

// Decline transitions a pending request to declined. No calendar link is
// built.
func (s *AppointmentService) Decline(doctorID, id string) (*models.Appointment, error) {
	appt, err := s.ownedPending(doctorID, id)
	if err != nil {
		return nil, err
	}

	appt.Status = models.StatusDeclined
	if err := s.store.Update(appt); err != nil {
		return nil, &StoreError{Op: "decline appointment", Err: err}
	}

	s.notifyPatient(appt, "Request Declined",
		"Your appointment request for "+appt.Date+" has been declined.", models.SeverityError)
	return appt, nil
}

// Reschedule moves an appointment to a new date and slot. A reschedule is an
// implicit approval, so the record always ends up approved; SubmittedAt is
// left untouched. Declined records cannot be rescheduled.
func (s *AppointmentService) Reschedule(doctorID, id, newDate, newSlot string) (*models.Appointment, error) {
	appt, err := s.ownedByDoctor(doctorID, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.StatusDeclined {
		return nil, &ConflictError{Message: "declined appointments cannot be rescheduled"}
	}

	inWindow, err := schedule.Window{Days: s.cfg.DoctorWindowDays}.Contains(newDate, time.Now())
	if err != nil {
		return nil, err
	}
	if !inWindow {
		return nil, &ValidationError{Fields: []string{"date"}, Reason: "date outside booking window"}
	}
	storedTime, err := schedule.SlotToStorage(newSlot)
	if err != nil {
		return nil, err
	}

	appt.Date = newDate
	appt.Time = storedTime
	appt.Status = models.StatusApproved
	if err := s.store.Update(appt); err != nil {
		return nil, &StoreError{Op: "reschedule appointment", Err: err}
	}

	s.notifyPatient(appt, "Appointment Rescheduled",
		"Your appointment has been moved to "+appt.Date+" at "+newSlot+".", models.SeverityInfo)
	return appt, nil
}

// Get loads a single appointment; callers decide whether the actor may see it.
func (s *AppointmentService) Get(id string) (*models.Appointment, error) {
	return s.load(id)
}

// ListFor returns the appointments visible to the actor: patients and doctors
// see their own, admins see everything.
func (s *AppointmentService) ListFor(actorID string, role models.Role) ([]models.Appointment, error) {
	var (
		appts []models.Appointment
		err   error
	)
	switch role {
	case models.RoleDoctor:
		appts, err = s.store.ListForDoctor(actorID)
	case models.RoleAdmin:
		appts, err = s.store.ListAll()
	default:
		appts, err = s.store.ListForPatient(actorID)
	}
	if err != nil {
		return nil, &StoreError{Op: "list appointments", Err: err}
	}
	return appts, nil
}

func (s *AppointmentService) load(id string) (*models.Appointment, error) {
	appt, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "appointment", ID: id}
		}
		return nil, &StoreError{Op: "load appointment", Err: err}
	}
	return appt, nil
}

func (s *AppointmentService) ownedByDoctor(doctorID, id string) (*models.Appointment, error) {
	appt, err := s.load(id)
	if err != nil {
		return nil, err
	}
	// Records outside the actor's inbox are indistinguishable from missing ones.
	if appt.DoctorID != doctorID {
		return nil, &NotFoundError{Resource: "appointment", ID: id}
	}
	return appt, nil
}

func (s *AppointmentService) ownedPending(doctorID, id string) (*models.Appointment, error) {
	appt, err := s.ownedByDoctor(doctorID, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.StatusPending {
		return nil, &ConflictError{Message: "appointment is already " + string(appt.Status)}
	}
	return appt, nil
}

func (s *AppointmentService) calendarLink(appt *models.Appointment, details string) (string, error) {
	name, err := s.users.DisplayName(appt.PatientID)
	if err != nil || name == "" {
		name = "Patient"
	}
	slot, err := schedule.StorageToSlot(appt.Time)
	if err != nil {
		return "", err
	}
	return schedule.EventURL(schedule.Event{
		ParticipantName: name,
		Date:            appt.Date,
		Time:            slot,
		Details:         details,
		Location:        s.cfg.CalendarLocation,
	})
}

func (s *AppointmentService) notifyPatient(appt *models.Appointment, title, message string, severity models.NotificationSeverity) {
	if s.notify == nil {
		return
	}
	if err := s.notify.Notify(appt.PatientID, title, message, severity); err != nil {
		s.log.Warn("notification not recorded", zap.String("user", appt.PatientID), zap.Error(err))
	}
}
