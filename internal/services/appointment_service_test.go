package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"healthcare-scheduling-server/internal/models"
)

// memoryStore is an in-memory AppointmentStore for exercising the lifecycle
// without a database.
type memoryStore struct {
	appts  map[string]models.Appointment
	nextID int
	fail   error // when set, every operation returns this error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{appts: make(map[string]models.Appointment)}
}

func (m *memoryStore) ListPendingForDoctor(doctorID string) ([]models.Appointment, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Status == models.StatusPending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) ListForPatient(patientID string) ([]models.Appointment, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	var out []models.Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) ListForDoctor(doctorID string) ([]models.Appointment, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryStore) ListAll() ([]models.Appointment, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	var out []models.Appointment
	for _, a := range m.appts {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryStore) Get(id string) (*models.Appointment, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	a, ok := m.appts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (m *memoryStore) Create(appt *models.Appointment) error {
	if m.fail != nil {
		return m.fail
	}
	if appt.ID == "" {
		m.nextID++
		appt.ID = string(rune('a' + m.nextID))
	}
	m.appts[appt.ID] = *appt
	return nil
}

func (m *memoryStore) Update(appt *models.Appointment) error {
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.appts[appt.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.appts[appt.ID] = *appt
	return nil
}

type staticDirectory map[string]string

func (d staticDirectory) DisplayName(userID string) (string, error) {
	name, ok := d[userID]
	if !ok {
		return "", errors.New("unknown user")
	}
	return name, nil
}

type recordingNotifier struct {
	sent []string
}

func (n *recordingNotifier) Notify(userID, title, message string, severity models.NotificationSeverity) error {
	n.sent = append(n.sent, userID+": "+title)
	return nil
}

func newTestService(store AppointmentStore) (*AppointmentService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	dir := staticDirectory{"pat-1": "Sarah Wilson", "pat-2": "John Smith"}
	svc := NewAppointmentService(store, dir, notifier, Config{
		PatientWindowDays: 30,
		DoctorWindowDays:  90,
		CalendarLocation:  "Medical Center",
	}, nil)
	return svc, notifier
}

func seedPending(store *memoryStore, id, doctorID, patientID, date, storedTime string) {
	store.appts[id] = models.Appointment{
		BaseModel:   models.BaseModel{ID: id},
		PatientID:   patientID,
		DoctorID:    doctorID,
		Date:        date,
		Time:        storedTime,
		Type:        "Follow-up",
		Status:      models.StatusPending,
		SubmittedAt: time.Date(2024, 12, 13, 11, 20, 0, 0, time.UTC),
	}
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestApproveBuildsCalendarLink(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "appt-1", "doc-1", "pat-1", "2024-12-15", "10:00:00")
	svc, notifier := newTestService(store)

	res, err := svc.Approve("doc-1", "appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, res.Appointment.Status)
	assert.Contains(t, res.CalendarURL, "dates=20241215T100000Z/20241215T110000Z")
	assert.Contains(t, res.CalendarURL, "text=Appointment+with+Sarah+Wilson")
	assert.Equal(t, []string{"pat-1: Appointment Approved"}, notifier.sent)

	stored, err := store.Get("appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
}

func TestDeclineBuildsNoLinkAndLeavesInbox(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "appt-1", "doc-1", "pat-1", "2024-12-15", "10:00:00")
	svc, _ := newTestService(store)

	appt, err := svc.Decline("doc-1", "appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, appt.Status)

	inbox, err := svc.Inbox("doc-1")
	require.NoError(t, err)
	assert.Empty(t, inbox)
}

func TestStatusIsMonotonic(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "appt-1", "doc-1", "pat-1", "2024-12-15", "10:00:00")
	svc, _ := newTestService(store)

	_, err := svc.Decline("doc-1", "appt-1")
	require.NoError(t, err)

	// A resolved record cannot be approved or declined again.
	var cErr *ConflictError
	_, err = svc.Approve("doc-1", "appt-1")
	assert.ErrorAs(t, err, &cErr)
	_, err = svc.Decline("doc-1", "appt-1")
	assert.ErrorAs(t, err, &cErr)

	stored, err := store.Get("appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, stored.Status)
}

func TestInboxFiltersAndOrders(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "late", "doc-1", "pat-1", "2024-12-18", "09:00:00")
	seedPending(store, "early", "doc-1", "pat-2", "2024-12-15", "10:00:00")
	seedPending(store, "same-day-later", "doc-1", "pat-1", "2024-12-15", "14:00:00")
	seedPending(store, "other-doctor", "doc-2", "pat-1", "2024-12-14", "09:00:00")

	resolved := store.appts["late"]
	resolved.ID = "resolved"
	resolved.Status = models.StatusApproved
	store.appts["resolved"] = resolved

	svc, _ := newTestService(store)
	inbox, err := svc.Inbox("doc-1")
	require.NoError(t, err)

	require.Len(t, inbox, 3)
	assert.Equal(t, "early", inbox[0].ID)
	assert.Equal(t, "same-day-later", inbox[1].ID)
	assert.Equal(t, "late", inbox[2].ID)
	for _, appt := range inbox {
		assert.Equal(t, models.StatusPending, appt.Status)
		assert.Equal(t, "doc-1", appt.DoctorID)
	}
}

func TestBookMissingFieldsNamed(t *testing.T) {
	store := newMemoryStore()
	svc, _ := newTestService(store)

	_, err := svc.Book(BookRequest{
		PatientID: "pat-1",
		DoctorID:  "doc-1",
		Type:      "Consultation",
		Slot:      "10:00 AM",
		BookedBy:  models.RolePatient,
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"date"}, vErr.Fields)
	assert.Empty(t, store.appts, "no record may be created on validation failure")
}

func TestBookStatusDependsOnActor(t *testing.T) {
	store := newMemoryStore()
	svc, _ := newTestService(store)

	base := BookRequest{
		PatientID: "pat-1",
		DoctorID:  "doc-1",
		Type:      "Checkup",
		Date:      futureDate(7),
		Slot:      "2:00 PM",
	}

	patientReq := base
	patientReq.BookedBy = models.RolePatient
	res, err := svc.Book(patientReq)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, res.Appointment.Status)
	assert.Equal(t, "14:00:00", res.Appointment.Time)
	assert.Empty(t, res.CalendarURL)

	doctorReq := base
	doctorReq.BookedBy = models.RoleDoctor
	doctorReq.SyncCalendar = true
	res, err = svc.Book(doctorReq)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, res.Appointment.Status)
	assert.Contains(t, res.CalendarURL, "text=Appointment+with+Sarah+Wilson")
	assert.Contains(t, res.CalendarURL, "details=Appointment+Type%3A+Checkup")
}

func TestBookRejectsOutOfWindowDate(t *testing.T) {
	store := newMemoryStore()
	svc, _ := newTestService(store)

	req := BookRequest{
		PatientID: "pat-1",
		DoctorID:  "doc-1",
		Type:      "Checkup",
		Date:      futureDate(45), // beyond the 30-day patient window
		Slot:      "2:00 PM",
		BookedBy:  models.RolePatient,
	}
	_, err := svc.Book(req)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"date"}, vErr.Fields)

	// The same date is fine inside the doctor's 90-day window.
	req.BookedBy = models.RoleDoctor
	_, err = svc.Book(req)
	assert.NoError(t, err)
}

func TestRescheduleKeepsSubmittedAt(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "appt-1", "doc-1", "pat-1", "2024-12-15", "10:00:00")

	approved := store.appts["appt-1"]
	approved.Status = models.StatusApproved
	store.appts["appt-1"] = approved
	submittedAt := approved.SubmittedAt

	svc, _ := newTestService(store)
	newDate := futureDate(10)
	appt, err := svc.Reschedule("doc-1", "appt-1", newDate, "3:30 PM")
	require.NoError(t, err)

	assert.Equal(t, newDate, appt.Date)
	assert.Equal(t, "15:30:00", appt.Time)
	assert.Equal(t, models.StatusApproved, appt.Status)
	assert.Equal(t, submittedAt, appt.SubmittedAt)
}

func TestReschedulePendingIsImplicitApproval(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "appt-1", "doc-1", "pat-1", "2024-12-15", "10:00:00")
	svc, _ := newTestService(store)

	appt, err := svc.Reschedule("doc-1", "appt-1", futureDate(5), "9:30 AM")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, appt.Status)
}

func TestRescheduleDeclinedFails(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "appt-1", "doc-1", "pat-1", "2024-12-15", "10:00:00")
	declined := store.appts["appt-1"]
	declined.Status = models.StatusDeclined
	store.appts["appt-1"] = declined

	svc, _ := newTestService(store)
	_, err := svc.Reschedule("doc-1", "appt-1", futureDate(5), "9:30 AM")
	var cErr *ConflictError
	assert.ErrorAs(t, err, &cErr)
}

func TestActionsOnMissingOrForeignRecords(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "appt-1", "doc-2", "pat-1", "2024-12-15", "10:00:00")
	svc, _ := newTestService(store)

	var nfErr *NotFoundError
	_, err := svc.Approve("doc-1", "gone")
	assert.ErrorAs(t, err, &nfErr)

	// Another doctor's record looks exactly like a missing one.
	_, err = svc.Approve("doc-1", "appt-1")
	assert.ErrorAs(t, err, &nfErr)

	stored, err := store.Get("appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestStoreFailureSurfacesAndLeavesState(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "appt-1", "doc-1", "pat-1", "2024-12-15", "10:00:00")
	svc, _ := newTestService(store)

	store.fail = errors.New("connection reset")
	var sErr *StoreError
	_, err := svc.Approve("doc-1", "appt-1")
	assert.ErrorAs(t, err, &sErr)
	_, err = svc.Inbox("doc-1")
	assert.ErrorAs(t, err, &sErr)

	store.fail = nil
	stored, err := store.Get("appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status, "failed action must not mutate state")
}

func TestListForScopesByRole(t *testing.T) {
	store := newMemoryStore()
	seedPending(store, "a", "doc-1", "pat-1", "2024-12-15", "10:00:00")
	seedPending(store, "b", "doc-2", "pat-1", "2024-12-16", "10:00:00")
	seedPending(store, "c", "doc-1", "pat-2", "2024-12-17", "10:00:00")
	svc, _ := newTestService(store)

	forPatient, err := svc.ListFor("pat-1", models.RolePatient)
	require.NoError(t, err)
	assert.Len(t, forPatient, 2)

	forDoctor, err := svc.ListFor("doc-1", models.RoleDoctor)
	require.NoError(t, err)
	assert.Len(t, forDoctor, 2)

	all, err := svc.ListFor("anyone", models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
