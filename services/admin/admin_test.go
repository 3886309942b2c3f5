package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appointmentRepo "salonbook/database/repository/appointment"
	catalogRepo "salonbook/database/repository/catalog"
	recordsRepo "salonbook/database/repository/records"
	scheduleRepo "salonbook/database/repository/schedule"
	userRepo "salonbook/database/repository/user"
	"salonbook/models"
)

func newAdmin(t *testing.T, appts ...models.Appointment) (*DefaultAdminService, *models.Profile) {
	t.Helper()
	apptRepo := appointmentRepo.NewMemoryAppointmentRepo(appts...)
	profiles := userRepo.NewMemoryProfileRepo()
	customer := &models.Profile{Email: "anna@example.com", FullName: "Anna", Role: models.RoleCustomer}
	require.NoError(t, profiles.Create(context.Background(), customer))

	store := scheduleRepo.NewFixtureScheduleStore(apptRepo, time.UTC, models.StaffSchedule{
		StaffID:     "staff-giulia",
		WeeklyHours: scheduleRepo.DemoWeeklyHours(),
	})
	return &DefaultAdminService{
		Appointments: apptRepo,
		Notes:        recordsRepo.NewMemoryNotes(),
		Profiles:     profiles,
		Schedules:    store,
		Catalog:      catalogRepo.DemoCatalog(),
		Logger:       zap.NewNop(),
	}, customer
}

func TestCalendar(t *testing.T) {
	svc, _ := newAdmin(t,
		models.Appointment{ID: "a2", Date: "2025-03-14", StartTime: "11:00", Status: models.StatusConfirmed},
		models.Appointment{ID: "a1", Date: "2025-03-14", StartTime: "09:30", Status: models.StatusPending},
		models.Appointment{ID: "a3", Date: "2025-03-15", StartTime: "09:00", Status: models.StatusPending},
	)

	appts, err := svc.Calendar(context.Background(), "2025-03-14")
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "a1", appts[0].ID)
	assert.Equal(t, "a2", appts[1].ID)

	_, err = svc.Calendar(context.Background(), "14/03/2025")
	assert.Error(t, err)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	svc, _ := newAdmin(t, models.Appointment{ID: "a1", Date: "2025-03-14", StartTime: "09:30", Status: models.StatusConfirmed})
	ctx := context.Background()

	appt, err := svc.UpdateAppointmentStatus(ctx, "a1", models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, appt.Status)

	_, err = svc.UpdateAppointmentStatus(ctx, "a1", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateAppointmentStatus(ctx, "missing", models.StatusNoShow)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListAppointments_Limit(t *testing.T) {
	svc, _ := newAdmin(t,
		models.Appointment{ID: "a1", Date: "2025-03-12", StartTime: "09:00"},
		models.Appointment{ID: "a2", Date: "2025-03-13", StartTime: "09:00"},
		models.Appointment{ID: "a3", Date: "2025-03-14", StartTime: "09:00"},
	)

	appts, err := svc.ListAppointments(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "a3", appts[0].ID)

	appts, err = svc.ListAppointments(context.Background(), -1)
	require.NoError(t, err)
	assert.Len(t, appts, 3)
}

func TestNotes(t *testing.T) {
	svc, customer := newAdmin(t)
	ctx := context.Background()

	note, err := svc.AddNote(ctx, "admin-1", customer.ID, models.NoteRequest{NoteType: models.NoteAllergy, Content: "  Ammonia sensitivity "})
	require.NoError(t, err)
	assert.Equal(t, "Ammonia sensitivity", note.Content)
	assert.Equal(t, "admin-1", note.CreatedBy)
	assert.NotEmpty(t, note.ID)

	_, err = svc.AddNote(ctx, "admin-1", customer.ID, models.NoteRequest{NoteType: models.NoteGeneral, Content: "Prefers mornings"})
	require.NoError(t, err)

	notes, err := svc.ListNotes(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Prefers mornings", notes[0].Content)

	_, err = svc.AddNote(ctx, "admin-1", customer.ID, models.NoteRequest{NoteType: "gossip", Content: "x"})
	assert.ErrorIs(t, err, ErrInvalidNote)
	_, err = svc.AddNote(ctx, "admin-1", customer.ID, models.NoteRequest{NoteType: models.NoteGeneral, Content: "   "})
	assert.ErrorIs(t, err, ErrInvalidNote)
	_, err = svc.AddNote(ctx, "admin-1", "nobody", models.NoteRequest{NoteType: models.NoteGeneral, Content: "x"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestSchedule(t *testing.T) {
	svc, _ := newAdmin(t)
	ctx := context.Background()

	sched, err := svc.GetSchedule(ctx, "staff-giulia")
	require.NoError(t, err)
	assert.Contains(t, sched.WeeklyHours, time.Friday)

	empty, err := svc.GetSchedule(ctx, "staff-marco")
	require.NoError(t, err)
	assert.Empty(t, empty.WeeklyHours)

	_, err = svc.GetSchedule(ctx, "staff-nobody")
	assert.ErrorIs(t, err, ErrStaffNotFound)

	saved, err := svc.UpsertSchedule(ctx, models.StaffSchedule{
		StaffID: "staff-marco",
		WeeklyHours: map[time.Weekday]models.WorkingDay{
			time.Saturday: {Start: "08:00", End: "14:00", Breaks: []models.ClockRange{{Start: "11:00", End: "11:30"}}},
		},
		Overrides: []models.ScheduleOverride{{Date: "2025-12-25", Closed: true}},
	})
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	day, err := svc.Schedules.GetDaySchedule(ctx, "staff-marco", "2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, "08:00", day.WorkStart.Format("15:04"))
}

func TestUpsertSchedule_Invalid(t *testing.T) {
	svc, _ := newAdmin(t)
	ctx := context.Background()

	tests := map[string]models.StaffSchedule{
		"end before start": {WeeklyHours: map[time.Weekday]models.WorkingDay{
			time.Monday: {Start: "18:00", End: "09:00"},
		}},
		"break outside shift": {WeeklyHours: map[time.Weekday]models.WorkingDay{
			time.Monday: {Start: "09:00", End: "13:00", Breaks: []models.ClockRange{{Start: "12:30", End: "13:30"}}},
		}},
		"bad clock": {WeeklyHours: map[time.Weekday]models.WorkingDay{
			time.Monday: {Start: "9am", End: "13:00"},
		}},
		"duplicate override": {Overrides: []models.ScheduleOverride{
			{Date: "2025-12-24", Closed: true},
			{Date: "2025-12-24", Start: "09:00", End: "12:00"},
		}},
		"bad override date": {Overrides: []models.ScheduleOverride{{Date: "24-12-2025", Closed: true}}},
	}
	for name, sched := range tests {
		t.Run(name, func(t *testing.T) {
			sched.StaffID = "staff-sara"
			_, err := svc.UpsertSchedule(ctx, sched)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}

func TestLegalSectionsFor(t *testing.T) {
	svc, _ := newAdmin(t)

	all := svc.LegalSections()
	customer := svc.LegalSectionsFor(models.AudienceCustomer)
	staff := svc.LegalSectionsFor(models.AudienceStaff)

	assert.Len(t, all, 4)
	assert.Len(t, customer, 3)
	assert.Len(t, staff, 3)
	for _, s := range staff {
		assert.NotEqual(t, "tos", s.ID)
	}
}
