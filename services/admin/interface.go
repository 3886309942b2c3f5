package admin

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appointmentRepo "salonbook/database/repository/appointment"
	catalogRepo "salonbook/database/repository/catalog"
	recordsRepo "salonbook/database/repository/records"
	scheduleRepo "salonbook/database/repository/schedule"
	userRepo "salonbook/database/repository/user"
	"salonbook/models"
)

var (
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidNote         = errors.New("invalid customer note")
	ErrInvalidSchedule     = errors.New("invalid staff schedule")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrStaffNotFound       = errors.New("staff member not found")
)

// AdminService is the salon back office.
type AdminService interface {
	Calendar(ctx context.Context, date string) ([]models.Appointment, error)
	ListAppointments(ctx context.Context, limit int64) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) (*models.Appointment, error)

	ListNotes(ctx context.Context, userID string) ([]models.CustomerNote, error)
	AddNote(ctx context.Context, adminID, userID string, req models.NoteRequest) (*models.CustomerNote, error)

	GetSchedule(ctx context.Context, staffID string) (*models.StaffSchedule, error)
	UpsertSchedule(ctx context.Context, schedule models.StaffSchedule) (*models.StaffSchedule, error)

	LegalSections() []models.LegalSection
	LegalSectionsFor(audience string) []models.LegalSection
}

// DefaultAdminService is the production implementation. Service catalogue management lives in
// catalog.CatalogService.
type DefaultAdminService struct {
	Appointments appointmentRepo.AppointmentRepository
	Notes        recordsRepo.NoteRepository
	Profiles     userRepo.ProfileRepository
	Schedules    scheduleRepo.ScheduleStore
	Catalog      catalogRepo.CatalogProvider
	Logger       *zap.Logger
}
