package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "salonbook/database/repository/appointment"
	catalogRepo "salonbook/database/repository/catalog"
	recordsRepo "salonbook/database/repository/records"
	scheduleRepo "salonbook/database/repository/schedule"
	userRepo "salonbook/database/repository/user"
	"salonbook/models"
)

// Repositories bundles every store the services depend on.
type Repositories struct {
	Catalog      catalogRepo.CatalogProvider
	Schedules    scheduleRepo.ScheduleStore
	Appointments appointmentRepo.AppointmentRepository
	Profiles     userRepo.ProfileRepository
	Loyalty      recordsRepo.LoyaltyHistoryRepository
	Notes        recordsRepo.NoteRepository
}

// NewMongoRepositories wires every repository to db.
func NewMongoRepositories(db *mongo.Database, loc *time.Location, logger *zap.Logger) *Repositories {
	appointments := appointmentRepo.NewMongoAppointmentRepo(db, logger)
	return &Repositories{
		Catalog:      catalogRepo.NewMongoCatalog(db, logger),
		Schedules:    scheduleRepo.NewMongoScheduleStore(db, appointments, loc, logger),
		Appointments: appointments,
		Profiles:     userRepo.NewMongoProfileRepo(db, logger),
		Loyalty:      recordsRepo.NewMongoLoyaltyHistoryRepo(db, logger),
		Notes:        recordsRepo.NewMongoNoteRepo(db, logger),
	}
}

// NewDemoRepositories returns in-memory repositories seeded with the demo catalogue and weekly hours.
func NewDemoRepositories(loc *time.Location) *Repositories {
	catalog := catalogRepo.DemoCatalog()
	appointments := appointmentRepo.NewMemoryAppointmentRepo()

	var schedules []models.StaffSchedule
	for _, s := range catalogRepo.DemoStaff() {
		schedules = append(schedules, models.StaffSchedule{StaffID: s.ID, WeeklyHours: scheduleRepo.DemoWeeklyHours()})
	}

	return &Repositories{
		Catalog:      catalog,
		Schedules:    scheduleRepo.NewFixtureScheduleStore(appointments, loc, schedules...),
		Appointments: appointments,
		Profiles:     userRepo.NewMemoryProfileRepo(),
		Loyalty:      recordsRepo.NewMemoryLoyaltyHistory(),
		Notes:        recordsRepo.NewMemoryNotes(),
	}
}
