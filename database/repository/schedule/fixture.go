package scheduleRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

// FixtureScheduleStore keeps staff templates in memory. Booked time still comes from booked,
// so a demo checkout immediately removes its slot.
type FixtureScheduleStore struct {
	mu        sync.RWMutex
	schedules map[string]models.StaffSchedule
	booked    BookedLister
	loc       *time.Location
}

func NewFixtureScheduleStore(booked BookedLister, loc *time.Location, schedules ...models.StaffSchedule) *FixtureScheduleStore {
	if loc == nil {
		loc = time.UTC
	}
	f := &FixtureScheduleStore{
		schedules: make(map[string]models.StaffSchedule, len(schedules)),
		booked:    booked,
		loc:       loc,
	}
	for _, s := range schedules {
		f.schedules[s.StaffID] = s
	}
	return f
}

func (f *FixtureScheduleStore) GetDaySchedule(ctx context.Context, staffID, date string) (models.DaySchedule, error) {
	f.mu.RLock()
	sched, ok := f.schedules[staffID]
	f.mu.RUnlock()

	var appts []models.Appointment
	if f.booked != nil {
		var err error
		if appts, err = f.booked.ListActiveByStaffAndDate(ctx, staffID, date); err != nil {
			return models.DaySchedule{}, fmt.Errorf("failed to load booked intervals: %w", err)
		}
	}
	if !ok {
		return BuildDaySchedule(staffID, date, f.loc, nil, appts)
	}
	return BuildDaySchedule(staffID, date, f.loc, &sched, appts)
}

func (f *FixtureScheduleStore) GetSchedule(_ context.Context, staffID string) (*models.StaffSchedule, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	sched, ok := f.schedules[staffID]
	if !ok {
		return nil, fmt.Errorf("schedule for staff %s: %w", staffID, mongo.ErrNoDocuments)
	}
	return &sched, nil
}

func (f *FixtureScheduleStore) UpsertSchedule(_ context.Context, schedule *models.StaffSchedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	schedule.UpdatedAt = time.Now()
	f.schedules[schedule.StaffID] = *schedule
	return nil
}
