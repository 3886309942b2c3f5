package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"salonbook/database"
	"salonbook/models"
)

type mongoScheduleStore struct {
	coll   *mongo.Collection
	booked BookedLister
	loc    *time.Location
}

// NewMongoScheduleStore reads templates from staff_schedules and booked time from booked.
func NewMongoScheduleStore(db *mongo.Database, booked BookedLister, loc *time.Location, logger *zap.Logger) ScheduleStore {
	repo := &mongoScheduleStore{
		coll:   db.Collection(database.SchedulesCollection),
		booked: booked,
		loc:    loc,
	}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("Failed to create schedule indexes", zap.Error(err))
	}
	return repo
}

func (r *mongoScheduleStore) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "staffId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoScheduleStore) GetDaySchedule(ctx context.Context, staffID, date string) (models.DaySchedule, error) {
	sched, err := r.GetSchedule(ctx, staffID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return models.DaySchedule{}, err
	}

	appts, err := r.booked.ListActiveByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return models.DaySchedule{}, fmt.Errorf("failed to load booked intervals: %w", err)
	}
	return BuildDaySchedule(staffID, date, r.loc, sched, appts)
}

func (r *mongoScheduleStore) GetSchedule(ctx context.Context, staffID string) (*models.StaffSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sched models.StaffSchedule
	if err := r.coll.FindOne(ctx, bson.M{"staffId": staffID}).Decode(&sched); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for staff %s: %w", staffID, err)
	}
	return &sched, nil
}

func (r *mongoScheduleStore) UpsertSchedule(ctx context.Context, schedule *models.StaffSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"staffId": schedule.StaffID}, schedule, opts); err != nil {
		return fmt.Errorf("failed to save schedule for staff %s: %w", schedule.StaffID, err)
	}
	return nil
}
