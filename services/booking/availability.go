package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	catalogRepo "salonbook/database/repository/catalog"
	scheduleRepo "salonbook/database/repository/schedule"
	"salonbook/metrics"
	"salonbook/models"
	"salonbook/utils"
)

// DefaultAvailabilityService runs the slot computation over a fresh schedule snapshot.
type DefaultAvailabilityService struct {
	Catalog     catalogRepo.CatalogProvider
	Schedules   scheduleRepo.ScheduleProvider
	StepMinutes int
	Metrics     *metrics.BookingMetrics
	Logger      *zap.Logger
}

func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, staffID, date string, serviceIDs []string) (*models.AvailabilityResult, error) {
	result, err := s.getAvailableSlots(ctx, staffID, date, serviceIDs)
	if err != nil {
		s.Metrics.ObserveSlotSearch("error", 0)
		return nil, err
	}
	s.Metrics.ObserveSlotSearch("ok", len(result.Slots))
	return result, nil
}

func (s *DefaultAvailabilityService) getAvailableSlots(ctx context.Context, staffID, date string, serviceIDs []string) (*models.AvailabilityResult, error) {
	serviceIDs = dedupe(serviceIDs)
	switch {
	case staffID == "":
		return nil, fmt.Errorf("%w: staffId is required", ErrInvalidRequest)
	case !utils.IsDate(date):
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRequest)
	case len(serviceIDs) == 0:
		return nil, fmt.Errorf("%w: at least one service is required", ErrInvalidRequest)
	}

	if err := ensureStaff(ctx, s.Catalog, staffID); err != nil {
		return nil, err
	}
	services, err := loadServices(ctx, s.Catalog, serviceIDs)
	if err != nil {
		return nil, err
	}

	schedule, err := s.Schedules.GetDaySchedule(ctx, staffID, date)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrInvalidDate) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		s.Logger.Error("Failed to load day schedule", zap.String("staffId", staffID), zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	duration := SumDurations(services)
	slots := ComputeAvailableSlots(duration, schedule, s.StepMinutes)

	s.Logger.Debug("Computed available slots",
		zap.String("staffId", staffID),
		zap.String("date", date),
		zap.Int("duration", duration),
		zap.Int("booked", len(schedule.Booked)),
		zap.Int("slots", len(slots)),
	)

	return &models.AvailabilityResult{
		StaffID:       staffID,
		Date:          date,
		TotalDuration: duration,
		TotalPrice:    SumPrices(services),
		Slots:         slots,
		Groups:        GroupSlotsByHour(slots),
		Labels:        SlotLabels(slots),
	}, nil
}

func ensureStaff(ctx context.Context, catalog catalogRepo.CatalogProvider, staffID string) error {
	_, err := loadStaff(ctx, catalog, staffID)
	return err
}

// loadStaff treats an inactive staff member as missing.
func loadStaff(ctx context.Context, catalog catalogRepo.CatalogProvider, staffID string) (*models.Staff, error) {
	staff, err := catalog.GetStaff(ctx, staffID)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && !staff.IsActive) {
		return nil, fmt.Errorf("%w: %s", ErrStaffNotFound, staffID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	return staff, nil
}

func loadServices(ctx context.Context, catalog catalogRepo.CatalogProvider, ids []string) ([]models.Service, error) {
	services, err := catalog.GetServicesByIDs(ctx, ids)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	return services, nil
}

func loadProducts(ctx context.Context, catalog catalogRepo.CatalogProvider, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	products, err := catalog.GetProductsByIDs(ctx, ids)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %v", ErrProductNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
