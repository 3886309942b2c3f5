package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appointmentRepo "salonbook/database/repository/appointment"
	catalogRepo "salonbook/database/repository/catalog"
	recordsRepo "salonbook/database/repository/records"
	scheduleRepo "salonbook/database/repository/schedule"
	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/services/loyalty"
	"salonbook/services/payment"
)

// a Friday, open 09:00-19:00 with lunch 13:00-14:00 in the demo hours
const openFriday = "2025-03-14"

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

type outbox struct {
	sent []models.EmailMessage
}

func (o *outbox) Send(_ context.Context, msg models.EmailMessage) error {
	o.sent = append(o.sent, msg)
	return nil
}

type harness struct {
	catalog      *catalogRepo.FixtureCatalog
	appointments *appointmentRepo.MemoryAppointmentRepo
	profiles     *userRepo.MemoryProfileRepo
	history      *recordsRepo.MemoryLoyaltyHistory
	gateway      *payment.FakeGateway
	mail         *outbox
	redis        *miniredis.Miniredis
	schedules    *scheduleRepo.FixtureScheduleStore
	cart         *RedisCartService
	availability *DefaultAvailabilityService
	checkout     *DefaultCheckoutService
	customer     *models.Profile
}

func newHarness(t *testing.T, points int) *harness {
	t.Helper()
	logger := zap.NewNop()
	mr, client := setupTestRedis(t)

	h := &harness{
		catalog:      catalogRepo.DemoCatalog(),
		appointments: appointmentRepo.NewMemoryAppointmentRepo(),
		profiles:     userRepo.NewMemoryProfileRepo(),
		history:      recordsRepo.NewMemoryLoyaltyHistory(),
		gateway:      payment.NewFakeGateway(),
		mail:         &outbox{},
		redis:        mr,
	}

	var schedules []models.StaffSchedule
	for _, s := range catalogRepo.DemoStaff() {
		schedules = append(schedules, models.StaffSchedule{StaffID: s.ID, WeeklyHours: scheduleRepo.DemoWeeklyHours()})
	}
	store := scheduleRepo.NewFixtureScheduleStore(h.appointments, time.UTC, schedules...)
	h.schedules = store

	h.customer = &models.Profile{
		Email:         "anna@example.com",
		FullName:      "Anna Rossi",
		Role:          models.RoleCustomer,
		LoyaltyPoints: points,
	}
	require.NoError(t, h.profiles.Create(context.Background(), h.customer))

	h.cart = &RedisCartService{Cache: client, Catalog: h.catalog, TTL: time.Hour, Logger: logger}
	h.availability = &DefaultAvailabilityService{
		Catalog:     h.catalog,
		Schedules:   store,
		StepMinutes: 15,
		Logger:      logger,
	}
	h.checkout = &DefaultCheckoutService{
		Catalog:            h.catalog,
		Schedules:          store,
		Appointments:       h.appointments,
		Profiles:           h.profiles,
		Loyalty:            loyalty.NewService(h.profiles, h.history, nil, logger),
		Payments:           h.gateway,
		Cart:               h.cart,
		Email:              h.mail,
		Locker:             &SlotLocker{Cache: client, TTL: 10 * time.Second},
		StepMinutes:        15,
		OnlineDiscountRate: DefaultOnlineDiscountRate,
		Logger:             logger,
	}
	return h
}

func (h *harness) balance(t *testing.T) int {
	t.Helper()
	p, err := h.profiles.GetByID(context.Background(), h.customer.ID)
	require.NoError(t, err)
	return p.LoyaltyPoints
}

func (h *harness) request(startTime, method string, serviceIDs ...string) models.CheckoutRequest {
	return models.CheckoutRequest{
		UserID:        h.customer.ID,
		StaffID:       "staff-giulia",
		Date:          openFriday,
		StartTime:     startTime,
		ServiceIDs:    serviceIDs,
		PaymentMethod: method,
	}
}
