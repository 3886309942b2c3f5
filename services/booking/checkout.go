package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appointmentRepo "salonbook/database/repository/appointment"
	catalogRepo "salonbook/database/repository/catalog"
	scheduleRepo "salonbook/database/repository/schedule"
	userRepo "salonbook/database/repository/user"
	"salonbook/metrics"
	"salonbook/models"
	"salonbook/services/loyalty"
	"salonbook/services/notification"
	"salonbook/services/payment"
	"salonbook/services/tasks"
	"salonbook/utils"
)

// DefaultCheckoutService turns a validated selection into a stored appointment.
type DefaultCheckoutService struct {
	Catalog            catalogRepo.CatalogProvider
	Schedules          scheduleRepo.ScheduleProvider
	Appointments       appointmentRepo.AppointmentRepository
	Profiles           userRepo.ProfileRepository
	Loyalty            *loyalty.Service
	Payments           payment.Gateway
	Cart               CartService
	Email              notification.EmailSender
	Locker             *SlotLocker
	Tasks              tasks.Scheduler
	StepMinutes        int
	OnlineDiscountRate float64
	Metrics            *metrics.BookingMetrics
	Logger             *zap.Logger
}

// order is everything checkout needs after loading the request's references.
type order struct {
	staff    *models.Staff
	services []models.Service
	products []models.Product
	profile  *models.Profile
	pricing  models.PriceBreakdown
}

// Quote prices the request for its customer without side effects.
func (s *DefaultCheckoutService) Quote(ctx context.Context, req models.CheckoutRequest) (*models.PriceBreakdown, error) {
	o, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	return &o.pricing, nil
}

func (s *DefaultCheckoutService) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	result, err := s.checkout(ctx, req)
	if err != nil {
		s.Metrics.ObserveCheckout(req.PaymentMethod, checkoutStatus(err))
		return nil, err
	}
	s.Metrics.ObserveCheckout(req.PaymentMethod, result.Appointment.Status)
	return result, nil
}

func (s *DefaultCheckoutService) checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	o, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	release, err := s.Locker.Acquire(ctx, req.StaffID, req.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	// re-read the day under the lock; the client's slot list may be stale
	schedule, err := s.Schedules.GetDaySchedule(ctx, req.StaffID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	start, err := startInstant(schedule, req.Date, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCheckout, err)
	}
	if !IsSlotAvailable(start, o.pricing.TotalDuration, schedule, s.StepMinutes) {
		s.Logger.Info("Rejected checkout for taken slot",
			zap.String("staffId", req.StaffID),
			zap.String("date", req.Date),
			zap.String("startTime", req.StartTime),
		)
		return nil, ErrSlotUnavailable
	}

	appt := &models.Appointment{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		StaffID:        req.StaffID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        utils.FormatEndClock(start, start.Add(time.Duration(o.pricing.TotalDuration)*time.Minute)),
		Services:       snapshotServices(o.services),
		Products:       snapshotProducts(o.products),
		TotalPrice:     o.pricing.Total,
		TotalDuration:  o.pricing.TotalDuration,
		PointsRedeemed: o.pricing.PointsRedeemed,
		Notes:          req.Notes,
	}

	// points go first so a drained balance fails before any money moves
	if o.pricing.PointsRedeemed > 0 {
		if _, err := s.Loyalty.Redeem(ctx, req.UserID, o.pricing.PointsRedeemed, appt.ID); err != nil {
			return nil, err
		}
	}

	intent, err := s.settlePayment(ctx, req, appt)
	if err != nil {
		s.refundPoints(ctx, req.UserID, o.pricing.PointsRedeemed)
		return nil, err
	}

	if err := s.Appointments.Create(ctx, appt); err != nil {
		s.refundPoints(ctx, req.UserID, o.pricing.PointsRedeemed)
		if errors.Is(err, appointmentRepo.ErrDuplicatePaymentIntent) {
			return nil, ErrPaymentIntentUsed
		}
		fields := []zap.Field{zap.String("userId", req.UserID), zap.Error(err)}
		if appt.PaymentStatus == models.PaymentPaid && appt.StripePaymentIntentID != "" {
			// the customer has paid for a booking that does not exist
			fields = append(fields, zap.String("paymentIntentId", appt.StripePaymentIntentID), zap.Int64("amount", appt.TotalPrice))
		}
		s.Logger.Error("Failed to create appointment", fields...)
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	earned := 0
	awaitingPayment := appt.PaymentMethod == models.PaymentOnline && appt.PaymentStatus == models.PaymentPending
	if o.pricing.PointsToEarn > 0 && !awaitingPayment {
		if _, err := s.Loyalty.AddPoints(ctx, req.UserID, o.pricing.PointsToEarn, fmt.Sprintf("Booking %s", appt.Date), appt.ID); err != nil {
			s.Logger.Error("Failed to award loyalty points", zap.String("appointmentId", appt.ID), zap.Error(err))
		} else {
			earned = o.pricing.PointsToEarn
		}
	}

	s.sendConfirmation(ctx, o, appt)
	if s.Tasks != nil {
		s.Tasks.AppointmentBooked(ctx, *appt, *o.profile)
	}
	if s.Cart != nil {
		if err := s.Cart.Reset(ctx, req.UserID); err != nil {
			s.Logger.Warn("Failed to reset cart after checkout", zap.String("userId", req.UserID), zap.Error(err))
		}
	}

	s.Logger.Info("Appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("userId", appt.UserID),
		zap.String("staffId", appt.StaffID),
		zap.String("date", appt.Date),
		zap.String("startTime", appt.StartTime),
		zap.String("status", appt.Status),
		zap.Int64("total", appt.TotalPrice),
	)

	return &models.CheckoutResult{
		Appointment:   *appt,
		Pricing:       o.pricing,
		PaymentIntent: intent,
		PointsEarned:  earned,
		Message:       checkoutMessage(appt, earned),
	}, nil
}

// prepare validates req and loads everything needed to price it.
func (s *DefaultCheckoutService) prepare(ctx context.Context, req models.CheckoutRequest) (*order, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	staff, err := loadStaff(ctx, s.Catalog, req.StaffID)
	if err != nil {
		return nil, err
	}
	services, err := loadServices(ctx, s.Catalog, dedupe(req.ServiceIDs))
	if err != nil {
		return nil, err
	}
	products, err := loadProducts(ctx, s.Catalog, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	profile, err := s.Profiles.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if req.RedeemPoints > profile.LoyaltyPoints {
		return nil, &loyalty.InsufficientPointsError{Balance: profile.LoyaltyPoints, Requested: req.RedeemPoints}
	}

	subtotal := SumPrices(services) + SumProductPrices(products)
	pricing := ComputePricing(subtotal, SumDurations(services), profile.LoyaltyPoints,
		req.PaymentMethod == models.PayNow, s.OnlineDiscountRate, req.RedeemPoints)

	return &order{staff: staff, services: services, products: products, profile: profile, pricing: pricing}, nil
}

// settlePayment fills the appointment's status fields. A pay-now order without a verified intent
// gets a fresh intent and stays pending until the client completes it.
func (s *DefaultCheckoutService) settlePayment(ctx context.Context, req models.CheckoutRequest, appt *models.Appointment) (*models.PaymentIntentResult, error) {
	if req.PaymentMethod == models.PayInStore {
		appt.Status = models.StatusPending
		appt.PaymentMethod = models.PaymentInPerson
		appt.PaymentStatus = models.PaymentPending
		return nil, nil
	}

	appt.PaymentMethod = models.PaymentOnline
	switch {
	case appt.TotalPrice == 0:
		appt.Status = models.StatusConfirmed
		appt.PaymentStatus = models.PaymentPaid
		return nil, nil

	case req.PaymentIntentID != "":
		used, err := s.Appointments.GetByPaymentIntent(ctx, req.PaymentIntentID)
		switch {
		case err == nil:
			s.Logger.Warn("Rejected reused payment intent",
				zap.String("paymentIntentId", req.PaymentIntentID),
				zap.String("userId", req.UserID),
				zap.String("appointmentId", used.ID),
			)
			return nil, ErrPaymentIntentUsed
		case !errors.Is(err, mongo.ErrNoDocuments):
			return nil, fmt.Errorf("failed to check payment intent: %w", err)
		}
		if err := s.Payments.VerifyPaymentIntent(ctx, req.PaymentIntentID, req.UserID, appt.TotalPrice); err != nil {
			s.Logger.Warn("Payment intent failed verification",
				zap.String("paymentIntentId", req.PaymentIntentID),
				zap.Int64("amount", appt.TotalPrice),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %v", ErrPaymentNotVerified, err)
		}
		appt.Status = models.StatusConfirmed
		appt.PaymentStatus = models.PaymentPaid
		appt.StripePaymentIntentID = req.PaymentIntentID
		return nil, nil

	default:
		intent, err := s.Payments.CreatePaymentIntent(ctx, models.PaymentIntentRequest{
			Amount: appt.TotalPrice,
			Metadata: map[string]string{
				"userId":    req.UserID,
				"staffId":   req.StaffID,
				"date":      req.Date,
				"startTime": req.StartTime,
			},
		})
		if err != nil {
			s.Metrics.ObservePaymentIntent("error")
			return nil, fmt.Errorf("%w: %v", ErrPaymentNotVerified, err)
		}
		s.Metrics.ObservePaymentIntent("created")
		appt.Status = models.StatusPending
		appt.PaymentStatus = models.PaymentPending
		appt.StripePaymentIntentID = intent.PaymentIntentID
		return intent, nil
	}
}

func (s *DefaultCheckoutService) refundPoints(ctx context.Context, userID string, points int) {
	if points <= 0 {
		return
	}
	if _, err := s.Loyalty.AddPoints(ctx, userID, points, "Refund for failed booking", ""); err != nil {
		s.Logger.Error("Failed to refund redeemed points",
			zap.String("userId", userID),
			zap.Int("points", points),
			zap.Error(err),
		)
	}
}

func (s *DefaultCheckoutService) sendConfirmation(ctx context.Context, o *order, appt *models.Appointment) {
	if s.Email == nil {
		return
	}
	msg := notification.BookingConfirmation(*o.profile, *appt, o.staff.Name, FormatEuro)
	if err := s.Email.Send(ctx, msg); err != nil {
		s.Logger.Error("Failed to send booking confirmation",
			zap.String("appointmentId", appt.ID),
			zap.String("to", msg.To),
			zap.Error(err),
		)
	}
}

func validateCheckout(req models.CheckoutRequest) error {
	switch {
	case req.UserID == "":
		return fmt.Errorf("%w: missing customer", ErrInvalidCheckout)
	case req.StaffID == "":
		return fmt.Errorf("%w: staffId is required", ErrInvalidCheckout)
	case !utils.IsDate(req.Date):
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidCheckout)
	case !utils.IsClock(req.StartTime):
		return fmt.Errorf("%w: startTime must be HH:MM", ErrInvalidCheckout)
	case len(dedupe(req.ServiceIDs)) == 0:
		return fmt.Errorf("%w: at least one service is required", ErrInvalidCheckout)
	case req.PaymentMethod != models.PayNow && req.PaymentMethod != models.PayInStore:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidCheckout, req.PaymentMethod)
	case req.RedeemPoints < 0:
		return fmt.Errorf("%w: redeemPoints cannot be negative", ErrInvalidCheckout)
	}
	return nil
}

// startInstant places "HH:MM" on date in the schedule's time zone.
func startInstant(schedule models.DaySchedule, date, clock string) (time.Time, error) {
	loc := schedule.WorkStart.Location()
	day, err := utils.ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return utils.AtClock(day, clock)
}

func snapshotServices(services []models.Service) []models.AppointmentService {
	out := make([]models.AppointmentService, len(services))
	for i, svc := range services {
		out[i] = models.AppointmentService{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       svc.Price,
			DurationMin: svc.DurationMin,
		}
	}
	return out
}

// snapshotProducts folds repeated products into one line with a quantity.
func snapshotProducts(products []models.Product) []models.AppointmentProduct {
	var out []models.AppointmentProduct
	index := make(map[string]int)
	for _, p := range products {
		if i, ok := index[p.ID]; ok {
			out[i].Quantity++
			continue
		}
		index[p.ID] = len(out)
		out = append(out, models.AppointmentProduct{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    1,
		})
	}
	return out
}

func checkoutMessage(appt *models.Appointment, earned int) string {
	msg := "Appointment booked!"
	switch {
	case appt.Status == models.StatusConfirmed:
		msg = "Appointment confirmed!"
	case appt.PaymentMethod == models.PaymentOnline:
		msg = "Appointment reserved. Complete the payment to confirm it."
	}
	if earned > 0 {
		msg += fmt.Sprintf(" You earned %s loyalty points!", loyalty.FormatPoints(earned))
	}
	return msg
}

func checkoutStatus(err error) string {
	switch {
	case errors.Is(err, ErrSlotUnavailable), errors.Is(err, ErrCheckoutInProgress):
		return "conflict"
	case errors.Is(err, ErrPaymentNotVerified), errors.Is(err, ErrPaymentIntentUsed):
		return "payment_failed"
	case errors.Is(err, ErrInvalidCheckout), errors.Is(err, ErrStaffNotFound),
		errors.Is(err, ErrServiceNotFound), errors.Is(err, ErrProductNotFound),
		errors.Is(err, loyalty.ErrInsufficientPoints):
		return "rejected"
	}
	return "error"
}
