package loyalty

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	recordsRepo "salonbook/database/repository/records"
	userRepo "salonbook/database/repository/user"
	"salonbook/metrics"
	"salonbook/models"
)

var (
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
	ErrInvalidPoints      = errors.New("points must be positive")
)

// InsufficientPointsError carries the balance a redemption was checked against.
type InsufficientPointsError struct {
	Balance   int
	Requested int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("Insufficient points. You have %d points, but tried to redeem %d.", e.Balance, e.Requested)
}

func (e *InsufficientPointsError) Unwrap() error { return ErrInsufficientPoints }

// Service manages point balances and their history.
type Service struct {
	profiles userRepo.ProfileRepository
	history  recordsRepo.LoyaltyHistoryRepository
	metrics  *metrics.BookingMetrics
	logger   *zap.Logger
}

func NewService(profiles userRepo.ProfileRepository, history recordsRepo.LoyaltyHistoryRepository, m *metrics.BookingMetrics, logger *zap.Logger) *Service {
	return &Service{profiles: profiles, history: history, metrics: m, logger: logger}
}

// AddPoints credits points and records why. It returns the new balance.
func (s *Service) AddPoints(ctx context.Context, userID string, points int, reason, appointmentID string) (int, error) {
	if points <= 0 {
		return 0, ErrInvalidPoints
	}
	balance, err := s.profiles.IncrementPoints(ctx, userID, points)
	if err != nil {
		return 0, fmt.Errorf("failed to add points: %w", err)
	}
	s.record(ctx, userID, points, reason, appointmentID)
	s.metrics.AddPointsAwarded(points)
	return balance, nil
}

// Redeem spends points and returns the discount they are worth in cents.
func (s *Service) Redeem(ctx context.Context, userID string, points int, appointmentID string) (int64, error) {
	if points <= 0 {
		return 0, ErrInvalidPoints
	}
	balance, err := s.profiles.DecrementPointsIfEnough(ctx, userID, points)
	if errors.Is(err, userRepo.ErrInsufficientPoints) {
		return 0, &InsufficientPointsError{Balance: balance, Requested: points}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to redeem points: %w", err)
	}
	s.record(ctx, userID, -points, fmt.Sprintf("Redeemed %d points for discount", points), appointmentID)
	return PointsDiscount(points), nil
}

// CheckRedeemable verifies the balance covers points without changing it.
func (s *Service) CheckRedeemable(ctx context.Context, userID string, points int) error {
	if points == 0 {
		return nil
	}
	if points < 0 {
		return ErrInvalidPoints
	}
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if profile.LoyaltyPoints < points {
		return &InsufficientPointsError{Balance: profile.LoyaltyPoints, Requested: points}
	}
	return nil
}

// Summary returns the customer's tier, progress and benefits.
func (s *Service) Summary(ctx context.Context, userID string) (*models.LoyaltySummary, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return BuildSummary(profile.LoyaltyPoints), nil
}

// BuildSummary derives the customer-facing loyalty view from a balance.
func BuildSummary(points int) *models.LoyaltySummary {
	tier := TierFor(points)
	emoji, color, name := Badge(tier)
	summary := &models.LoyaltySummary{
		Points:       points,
		Tier:         tier,
		Discount:     Discount(tier),
		Badge:        models.TierBadge{Emoji: emoji, Color: color, Name: name},
		Benefits:     Benefits(tier),
		FormattedPts: FormatPoints(points),
	}
	if next, needed, pct, ok := NextTier(points); ok {
		summary.Next = &models.NextTierInfo{NextTier: next, PointsNeeded: needed, ProgressPercent: pct}
	}
	return summary
}

func (s *Service) History(ctx context.Context, userID string, limit int64) ([]models.LoyaltyEntry, error) {
	entries, err := s.history.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load loyalty history: %w", err)
	}
	return entries, nil
}

// the balance is authoritative; a lost history row is logged, not returned
func (s *Service) record(ctx context.Context, userID string, change int, reason, appointmentID string) {
	entry := &models.LoyaltyEntry{
		UserID:        userID,
		PointsChange:  change,
		Reason:        reason,
		AppointmentID: appointmentID,
	}
	if err := s.history.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to record loyalty history",
			zap.String("userId", userID),
			zap.Int("change", change),
			zap.Error(err),
		)
	}
}
