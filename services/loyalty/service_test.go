package loyalty

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	recordsRepo "salonbook/database/repository/records"
	userRepo "salonbook/database/repository/user"
	"salonbook/models"
)

func setupService(t *testing.T, points int) (*Service, string) {
	t.Helper()
	ctx := context.Background()
	profiles := userRepo.NewMemoryProfileRepo()
	p := &models.Profile{Email: "ada@example.com"}
	require.NoError(t, profiles.Create(ctx, p))
	if points > 0 {
		_, err := profiles.IncrementPoints(ctx, p.ID, points)
		require.NoError(t, err)
	}
	return NewService(profiles, recordsRepo.NewMemoryLoyaltyHistory(), nil, zap.NewNop()), p.ID
}

func TestService_AddPointsAndHistory(t *testing.T) {
	ctx := context.Background()
	svc, userID := setupService(t, 0)

	balance, err := svc.AddPoints(ctx, userID, 35, "Booking appointment", "appt-1")
	require.NoError(t, err)
	assert.Equal(t, 35, balance)

	history, err := svc.History(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 35, history[0].PointsChange)
	assert.Equal(t, "appt-1", history[0].AppointmentID)

	_, err = svc.AddPoints(ctx, userID, 0, "nothing", "")
	assert.ErrorIs(t, err, ErrInvalidPoints)
}

func TestService_Redeem(t *testing.T) {
	ctx := context.Background()
	svc, userID := setupService(t, 120)

	_, err := svc.Redeem(ctx, userID, 200, "")
	require.ErrorIs(t, err, ErrInsufficientPoints)
	var insufficient *InsufficientPointsError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 120, insufficient.Balance)
	assert.Equal(t, "Insufficient points. You have 120 points, but tried to redeem 200.", err.Error())

	discount, err := svc.Redeem(ctx, userID, 100, "")
	require.NoError(t, err)
	assert.Equal(t, int64(100), discount)

	summary, err := svc.Summary(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 20, summary.Points)

	history, err := svc.History(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, -100, history[0].PointsChange)
}

func TestService_CheckRedeemable(t *testing.T) {
	ctx := context.Background()
	svc, userID := setupService(t, 50)

	assert.NoError(t, svc.CheckRedeemable(ctx, userID, 0))
	assert.NoError(t, svc.CheckRedeemable(ctx, userID, 50))
	assert.ErrorIs(t, svc.CheckRedeemable(ctx, userID, 51), ErrInsufficientPoints)
	assert.ErrorIs(t, svc.CheckRedeemable(ctx, userID, -1), ErrInvalidPoints)
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(1250)
	assert.Equal(t, Platinum, s.Tier)
	assert.Nil(t, s.Next)
	assert.Equal(t, "1.250", s.FormattedPts)
	assert.Equal(t, "💎", s.Badge.Emoji)

	s = BuildSummary(150)
	assert.Equal(t, Silver, s.Tier)
	require.NotNil(t, s.Next)
	assert.Equal(t, Gold, s.Next.NextTier)
	assert.Equal(t, 150, s.Next.PointsNeeded)
	assert.Equal(t, 25, s.Next.ProgressPercent)
}
