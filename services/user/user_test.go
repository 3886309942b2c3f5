package user

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"
)

func setupService(t *testing.T) (*DefaultUserService, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &DefaultUserService{
		Repo:      userRepo.NewMemoryProfileRepo(),
		AuthCache: client,
		Tokens:    utils.NewTokenManager("test-secret", time.Hour),
		Logger:    zap.NewNop(),
	}, mr
}

func signUp(t *testing.T, svc *DefaultUserService) *models.AuthResponse {
	t.Helper()
	resp, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email:    "  Anna@Example.com ",
		Password: "Parrucchiere1",
		FullName: "Anna Rossi",
		Phone:    "+39 333 1234567",
	})
	require.NoError(t, err)
	return resp
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.NoError(t, VerifyPasswordComplexity("Parrucchiere1"))
	for _, pw := range []string{"Short1", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		assert.ErrorIs(t, VerifyPasswordComplexity(pw), ErrWeakPassword, pw)
	}
}

func TestSignUp(t *testing.T) {
	svc, _ := setupService(t)

	resp := signUp(t, svc)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "anna@example.com", resp.Profile.Email)
	assert.Equal(t, models.RoleCustomer, resp.Profile.Role)
	assert.Zero(t, resp.Profile.LoyaltyPoints)
	assert.True(t, resp.Profile.NotificationPreferences.AppointmentReminders)

	stored, err := svc.Repo.GetByID(context.Background(), resp.Profile.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Parrucchiere1", stored.PasswordHash)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc, _ := setupService(t)
	signUp(t, svc)

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{
		Email: "anna@example.com", Password: "Another123", FullName: "Anna Bianchi",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUp_Rejections(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, models.SignUpRequest{Email: "a@b.it", Password: "weak", FullName: "A"})
	assert.ErrorIs(t, err, ErrWeakPassword)
	_, err = svc.SignUp(ctx, models.SignUpRequest{Email: "a@b.it", Password: "Parrucchiere1", FullName: "  "})
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestSignIn(t *testing.T) {
	svc, _ := setupService(t)
	first := signUp(t, svc)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "anna@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.SignIn(ctx, "nobody@example.com", "Parrucchiere1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	resp, err := svc.SignIn(ctx, "ANNA@example.com", "Parrucchiere1")
	require.NoError(t, err)
	assert.Equal(t, first.Profile.ID, resp.Profile.ID)

	_, err = svc.Authenticate(ctx, first.Token)
	assert.ErrorIs(t, err, ErrUnauthorized, "signing in again rotates the token")
	session, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Profile.ID, session.UserID)
}

func TestAuthenticate_UsesCache(t *testing.T) {
	svc, mr := setupService(t)
	resp := signUp(t, svc)
	ctx := context.Background()

	session, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.False(t, session.IsAdmin())
	assert.True(t, mr.Exists(utils.AuthCachePrefix+resp.Profile.ID))
	assert.Equal(t, utils.AuthCacheTTL, mr.TTL(utils.AuthCachePrefix+resp.Profile.ID))

	_, err = svc.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)

	other := utils.NewTokenManager("other-secret", time.Hour)
	forged, err := other.GenerateToken(resp.Profile.ID, resp.Profile.Email)
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, forged)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSignOut(t *testing.T) {
	svc, mr := setupService(t)
	resp := signUp(t, svc)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, resp.Profile.ID))
	assert.False(t, mr.Exists(utils.AuthCachePrefix+resp.Profile.ID))

	_, err = svc.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProfile(t *testing.T) {
	svc, _ := setupService(t)
	resp := signUp(t, svc)
	ctx := context.Background()

	name, phone := " Anna Maria Rossi ", "+39 333 7654321"
	updated, err := svc.UpdateProfile(ctx, resp.Profile.ID, models.ProfileUpdate{FullName: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Anna Maria Rossi", updated.FullName)
	assert.Equal(t, phone, updated.Phone)

	profile, err := svc.GetProfile(ctx, resp.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna Maria Rossi", profile.FullName)

	blank := ""
	_, err = svc.UpdateProfile(ctx, resp.Profile.ID, models.ProfileUpdate{FullName: &blank})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
