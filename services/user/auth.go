package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"
)

var (
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// VerifyPasswordComplexity requires at least 8 characters mixing upper case, lower case and digits.
func VerifyPasswordComplexity(pw string) error {
	switch {
	case len(pw) < 8:
		return fmt.Errorf("%w: must be at least 8 characters long", ErrWeakPassword)
	case !hasUpper.MatchString(pw):
		return fmt.Errorf("%w: must include at least one uppercase letter", ErrWeakPassword)
	case !hasLower.MatchString(pw):
		return fmt.Errorf("%w: must include at least one lowercase letter", ErrWeakPassword)
	case !hasNumber.MatchString(pw):
		return fmt.Errorf("%w: must include at least one number", ErrWeakPassword)
	}
	return nil
}

// SignUp creates a customer profile and signs it in.
func (s *DefaultUserService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: email and full name are required", ErrInvalidProfile)
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		s.Logger.Error("Failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	profile := &models.Profile{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         models.RoleCustomer,
		PasswordHash: string(hashed),
		NotificationPreferences: models.NotificationPreferences{
			AppointmentReminders: true,
		},
	}
	if err := s.Repo.Create(ctx, profile); err != nil {
		// lost a race with a concurrent sign up
		if errors.Is(err, userRepo.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		s.Logger.Error("Failed to create profile", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	s.Logger.Info("Customer registered", zap.String("userId", profile.ID))
	return s.issueToken(ctx, profile)
}

// SignIn verifies credentials and rotates the session token.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	profile, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		s.Logger.Error("Failed to fetch user for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, profile)
}

// SignOut clears the token hash from the profile and the auth cache.
func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	if err := s.Repo.SetTokenHash(ctx, userID, ""); err != nil {
		s.Logger.Error("Failed to revoke auth token", zap.String("userId", userID), zap.Error(err))
		return fmt.Errorf("failed to logout, please try again")
	}
	s.clearCache(ctx, userID)
	return nil
}

func (s *DefaultUserService) issueToken(ctx context.Context, profile *models.Profile) (*models.AuthResponse, error) {
	token, err := s.Tokens.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		s.Logger.Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, profile.ID, hash); err != nil {
		s.Logger.Error("Failed to store token hash", zap.String("userId", profile.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	profile.TokenHash = hash
	// the previous token's cache entry must not outlive the rotation
	s.clearCache(ctx, profile.ID)

	return &models.AuthResponse{Token: token, Profile: *profile}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
