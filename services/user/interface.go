package user

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	userRepo "salonbook/database/repository/user"
	"salonbook/models"
	"salonbook/utils"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password does not meet complexity requirements")
	ErrUnauthorized       = errors.New("session is not valid")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidProfile     = errors.New("invalid profile data")
)

// UserService defines business logic for customer accounts.
type UserService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error)
	// SignOut revokes the active token.
	SignOut(ctx context.Context, userID string) error
	// Authenticate resolves a bearer token to its session, rejecting revoked tokens.
	Authenticate(ctx context.Context, token string) (*Session, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error)
}

// Session is the authenticated caller.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	// TokenHash is the hash of the token the session was issued for.
	TokenHash string `json:"tokenHash"`
}

// IsAdmin reports whether the caller may use the admin API.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == models.RoleAdmin
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.ProfileRepository
	AuthCache *redis.Client
	Tokens    *utils.TokenManager
	Logger    *zap.Logger
}
