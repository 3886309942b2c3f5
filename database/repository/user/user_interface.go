package userRepo

import (
	"context"
	"errors"

	"salonbook/models"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
)

// ProfileRepository defines methods for customer profile data access.
type ProfileRepository interface {
	// Create inserts a new profile; a duplicate email returns ErrEmailExists.
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	// GetByEmail returns nil, nil when no profile uses the email.
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Update(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error)
	// SetTokenHash stores the hash of the active session token; empty clears it.
	SetTokenHash(ctx context.Context, id, hash string) error
	// IncrementPoints atomically adds delta and returns the new balance.
	IncrementPoints(ctx context.Context, id string, delta int) (int, error)
	// DecrementPointsIfEnough atomically subtracts points when the balance covers them and returns the
	// new balance. Otherwise it returns ErrInsufficientPoints and the unchanged balance.
	DecrementPointsIfEnough(ctx context.Context, id string, points int) (int, error)
}
