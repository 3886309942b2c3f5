package userRepo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

// MemoryProfileRepo is an in-memory ProfileRepository for tests and demo mode.
type MemoryProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
}

func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (m *MemoryProfileRepo) Create(_ context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	profile.Email = strings.ToLower(profile.Email)
	for _, p := range m.profiles {
		if p.Email == profile.Email {
			return ErrEmailExists
		}
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	stored := *profile
	m.profiles[profile.ID] = &stored
	return nil
}

func (m *MemoryProfileRepo) GetByID(_ context.Context, id string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, mongo.ErrNoDocuments)
	}
	out := *p
	return &out, nil
}

func (m *MemoryProfileRepo) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email = strings.ToLower(email)
	for _, p := range m.profiles {
		if p.Email == email {
			out := *p
			return &out, nil
		}
	}
	return nil, nil
}

func (m *MemoryProfileRepo) Update(_ context.Context, id string, update models.ProfileUpdate) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %s: %w", id, mongo.ErrNoDocuments)
	}
	if update.FullName != nil {
		p.FullName = *update.FullName
	}
	if update.Phone != nil {
		p.Phone = *update.Phone
	}
	if update.AvatarURL != nil {
		p.AvatarURL = *update.AvatarURL
	}
	p.UpdatedAt = time.Now()
	out := *p
	return &out, nil
}

func (m *MemoryProfileRepo) SetTokenHash(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[id]
	if !ok {
		return fmt.Errorf("profile %s: %w", id, mongo.ErrNoDocuments)
	}
	p.TokenHash = hash
	return nil
}

func (m *MemoryProfileRepo) IncrementPoints(_ context.Context, id string, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[id]
	if !ok {
		return 0, fmt.Errorf("profile %s: %w", id, mongo.ErrNoDocuments)
	}
	p.LoyaltyPoints += delta
	return p.LoyaltyPoints, nil
}

func (m *MemoryProfileRepo) DecrementPointsIfEnough(_ context.Context, id string, points int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[id]
	if !ok {
		return 0, fmt.Errorf("profile %s: %w", id, mongo.ErrNoDocuments)
	}
	if p.LoyaltyPoints < points {
		return p.LoyaltyPoints, ErrInsufficientPoints
	}
	p.LoyaltyPoints -= points
	return p.LoyaltyPoints, nil
}
