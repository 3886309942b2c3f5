package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	catalogRepo "salonbook/database/repository/catalog"
	"salonbook/models"
)

var (
	ErrNotFound       = errors.New("catalog item not found")
	ErrInvalidService = errors.New("invalid service")
	ErrInvalidGender  = errors.New("gender must be male, female or unisex")
)

// CatalogService serves the salon's services, products and staff.
type CatalogService interface {
	ListServices(ctx context.Context, gender string) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)

	// Admin management.
	ListAllServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, service models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, id string, service models.Service) (*models.Service, error)
	SetServiceActive(ctx context.Context, id string, active bool) (*models.Service, error)
}

type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogProvider
	Logger *zap.Logger
}

// ListServices returns active services ordered by category; gender may be empty.
func (s *DefaultCatalogService) ListServices(ctx context.Context, gender string) ([]models.Service, error) {
	gender = strings.ToLower(strings.TrimSpace(gender))
	if gender != "" && !validGender(gender) {
		return nil, ErrInvalidGender
	}
	services, err := s.Repo.ListServices(ctx, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// GetService hides inactive services from customers.
func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.GetService(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && !svc.IsActive) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *DefaultCatalogService) ListStaff(ctx context.Context) ([]models.Staff, error) {
	staff, err := s.Repo.ListStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *DefaultCatalogService) ListAllServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.Repo.ListAllServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, service models.Service) (*models.Service, error) {
	normalizeService(&service)
	if err := validateService(service); err != nil {
		return nil, err
	}
	service.ID = uuid.New().String()
	service.IsActive = true
	if err := s.Repo.CreateService(ctx, &service); err != nil {
		s.Logger.Error("Failed to create service", zap.String("name", service.Name), zap.Error(err))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	s.Logger.Info("Service created", zap.String("serviceId", service.ID), zap.String("name", service.Name))
	return &service, nil
}

// UpdateService replaces the editable fields of service id; the active flag is left as is.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, id string, service models.Service) (*models.Service, error) {
	existing, err := s.Repo.GetService(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	normalizeService(&service)
	if err := validateService(service); err != nil {
		return nil, err
	}
	service.ID = id
	service.IsActive = existing.IsActive
	if err := s.Repo.UpdateService(ctx, &service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &service, nil
}

func (s *DefaultCatalogService) SetServiceActive(ctx context.Context, id string, active bool) (*models.Service, error) {
	if err := s.Repo.SetServiceActive(ctx, id, active); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to toggle service: %w", err)
	}
	s.Logger.Info("Service availability changed", zap.String("serviceId", id), zap.Bool("active", active))

	svc, err := s.Repo.GetService(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	return svc, nil
}

func normalizeService(svc *models.Service) {
	svc.Name = strings.TrimSpace(svc.Name)
	svc.Category = strings.ToLower(strings.TrimSpace(svc.Category))
	svc.Gender = strings.ToLower(strings.TrimSpace(svc.Gender))
	if svc.Gender == "" {
		svc.Gender = models.GenderUnisex
	}
}

func validateService(svc models.Service) error {
	switch {
	case svc.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidService)
	case svc.DurationMin <= 0:
		return fmt.Errorf("%w: duration must be positive", ErrInvalidService)
	case svc.Price < 0:
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidService)
	case svc.Category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidService)
	case !validGender(svc.Gender):
		return ErrInvalidGender
	}
	return nil
}

func validGender(g string) bool {
	return g == models.GenderMale || g == models.GenderFemale || g == models.GenderUnisex
}
