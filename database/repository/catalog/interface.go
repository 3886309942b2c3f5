package catalogRepo

import (
	"context"

	"salonbook/models"
)

// CatalogProvider is the read/write surface of the salon catalogue.
// Lookups of missing records return an error wrapping mongo.ErrNoDocuments.
type CatalogProvider interface {
	// ListServices returns active services. A non-empty gender keeps services for that gender and unisex ones.
	ListServices(ctx context.Context, gender string) ([]models.Service, error)
	// ListAllServices includes inactive services (admin view).
	ListAllServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	// GetServicesByIDs returns one active service per requested ID, in request order.
	GetServicesByIDs(ctx context.Context, ids []string) ([]models.Service, error)
	CreateService(ctx context.Context, service *models.Service) error
	UpdateService(ctx context.Context, service *models.Service) error
	SetServiceActive(ctx context.Context, id string, active bool) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	// GetProductsByIDs returns one product per requested ID; repeated IDs repeat the product.
	GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error)

	ListStaff(ctx context.Context) ([]models.Staff, error)
	GetStaff(ctx context.Context, id string) (*models.Staff, error)
}
