package catalogRepo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

// FixtureCatalog is an in-memory CatalogProvider for tests and demo mode.
type FixtureCatalog struct {
	mu       sync.RWMutex
	services []models.Service
	products []models.Product
	staff    []models.Staff
}

func NewFixtureCatalog(services []models.Service, products []models.Product, staff []models.Staff) *FixtureCatalog {
	return &FixtureCatalog{
		services: append([]models.Service(nil), services...),
		products: append([]models.Product(nil), products...),
		staff:    append([]models.Staff(nil), staff...),
	}
}

// DemoCatalog returns a small seeded salon catalogue.
func DemoCatalog() *FixtureCatalog {
	return NewFixtureCatalog(DemoServices(), DemoProducts(), DemoStaff())
}

func DemoServices() []models.Service {
	return []models.Service{
		{ID: "svc-cut-women", Name: "Taglio Donna", Description: "Shampoo, taglio e piega", DurationMin: 45, Price: 3500, Category: "hair", Gender: models.GenderFemale, IsActive: true, IsPopular: true},
		{ID: "svc-cut-men", Name: "Taglio Uomo", Description: "Taglio classico o fade", DurationMin: 30, Price: 2000, Category: "hair", Gender: models.GenderMale, IsActive: true, IsPopular: true},
		{ID: "svc-color", Name: "Colore", Description: "Colorazione completa", DurationMin: 90, Price: 6000, Category: "color", Gender: models.GenderFemale, IsActive: true},
		{ID: "svc-balayage", Name: "Balayage", Description: "Schiariture a mano libera", DurationMin: 120, Price: 9000, Category: "color", Gender: models.GenderFemale, IsActive: true},
		{ID: "svc-beard", Name: "Barba", Description: "Rifinitura barba con panno caldo", DurationMin: 15, Price: 1000, Category: "beard", Gender: models.GenderMale, IsActive: true},
		{ID: "svc-blowdry", Name: "Piega", Description: "Piega liscia o mossa", DurationMin: 30, Price: 2500, Category: "styling", Gender: models.GenderUnisex, IsActive: true},
		{ID: "svc-treatment", Name: "Trattamento Ristrutturante", Description: "Maschera alla cheratina", DurationMin: 20, Price: 1500, Category: "treatments", Gender: models.GenderUnisex, IsActive: true},
		{ID: "svc-perm", Name: "Permanente", Description: "Servizio sospeso", DurationMin: 90, Price: 5500, Category: "hair", Gender: models.GenderFemale, IsActive: false},
	}
}

func DemoProducts() []models.Product {
	return []models.Product{
		{ID: "prd-shampoo", Name: "Shampoo Nutriente", Description: "250ml", Price: 1800, Stock: 20, IsActive: true},
		{ID: "prd-mask", Name: "Maschera Idratante", Description: "200ml", Price: 2400, Stock: 12, IsActive: true},
		{ID: "prd-oil", Name: "Olio di Argan", Description: "100ml", Price: 2900, Stock: 8, IsActive: true},
		{ID: "prd-wax", Name: "Cera Opaca", Description: "75ml", Price: 1500, Stock: 0, IsActive: false},
	}
}

func DemoStaff() []models.Staff {
	return []models.Staff{
		{ID: "staff-giulia", Name: "Giulia", Role: "Senior Stylist", Rating: 4.9, ReviewCount: 128, Specialties: []string{"color", "balayage"}, IsActive: true},
		{ID: "staff-marco", Name: "Marco", Role: "Barber", Rating: 4.8, ReviewCount: 94, Specialties: []string{"fade", "beard"}, IsActive: true},
		{ID: "staff-sara", Name: "Sara", Role: "Stylist", Rating: 4.7, ReviewCount: 61, Specialties: []string{"cut", "styling"}, IsActive: true},
	}
}

func (f *FixtureCatalog) ListServices(_ context.Context, gender string) ([]models.Service, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := []models.Service{}
	for _, s := range f.services {
		if s.IsActive && matchesGender(s, gender) {
			out = append(out, s)
		}
	}
	sortServices(out)
	return out, nil
}

func (f *FixtureCatalog) ListAllServices(_ context.Context) ([]models.Service, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := append([]models.Service{}, f.services...)
	sortServices(out)
	return out, nil
}

func (f *FixtureCatalog) GetService(_ context.Context, id string) (*models.Service, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, s := range f.services {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, fmt.Errorf("service %s: %w", id, mongo.ErrNoDocuments)
}

func (f *FixtureCatalog) GetServicesByIDs(_ context.Context, ids []string) ([]models.Service, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return orderServices(f.services, ids)
}

func (f *FixtureCatalog) CreateService(_ context.Context, service *models.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	for _, s := range f.services {
		if s.ID == service.ID {
			return fmt.Errorf("service %s already exists", service.ID)
		}
	}
	f.services = append(f.services, *service)
	return nil
}

func (f *FixtureCatalog) UpdateService(_ context.Context, service *models.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, s := range f.services {
		if s.ID == service.ID {
			f.services[i] = *service
			return nil
		}
	}
	return fmt.Errorf("service %s: %w", service.ID, mongo.ErrNoDocuments)
}

func (f *FixtureCatalog) SetServiceActive(_ context.Context, id string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, s := range f.services {
		if s.ID == id {
			f.services[i].IsActive = active
			return nil
		}
	}
	return fmt.Errorf("service %s: %w", id, mongo.ErrNoDocuments)
}

func (f *FixtureCatalog) ListProducts(_ context.Context) ([]models.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := []models.Product{}
	for _, p := range f.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *FixtureCatalog) GetProduct(_ context.Context, id string) (*models.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, mongo.ErrNoDocuments)
}

func (f *FixtureCatalog) GetProductsByIDs(_ context.Context, ids []string) ([]models.Product, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return orderProducts(f.products, ids)
}

func (f *FixtureCatalog) ListStaff(_ context.Context) ([]models.Staff, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := []models.Staff{}
	for _, s := range f.staff {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *FixtureCatalog) GetStaff(_ context.Context, id string) (*models.Staff, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, s := range f.staff {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, fmt.Errorf("staff %s: %w", id, mongo.ErrNoDocuments)
}
