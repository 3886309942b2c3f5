package catalogRepo

import (
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

func orderServices(found []models.Service, ids []string) ([]models.Service, error) {
	byID := make(map[string]models.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok || !s.IsActive {
			return nil, fmt.Errorf("service %s: %w", id, mongo.ErrNoDocuments)
		}
		out = append(out, s)
	}
	return out, nil
}

func orderProducts(found []models.Product, ids []string) ([]models.Product, error) {
	byID := make(map[string]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || !p.IsActive {
			return nil, fmt.Errorf("product %s: %w", id, mongo.ErrNoDocuments)
		}
		out = append(out, p)
	}
	return out, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func matchesGender(s models.Service, gender string) bool {
	return gender == "" || s.Gender == gender || s.Gender == models.GenderUnisex
}

// sortServices orders by category, then name.
func sortServices(services []models.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].Category != services[j].Category {
			return services[i].Category < services[j].Category
		}
		return services[i].Name < services[j].Name
	})
}
