package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "salonbook/database/repository/catalog"
	"salonbook/models"
	"salonbook/utils"
)

// DefaultCartTTL applies when no TTL is configured.
const DefaultCartTTL = 24 * time.Hour

// RedisCartService stores one JSON cart per customer under cart:<userID>.
type RedisCartService struct {
	Cache   *redis.Client
	Catalog catalogRepo.CatalogProvider
	TTL     time.Duration
	Logger  *zap.Logger
}

func cartKey(userID string) string {
	return utils.CartPrefix + userID
}

func (s *RedisCartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := s.Cache.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return emptyCart(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		s.Logger.Warn("Discarding unreadable cart", zap.String("userId", userID), zap.Error(err))
		return emptyCart(userID), nil
	}
	return &cart, nil
}

func (s *RedisCartService) AddService(ctx context.Context, userID, serviceID string) (*models.Cart, error) {
	services, err := loadServices(ctx, s.Catalog, []string{serviceID})
	if err != nil {
		return nil, err
	}
	return s.update(ctx, userID, func(cart *models.Cart) {
		for _, existing := range cart.Services {
			if existing.ID == serviceID {
				return
			}
		}
		cart.Services = append(cart.Services, services[0])
	})
}

func (s *RedisCartService) RemoveService(ctx context.Context, userID, serviceID string) (*models.Cart, error) {
	return s.update(ctx, userID, func(cart *models.Cart) {
		kept := cart.Services[:0]
		for _, existing := range cart.Services {
			if existing.ID != serviceID {
				kept = append(kept, existing)
			}
		}
		cart.Services = kept
	})
}

// AddProduct appends the product; adding it twice means quantity two.
func (s *RedisCartService) AddProduct(ctx context.Context, userID, productID string) (*models.Cart, error) {
	products, err := loadProducts(ctx, s.Catalog, []string{productID})
	if err != nil {
		return nil, err
	}
	return s.update(ctx, userID, func(cart *models.Cart) {
		cart.Products = append(cart.Products, products[0])
	})
}

// RemoveProduct removes a single instance of the product.
func (s *RedisCartService) RemoveProduct(ctx context.Context, userID, productID string) (*models.Cart, error) {
	return s.update(ctx, userID, func(cart *models.Cart) {
		for i, p := range cart.Products {
			if p.ID == productID {
				cart.Products = append(cart.Products[:i], cart.Products[i+1:]...)
				return
			}
		}
	})
}

func (s *RedisCartService) SetSchedule(ctx context.Context, userID, staffID, date, startTime string) (*models.Cart, error) {
	if !utils.IsDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidRequest)
	}
	if !utils.IsClock(startTime) {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidRequest)
	}
	if staffID != "" {
		if err := ensureStaff(ctx, s.Catalog, staffID); err != nil {
			return nil, err
		}
	}
	return s.update(ctx, userID, func(cart *models.Cart) {
		if staffID != "" {
			cart.StaffID = staffID
		}
		cart.SelectedDate = date
		cart.SelectedTime = startTime
	})
}

func (s *RedisCartService) Reset(ctx context.Context, userID string) error {
	if err := s.Cache.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to reset cart: %w", err)
	}
	return nil
}

func (s *RedisCartService) update(ctx context.Context, userID string, mutate func(*models.Cart)) (*models.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	mutate(cart)
	cart.TotalDuration = SumDurations(cart.Services)
	cart.CartTotal = SumPrices(cart.Services) + SumProductPrices(cart.Products)
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cart: %w", err)
	}
	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	if err := s.Cache.Set(ctx, cartKey(userID), data, ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store cart: %w", err)
	}
	return cart, nil
}

func emptyCart(userID string) *models.Cart {
	return &models.Cart{
		UserID:   userID,
		Services: []models.Service{},
		Products: []models.Product{},
	}
}
