package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"salonbook/database"
	"salonbook/models"
)

type mongoCatalog struct {
	services *mongo.Collection
	products *mongo.Collection
	staff    *mongo.Collection
}

// NewMongoCatalog returns a CatalogProvider backed by the services, products and staff collections.
func NewMongoCatalog(db *mongo.Database, logger *zap.Logger) CatalogProvider {
	repo := &mongoCatalog{
		services: db.Collection(database.ServicesCollection),
		products: db.Collection(database.ProductsCollection),
		staff:    db.Collection(database.StaffCollection),
	}
	if err := repo.ensureIndexes(); err != nil {
		logger.Warn("Failed to create catalog indexes", zap.Error(err))
	}
	return repo
}

func (r *mongoCatalog) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}

	if _, err := r.services.Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique,
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "gender", Value: 1}, {Key: "category", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	if _, err := r.products.Indexes().CreateOne(ctx, unique); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	if _, err := r.staff.Indexes().CreateOne(ctx, unique); err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}
	return nil
}

func (r *mongoCatalog) ListServices(ctx context.Context, gender string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if gender != "" {
		filter["gender"] = bson.M{"$in": []string{gender, models.GenderUnisex}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	return findServices(ctx, r.services, filter, opts)
}

func (r *mongoCatalog) ListAllServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	return findServices(ctx, r.services, bson.M{}, opts)
}

func (r *mongoCatalog) GetService(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &s, nil
}

func (r *mongoCatalog) GetServicesByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	found, err := findServices(ctx, r.services, bson.M{"id": bson.M{"$in": uniqueIDs(ids)}})
	if err != nil {
		return nil, err
	}
	return orderServices(found, ids)
}

func (r *mongoCatalog) CreateService(ctx context.Context, service *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	if _, err := r.services.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (r *mongoCatalog) UpdateService(ctx context.Context, service *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.services.ReplaceOne(ctx, bson.M{"id": service.ID}, service)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s: %w", service.ID, mongo.ErrNoDocuments)
	}
	return nil
}

func (r *mongoCatalog) SetServiceActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.services.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"isActive": active}})
	if err != nil {
		return fmt.Errorf("failed to toggle service %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

func (r *mongoCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return findProducts(ctx, r.products, bson.M{"isActive": true}, opts)
}

func (r *mongoCatalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Product
	if err := r.products.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &p, nil
}

func (r *mongoCatalog) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	found, err := findProducts(ctx, r.products, bson.M{"id": bson.M{"$in": uniqueIDs(ids)}})
	if err != nil {
		return nil, err
	}
	return orderProducts(found, ids)
}

func (r *mongoCatalog) ListStaff(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.staff.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff: %w", err)
	}
	defer cursor.Close(ctx)

	staff := []models.Staff{}
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

func (r *mongoCatalog) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Staff
	if err := r.staff.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to fetch staff %s: %w", id, err)
	}
	return &s, nil
}

func findServices(ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]models.Service, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func findProducts(ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]models.Product, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}
