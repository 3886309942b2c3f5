package catalogRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/models"
)

func TestFixtureCatalog_ListServicesByGender(t *testing.T) {
	ctx := context.Background()
	catalog := DemoCatalog()

	all, err := catalog.ListServices(ctx, "")
	require.NoError(t, err)
	for _, s := range all {
		assert.True(t, s.IsActive)
	}
	assert.Len(t, all, 7)

	male, err := catalog.ListServices(ctx, models.GenderMale)
	require.NoError(t, err)
	for _, s := range male {
		assert.Contains(t, []string{models.GenderMale, models.GenderUnisex}, s.Gender)
	}
	assert.Len(t, male, 4)

	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Category, all[i].Category, "services are ordered by category")
	}
}

func TestFixtureCatalog_GetServicesByIDs(t *testing.T) {
	ctx := context.Background()
	catalog := DemoCatalog()

	services, err := catalog.GetServicesByIDs(ctx, []string{"svc-beard", "svc-cut-men"})
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "svc-beard", services[0].ID)
	assert.Equal(t, "svc-cut-men", services[1].ID)

	_, err = catalog.GetServicesByIDs(ctx, []string{"svc-cut-men", "nope"})
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)

	_, err = catalog.GetServicesByIDs(ctx, []string{"svc-perm"})
	assert.ErrorIs(t, err, mongo.ErrNoDocuments, "inactive services cannot be booked")
}

func TestFixtureCatalog_GetProductsByIDsRepeats(t *testing.T) {
	products, err := DemoCatalog().GetProductsByIDs(context.Background(), []string{"prd-oil", "prd-oil"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(5800), products[0].Price+products[1].Price)
}

func TestFixtureCatalog_ServiceAdmin(t *testing.T) {
	ctx := context.Background()
	catalog := DemoCatalog()

	svc := &models.Service{Name: "Frangia", DurationMin: 10, Price: 800, Category: "hair", Gender: models.GenderUnisex, IsActive: true}
	require.NoError(t, catalog.CreateService(ctx, svc))
	require.NotEmpty(t, svc.ID)

	svc.Price = 900
	require.NoError(t, catalog.UpdateService(ctx, svc))
	got, err := catalog.GetService(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(900), got.Price)

	require.NoError(t, catalog.SetServiceActive(ctx, svc.ID, false))
	_, err = catalog.GetServicesByIDs(ctx, []string{svc.ID})
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)

	assert.ErrorIs(t, catalog.SetServiceActive(ctx, "missing", true), mongo.ErrNoDocuments)
}
