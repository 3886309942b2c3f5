package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_EmptyByDefault(t *testing.T) {
	h := newHarness(t, 0)

	cart, err := h.cart.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Empty(t, cart.Services)
	assert.Empty(t, cart.Products)
	assert.Zero(t, cart.CartTotal)
}

func TestCart_ServicesAndProducts(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()

	_, err := h.cart.AddService(ctx, "user-1", "svc-cut-women")
	require.NoError(t, err)
	_, err = h.cart.AddService(ctx, "user-1", "svc-treatment")
	require.NoError(t, err)
	_, err = h.cart.AddService(ctx, "user-1", "svc-cut-women")
	require.NoError(t, err)
	_, err = h.cart.AddProduct(ctx, "user-1", "prd-shampoo")
	require.NoError(t, err)
	cart, err := h.cart.AddProduct(ctx, "user-1", "prd-shampoo")
	require.NoError(t, err)

	assert.Len(t, cart.Services, 2, "a service is only added once")
	assert.Len(t, cart.Products, 2, "products stack")
	assert.Equal(t, 65, cart.TotalDuration)
	assert.Equal(t, int64(3500+1500+2*1800), cart.CartTotal)

	cart, err = h.cart.RemoveProduct(ctx, "user-1", "prd-shampoo")
	require.NoError(t, err)
	assert.Len(t, cart.Products, 1)

	cart, err = h.cart.RemoveService(ctx, "user-1", "svc-cut-women")
	require.NoError(t, err)
	require.Len(t, cart.Services, 1)
	assert.Equal(t, "svc-treatment", cart.Services[0].ID)
	assert.Equal(t, int64(1500+1800), cart.CartTotal)

	stored, err := h.cart.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.CartTotal, stored.CartTotal)
}

func TestCart_RejectsUnknownItems(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()

	_, err := h.cart.AddService(ctx, "user-1", "svc-perm")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	_, err = h.cart.AddProduct(ctx, "user-1", "prd-wax")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCart_SetSchedule(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()

	cart, err := h.cart.SetSchedule(ctx, "user-1", "staff-sara", openFriday, "10:30")
	require.NoError(t, err)
	assert.Equal(t, "staff-sara", cart.StaffID)
	assert.Equal(t, openFriday, cart.SelectedDate)
	assert.Equal(t, "10:30", cart.SelectedTime)

	_, err = h.cart.SetSchedule(ctx, "user-1", "staff-sara", openFriday, "25:00")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = h.cart.SetSchedule(ctx, "user-1", "staff-ghost", openFriday, "10:00")
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestCart_ExpiresAndResets(t *testing.T) {
	h := newHarness(t, 0)
	ctx := context.Background()

	_, err := h.cart.AddService(ctx, "user-1", "svc-beard")
	require.NoError(t, err)
	assert.True(t, h.redis.Exists("cart:user-1"))
	assert.Equal(t, time.Hour, h.redis.TTL("cart:user-1"))

	require.NoError(t, h.cart.Reset(ctx, "user-1"))
	assert.False(t, h.redis.Exists("cart:user-1"))

	_, err = h.cart.AddService(ctx, "user-1", "svc-beard")
	require.NoError(t, err)
	h.redis.FastForward(2 * time.Hour)
	cart, err := h.cart.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Services)
}

func TestCart_UnreadablePayloadIsDiscarded(t *testing.T) {
	h := newHarness(t, 0)
	require.NoError(t, h.redis.Set("cart:user-1", "{not json"))

	cart, err := h.cart.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Services)
}
