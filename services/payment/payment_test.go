package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"salonbook/models"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   error
	}{
		{0, ErrAmountTooSmall},
		{49, ErrAmountTooSmall},
		{50, nil},
		{3500, nil},
		{99999999, nil},
		{100000000, ErrAmountTooLarge},
	}
	for _, tt := range tests {
		err := ValidateAmount(tt.amount)
		if tt.want == nil {
			assert.NoError(t, err, "amount %d", tt.amount)
		} else {
			assert.ErrorIs(t, err, tt.want, "amount %d", tt.amount)
		}
	}
}

func TestCheckIntent(t *testing.T) {
	tests := []struct {
		status string
		owner  string
		paid   int64
		want   error
	}{
		{"succeeded", "u1", 3325, nil},
		{"processing", "u1", 3325, ErrIntentNotPaid},
		{"requires_capture", "u1", 3325, ErrIntentNotPaid},
		{"requires_payment_method", "u1", 3325, ErrIntentNotPaid},
		{"canceled", "u1", 3325, ErrIntentNotPaid},
		{"succeeded", "u1", 3000, ErrIntentMismatch},
		{"succeeded", "u2", 3325, ErrIntentOwner},
		{"succeeded", "", 3325, ErrIntentOwner},
	}
	for _, tt := range tests {
		err := checkIntent(tt.status, tt.owner, "u1", tt.paid, 3325)
		if tt.want == nil {
			assert.NoError(t, err, "status %s", tt.status)
		} else {
			assert.ErrorIs(t, err, tt.want, "status %s owner %q paid %d", tt.status, tt.owner, tt.paid)
		}
	}
}

func TestFakeGateway(t *testing.T) {
	ctx := context.Background()
	g := NewFakeGateway()

	res, err := g.CreatePaymentIntent(ctx, models.PaymentIntentRequest{
		Amount:   3325,
		Metadata: map[string]string{"userId": "u1"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ClientSecret)
	assert.Equal(t, "u1", g.Intents[res.PaymentIntentID].Metadata["userId"])

	assert.NoError(t, g.VerifyPaymentIntent(ctx, res.PaymentIntentID, "u1", 3325))
	assert.ErrorIs(t, g.VerifyPaymentIntent(ctx, res.PaymentIntentID, "u1", 3500), ErrIntentMismatch)
	assert.ErrorIs(t, g.VerifyPaymentIntent(ctx, res.PaymentIntentID, "u2", 3325), ErrIntentOwner)
	assert.ErrorIs(t, g.VerifyPaymentIntent(ctx, "pi_unknown", "u1", 3325), ErrIntentNotPaid)

	g.SetStatus(res.PaymentIntentID, stripe.PaymentIntentStatusProcessing)
	assert.ErrorIs(t, g.VerifyPaymentIntent(ctx, res.PaymentIntentID, "u1", 3325), ErrIntentNotPaid)

	_, err = g.CreatePaymentIntent(ctx, models.PaymentIntentRequest{Amount: 10})
	assert.ErrorIs(t, err, ErrAmountTooSmall)
}

func TestStripeGatewayWithoutKey(t *testing.T) {
	g := NewStripeGateway("", "", zap.NewNop())

	_, err := g.CreatePaymentIntent(context.Background(), models.PaymentIntentRequest{Amount: 3500})
	assert.ErrorIs(t, err, ErrProviderDisabled)

	_, err = g.CreatePaymentIntent(context.Background(), models.PaymentIntentRequest{Amount: 20})
	assert.ErrorIs(t, err, ErrAmountTooSmall, "amount is validated before calling the provider")
}
