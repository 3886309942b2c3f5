package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	"salonbook/models"
)

const (
	// MinAmount is Stripe's minimum charge in cents.
	MinAmount int64 = 50
	// MaxAmount is Stripe's maximum charge in cents.
	MaxAmount int64 = 99999999

	intentDescription = "Hair Style - Appointment Payment"
)

var (
	ErrAmountTooSmall   = errors.New("amount must be at least 0.50")
	ErrAmountTooLarge   = errors.New("amount exceeds the maximum allowed")
	ErrIntentNotPaid    = errors.New("payment intent has not been paid")
	ErrIntentMismatch   = errors.New("payment intent amount does not match the order")
	ErrIntentOwner      = errors.New("payment intent belongs to another customer")
	ErrProviderDisabled = errors.New("payment provider is not configured")
)

// Gateway creates and inspects payment intents.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResult, error)
	// VerifyPaymentIntent checks that intentID was created for userID and has succeeded for
	// exactly amount cents.
	VerifyPaymentIntent(ctx context.Context, intentID, userID string, amount int64) error
}

// ValidateAmount enforces the provider's per-charge limits.
func ValidateAmount(amount int64) error {
	if amount < MinAmount {
		return fmt.Errorf("%w: got %d cents", ErrAmountTooSmall, amount)
	}
	if amount > MaxAmount {
		return fmt.Errorf("%w: got %d cents", ErrAmountTooLarge, amount)
	}
	return nil
}

// StripeGateway is the production Gateway.
type StripeGateway struct {
	api      *client.API
	currency string
	logger   *zap.Logger
}

func NewStripeGateway(secretKey, currency string, logger *zap.Logger) *StripeGateway {
	if currency == "" {
		currency = string(stripe.CurrencyEUR)
	}
	g := &StripeGateway{currency: strings.ToLower(currency), logger: logger}
	if secretKey != "" {
		g.api = &client.API{}
		g.api.Init(secretKey, nil)
	}
	return g
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResult, error) {
	if err := ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if g.api == nil {
		return nil, ErrProviderDisabled
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(g.currency),
		Description: stripe.String(intentDescription),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Error("Stripe payment intent creation failed",
			zap.Int64("amount", req.Amount),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	g.logger.Info("Payment intent created", zap.String("intentId", pi.ID), zap.Int64("amount", req.Amount))
	return &models.PaymentIntentResult{ClientSecret: pi.ClientSecret, PaymentIntentID: pi.ID}, nil
}

func (g *StripeGateway) VerifyPaymentIntent(ctx context.Context, intentID, userID string, amount int64) error {
	if g.api == nil {
		return ErrProviderDisabled
	}
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return fmt.Errorf("failed to fetch payment intent %s: %w", intentID, err)
	}
	return checkIntent(string(pi.Status), pi.Metadata["userId"], userID, pi.Amount, amount)
}

// checkIntent accepts only settled funds; "processing" can still fail later.
func checkIntent(status, owner, userID string, paid, expected int64) error {
	if owner != userID {
		return fmt.Errorf("%w: intent issued to %q", ErrIntentOwner, owner)
	}
	if stripe.PaymentIntentStatus(status) != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("%w: status %s", ErrIntentNotPaid, status)
	}
	if paid != expected {
		return fmt.Errorf("%w: intent %d, order %d", ErrIntentMismatch, paid, expected)
	}
	return nil
}

// FakeGateway records intents in memory. Intents it created verify as succeeded unless
// SetStatus says otherwise.
type FakeGateway struct {
	mu       sync.Mutex
	Intents  map[string]models.PaymentIntentRequest
	statuses map[string]stripe.PaymentIntentStatus
	Err      error
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{
		Intents:  make(map[string]models.PaymentIntentRequest),
		statuses: make(map[string]stripe.PaymentIntentStatus),
	}
}

// SetStatus overrides the status intentID reports.
func (f *FakeGateway) SetStatus(intentID string, status stripe.PaymentIntentStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[intentID] = status
}

func (f *FakeGateway) CreatePaymentIntent(_ context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResult, error) {
	if err := ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	id := "pi_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	f.Intents[id] = req
	return &models.PaymentIntentResult{ClientSecret: id + "_secret_test", PaymentIntentID: id}, nil
}

func (f *FakeGateway) VerifyPaymentIntent(_ context.Context, intentID, userID string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.Intents[intentID]
	if !ok {
		return fmt.Errorf("%w: unknown intent %s", ErrIntentNotPaid, intentID)
	}
	status, ok := f.statuses[intentID]
	if !ok {
		status = stripe.PaymentIntentStatusSucceeded
	}
	return checkIntent(string(status), req.Metadata["userId"], userID, req.Amount, amount)
}
