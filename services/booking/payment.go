package booking

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"quickdrop/models"
)

// PaymentGateway executes a single charge attempt. A declined charge is a
// normal result; errors are reserved for infrastructure failures and
// cancelled contexts.
type PaymentGateway interface {
	Charge(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error)
}

// SimulatedGateway settles charges after a configurable delay with a
// configurable success probability. The random source is injectable so tests
// can force either outcome.
type SimulatedGateway struct {
	Latency     time.Duration
	SuccessRate float64
	Logger      *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulatedGateway builds a simulated gateway. Pass a nil source for
// time-seeded randomness.
func NewSimulatedGateway(latency time.Duration, successRate float64, src rand.Source, logger *zap.Logger) *SimulatedGateway {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &SimulatedGateway{
		Latency:     latency,
		SuccessRate: successRate,
		Logger:      logger,
		rnd:         rand.New(src),
	}
}

// Charge waits out the simulated latency, then approves with the configured
// probability. Cancelling the context aborts the attempt without charging.
func (g *SimulatedGateway) Charge(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.Latency):
	}

	g.mu.Lock()
	approved := g.rnd.Float64() < g.SuccessRate
	g.mu.Unlock()

	result := &models.PaymentResult{
		PaymentID:   "sim_" + uuid.New().String(),
		Approved:    approved,
		ProcessedAt: time.Now(),
	}
	g.Logger.Info("simulated charge processed",
		zap.String("session", req.SessionID),
		zap.Float64("amount", req.Amount),
		zap.String("method", string(req.Method)),
		zap.Bool("approved", approved),
	)
	return result, nil
}

// StripeGateway settles charges through Stripe PaymentIntents. It shares the
// PaymentGateway shape with the simulator so switching to a real integration
// is a config change, not a code change.
type StripeGateway struct {
	Logger *zap.Logger
}

// Charge creates and confirms a PaymentIntent for the requested amount.
func (g *StripeGateway) Charge(ctx context.Context, req models.PaymentRequest) (*models.PaymentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	result := &models.PaymentResult{
		PaymentID:   pi.ID,
		Approved:    pi.Status == stripe.PaymentIntentStatusSucceeded,
		ProcessedAt: time.Now(),
	}
	g.Logger.Info("stripe charge processed",
		zap.String("session", req.SessionID),
		zap.String("intent", pi.ID),
		zap.String("status", string(pi.Status)),
	)
	return result, nil
}
