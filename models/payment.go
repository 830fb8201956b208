package models

import "time"

// PaymentMethod selects how a checkout attempt is settled.
type PaymentMethod string

const (
	// PaymentMethodCard is settled immediately through the payment gateway.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodPeerTransfer is settled out of band; the customer confirms
	// having sent the transfer before the gateway verification step runs.
	PaymentMethodPeerTransfer PaymentMethod = "peer-transfer"
)

// CheckoutState is the per-attempt state of the checkout machine.
type CheckoutState string

const (
	CheckoutIdle                        CheckoutState = "idle"
	CheckoutValidating                  CheckoutState = "validating"
	CheckoutProcessing                  CheckoutState = "processing"
	CheckoutAwaitingOfflineConfirmation CheckoutState = "awaiting_offline_confirmation"
	CheckoutSucceeded                   CheckoutState = "succeeded"
	CheckoutFailed                      CheckoutState = "failed"
)

// PaymentRequest is what the checkout engine hands to a payment gateway.
type PaymentRequest struct {
	SessionID   string
	Amount      float64
	Currency    string
	Method      PaymentMethod
	Description string
	Metadata    map[string]string
}

// PaymentResult reports the outcome of a single charge attempt. A declined
// charge is a normal result, not an error.
type PaymentResult struct {
	PaymentID   string
	Approved    bool
	ProcessedAt time.Time
}
