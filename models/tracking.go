package models

// TrackingView is the read-only composite returned to a tracking lookup:
// the booking record, its proof of delivery when one exists, and a derived
// human-readable status line. Building it never mutates stored records.
type TrackingView struct {
	Booking    *BookingRecord   `json:"booking"`
	POD        *ProofOfDelivery `json:"proofOfDelivery,omitempty"`
	StatusText string           `json:"statusText"`
}
