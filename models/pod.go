package models

import "time"

// GeoPoint is a captured device location with its capture time.
type GeoPoint struct {
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ProofOfDelivery is the dual sign-off artifact confirming job completion.
// The driver phase creates it; the customer phase resolves it. One-to-one
// with a booking record, keyed by booking ID.
type ProofOfDelivery struct {
	BookingID            string     `bson:"booking_id" json:"bookingId"`
	DriverApproved       bool       `bson:"driver_approved" json:"driverApproved"`
	CustomerApproved     bool       `bson:"customer_approved" json:"customerApproved"`
	DriverSignatureURL   string     `bson:"driver_signature_url,omitempty" json:"driverSignatureUrl,omitempty"`
	CustomerSignatureURL string     `bson:"customer_signature_url,omitempty" json:"customerSignatureUrl,omitempty"`
	PhotoURLs            []string   `bson:"photo_urls" json:"photoUrls"`
	ApprovalTimestamp    *time.Time `bson:"approval_timestamp,omitempty" json:"approvalTimestamp,omitempty"`
	DriverLocation       *GeoPoint  `bson:"driver_location,omitempty" json:"driverLocation,omitempty"`
	DisputeReason        string     `bson:"dispute_reason,omitempty" json:"disputeReason,omitempty"`
	CreatedAt            time.Time  `bson:"created_at" json:"createdAt"`
}
