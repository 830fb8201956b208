package models

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

// JobStatus tracks a booking through the delivery and proof-of-delivery lifecycle.
type JobStatus string

const (
	JobScheduled        JobStatus = "Scheduled"
	JobInTransit        JobStatus = "In Transit"
	JobDriverApproved   JobStatus = "Driver Approved"
	JobCustomerApproved JobStatus = "Customer Approved"
	JobCompleted        JobStatus = "Completed"
	JobDisputed         JobStatus = "Disputed"
)

type PickupLocationType string

const (
	PickupStoreRetailer    PickupLocationType = "Store/Retailer"
	PickupPrivateResidence PickupLocationType = "Private Residence/Other"
)

// OrderPaymentStatus describes whether the merchandise itself still needs to be
// paid for at pickup, independent of the delivery fee.
type OrderPaymentStatus string

const (
	OrderNeedsPayment OrderPaymentStatus = "Needs to be Paid For"
	OrderPrePaid      OrderPaymentStatus = "Pre-Paid (Only Pickup Required)"
)

// SelectedAddOn is an add-on attached to a draft. Price is resolved at
// selection time and stored verbatim; it is only re-derived when the selected
// package changes and the add-on's price depends on package size.
type SelectedAddOn struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Option   string  `bson:"option,omitempty" json:"option,omitempty"`
}

// BookingItem is one piece of merchandise to deliver or remove.
type BookingItem struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Color       string `bson:"color,omitempty" json:"color,omitempty"`
	Size        string `bson:"size,omitempty" json:"size,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// BookingDraft is the single in-progress booking a customer is editing.
// It lives in the draft session cache until payment succeeds.
type BookingDraft struct {
	SessionID       string          `bson:"session_id" json:"sessionId"`
	ServiceType     ServiceType     `bson:"service_type" json:"serviceType"`
	SelectedPackage *Package        `bson:"selected_package,omitempty" json:"selectedPackage,omitempty"`
	SelectedAddOns  []SelectedAddOn `bson:"selected_add_ons" json:"selectedAddOns"`

	PickupAddress   string `bson:"pickup_address" json:"pickupAddress"`
	DeliveryAddress string `bson:"delivery_address" json:"deliveryAddress"`
	DateRequested   string `bson:"date_requested" json:"dateRequested"`
	TimeWindow      string `bson:"time_window" json:"timeWindow"`

	TotalPrice    float64       `bson:"total_price" json:"totalPrice"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"paymentStatus"`
	JobStatus     JobStatus     `bson:"job_status" json:"jobStatus"`

	PickupLocationType    PickupLocationType `bson:"pickup_location_type,omitempty" json:"pickupLocationType,omitempty"`
	StoreName             string             `bson:"store_name,omitempty" json:"storeName,omitempty"`
	OrderPaymentStatus    OrderPaymentStatus `bson:"order_payment_status,omitempty" json:"orderPaymentStatus,omitempty"`
	OrderConfirmationName string             `bson:"order_confirmation_name,omitempty" json:"orderConfirmationName,omitempty"`
	OrderReceiptNumber    string             `bson:"order_receipt_number,omitempty" json:"orderReceiptNumber,omitempty"`
	RecipientName         string             `bson:"recipient_name,omitempty" json:"recipientName,omitempty"`

	BookingItems []BookingItem `bson:"booking_items" json:"bookingItems"`

	CustomerEmail string `bson:"customer_email,omitempty" json:"customerEmail,omitempty"`
	CustomerPhone string `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`

	BookingID string `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
}

// NewBookingDraft returns a draft with session defaults.
func NewBookingDraft(sessionID string) *BookingDraft {
	return &BookingDraft{
		SessionID:      sessionID,
		ServiceType:    ServiceTypeDelivery,
		SelectedAddOns: []SelectedAddOn{},
		BookingItems:   []BookingItem{},
		PaymentStatus:  PaymentPending,
		JobStatus:      JobScheduled,
	}
}

// FindAddOn returns a pointer into the draft's add-on list for in-place updates.
func (d *BookingDraft) FindAddOn(id string) *SelectedAddOn {
	for i := range d.SelectedAddOns {
		if d.SelectedAddOns[i].ID == id {
			return &d.SelectedAddOns[i]
		}
	}
	return nil
}

// BookingRecord is the persisted, payment-confirmed snapshot of a draft,
// addressable by its booking ID. Immutable after creation except for
// job-status transitions driven by the proof-of-delivery protocol.
type BookingRecord struct {
	BookingDraft `bson:",inline"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// NewBookingRecord snapshots a paid draft under the generated booking ID.
func NewBookingRecord(d *BookingDraft, bookingID string, now time.Time) *BookingRecord {
	snapshot := *d
	snapshot.BookingID = bookingID
	snapshot.PaymentStatus = PaymentPaid
	snapshot.JobStatus = JobScheduled
	return &BookingRecord{BookingDraft: snapshot, CreatedAt: now}
}
