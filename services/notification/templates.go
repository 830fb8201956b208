package notification

import (
	"fmt"
	"strings"

	"quickdrop/config"
	"quickdrop/models"
)

func trackingURL() string {
	return fmt.Sprintf("https://%s/#ORDER_TRACKING", config.AppConfig.AppWebsite)
}

// ConfirmationEmailSubject builds the subject line for a booking confirmation.
func ConfirmationEmailSubject(bookingID string) string {
	return fmt.Sprintf("QuickDrop SD Booking Confirmation - Tracking Number: %s", bookingID)
}

// ConfirmationEmailBody renders the confirmation email for a paid booking.
// The layout mirrors the customer-facing receipt: totals, package, add-ons,
// the service-specific address block, then the item list.
func ConfirmationEmailBody(record *models.BookingRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear Customer,\n\n")
	fmt.Fprintf(&b, "Thank you for your booking with QuickDrop SD!\n\n")
	fmt.Fprintf(&b, "Your %s service is confirmed.\n\n", record.ServiceType)
	fmt.Fprintf(&b, "Booking ID (Tracking Number): %s\n", record.BookingID)
	fmt.Fprintf(&b, "Total Price Paid: $%.2f\n\n", record.TotalPrice)

	fmt.Fprintf(&b, "---\n**Booking Summary**\n")
	fmt.Fprintf(&b, "Service Type: %s\n", titleCase(string(record.ServiceType)))
	if record.SelectedPackage != nil {
		fmt.Fprintf(&b, "Package: %s - $%.2f\n", record.SelectedPackage.Name, record.SelectedPackage.BasePrice)
	}
	b.WriteString(addOnsSummary(record.SelectedAddOns))

	if record.ServiceType == models.ServiceTypeDelivery {
		b.WriteString(deliveryBlock(record))
	} else {
		b.WriteString(removalBlock(record))
	}

	if record.ServiceType == models.ServiceTypeDelivery {
		fmt.Fprintf(&b, "\nItems to be Delivered:\n")
	} else {
		fmt.Fprintf(&b, "\nItems to be Removed:\n")
	}
	b.WriteString(itemsSummary(record.BookingItems))

	fmt.Fprintf(&b, "\n---\n\n")
	fmt.Fprintf(&b, "We will notify you with further updates as your job progresses.\n")
	fmt.Fprintf(&b, "You can track your order at any time using your Tracking Number (%s) on our website: %s\n\n", record.BookingID, trackingURL())
	fmt.Fprintf(&b, "If you have any questions, please contact us.\n\n")
	fmt.Fprintf(&b, "Sincerely,\nThe QuickDrop SD Team\n")
	fmt.Fprintf(&b, "Phone: %s\n", config.AppConfig.ContactPhone)
	fmt.Fprintf(&b, "Email: %s\n", config.AppConfig.ContactEmail)

	return b.String()
}

// ConfirmationSMSBody renders the confirmation text message.
func ConfirmationSMSBody(bookingID string) string {
	return fmt.Sprintf("QuickDrop SD: Your booking %s is confirmed! Track it at %s. Contact us: %s",
		bookingID, trackingURL(), config.AppConfig.ContactPhone)
}

func addOnsSummary(addOns []models.SelectedAddOn) string {
	if len(addOns) == 0 {
		return "Add-Ons: None\n"
	}
	var b strings.Builder
	b.WriteString("Add-Ons:\n")
	for _, ao := range addOns {
		line := fmt.Sprintf("  - %s", ao.Name)
		if ao.Quantity > 0 {
			line += fmt.Sprintf(" (x%d)", ao.Quantity)
		}
		if ao.Option != "" {
			line += fmt.Sprintf(" (%s)", ao.Option)
		}
		fmt.Fprintf(&b, "%s: +$%.2f\n", line, ao.Price)
	}
	return b.String()
}

func deliveryBlock(record *models.BookingRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nPickup Address: %s\n", record.PickupAddress)
	fmt.Fprintf(&b, "Delivery Address: %s\n", record.DeliveryAddress)
	fmt.Fprintf(&b, "Requested Date: %s\n", record.DateRequested)
	fmt.Fprintf(&b, "Time Window: %s\n\n", record.TimeWindow)
	fmt.Fprintf(&b, "Pickup Location Type: %s\n", record.PickupLocationType)
	if record.PickupLocationType == models.PickupStoreRetailer {
		fmt.Fprintf(&b, "Store Name: %s\n", record.StoreName)
	}
	fmt.Fprintf(&b, "Order Status: %s\n", record.OrderPaymentStatus)
	fmt.Fprintf(&b, "Order Confirmation Name: %s\n", record.OrderConfirmationName)
	fmt.Fprintf(&b, "Order/Receipt Number: %s\n", record.OrderReceiptNumber)
	fmt.Fprintf(&b, "Recipient Name: %s\n", record.RecipientName)
	return b.String()
}

func removalBlock(record *models.BookingRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nRemoval Address: %s\n", record.PickupAddress)
	fmt.Fprintf(&b, "Requested Date: %s\n", record.DateRequested)
	fmt.Fprintf(&b, "Time Window: %s\n", record.TimeWindow)
	fmt.Fprintf(&b, "Primary Contact Name: %s\n", record.RecipientName)
	return b.String()
}

func itemsSummary(items []models.BookingItem) string {
	if len(items) == 0 {
		return "  No specific items listed.\n"
	}
	var b strings.Builder
	for _, item := range items {
		line := fmt.Sprintf("  - %s", item.Name)
		if item.Color != "" {
			line += fmt.Sprintf(" (%s)", item.Color)
		}
		if item.Size != "" {
			line += fmt.Sprintf(", %s", item.Size)
		}
		if item.Description != "" {
			line += fmt.Sprintf(" - %s", item.Description)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
