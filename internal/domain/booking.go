package domain

import "time"

type BookingStatus string

const (
	BookingStatusInquiry     BookingStatus = "inquiry"
	BookingStatusQuoted      BookingStatus = "quoted"
	BookingStatusNegotiating BookingStatus = "negotiating"
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusInProgress  BookingStatus = "in_progress"
	BookingStatusCompleted   BookingStatus = "completed"
	BookingStatusCancelled   BookingStatus = "cancelled"
)

// ValidBookingStatuses returns the enumerated lifecycle set. Any member can
// follow any other; there is no ordered state machine.
func ValidBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusInquiry,
		BookingStatusQuoted,
		BookingStatusNegotiating,
		BookingStatusConfirmed,
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
}

func IsValidBookingStatus(s BookingStatus) bool {
	for _, v := range ValidBookingStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Booking references exactly one event and at least one of vendor or venue.
// Specifications is an opaque payload the core stores and passes through.
type Booking struct {
	ID             string         `json:"bookingId"`
	EventID        string         `json:"eventId"`
	VendorID       *string        `json:"vendorId,omitempty"`
	VenueID        *string        `json:"venueId,omitempty"`
	ServiceName    string         `json:"serviceName"`
	Specifications map[string]any `json:"specifications"`
	Status         BookingStatus  `json:"status"`
	ServiceDate    time.Time      `json:"serviceDate"`
	StartTime      *time.Time     `json:"startTime,omitempty"`
	EndTime        *time.Time     `json:"endTime,omitempty"`
	QuotedPrice    *float64       `json:"quotedPrice,omitempty"`
	FinalPrice     *float64       `json:"finalPrice,omitempty"`
	Currency       string         `json:"currency"`
	Message        string         `json:"message"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// PaymentRecord is a settled (confirmed or completed) booking with its final
// price, as surfaced by the payment history listing.
type PaymentRecord struct {
	BookingID   string    `json:"bookingId"`
	EventTitle  string    `json:"eventTitle"`
	ServiceName string    `json:"serviceName"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	PaymentDate time.Time `json:"paymentDate"`
	VendorName  *string   `json:"vendorName,omitempty"`
	VenueName   *string   `json:"venueName,omitempty"`
}
