package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/eventgrid/eventgrid/internal/domain"
	"github.com/eventgrid/eventgrid/internal/kafka"
	"github.com/eventgrid/eventgrid/internal/pagination"
	"github.com/eventgrid/eventgrid/internal/repository"
	"github.com/eventgrid/eventgrid/internal/timeutil"
)

type BookingUseCase interface {
	Create(ctx context.Context, organizerID string, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context, organizerID string, input ListBookingsInput) (*BookingPage, error)
	Get(ctx context.Context, organizerID, bookingID string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, organizerID, bookingID string, input UpdateStatusInput) (*domain.Booking, error)
	PaymentHistory(ctx context.Context, organizerID string) ([]domain.PaymentRecord, error)
	ConfirmPayment(ctx context.Context, bookingID string, amount float64, currency string) (*domain.Booking, error)
	FailPayment(ctx context.Context, bookingID string) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings repository.BookingRepository
	events   repository.EventRepository
	vendors  repository.VendorRepository
	venues   repository.VenueRepository
	producer Producer
	topic    string
}

func NewBookingService(
	bookings repository.BookingRepository,
	events repository.EventRepository,
	vendors repository.VendorRepository,
	venues repository.VenueRepository,
	producer Producer,
	topic string,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		events:   events,
		vendors:  vendors,
		venues:   venues,
		producer: producer,
		topic:    topic,
	}
}

type ServiceDetails struct {
	ServiceName    string         `json:"serviceName"`
	Specifications map[string]any `json:"specifications"`
}

type BookingSchedule struct {
	ServiceDate string `json:"serviceDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

type CreateBookingInput struct {
	EventID        string           `json:"eventId"`
	VendorID       *string          `json:"vendorId"`
	VenueID        *string          `json:"venueId"`
	ServiceDetails *ServiceDetails  `json:"serviceDetails"`
	Schedule       *BookingSchedule `json:"schedule"`
	Message        string           `json:"message"`
}

type ListBookingsInput struct {
	Status  string
	EventID string
	Page    int
	Limit   int
}

type UpdateStatusInput struct {
	Status      string   `json:"status"`
	QuotedPrice *float64 `json:"quotedPrice"`
	FinalPrice  *float64 `json:"finalPrice"`
}

type BookingPage struct {
	Bookings   []domain.Booking `json:"bookings"`
	Pagination Pagination       `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Create validates everything before a single row is written: the event must
// belong to the organizer, any referenced vendor/venue must exist and be
// active, and at least one of the two must be present. The service date
// defaults to the event start; a bad optional time window is dropped, not
// rejected.
func (s *BookingService) Create(ctx context.Context, organizerID string, input CreateBookingInput) (*domain.Booking, error) {
	if input.EventID == "" {
		return nil, domain.NewValidationError("Missing required field: eventId")
	}
	if input.ServiceDetails == nil {
		return nil, domain.NewValidationError("Missing required field: serviceDetails")
	}

	event, err := s.events.GetByID(ctx, organizerID, input.EventID)
	if err != nil {
		return nil, err
	}

	if input.VendorID != nil {
		if _, err := s.vendors.GetActive(ctx, *input.VendorID); err != nil {
			return nil, err
		}
	}
	if input.VenueID != nil {
		if _, err := s.venues.GetActive(ctx, *input.VenueID); err != nil {
			return nil, err
		}
	}
	if input.VendorID == nil && input.VenueID == nil {
		return nil, domain.NewValidationError("Either vendorId or venueId is required")
	}

	serviceDate := event.StartDate
	var startTime, endTime *time.Time
	if input.Schedule != nil {
		if input.Schedule.ServiceDate != "" {
			parsed, err := timeutil.ParseRequired(input.Schedule.ServiceDate)
			if err != nil {
				return nil, domain.NewValidationError("Invalid service date format")
			}
			serviceDate = parsed
		}
		if input.Schedule.StartTime != "" {
			startTime = timeutil.ParseOptional(input.Schedule.StartTime)
		}
		if input.Schedule.EndTime != "" {
			endTime = timeutil.ParseOptional(input.Schedule.EndTime)
		}
	}

	booking := &domain.Booking{
		ID:             domain.NewID("bkg_"),
		EventID:        event.ID,
		VendorID:       input.VendorID,
		VenueID:        input.VenueID,
		ServiceName:    input.ServiceDetails.ServiceName,
		Specifications: input.ServiceDetails.Specifications,
		Status:         domain.BookingStatusInquiry,
		ServiceDate:    serviceDate,
		StartTime:      startTime,
		EndTime:        endTime,
		Currency:       "USD",
		Message:        input.Message,
	}
	if booking.Specifications == nil {
		booking.Specifications = map[string]any{}
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) List(ctx context.Context, organizerID string, input ListBookingsInput) (*BookingPage, error) {
	page := pagination.Normalize(input.Page, input.Limit)
	bookings, total, err := s.bookings.ListForOrganizer(ctx, organizerID, repository.BookingFilter{
		Status:  input.Status,
		EventID: input.EventID,
		Limit:   page.Limit,
		Offset:  page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &BookingPage{
		Bookings: bookings,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      total,
			TotalPages: pagination.TotalPages(total, page.Limit),
		},
	}, nil
}

func (s *BookingService) Get(ctx context.Context, organizerID, bookingID string) (*domain.Booking, error) {
	return s.bookings.GetForOrganizer(ctx, organizerID, bookingID)
}

// UpdateStatus checks membership in the enumerated set and nothing else: any
// status may follow any other.
func (s *BookingService) UpdateStatus(ctx context.Context, organizerID, bookingID string, input UpdateStatusInput) (*domain.Booking, error) {
	if input.Status == "" {
		return nil, domain.NewValidationError("Status is required")
	}
	status := domain.BookingStatus(input.Status)
	if !domain.IsValidBookingStatus(status) {
		return nil, domain.NewValidationError("Invalid status. Must be one of: %s", joinStatuses(domain.ValidBookingStatuses()))
	}

	updated, err := s.bookings.UpdateStatus(ctx, organizerID, bookingID, status, input.QuotedPrice, input.FinalPrice)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_status_changed", updated)
	return updated, nil
}

func (s *BookingService) PaymentHistory(ctx context.Context, organizerID string) ([]domain.PaymentRecord, error) {
	return s.bookings.PaymentHistory(ctx, organizerID)
}

// ConfirmPayment is invoked by the payment gateway callback, which carries
// no organizer session; the booking is located by public id alone. The
// caller is responsible for having verified the gateway's signature.
func (s *BookingService) ConfirmPayment(ctx context.Context, bookingID string, amount float64, currency string) (*domain.Booking, error) {
	updated, err := s.bookings.SetPaymentResult(ctx, bookingID, domain.BookingStatusConfirmed, &amount)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_confirmed", updated)
	return updated, nil
}

func (s *BookingService) FailPayment(ctx context.Context, bookingID string) (*domain.Booking, error) {
	updated, err := s.bookings.SetPaymentResult(ctx, bookingID, domain.BookingStatusCancelled, nil)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_cancelled", updated)
	return updated, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, b *domain.Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		EventID:    b.EventID,
		VendorID:   b.VendorID,
		VenueID:    b.VenueID,
		Status:     string(b.Status),
		FinalPrice: b.FinalPrice,
		Currency:   b.Currency,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.topic, b.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s for booking %s: %v", eventType, b.ID, err)
	}
}

func joinStatuses(statuses []domain.BookingStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

var _ BookingUseCase = (*BookingService)(nil)
