package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eventgrid/eventgrid/internal/domain"
	"github.com/eventgrid/eventgrid/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetForOrganizer(ctx context.Context, organizerID, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, organizerID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListForOrganizer(ctx context.Context, organizerID string, filter repository.BookingFilter) ([]domain.Booking, int, error) {
	args := m.Called(ctx, organizerID, filter)
	return args.Get(0).([]domain.Booking), args.Int(1), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, organizerID, bookingID string, status domain.BookingStatus, quotedPrice, finalPrice *float64) (*domain.Booking, error) {
	args := m.Called(ctx, organizerID, bookingID, status, quotedPrice, finalPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SetPaymentResult(ctx context.Context, bookingID string, status domain.BookingStatus, finalPrice *float64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, status, finalPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) PaymentHistory(ctx context.Context, organizerID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, organizerID)
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, organizerID, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, organizerID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, organizerID string, filter repository.EventFilter) ([]domain.Event, int, error) {
	args := m.Called(ctx, organizerID, filter)
	return args.Get(0).([]domain.Event), args.Int(1), args.Error(2)
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteCascade(ctx context.Context, organizerID, eventID string) error {
	args := m.Called(ctx, organizerID, eventID)
	return args.Error(0)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Search(ctx context.Context, filter repository.VendorFilter) ([]domain.Vendor, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Vendor), args.Int(1), args.Error(2)
}

func (m *MockVendorRepository) GetActive(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CategoryCount), args.Error(1)
}

func (m *MockVendorRepository) Featured(ctx context.Context, minReviews int, minRating float64, limit int) ([]domain.Vendor, error) {
	args := m.Called(ctx, minReviews, minRating, limit)
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetActive(ctx context.Context, venueID string) (*domain.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func newTestService() (*BookingService, *MockBookingRepository, *MockEventRepository, *MockVendorRepository, *MockVenueRepository, *MockProducer) {
	bookings := &MockBookingRepository{}
	events := &MockEventRepository{}
	vendors := &MockVendorRepository{}
	venues := &MockVenueRepository{}
	producer := &MockProducer{}
	service := &BookingService{
		bookings: bookings,
		events:   events,
		vendors:  vendors,
		venues:   venues,
		producer: producer,
		topic:    "booking_events",
	}
	return service, bookings, events, vendors, venues, producer
}

func TestBookingService_Create_DefaultsServiceDateToEventStart(t *testing.T) {
	service, bookings, events, vendors, _, producer := newTestService()
	ctx := context.Background()

	start := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
	events.On("GetByID", ctx, "usr_1", "evt_1").Return(&domain.Event{
		ID:          "evt_1",
		OrganizerID: "usr_1",
		Title:       "Tech Summit",
		StartDate:   start,
		EndDate:     start.Add(8 * time.Hour),
	}, nil).Once()
	vendorID := "vnd_1"
	vendors.On("GetActive", ctx, vendorID).Return(&domain.Vendor{ID: vendorID, IsActive: true}, nil).Once()
	bookings.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	producer.On("Publish", ctx, "booking_events", mock.Anything, mock.Anything).Return(nil).Once()

	created, err := service.Create(ctx, "usr_1", CreateBookingInput{
		EventID:        "evt_1",
		VendorID:       &vendorID,
		ServiceDetails: &ServiceDetails{ServiceName: "Photography"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, domain.BookingStatusInquiry, created.Status)
	assert.Equal(t, start, created.ServiceDate)
	assert.Equal(t, "Photography", created.ServiceName)
	assert.Nil(t, created.QuotedPrice)
	assert.Nil(t, created.FinalPrice)

	bookings.AssertExpectations(t)
	events.AssertExpectations(t)
	vendors.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_Create_ForeignEventLooksAbsent(t *testing.T) {
	service, bookings, events, _, _, _ := newTestService()
	ctx := context.Background()

	events.On("GetByID", ctx, "usr_2", "evt_1").Return(nil, domain.ErrEventNotFound).Once()

	vendorID := "vnd_1"
	created, err := service.Create(ctx, "usr_2", CreateBookingInput{
		EventID:        "evt_1",
		VendorID:       &vendorID,
		ServiceDetails: &ServiceDetails{ServiceName: "Photography"},
	})

	assert.Nil(t, created)
	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeEventNotFound, domainErr.Code)
	bookings.AssertNotCalled(t, "Create")
}

func TestBookingService_Create_InactiveVendor(t *testing.T) {
	service, bookings, events, vendors, _, _ := newTestService()
	ctx := context.Background()

	events.On("GetByID", ctx, "usr_1", "evt_1").Return(&domain.Event{ID: "evt_1", OrganizerID: "usr_1"}, nil).Once()
	vendorID := "vnd_gone"
	vendors.On("GetActive", ctx, vendorID).Return(nil, domain.ErrVendorNotFound).Once()

	created, err := service.Create(ctx, "usr_1", CreateBookingInput{
		EventID:        "evt_1",
		VendorID:       &vendorID,
		ServiceDetails: &ServiceDetails{ServiceName: "Catering"},
	})

	assert.Nil(t, created)
	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeVendorNotFound, domainErr.Code)
	bookings.AssertNotCalled(t, "Create")
}

func TestBookingService_Create_InactiveVenue(t *testing.T) {
	service, bookings, events, _, venues, _ := newTestService()
	ctx := context.Background()

	events.On("GetByID", ctx, "usr_1", "evt_1").Return(&domain.Event{ID: "evt_1", OrganizerID: "usr_1"}, nil).Once()
	venueID := "ven_gone"
	venues.On("GetActive", ctx, venueID).Return(nil, domain.ErrVenueNotFound).Once()

	created, err := service.Create(ctx, "usr_1", CreateBookingInput{
		EventID:        "evt_1",
		VenueID:        &venueID,
		ServiceDetails: &ServiceDetails{ServiceName: "Reception"},
	})

	assert.Nil(t, created)
	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeVenueNotFound, domainErr.Code)
	bookings.AssertNotCalled(t, "Create")
}

func TestBookingService_Create_RequiresVendorOrVenue(t *testing.T) {
	service, bookings, events, _, _, _ := newTestService()
	ctx := context.Background()

	events.On("GetByID", ctx, "usr_1", "evt_1").Return(&domain.Event{ID: "evt_1", OrganizerID: "usr_1"}, nil).Once()

	created, err := service.Create(ctx, "usr_1", CreateBookingInput{
		EventID:        "evt_1",
		ServiceDetails: &ServiceDetails{ServiceName: "Photography"},
	})

	assert.Nil(t, created)
	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeValidation, domainErr.Code)
	bookings.AssertNotCalled(t, "Create")
}

func TestBookingService_Create_BadServiceDateFailsLoud(t *testing.T) {
	service, bookings, events, vendors, _, _ := newTestService()
	ctx := context.Background()

	events.On("GetByID", ctx, "usr_1", "evt_1").Return(&domain.Event{ID: "evt_1", OrganizerID: "usr_1"}, nil).Once()
	vendorID := "vnd_1"
	vendors.On("GetActive", ctx, vendorID).Return(&domain.Vendor{ID: vendorID, IsActive: true}, nil).Once()

	created, err := service.Create(ctx, "usr_1", CreateBookingInput{
		EventID:        "evt_1",
		VendorID:       &vendorID,
		ServiceDetails: &ServiceDetails{ServiceName: "Photography"},
		Schedule:       &BookingSchedule{ServiceDate: "not-a-date"},
	})

	assert.Nil(t, created)
	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeValidation, domainErr.Code)
	bookings.AssertNotCalled(t, "Create")
}

func TestBookingService_Create_BadTimeWindowIsDropped(t *testing.T) {
	service, bookings, events, vendors, _, producer := newTestService()
	ctx := context.Background()

	start := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
	events.On("GetByID", ctx, "usr_1", "evt_1").Return(&domain.Event{
		ID: "evt_1", OrganizerID: "usr_1", StartDate: start,
	}, nil).Once()
	vendorID := "vnd_1"
	vendors.On("GetActive", ctx, vendorID).Return(&domain.Vendor{ID: vendorID, IsActive: true}, nil).Once()
	bookings.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	producer.On("Publish", ctx, "booking_events", mock.Anything, mock.Anything).Return(nil).Once()

	created, err := service.Create(ctx, "usr_1", CreateBookingInput{
		EventID:        "evt_1",
		VendorID:       &vendorID,
		ServiceDetails: &ServiceDetails{ServiceName: "Photography"},
		Schedule: &BookingSchedule{
			StartTime: "garbage",
			EndTime:   "2026-09-12T18:00:00Z",
		},
	})

	assert.NoError(t, err)
	assert.Nil(t, created.StartTime)
	assert.NotNil(t, created.EndTime)
}

func TestBookingService_List_ClampsPageSize(t *testing.T) {
	service, bookings, _, _, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("ListForOrganizer", ctx, "usr_1", repository.BookingFilter{Limit: 100, Offset: 0}).
		Return([]domain.Booking{}, 0, nil).Once()

	page, err := service.List(ctx, "usr_1", ListBookingsInput{Page: 1, Limit: 500})

	assert.NoError(t, err)
	assert.Equal(t, 100, page.Pagination.Limit)
	bookings.AssertExpectations(t)
}

func TestBookingService_UpdateStatus_InvalidStatus(t *testing.T) {
	service, bookings, _, _, _, _ := newTestService()
	ctx := context.Background()

	updated, err := service.UpdateStatus(ctx, "usr_1", "bkg_1", UpdateStatusInput{Status: "shipped"})

	assert.Nil(t, updated)
	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeValidation, domainErr.Code)
	assert.Contains(t, domainErr.Message, "inquiry")
	assert.Contains(t, domainErr.Message, "cancelled")
	bookings.AssertNotCalled(t, "UpdateStatus")
}

func TestBookingService_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	service, bookings, _, _, _, producer := newTestService()
	ctx := context.Background()

	bookings.On("UpdateStatus", ctx, "usr_1", "bkg_1", domain.BookingStatusCompleted, (*float64)(nil), (*float64)(nil)).
		Return(&domain.Booking{ID: "bkg_1", Status: domain.BookingStatusCompleted}, nil).Once()
	producer.On("Publish", ctx, "booking_events", "bkg_1", mock.Anything).Return(nil).Once()

	// Straight from inquiry to completed: no ordering is enforced.
	updated, err := service.UpdateStatus(ctx, "usr_1", "bkg_1", UpdateStatusInput{Status: "completed"})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, updated.Status)
	bookings.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_ConfirmPayment(t *testing.T) {
	service, bookings, _, _, _, producer := newTestService()
	ctx := context.Background()

	amount := 2500.0
	bookings.On("SetPaymentResult", ctx, "bkg_1", domain.BookingStatusConfirmed, mock.AnythingOfType("*float64")).
		Return(&domain.Booking{ID: "bkg_1", Status: domain.BookingStatusConfirmed, FinalPrice: &amount}, nil).Once()
	producer.On("Publish", ctx, "booking_events", "bkg_1", mock.Anything).Return(nil).Once()

	updated, err := service.ConfirmPayment(ctx, "bkg_1", 2500.0, "USD")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
	assert.NotNil(t, updated.FinalPrice)
	assert.Equal(t, 2500.0, *updated.FinalPrice)
	bookings.AssertExpectations(t)
}

func TestBookingService_FailPayment(t *testing.T) {
	service, bookings, _, _, _, producer := newTestService()
	ctx := context.Background()

	bookings.On("SetPaymentResult", ctx, "bkg_1", domain.BookingStatusCancelled, (*float64)(nil)).
		Return(&domain.Booking{ID: "bkg_1", Status: domain.BookingStatusCancelled}, nil).Once()
	producer.On("Publish", ctx, "booking_events", "bkg_1", mock.Anything).Return(nil).Once()

	updated, err := service.FailPayment(ctx, "bkg_1")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, updated.Status)
	bookings.AssertExpectations(t)
}

func TestBookingService_Get_NotFoundForForeignBooking(t *testing.T) {
	service, bookings, _, _, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetForOrganizer", ctx, "usr_2", "bkg_1").Return(nil, domain.ErrBookingNotFound).Once()

	found, err := service.Get(ctx, "usr_2", "bkg_1")

	assert.Nil(t, found)
	domainErr, ok := domain.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.CodeBookingNotFound, domainErr.Code)
}
