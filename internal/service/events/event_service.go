package events

import (
	"context"

	"github.com/eventgrid/eventgrid/internal/domain"
	"github.com/eventgrid/eventgrid/internal/pagination"
	"github.com/eventgrid/eventgrid/internal/repository"
	"github.com/eventgrid/eventgrid/internal/timeutil"
)

type EventUseCase interface {
	Create(ctx context.Context, organizerID string, input CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, organizerID, eventID string) (*domain.Event, error)
	List(ctx context.Context, organizerID string, input ListEventsInput) (*EventPage, error)
	Update(ctx context.Context, organizerID, eventID string, input UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, organizerID, eventID string) error
}

type EventService struct {
	events repository.EventRepository
}

func NewEventService(events repository.EventRepository) *EventService {
	return &EventService{events: events}
}

type BasicInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

type Schedule struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Timezone  string `json:"timezone"`
}

type Attendees struct {
	ExpectedCount *int `json:"expectedCount"`
	Capacity      *int `json:"capacity"`
}

type Budget struct {
	TotalBudget *float64 `json:"totalBudget"`
	Currency    string   `json:"currency"`
}

type CreateEventInput struct {
	BasicInfo  BasicInfo `json:"basicInfo"`
	Schedule   Schedule  `json:"schedule"`
	Attendees  Attendees `json:"attendees"`
	Budget     Budget    `json:"budget"`
	Visibility string    `json:"visibility"`
}

type ListEventsInput struct {
	Status    string
	EventType string
	Page      int
	Limit     int
}

// UpdateEventInput merges per top-level group; a nil group leaves its fields
// untouched, as does a nil field inside a present group.
type UpdateEventInput struct {
	BasicInfo  *BasicInfoPatch `json:"basicInfo"`
	Schedule   *SchedulePatch  `json:"schedule"`
	Attendees  *AttendeesPatch `json:"attendees"`
	Budget     *BudgetPatch    `json:"budget"`
	Status     *string         `json:"status"`
	Visibility *string         `json:"visibility"`
}

type BasicInfoPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type SchedulePatch struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Timezone  *string `json:"timezone"`
}

type AttendeesPatch struct {
	ExpectedCount *int `json:"expectedCount"`
	Capacity      *int `json:"capacity"`
}

type BudgetPatch struct {
	TotalBudget *float64 `json:"totalBudget"`
	Currency    *string  `json:"currency"`
}

type EventPage struct {
	Events     []domain.Event `json:"events"`
	Pagination Pagination     `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func (s *EventService) Create(ctx context.Context, organizerID string, input CreateEventInput) (*domain.Event, error) {
	if input.BasicInfo.Title == "" || input.BasicInfo.Type == "" {
		return nil, domain.NewValidationError("Title and type are required")
	}
	if input.Schedule.StartDate == "" || input.Schedule.EndDate == "" {
		return nil, domain.NewValidationError("Start date and end date are required")
	}

	startDate, err := timeutil.ParseRequired(input.Schedule.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("Invalid date format")
	}
	endDate, err := timeutil.ParseRequired(input.Schedule.EndDate)
	if err != nil {
		return nil, domain.NewValidationError("Invalid date format")
	}

	event := &domain.Event{
		ID:                domain.NewID("evt_"),
		OrganizerID:       organizerID,
		Title:             input.BasicInfo.Title,
		Description:       input.BasicInfo.Description,
		EventType:         input.BasicInfo.Type,
		Category:          input.BasicInfo.Category,
		Status:            domain.EventStatusDraft,
		StartDate:         startDate,
		EndDate:           endDate,
		Timezone:          input.Schedule.Timezone,
		ExpectedAttendees: input.Attendees.ExpectedCount,
		MaxCapacity:       input.Attendees.Capacity,
		TotalBudget:       input.Budget.TotalBudget,
		Currency:          input.Budget.Currency,
		Visibility:        domain.Visibility(input.Visibility),
	}
	if event.Timezone == "" {
		event.Timezone = "UTC"
	}
	if event.Currency == "" {
		event.Currency = "USD"
	}
	if event.Visibility == "" {
		event.Visibility = domain.VisibilityPrivate
	}
	if !domain.IsValidVisibility(event.Visibility) {
		return nil, domain.NewValidationError("Invalid visibility")
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Get(ctx context.Context, organizerID, eventID string) (*domain.Event, error) {
	return s.events.GetByID(ctx, organizerID, eventID)
}

func (s *EventService) List(ctx context.Context, organizerID string, input ListEventsInput) (*EventPage, error) {
	page := pagination.Normalize(input.Page, input.Limit)
	events, total, err := s.events.List(ctx, organizerID, repository.EventFilter{
		Status:    input.Status,
		EventType: input.EventType,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &EventPage{
		Events: events,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      total,
			TotalPages: pagination.TotalPages(total, page.Limit),
		},
	}, nil
}

// Update validates every supplied field before any of them is applied; a bad
// date string leaves the event exactly as it was.
func (s *EventService) Update(ctx context.Context, organizerID, eventID string, input UpdateEventInput) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}

	if input.BasicInfo != nil {
		if input.BasicInfo.Title != nil {
			event.Title = *input.BasicInfo.Title
		}
		if input.BasicInfo.Description != nil {
			event.Description = *input.BasicInfo.Description
		}
		if input.BasicInfo.Category != nil {
			event.Category = *input.BasicInfo.Category
		}
	}

	if input.Schedule != nil {
		if input.Schedule.StartDate != nil {
			parsed, err := timeutil.ParseRequired(*input.Schedule.StartDate)
			if err != nil {
				return nil, domain.NewValidationError("Invalid start date format")
			}
			event.StartDate = parsed
		}
		if input.Schedule.EndDate != nil {
			parsed, err := timeutil.ParseRequired(*input.Schedule.EndDate)
			if err != nil {
				return nil, domain.NewValidationError("Invalid end date format")
			}
			event.EndDate = parsed
		}
		if input.Schedule.Timezone != nil {
			event.Timezone = *input.Schedule.Timezone
		}
	}

	if input.Attendees != nil {
		if input.Attendees.ExpectedCount != nil {
			event.ExpectedAttendees = input.Attendees.ExpectedCount
		}
		if input.Attendees.Capacity != nil {
			event.MaxCapacity = input.Attendees.Capacity
		}
	}

	if input.Budget != nil {
		if input.Budget.TotalBudget != nil {
			event.TotalBudget = input.Budget.TotalBudget
		}
		if input.Budget.Currency != nil {
			event.Currency = *input.Budget.Currency
		}
	}

	if input.Status != nil {
		status := domain.EventStatus(*input.Status)
		if !domain.IsValidEventStatus(status) {
			return nil, domain.NewValidationError("Invalid event status")
		}
		event.Status = status
	}

	if input.Visibility != nil {
		visibility := domain.Visibility(*input.Visibility)
		if !domain.IsValidVisibility(visibility) {
			return nil, domain.NewValidationError("Invalid visibility")
		}
		event.Visibility = visibility
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event and all bookings under it; the repository runs
// the cascade in one transaction.
func (s *EventService) Delete(ctx context.Context, organizerID, eventID string) error {
	return s.events.DeleteCascade(ctx, organizerID, eventID)
}

var _ EventUseCase = (*EventService)(nil)
