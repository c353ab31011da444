package domain

import "time"

type EventStatus string

const (
	EventStatusDraft      EventStatus = "draft"
	EventStatusPlanning   EventStatus = "planning"
	EventStatusConfirmed  EventStatus = "confirmed"
	EventStatusInProgress EventStatus = "in_progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

func ValidEventStatuses() []EventStatus {
	return []EventStatus{
		EventStatusDraft,
		EventStatusPlanning,
		EventStatusConfirmed,
		EventStatusInProgress,
		EventStatusCompleted,
		EventStatusCancelled,
	}
}

func IsValidEventStatus(s EventStatus) bool {
	for _, v := range ValidEventStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityPrivate  Visibility = "private"
	VisibilityUnlisted Visibility = "unlisted"
)

func IsValidVisibility(v Visibility) bool {
	return v == VisibilityPublic || v == VisibilityPrivate || v == VisibilityUnlisted
}

// Event belongs to exactly one organizer and exclusively owns its bookings:
// deleting an event takes every booking under it along.
type Event struct {
	ID                string      `json:"eventId"`
	OrganizerID       string      `json:"organizerId"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	EventType         string      `json:"type"`
	Category          string      `json:"category"`
	Status            EventStatus `json:"status"`
	StartDate         time.Time   `json:"startDate"`
	EndDate           time.Time   `json:"endDate"`
	Timezone          string      `json:"timezone"`
	ExpectedAttendees *int        `json:"expectedAttendees,omitempty"`
	MaxCapacity       *int        `json:"maxCapacity,omitempty"`
	TotalBudget       *float64    `json:"totalBudget,omitempty"`
	Currency          string      `json:"currency"`
	Visibility        Visibility  `json:"visibility"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}
