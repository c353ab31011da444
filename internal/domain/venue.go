package domain

import "time"

// Venue is a bookable physical space.
type Venue struct {
	ID            string    `json:"venueId"`
	OwnerID       string    `json:"-"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	VenueType     string    `json:"type"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	CapacityMin   *int      `json:"capacityMin,omitempty"`
	CapacityMax   *int      `json:"capacityMax,omitempty"`
	HourlyRate    *float64  `json:"hourlyRate,omitempty"`
	DailyRate     *float64  `json:"dailyRate,omitempty"`
	Currency      string    `json:"currency"`
	Amenities     []string  `json:"amenities"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int       `json:"totalReviews"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}
