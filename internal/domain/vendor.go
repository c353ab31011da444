package domain

import "time"

// Vendor is a bookable service provider. Rating fields are written by the
// review subsystem; this core only reads them.
type Vendor struct {
	ID                string    `json:"vendorId"`
	UserID            string    `json:"-"`
	BusinessName      string    `json:"businessName"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	ServiceAreas      []string  `json:"serviceAreas"`
	StartingPrice     *float64  `json:"startingPrice,omitempty"`
	Currency          string    `json:"currency"`
	AverageRating     float64   `json:"averageRating"`
	TotalReviews      int       `json:"totalReviews"`
	ResponseTimeHours float64   `json:"responseTime"`
	IsVerified        bool      `json:"isVerified"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}
