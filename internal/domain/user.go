package domain

import "time"

type Role string

const (
	RoleEventManager Role = "event_manager"
	RoleVendor       Role = "vendor"
	RoleVenueOwner   Role = "venue_owner"
	RoleArtist       Role = "artist"
	RoleGuest        Role = "guest"
)

// User is the resolved identity behind an opaque bearer token. Role is fixed
// at registration.
type User struct {
	ID         string    `json:"userId"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Role       Role      `json:"role"`
	IsVerified bool      `json:"isVerified"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BusinessProfile struct {
	UserID       string `json:"-"`
	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType,omitempty"`
	Description  string `json:"description,omitempty"`
	Website      string `json:"website,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
}
