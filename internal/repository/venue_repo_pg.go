package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventgrid/eventgrid/internal/domain"
)

type VenueRepository interface {
	GetActive(ctx context.Context, venueID string) (*domain.Venue, error)
}

type PGVenueRepository struct {
	db *pgxpool.Pool
}

func NewVenueRepository(db *pgxpool.Pool) VenueRepository {
	return &PGVenueRepository{db: db}
}

func (r *PGVenueRepository) GetActive(ctx context.Context, venueID string) (*domain.Venue, error) {
	row := r.db.QueryRow(ctx, `SELECT id, owner_id, name, description, venue_type, address, city, country, latitude, longitude, capacity_min, capacity_max, hourly_rate, daily_rate, currency, amenities, average_rating, total_reviews, is_active, created_at
		FROM venues WHERE id=$1 AND is_active`, venueID)
	var v domain.Venue
	err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.VenueType, &v.Address, &v.City,
		&v.Country, &v.Latitude, &v.Longitude, &v.CapacityMin, &v.CapacityMax, &v.HourlyRate,
		&v.DailyRate, &v.Currency, &v.Amenities, &v.AverageRating, &v.TotalReviews, &v.IsActive, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return &v, nil
}

var _ VenueRepository = (*PGVenueRepository)(nil)
