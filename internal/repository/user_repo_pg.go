package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventgrid/eventgrid/internal/domain"
)

// UserRepository is the identity directory: it resolves opaque bearer tokens
// issued elsewhere and serves the business profile merged into vendor
// detail responses.
type UserRepository interface {
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	GetBusinessProfile(ctx context.Context, userID string) (*domain.BusinessProfile, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, email, first_name, last_name, role, is_verified, is_active, created_at, updated_at
		FROM users WHERE api_token=$1 AND is_active`, token)
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsVerified, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	return &u, nil
}

// GetBusinessProfile returns nil without error when the user has none.
func (r *PGUserRepository) GetBusinessProfile(ctx context.Context, userID string) (*domain.BusinessProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, business_name, business_type, description, website, phone, address, city, country
		FROM business_profiles WHERE user_id=$1`, userID)
	var p domain.BusinessProfile
	err := row.Scan(&p.UserID, &p.BusinessName, &p.BusinessType, &p.Description, &p.Website, &p.Phone, &p.Address, &p.City, &p.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	return &p, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
