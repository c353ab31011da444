package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventgrid/eventgrid/internal/domain"
)

type VendorFilter struct {
	Query     string
	Category  string
	Location  string
	MinRating *float64
	Sort      string
	Limit     int
	Offset    int
}

// VendorRepository answers marketplace discovery queries. Only active
// vendors ever leave this layer.
type VendorRepository interface {
	Search(ctx context.Context, filter VendorFilter) ([]domain.Vendor, int, error)
	GetActive(ctx context.Context, vendorID string) (*domain.Vendor, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	Featured(ctx context.Context, minReviews int, minRating float64, limit int) ([]domain.Vendor, error)
}

type PGVendorRepository struct {
	db *pgxpool.Pool
}

func NewVendorRepository(db *pgxpool.Pool) VendorRepository {
	return &PGVendorRepository{db: db}
}

const vendorColumns = `id, user_id, business_name, category, description, service_areas, starting_price, currency, average_rating, total_reviews, response_time_hours, is_verified, is_active, created_at`

func scanVendor(row pgx.Row, v *domain.Vendor) error {
	return row.Scan(&v.ID, &v.UserID, &v.BusinessName, &v.Category, &v.Description, &v.ServiceAreas,
		&v.StartingPrice, &v.Currency, &v.AverageRating, &v.TotalReviews, &v.ResponseTimeHours,
		&v.IsVerified, &v.IsActive, &v.CreatedAt)
}

func (r *PGVendorRepository) Search(ctx context.Context, filter VendorFilter) ([]domain.Vendor, int, error) {
	conds := []string{`is_active`}
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(business_name ILIKE $%d OR description ILIKE $%d OR category ILIKE $%d)`, n, n, n))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf(`category=$%d`, len(args)))
	}
	if filter.Location != "" {
		// service_areas is a jsonb string array; containment is an exact
		// membership test.
		args = append(args, filter.Location)
		conds = append(conds, fmt.Sprintf(`service_areas @> to_jsonb($%d::text)`, len(args)))
	}
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		conds = append(conds, fmt.Sprintf(`average_rating >= $%d`, len(args)))
	}
	where := `WHERE ` + strings.Join(conds, ` AND `)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM vendors `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vendors: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM vendors %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		vendorColumns, where, orderClause(filter.Sort), len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]domain.Vendor, 0)
	for rows.Next() {
		var v domain.Vendor
		if err := scanVendor(rows, &v); err != nil {
			return nil, 0, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	return vendors, total, rows.Err()
}

func orderClause(sort string) string {
	switch sort {
	case "rating_desc":
		return `average_rating DESC`
	case "rating_asc":
		return `average_rating ASC`
	case "price_asc":
		return `starting_price ASC`
	case "price_desc":
		return `starting_price DESC`
	case "name_asc":
		return `business_name ASC`
	default:
		return `created_at DESC`
	}
}

func (r *PGVendorRepository) GetActive(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	row := r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id=$1 AND is_active`, vendorID)
	var v domain.Vendor
	if err := scanVendor(row, &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

func (r *PGVendorRepository) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.db.Query(ctx, `SELECT category, count(*) FROM vendors
		WHERE is_active AND category <> ''
		GROUP BY category
		ORDER BY count(*) DESC, category ASC`)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Slug = strings.ReplaceAll(strings.ToLower(c.Name), " ", "_")
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *PGVendorRepository) Featured(ctx context.Context, minReviews int, minRating float64, limit int) ([]domain.Vendor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vendorColumns+` FROM vendors
		WHERE is_active AND total_reviews >= $1 AND average_rating >= $2
		ORDER BY average_rating DESC, total_reviews DESC
		LIMIT $3`, minReviews, minRating, limit)
	if err != nil {
		return nil, fmt.Errorf("featured vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]domain.Vendor, 0)
	for rows.Next() {
		var v domain.Vendor
		if err := scanVendor(rows, &v); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

var _ VendorRepository = (*PGVendorRepository)(nil)
