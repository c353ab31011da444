package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventgrid/eventgrid/internal/domain"
)

type BookingFilter struct {
	Status  string
	EventID string
	Limit   int
	Offset  int
}

// BookingRepository reads and writes bookings. The organizer-scoped methods
// join through events so a booking under somebody else's event is
// indistinguishable from a missing one. SetPaymentResult is the one unscoped
// write: the payment gateway callback carries no organizer session.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetForOrganizer(ctx context.Context, organizerID, bookingID string) (*domain.Booking, error)
	ListForOrganizer(ctx context.Context, organizerID string, filter BookingFilter) ([]domain.Booking, int, error)
	UpdateStatus(ctx context.Context, organizerID, bookingID string, status domain.BookingStatus, quotedPrice, finalPrice *float64) (*domain.Booking, error)
	SetPaymentResult(ctx context.Context, bookingID string, status domain.BookingStatus, finalPrice *float64) (*domain.Booking, error)
	PaymentHistory(ctx context.Context, organizerID string) ([]domain.PaymentRecord, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `b.id, b.event_id, b.vendor_id, b.venue_id, b.service_name, b.specifications, b.status, b.service_date, b.start_time, b.end_time, b.quoted_price, b.final_price, b.currency, b.message, b.created_at, b.updated_at`

func scanBooking(row pgx.Row, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.EventID, &b.VendorID, &b.VenueID, &b.ServiceName, &b.Specifications,
		&b.Status, &b.ServiceDate, &b.StartTime, &b.EndTime, &b.QuotedPrice, &b.FinalPrice,
		&b.Currency, &b.Message, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	row := r.db.QueryRow(ctx, `INSERT INTO bookings (id, event_id, vendor_id, venue_id, service_name, specifications, status, service_date, start_time, end_time, currency, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		booking.ID, booking.EventID, booking.VendorID, booking.VenueID, booking.ServiceName,
		booking.Specifications, booking.Status, booking.ServiceDate, booking.StartTime,
		booking.EndTime, booking.Currency, booking.Message)
	if err := row.Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *PGBookingRepository) GetForOrganizer(ctx context.Context, organizerID, bookingID string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE b.id=$1 AND e.organizer_id=$2`, bookingID, organizerID)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *PGBookingRepository) ListForOrganizer(ctx context.Context, organizerID string, filter BookingFilter) ([]domain.Booking, int, error) {
	where := `JOIN events e ON e.id = b.event_id WHERE e.organizer_id=$1`
	args := []interface{}{organizerID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND b.status=$%d`, len(args))
	}
	if filter.EventID != "" {
		args = append(args, filter.EventID)
		where += fmt.Sprintf(` AND b.event_id=$%d`, len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM bookings b `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM bookings b %s ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d`,
		bookingColumns, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, total, rows.Err()
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, organizerID, bookingID string, status domain.BookingStatus, quotedPrice, finalPrice *float64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings b
		SET status=$1, quoted_price=COALESCE($2, b.quoted_price), final_price=COALESCE($3, b.final_price), updated_at=now()
		FROM events e
		WHERE b.id=$4 AND e.id = b.event_id AND e.organizer_id=$5
		RETURNING `+bookingColumns,
		status, quotedPrice, finalPrice, bookingID, organizerID)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return &b, nil
}

func (r *PGBookingRepository) SetPaymentResult(ctx context.Context, bookingID string, status domain.BookingStatus, finalPrice *float64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings b
		SET status=$1, final_price=COALESCE($2, b.final_price), updated_at=now()
		WHERE b.id=$3
		RETURNING `+bookingColumns,
		status, finalPrice, bookingID)
	var b domain.Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("set payment result: %w", err)
	}
	return &b, nil
}

func (r *PGBookingRepository) PaymentHistory(ctx context.Context, organizerID string) ([]domain.PaymentRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, e.title, b.service_name, b.final_price, b.currency, b.status, b.updated_at, vd.business_name, vn.name
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		LEFT JOIN vendors vd ON vd.id = b.vendor_id
		LEFT JOIN venues vn ON vn.id = b.venue_id
		WHERE e.organizer_id=$1 AND b.status IN ('confirmed', 'completed') AND b.final_price IS NOT NULL
		ORDER BY b.updated_at DESC`, organizerID)
	if err != nil {
		return nil, fmt.Errorf("payment history: %w", err)
	}
	defer rows.Close()

	records := make([]domain.PaymentRecord, 0)
	for rows.Next() {
		var rec domain.PaymentRecord
		if err := rows.Scan(&rec.BookingID, &rec.EventTitle, &rec.ServiceName, &rec.Amount, &rec.Currency,
			&rec.Status, &rec.PaymentDate, &rec.VendorName, &rec.VenueName); err != nil {
			return nil, fmt.Errorf("scan payment record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
