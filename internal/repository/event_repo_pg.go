package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventgrid/eventgrid/internal/domain"
)

type EventFilter struct {
	Status    string
	EventType string
	Limit     int
	Offset    int
}

// EventRepository scopes every read and write by organizer. An event owned
// by somebody else surfaces as domain.ErrEventNotFound, never as a
// permission error.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, organizerID, eventID string) (*domain.Event, error)
	List(ctx context.Context, organizerID string, filter EventFilter) ([]domain.Event, int, error)
	Update(ctx context.Context, event *domain.Event) error
	DeleteCascade(ctx context.Context, organizerID, eventID string) error
}

type PGEventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) EventRepository {
	return &PGEventRepository{db: db}
}

const eventColumns = `id, organizer_id, title, description, event_type, category, status, start_date, end_date, timezone, expected_attendees, max_capacity, total_budget, currency, visibility, created_at, updated_at`

func scanEvent(row pgx.Row, e *domain.Event) error {
	return row.Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.EventType, &e.Category, &e.Status,
		&e.StartDate, &e.EndDate, &e.Timezone, &e.ExpectedAttendees, &e.MaxCapacity, &e.TotalBudget,
		&e.Currency, &e.Visibility, &e.CreatedAt, &e.UpdatedAt)
}

func (r *PGEventRepository) Create(ctx context.Context, event *domain.Event) error {
	row := r.db.QueryRow(ctx, `INSERT INTO events (id, organizer_id, title, description, event_type, category, status, start_date, end_date, timezone, expected_attendees, max_capacity, total_budget, currency, visibility)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`,
		event.ID, event.OrganizerID, event.Title, event.Description, event.EventType, event.Category,
		event.Status, event.StartDate, event.EndDate, event.Timezone, event.ExpectedAttendees,
		event.MaxCapacity, event.TotalBudget, event.Currency, event.Visibility)
	if err := row.Scan(&event.CreatedAt, &event.UpdatedAt); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *PGEventRepository) GetByID(ctx context.Context, organizerID, eventID string) (*domain.Event, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id=$1 AND organizer_id=$2`, eventID, organizerID)
	var e domain.Event
	if err := scanEvent(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (r *PGEventRepository) List(ctx context.Context, organizerID string, filter EventFilter) ([]domain.Event, int, error) {
	where := `WHERE organizer_id=$1`
	args := []interface{}{organizerID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND status=$%d`, len(args))
	}
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		where += fmt.Sprintf(` AND event_type=$%d`, len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM events `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM events %s ORDER BY start_date DESC LIMIT $%d OFFSET $%d`,
		eventColumns, where, len(args)-1, len(args))
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var e domain.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *PGEventRepository) Update(ctx context.Context, event *domain.Event) error {
	row := r.db.QueryRow(ctx, `UPDATE events SET title=$1, description=$2, category=$3, status=$4, start_date=$5, end_date=$6, timezone=$7, expected_attendees=$8, max_capacity=$9, total_budget=$10, currency=$11, visibility=$12, updated_at=now()
		WHERE id=$13 AND organizer_id=$14
		RETURNING updated_at`,
		event.Title, event.Description, event.Category, event.Status, event.StartDate, event.EndDate,
		event.Timezone, event.ExpectedAttendees, event.MaxCapacity, event.TotalBudget, event.Currency,
		event.Visibility, event.ID, event.OrganizerID)
	if err := row.Scan(&event.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteCascade removes the event and every booking under it in one
// transaction. Ownership is checked before anything is touched.
func (r *PGEventRepository) DeleteCascade(ctx context.Context, organizerID, eventID string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id string
	err = tx.QueryRow(ctx, `SELECT id FROM events WHERE id=$1 AND organizer_id=$2 FOR UPDATE`, eventID, organizerID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE event_id=$1`, eventID); err != nil {
		return fmt.Errorf("delete bookings: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM events WHERE id=$1`, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return tx.Commit(ctx)
}

var _ EventRepository = (*PGEventRepository)(nil)
