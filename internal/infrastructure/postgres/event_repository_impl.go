package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
	"github.com/campusbridge/student-support-api/internal/domain/repository"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (title, description, date, location, category, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, e.Title, e.Description, e.Date, e.Location, e.Category, e.CreatedBy)

	if err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, date, location, category, created_by, created_at, updated_at
		FROM events
		WHERE id = $1
	`, id)
	return scanEvent(row)
}

func (r *EventRepository) List(ctx context.Context) ([]entity.Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, date, location, category, created_by, created_at, updated_at
		FROM events
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]entity.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, id string, patch repository.EventPatch) (*entity.Event, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE events SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			date        = COALESCE($4, date),
			location    = COALESCE($5, location),
			category    = COALESCE($6, category),
			updated_at  = now()
		WHERE id = $1
		RETURNING id, title, description, date, location, category, created_by, created_at, updated_at
	`, id, patch.Title, patch.Description, patch.Date, patch.Location, patch.Category)

	e, err := scanEvent(row)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	e := &entity.Event{}
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
		&e.Category, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

var _ repository.EventRepository = (*EventRepository)(nil)
