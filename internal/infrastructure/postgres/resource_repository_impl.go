package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
	"github.com/campusbridge/student-support-api/internal/domain/repository"
)

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) Create(ctx context.Context, res *entity.Resource) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO resources (title, description, contact, type, created_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid)
		RETURNING id, created_at, updated_at
	`, res.Title, res.Description, res.Contact, string(res.Type), res.CreatedBy)

	if err := row.Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*entity.Resource, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, contact, type, COALESCE(created_by::text, ''), created_at, updated_at
		FROM resources
		WHERE id = $1
	`, id)
	return scanResource(row)
}

func (r *ResourceRepository) List(ctx context.Context) ([]entity.Resource, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, contact, type, COALESCE(created_by::text, ''), created_at, updated_at
		FROM resources
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

func (r *ResourceRepository) Update(ctx context.Context, id string, patch repository.ResourcePatch) (*entity.Resource, error) {
	var typ *string
	if patch.Type != nil {
		s := string(*patch.Type)
		typ = &s
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE resources SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			contact     = COALESCE($4, contact),
			type        = COALESCE($5, type),
			updated_at  = now()
		WHERE id = $1
		RETURNING id, title, description, contact, type, COALESCE(created_by::text, ''), created_at, updated_at
	`, id, patch.Title, patch.Description, patch.Contact, typ)

	return scanResource(row)
}

func (r *ResourceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanResource(row pgx.Row) (*entity.Resource, error) {
	res := &entity.Resource{}
	var typ string
	if err := row.Scan(&res.ID, &res.Title, &res.Description, &res.Contact, &typ,
		&res.CreatedBy, &res.CreatedAt, &res.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	res.Type = entity.ResourceType(typ)
	return res, nil
}

var _ repository.ResourceRepository = (*ResourceRepository)(nil)
