package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbridge/student-support-api/internal/domain/entity"
	"github.com/campusbridge/student-support-api/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, category, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Content, p.Category, p.AuthorID)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.title, p.content, p.category, p.author_id, u.name,
		       p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)
	return scanPost(row)
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.title, p.content, p.category, p.author_id, u.name,
		       p.created_at, p.updated_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]entity.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// Update applies only the fields present in the patch as a single statement
// so concurrent updaters cannot lose each other's writes.
func (r *PostRepository) Update(ctx context.Context, id string, patch repository.PostPatch) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE posts SET
			title    = COALESCE($2, title),
			content  = COALESCE($3, content),
			category = COALESCE($4, category),
			updated_at = now()
		WHERE id = $1
		RETURNING id, title, content, category, author_id, created_at, updated_at
	`, id, patch.Title, patch.Content, patch.Category)

	p := &entity.Post{}
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.AuthorID,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Category, &p.AuthorID,
		&p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
