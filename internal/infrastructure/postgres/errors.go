package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campusbridge/student-support-api/internal/domain/repository"
)

// constraint name -> API field name for duplicate errors
var constraintFields = map[string]string{
	"users_email_key":      "email",
	"users_student_id_key": "studentId",
	"users_phone_key":      "phone",
}

// mapWriteError translates pgx errors into domain errors. Unique violations
// (SQLSTATE 23505) become DuplicateError with the violated field.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if f, ok := constraintFields[pgErr.ConstraintName]; ok {
			return &repository.DuplicateError{Field: f}
		}
		// fall back to guessing from the constraint name
		name := pgErr.ConstraintName
		name = strings.TrimSuffix(strings.TrimPrefix(name, "users_"), "_key")
		if name == "" {
			name = "field"
		}
		return &repository.DuplicateError{Field: name}
	}
	return err
}
