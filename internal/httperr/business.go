package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de negócio usados pelo core
const (
	CodeNotFound           = "not_found"
	CodeAlreadyExists      = "already_exists"
	CodeTimeConflict       = "time_conflict"
	CodePermissionDenied   = "permission_denied"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAreaInUse          = "area_in_use"
)

type BusinessError struct {
	Code   string
	Entity string
	Key    string
}

func (e BusinessError) Error() string {
	if e.Entity == "" {
		return e.Code
	}
	return e.Code + ": " + e.Entity + " [" + e.Key + "]"
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrEntity(code, entity, key string) error {
	return BusinessError{Code: code, Entity: entity, Key: key}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsExclusionConflict detecta violação da constraint de exclusão de
// intervalos no Postgres (SQLSTATE 23P01). É o backstop contra duas
// criações concorrentes que passam a checagem de conflito antes do commit.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

// IsUniqueViolation detecta violação de unique index (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
