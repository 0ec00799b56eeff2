package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation.
const uniqueViolation = "23505"

// isUniqueViolation detecta el choque contra un constraint UNIQUE del esquema
// (username del negocio, SKU de producto, email de miembro, clave de
// visitante). Los repositorios lo traducen a domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
