package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrUsernameTaken       = errors.New("el nombre de usuario ya está registrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrSessionExpired      = errors.New("sesión expirada o inexistente")
	ErrSystemProtected     = errors.New("las categorías de sistema no se pueden modificar ni eliminar")
	ErrHasDependents       = errors.New("el recurso tiene registros dependientes")
	ErrDefaultProtected    = errors.New("la categoría por defecto no se puede eliminar")
	ErrLedgerNotConfigured = errors.New("el plan contable no tiene la categoría de ingresos de ventas")
	ErrInviteNotPending    = errors.New("la invitación no corresponde a un miembro pendiente")
)
