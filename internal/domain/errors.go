package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUsernameTaken     = errors.New("el username ya está registrado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrLeaseHasPayments  = errors.New("el contrato tiene pagos asociados")
	ErrTenantHasLeases   = errors.New("el inquilino tiene contratos activos")
)
