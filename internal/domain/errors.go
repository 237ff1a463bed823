package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrInactiveUser = errors.New("usuario inactivo")
	ErrForbidden    = errors.New("acceso denegado")
)
