package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; los servicios los envuelven con contexto
// vía fmt.Errorf("%w: ...").
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrForbidden    = errors.New("acceso denegado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNoFields     = errors.New("sin campos para actualizar")
)
