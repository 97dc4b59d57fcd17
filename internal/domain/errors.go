package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnitMismatch      = errors.New("la unidad no coincide con la registrada para el artículo")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidOperation  = errors.New("operación inválida sobre el stock")
	ErrPersistence       = errors.New("fallo de escritura durable")

	// ErrInconsistentState indica que una escritura falló después de una escritura
	// previa ya confirmada y la compensación también falló: el libro y el stock
	// quedaron divergentes. Nunca se devuelve envuelto en ErrPersistence.
	ErrInconsistentState = errors.New("estado inconsistente: la compensación falló")
)
