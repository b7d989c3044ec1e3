package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
//
// Clases: validación, guarda de estado, no encontrado y sistema externo.
// Solo ErrExternal es reintentable.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrStateGuard   = errors.New("transición no permitida en el estado actual")
	ErrExternal     = errors.New("sistema externo no disponible")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// Guardas de estado del workflow; todas envuelven ErrStateGuard.
var (
	ErrWorkflowNotStarted = fmt.Errorf("%w: el picking del pedido no ha iniciado", ErrStateGuard)
	ErrWorkflowDispatched = fmt.Errorf("%w: el pedido ya fue despachado", ErrStateGuard)
	ErrNothingToDispatch  = fmt.Errorf("%w: no hay líneas recogidas con cantidad pendiente", ErrStateGuard)
)

// IsRetryable indica si el cliente puede reintentar la operación tal cual.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrExternal)
}

// External envuelve un fallo del ERP o de la caché como error reintentable.
func External(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrExternal) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrExternal, err)
}
