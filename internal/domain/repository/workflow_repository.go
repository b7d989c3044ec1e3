package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// WorkflowRepository puerto de persistencia del workflow de picking y sus ítems.
// Las implementaciones reciben pool o tx; el bloqueo de fila solo tiene efecto dentro de una tx.
type WorkflowRepository interface {
	// Ensure crea el workflow en PENDING si no existe (upsert por número de pedido, nunca pisa uno existente).
	Ensure(ctx context.Context, orderNumber string, now time.Time) error

	// GetByOrderNumber devuelve el workflow con sus ítems, o nil, nil si no existe.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.OrderWorkflow, error)

	// GetByOrderNumberForUpdate igual que GetByOrderNumber pero bloquea la fila (SELECT ... FOR UPDATE).
	GetByOrderNumberForUpdate(ctx context.Context, orderNumber string) (*entity.OrderWorkflow, error)

	// Update persiste la cabecera (estado, picker, marcas de tiempo, irsaliye).
	Update(ctx context.Context, w *entity.OrderWorkflow) error

	// UpsertItem inserta o actualiza un ítem por (workflow_id, line_key).
	UpsertItem(ctx context.Context, workflowID string, it *entity.WorkflowItem) error

	// StatusMap devuelve el estado por número de pedido; los pedidos sin workflow no aparecen.
	StatusMap(ctx context.Context, orderNumbers []string) (map[string]string, error)
}
