package entity

import "time"

// Estados del workflow de preparación de un pedido. Solo avanzan; DISPATCHED es terminal.
const (
	WorkflowStatusPending         = "PENDING"
	WorkflowStatusPicking         = "PICKING"
	WorkflowStatusLoaded          = "LOADED"
	WorkflowStatusPartiallyLoaded = "PARTIALLY_LOADED"
	WorkflowStatusDispatched      = "DISPATCHED"
)

// OrderWorkflow estado duradero del picking de un pedido del ERP (clave natural: OrderNumber).
type OrderWorkflow struct {
	ID                   string
	OrderNumber          string
	Status               string
	AssignedPickerUserID string
	StartedAt            *time.Time
	LoadingStartedAt     *time.Time
	LoadedAt             *time.Time
	DispatchedAt         *time.Time
	DispatchedByUserID   string
	DeliveryNoteNo       string
	LastActionAt         *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Items                []*WorkflowItem
}

// IsStarted indica si alguien inició el picking.
func (w *OrderWorkflow) IsStarted() bool {
	return w != nil && w.StartedAt != nil && w.Status != WorkflowStatusPending
}

// IsDispatched indica estado terminal.
func (w *OrderWorkflow) IsDispatched() bool {
	return w != nil && w.Status == WorkflowStatusDispatched
}

// ItemByKey busca el ítem por lineKey.
func (w *OrderWorkflow) ItemByKey(lineKey string) *WorkflowItem {
	for _, it := range w.Items {
		if it.LineKey == lineKey {
			return it
		}
	}
	return nil
}
