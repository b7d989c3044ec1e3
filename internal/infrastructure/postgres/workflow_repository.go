package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

var _ repository.WorkflowRepository = (*WorkflowRepo)(nil)

// WorkflowRepo implementación sobre PostgreSQL (usable con pool o tx).
type WorkflowRepo struct {
	q Querier
}

// NewWorkflowRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkflowRepository(q Querier) *WorkflowRepo {
	return &WorkflowRepo{q: q}
}

const workflowColumns = `id, order_number, status, assigned_picker_user_id, started_at, loading_started_at,
	loaded_at, dispatched_at, dispatched_by_user_id, delivery_note_no, last_action_at, created_at, updated_at`

const itemColumns = `id, workflow_id, line_key, product_code, product_name, unit, warehouse_code, row_number,
	requested_qty, delivered_qty, remaining_qty, picked_qty, extra_qty, shortage_qty, unit_price, vat,
	stock_snapshot, image_url, shelf_code, status, picked_at, created_at, updated_at`

// Ensure crea el workflow en PENDING; si ya existe no lo toca.
func (r *WorkflowRepo) Ensure(ctx context.Context, orderNumber string, now time.Time) error {
	query := `
		INSERT INTO order_workflows (id, order_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (order_number) DO NOTHING`
	_, err := r.q.Exec(ctx, query, uuid.New().String(), orderNumber, entity.WorkflowStatusPending, now)
	if err != nil {
		return fmt.Errorf("ensure workflow: %w", err)
	}
	return nil
}

// GetByOrderNumber devuelve el workflow con sus ítems.
func (r *WorkflowRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.OrderWorkflow, error) {
	return r.get(ctx, orderNumber, false)
}

// GetByOrderNumberForUpdate bloquea la fila del workflow hasta el fin de la tx.
func (r *WorkflowRepo) GetByOrderNumberForUpdate(ctx context.Context, orderNumber string) (*entity.OrderWorkflow, error) {
	return r.get(ctx, orderNumber, true)
}

func (r *WorkflowRepo) get(ctx context.Context, orderNumber string, lock bool) (*entity.OrderWorkflow, error) {
	query := `SELECT ` + workflowColumns + ` FROM order_workflows WHERE order_number = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	w, err := scanWorkflow(r.q.QueryRow(ctx, query, orderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get workflow: %w", err)
	}
	items, err := r.listItems(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Items = items
	return w, nil
}

func (r *WorkflowRepo) listItems(ctx context.Context, workflowID string) ([]*entity.WorkflowItem, error) {
	query := `SELECT ` + itemColumns + ` FROM workflow_items WHERE workflow_id = $1 ORDER BY row_number, line_key`
	rows, err := r.q.Query(ctx, query, workflowID)
	if err != nil {
		return nil, fmt.Errorf("list workflow items: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkflowItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workflow item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update persiste la cabecera.
func (r *WorkflowRepo) Update(ctx context.Context, w *entity.OrderWorkflow) error {
	w.UpdatedAt = time.Now().UTC()
	query := `
		UPDATE order_workflows SET
			status = $2, assigned_picker_user_id = $3, started_at = $4, loading_started_at = $5,
			loaded_at = $6, dispatched_at = $7, dispatched_by_user_id = $8, delivery_note_no = $9,
			last_action_at = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		w.ID, w.Status, nullString(w.AssignedPickerUserID), w.StartedAt, w.LoadingStartedAt,
		w.LoadedAt, w.DispatchedAt, nullString(w.DispatchedByUserID), nullString(w.DeliveryNoteNo),
		w.LastActionAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update workflow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update workflow: no existe %s", w.ID)
	}
	return nil
}

// UpsertItem inserta o actualiza por (workflow_id, line_key).
func (r *WorkflowRepo) UpsertItem(ctx context.Context, workflowID string, it *entity.WorkflowItem) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	it.WorkflowID = workflowID
	query := `
		INSERT INTO workflow_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (workflow_id, line_key) DO UPDATE SET
			product_code = EXCLUDED.product_code, product_name = EXCLUDED.product_name,
			unit = EXCLUDED.unit, warehouse_code = EXCLUDED.warehouse_code, row_number = EXCLUDED.row_number,
			requested_qty = EXCLUDED.requested_qty, delivered_qty = EXCLUDED.delivered_qty,
			remaining_qty = EXCLUDED.remaining_qty, picked_qty = EXCLUDED.picked_qty,
			extra_qty = EXCLUDED.extra_qty, shortage_qty = EXCLUDED.shortage_qty,
			unit_price = EXCLUDED.unit_price, vat = EXCLUDED.vat, stock_snapshot = EXCLUDED.stock_snapshot,
			image_url = EXCLUDED.image_url, shelf_code = EXCLUDED.shelf_code, status = EXCLUDED.status,
			picked_at = EXCLUDED.picked_at, updated_at = EXCLUDED.updated_at
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		it.ID, workflowID, it.LineKey, it.ProductCode, it.ProductName, it.Unit, it.WarehouseCode, it.RowNumber,
		it.RequestedQty, it.DeliveredQty, it.RemainingQty, it.PickedQty, it.ExtraQty, it.ShortageQty,
		it.UnitPrice, it.VAT, it.StockSnapshot, nullString(it.ImageURL), nullString(it.ShelfCode), it.Status,
		it.PickedAt, it.CreatedAt, it.UpdatedAt,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("upsert workflow item: %w", err)
	}
	return nil
}

// StatusMap estado por pedido; los que no tienen workflow no aparecen.
func (r *WorkflowRepo) StatusMap(ctx context.Context, orderNumbers []string) (map[string]string, error) {
	out := make(map[string]string, len(orderNumbers))
	if len(orderNumbers) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT order_number, status FROM order_workflows WHERE order_number = ANY($1)`, orderNumbers)
	if err != nil {
		return nil, fmt.Errorf("status map: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var number, status string
		if err := rows.Scan(&number, &status); err != nil {
			return nil, fmt.Errorf("scan status: %w", err)
		}
		out[number] = status
	}
	return out, rows.Err()
}

func scanWorkflow(row pgx.Row) (*entity.OrderWorkflow, error) {
	var w entity.OrderWorkflow
	var picker, dispatchedBy, noteNo *string
	err := row.Scan(&w.ID, &w.OrderNumber, &w.Status, &picker, &w.StartedAt, &w.LoadingStartedAt,
		&w.LoadedAt, &w.DispatchedAt, &dispatchedBy, &noteNo, &w.LastActionAt, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	w.AssignedPickerUserID = derefString(picker)
	w.DispatchedByUserID = derefString(dispatchedBy)
	w.DeliveryNoteNo = derefString(noteNo)
	return &w, nil
}

func scanItem(row pgx.Row) (*entity.WorkflowItem, error) {
	var it entity.WorkflowItem
	var imageURL, shelf *string
	err := row.Scan(&it.ID, &it.WorkflowID, &it.LineKey, &it.ProductCode, &it.ProductName, &it.Unit,
		&it.WarehouseCode, &it.RowNumber, &it.RequestedQty, &it.DeliveredQty, &it.RemainingQty,
		&it.PickedQty, &it.ExtraQty, &it.ShortageQty, &it.UnitPrice, &it.VAT, &it.StockSnapshot,
		&imageURL, &shelf, &it.Status, &it.PickedAt, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.ImageURL = derefString(imageURL)
	it.ShelfCode = derefString(shelf)
	return &it, nil
}
