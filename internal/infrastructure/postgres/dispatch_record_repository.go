package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

var _ repository.DispatchRecordRepository = (*DispatchRecordRepo)(nil)

// DispatchRecordRepo copia local de irsaliyes (cabecera + líneas).
type DispatchRecordRepo struct {
	q Querier
}

// NewDispatchRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDispatchRecordRepository(q Querier) *DispatchRecordRepo {
	return &DispatchRecordRepo{q: q}
}

const dispatchColumns = `id, workflow_id, order_number, customer_code, customer_name, document_no, series, sequence,
	driver_name, driver_id, vehicle_plate, trailer_plate, carrier_name, transport_note,
	dispatched_by_user_id, dispatched_at, net_total, vat_total, grand_total`

// Create inserta cabecera y líneas. Usar dentro de una tx para que sea atómico.
func (r *DispatchRecordRepo) Create(ctx context.Context, rec *entity.DispatchRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	query := `INSERT INTO dispatch_records (` + dispatchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	t := rec.Transport
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.WorkflowID, rec.OrderNumber, rec.CustomerCode, rec.CustomerName, rec.DocumentNo,
		rec.Series, rec.Sequence, t.DriverName, t.DriverID, t.VehiclePlate, nullString(t.TrailerPlate),
		nullString(t.CarrierName), nullString(t.Note), rec.DispatchedByUserID, rec.DispatchedAt,
		rec.NetTotal, rec.VATTotal, rec.GrandTotal,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("irsaliye %s: %w", rec.DocumentNo, domain.ErrDuplicate)
		}
		return fmt.Errorf("create dispatch record: %w", err)
	}

	lineQuery := `
		INSERT INTO dispatch_record_lines (dispatch_id, line_no, line_key, product_code, product_name, unit,
			row_number, quantity, unit_price, vat_rate, net_amount, vat_amount, movement_guid, movement_row_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	for i, l := range rec.Lines {
		_, err := r.q.Exec(ctx, lineQuery,
			rec.ID, i+1, l.LineKey, l.ProductCode, l.ProductName, l.Unit, l.RowNumber, l.Quantity,
			l.UnitPrice, l.VATRate, l.NetAmount, l.VATAmount, nullString(l.MovementGUID), l.MovementRowNo,
		)
		if err != nil {
			return fmt.Errorf("create dispatch line %s: %w", l.LineKey, err)
		}
	}
	return nil
}

// GetByDocumentNo irsaliye con líneas o nil, nil.
func (r *DispatchRecordRepo) GetByDocumentNo(ctx context.Context, documentNo string) (*entity.DispatchRecord, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_records WHERE document_no = $1`
	rec, err := scanDispatch(r.q.QueryRow(ctx, query, documentNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dispatch record: %w", err)
	}
	if rec.Lines, err = r.lines(ctx, rec.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListByOrder irsaliyes de un pedido en orden de emisión.
func (r *DispatchRecordRepo) ListByOrder(ctx context.Context, orderNumber string) ([]*entity.DispatchRecord, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_records WHERE order_number = $1 ORDER BY dispatched_at, sequence`
	rows, err := r.q.Query(ctx, query, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("list dispatch records: %w", err)
	}
	var list []*entity.DispatchRecord
	for rows.Next() {
		rec, err := scanDispatch(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan dispatch record: %w", err)
		}
		list = append(list, rec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Las líneas se leen después de cerrar rows: una tx pgx no admite dos consultas abiertas.
	for _, rec := range list {
		if rec.Lines, err = r.lines(ctx, rec.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *DispatchRecordRepo) lines(ctx context.Context, dispatchID string) ([]entity.DispatchRecordLine, error) {
	query := `
		SELECT line_key, product_code, product_name, unit, row_number, quantity, unit_price, vat_rate,
			net_amount, vat_amount, movement_guid, movement_row_no
		FROM dispatch_record_lines WHERE dispatch_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(ctx, query, dispatchID)
	if err != nil {
		return nil, fmt.Errorf("list dispatch lines: %w", err)
	}
	defer rows.Close()
	var out []entity.DispatchRecordLine
	for rows.Next() {
		var l entity.DispatchRecordLine
		var guid *string
		if err := rows.Scan(&l.LineKey, &l.ProductCode, &l.ProductName, &l.Unit, &l.RowNumber, &l.Quantity,
			&l.UnitPrice, &l.VATRate, &l.NetAmount, &l.VATAmount, &guid, &l.MovementRowNo); err != nil {
			return nil, fmt.Errorf("scan dispatch line: %w", err)
		}
		l.MovementGUID = derefString(guid)
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanDispatch(row pgx.Row) (*entity.DispatchRecord, error) {
	var rec entity.DispatchRecord
	var trailer, carrier, note *string
	err := row.Scan(&rec.ID, &rec.WorkflowID, &rec.OrderNumber, &rec.CustomerCode, &rec.CustomerName,
		&rec.DocumentNo, &rec.Series, &rec.Sequence, &rec.Transport.DriverName, &rec.Transport.DriverID,
		&rec.Transport.VehiclePlate, &trailer, &carrier, &note, &rec.DispatchedByUserID, &rec.DispatchedAt,
		&rec.NetTotal, &rec.VATTotal, &rec.GrandTotal)
	if err != nil {
		return nil, err
	}
	rec.Transport.TrailerPlate = derefString(trailer)
	rec.Transport.CarrierName = derefString(carrier)
	rec.Transport.Note = derefString(note)
	return &rec, nil
}
