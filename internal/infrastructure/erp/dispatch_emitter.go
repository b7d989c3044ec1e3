package erp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain"
)

var _ fulfillment.DispatchEmitter = (*DispatchEmitter)(nil)

// Constantes de Mikro para la irsaliye de venta (çıkış irsaliyesi).
const (
	movementTypeOut       = 1  // sth_tip: salida
	movementKindWholesale = 0  // sth_cins: toptan
	movementNormal        = 0  // sth_normal_iade: normal (no devolución)
	docTypeDeliveryNote   = 1  // sth_evraktip: çıkış irsaliyesi
	fileNoStockMovements  = 16 // egk_dosyano de stok_hareketleri
	orderTypeSales        = 0  // sip_tip: venta
)

// DispatchEmitter escribe la irsaliye en las tablas del ERP en una sola transacción.
type DispatchEmitter struct {
	exec *Executor
	log  zerolog.Logger
}

// NewDispatchEmitter construye el emisor sobre el executor del ERP.
func NewDispatchEmitter(exec *Executor, log zerolog.Logger) *DispatchEmitter {
	return &DispatchEmitter{exec: exec, log: log}
}

// orderRow línea de siparisler releída dentro de la transacción.
type orderRow struct {
	GUID       string
	Quantity   decimal.Decimal
	Delivered  decimal.Decimal
	UnitPrice  decimal.Decimal
	NetAmount  decimal.Decimal
	VATPointer int
	VATAmount  decimal.Decimal
	Warehouse  int
}

// Emit asigna secuencia, graba movimientos, actualiza el pedido y los descriptores de transporte.
func (e *DispatchEmitter) Emit(ctx context.Context, req fulfillment.DispatchRequest) (*fulfillment.DispatchResult, error) {
	series := strings.ToUpper(strings.TrimSpace(req.Series))
	if series == "" {
		return nil, fmt.Errorf("%w: serie de irsaliye vacía", domain.ErrInvalidInput)
	}
	if len(req.Lines) == 0 {
		return nil, domain.ErrNothingToDispatch
	}

	var result *fulfillment.DispatchResult
	err := e.exec.InTx(ctx, "emit_delivery_note", func(ctx context.Context, tx *sql.Tx) error {
		// ── 1. secuencia serializada por (tipo de documento, serie) ──
		seq, err := allocateSequence(ctx, tx, docTypeDeliveryNote, series)
		if err != nil {
			return err
		}
		res := &fulfillment.DispatchResult{
			DocumentNo: fmt.Sprintf("%s-%d", series, seq),
			Series:     series,
			Sequence:   seq,
		}

		// ── 2. líneas: releer el pedido, resolver precio e IVA, grabar movimiento ──
		rowNo := 0
		for _, l := range req.Lines {
			row, err := fetchOrderRow(ctx, tx, req.OrderSeries, req.OrderSequence, l.ProductCode, l.RowNumber)
			if err != nil {
				return err
			}
			if row == nil {
				e.log.Warn().Str("order", req.OrderNumber).Str("line", l.LineKey).Msg("línea no encontrada en siparisler, se omite")
				continue
			}
			remaining := row.Quantity.Sub(row.Delivered)
			qty := decimal.Min(l.Quantity, remaining)
			if !qty.IsPositive() {
				e.log.Warn().Str("order", req.OrderNumber).Str("line", l.LineKey).Msg("línea sin pendiente en el ERP, se omite")
				continue
			}

			price := row.UnitPrice
			if !price.IsPositive() {
				price = l.UnitPrice
			}
			ev := vatEvidence{
				LinePointer:   row.VATPointer,
				LineVATAmount: row.VATAmount,
				LineNetAmount: row.NetAmount,
				CachedVAT:     l.VAT,
			}
			if needsProductClass(ev) {
				if ev.ProductPointer, err = productVATPointer(ctx, tx, l.ProductCode); err != nil {
					return err
				}
			}
			rate := resolveVATRate(ev)
			net := qty.Mul(price).Round(2)
			vat := net.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)

			movementGUID := uuid.New().String()
			if err := insertMovement(ctx, tx, movementInsert{
				GUID:       movementGUID,
				Series:     series,
				Sequence:   seq,
				RowNo:      rowNo,
				Req:        req,
				Line:       l,
				Warehouse:  row.Warehouse,
				Quantity:   qty,
				NetAmount:  net,
				VATPointer: pointerForRate(rate),
				VATAmount:  vat,
				OrderGUID:  row.GUID,
			}); err != nil {
				return err
			}
			if err := markDelivered(ctx, tx, row.GUID, qty, req); err != nil {
				return err
			}

			res.Lines = append(res.Lines, fulfillment.DispatchResultLine{
				LineKey:       l.LineKey,
				DeliveredQty:  qty,
				UnitPrice:     price,
				VATRate:       rate,
				NetAmount:     net,
				VATAmount:     vat,
				MovementGUID:  movementGUID,
				MovementRowNo: rowNo,
			})
			rowNo++
		}
		if len(res.Lines) == 0 {
			return domain.ErrNothingToDispatch
		}

		// ── 3. descriptores de transporte del documento ──
		if err := upsertTransport(ctx, tx, series, seq, req); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.Info().Str("order", req.OrderNumber).Str("document_no", result.DocumentNo).Int("lines", len(result.Lines)).Msg("irsaliye grabada en el ERP")
	return result, nil
}

// allocateSequence toma un lock de transacción por (tipo, serie) y lee max+1.
// El lock se libera al terminar la transacción, después de insertar los movimientos.
func allocateSequence(ctx context.Context, tx *sql.Tx, docType int, series string) (int64, error) {
	lockKey := fmt.Sprintf("sth_evrak:%d:%s", docType, series)
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return 0, fmt.Errorf("lock de secuencia: %w", err)
	}
	var seq int64
	err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(sth_evrakno_sira), 0) + 1
		FROM stok_hareketleri
		WHERE sth_evraktip = $1 AND sth_evrakno_seri = $2`, docType, series).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("siguiente secuencia: %w", err)
	}
	return seq, nil
}

func fetchOrderRow(ctx context.Context, tx *sql.Tx, series string, sequence int64, productCode string, rowNo int) (*orderRow, error) {
	var r orderRow
	err := tx.QueryRowContext(ctx, `
		SELECT sip_guid, sip_miktar, sip_teslim_miktar, sip_b_fiyat, sip_tutar, sip_vergi_pntr, sip_vergi, sip_depono
		FROM siparisler
		WHERE sip_tip = $1 AND sip_evrakno_seri = $2 AND sip_evrakno_sira = $3 AND sip_stok_kod = $4 AND sip_satirno = $5
		FOR UPDATE`, orderTypeSales, series, sequence, productCode, rowNo).Scan(
		&r.GUID, &r.Quantity, &r.Delivered, &r.UnitPrice, &r.NetAmount, &r.VATPointer, &r.VATAmount, &r.Warehouse,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer línea de pedido: %w", err)
	}
	return &r, nil
}

func productVATPointer(ctx context.Context, tx *sql.Tx, productCode string) (int, error) {
	var p int
	err := tx.QueryRowContext(ctx, `SELECT sto_toptan_vergi FROM stoklar WHERE sto_kod = $1`, productCode).Scan(&p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("leer clase de IVA: %w", err)
	}
	return p, nil
}

type movementInsert struct {
	GUID       string
	Series     string
	Sequence   int64
	RowNo      int
	Req        fulfillment.DispatchRequest
	Line       fulfillment.DispatchRequestLine
	Warehouse  int
	Quantity   decimal.Decimal
	NetAmount  decimal.Decimal
	VATPointer int
	VATAmount  decimal.Decimal
	OrderGUID  string
}

func insertMovement(ctx context.Context, tx *sql.Tx, m movementInsert) error {
	t := m.Req.Transport
	_, err := tx.ExecContext(ctx, `
		INSERT INTO stok_hareketleri (
			sth_guid, sth_create_date, sth_create_user, sth_tarih, sth_tip, sth_cins, sth_normal_iade,
			sth_evraktip, sth_evrakno_seri, sth_evrakno_sira, sth_satirno, sth_belge_no, sth_belge_tarih,
			sth_stok_kod, sth_cari_kodu, sth_miktar, sth_tutar, sth_vergi_pntr, sth_vergi,
			sth_cikis_depo_no, sth_sip_uid, sth_plaka, sth_aciklama
		) VALUES ($1, $2, $3, $2, $4, $5, $6, $7, $8, $9, $10, $11, $2, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		m.GUID, m.Req.Date, m.Req.UserID, movementTypeOut, movementKindWholesale, movementNormal,
		docTypeDeliveryNote, m.Series, m.Sequence, m.RowNo, m.Req.OrderNumber,
		m.Line.ProductCode, m.Req.CustomerCode, m.Quantity, m.NetAmount, m.VATPointer, m.VATAmount,
		m.Warehouse, m.OrderGUID, t.VehiclePlate, fmt.Sprintf("%s / %s", t.DriverName, t.DriverID),
	)
	if err != nil {
		return fmt.Errorf("insertar movimiento %s: %w", m.Line.LineKey, err)
	}
	return nil
}

// markDelivered suma lo entregado, consume primero la reserva activa y cierra la línea si ya no queda pendiente.
func markDelivered(ctx context.Context, tx *sql.Tx, orderGUID string, qty decimal.Decimal, req fulfillment.DispatchRequest) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE siparisler SET
			sip_teslim_miktar = sip_teslim_miktar + $1,
			sip_rezerveden_teslim_edilen = sip_rezerveden_teslim_edilen
				+ LEAST($1, GREATEST(sip_rezervasyon_miktari - sip_rezerveden_teslim_edilen, 0)),
			sip_kapat_fl = (sip_teslim_miktar + $1 >= sip_miktar),
			sip_lastup_date = $2,
			sip_lastup_user = $3
		WHERE sip_guid = $4`, qty, req.Date, req.UserID, orderGUID)
	if err != nil {
		return fmt.Errorf("actualizar línea de pedido: %w", err)
	}
	return nil
}

// upsertTransport una sola fila de descriptores por documento.
func upsertTransport(ctx context.Context, tx *sql.Tx, series string, seq int64, req fulfillment.DispatchRequest) error {
	t := req.Transport
	args := []any{
		fileNoStockMovements, docTypeDeliveryNote, series, seq,
		t.DriverName, t.DriverID, t.VehiclePlate, t.TrailerPlate, t.CarrierName, t.Note,
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE evrak_aciklamalari SET
			egk_evracik1 = $5, egk_evracik2 = $6, egk_evracik3 = $7,
			egk_evracik4 = $8, egk_evracik5 = $9, egk_evracik6 = $10
		WHERE egk_dosyano = $1 AND egk_evr_tip = $2 AND egk_evr_seri = $3 AND egk_evr_sira = $4`, args...)
	if err != nil {
		return fmt.Errorf("actualizar transporte: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO evrak_aciklamalari (
			egk_guid, egk_dosyano, egk_evr_tip, egk_evr_seri, egk_evr_sira,
			egk_evracik1, egk_evracik2, egk_evracik3, egk_evracik4, egk_evracik5, egk_evracik6
		) VALUES ($11, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, append(args, uuid.New().String())...)
	if err != nil {
		return fmt.Errorf("insertar transporte: %w", err)
	}
	return nil
}
