package erp

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

var _ fulfillment.ReservationSource = (*ReservationSource)(nil)

// ReservationSource consulta en vivo las reservas activas de pedidos de venta abiertos.
type ReservationSource struct {
	exec *Executor
}

// NewReservationSource construye la fuente sobre el executor del ERP.
func NewReservationSource(exec *Executor) *ReservationSource {
	return &ReservationSource{exec: exec}
}

// ActiveReservations reservas con (reservado − entregado desde reserva) > 0 de los productos dados.
func (s *ReservationSource) ActiveReservations(ctx context.Context, productCodes []string) ([]entity.Reservation, error) {
	if len(productCodes) == 0 {
		return nil, nil
	}
	args := []any{orderTypeSales}
	placeholders := make([]string, len(productCodes))
	for i, code := range productCodes {
		args = append(args, code)
		placeholders[i] = fmt.Sprintf("$%d", i+2)
	}
	query := `
		SELECT s.sip_evrakno_seri, s.sip_evrakno_sira, s.sip_satirno, s.sip_stok_kod, s.sip_musteri_kod,
			COALESCE(c.cari_unvan1, ''), s.sip_depono,
			s.sip_rezervasyon_miktari - s.sip_rezerveden_teslim_edilen
		FROM siparisler s
		LEFT JOIN cari_hesaplar c ON c.cari_kod = s.sip_musteri_kod
		WHERE s.sip_tip = $1
			AND s.sip_kapat_fl = false
			AND s.sip_stok_kod IN (` + strings.Join(placeholders, ", ") + `)
			AND s.sip_rezervasyon_miktari - s.sip_rezerveden_teslim_edilen > 0
		ORDER BY s.sip_stok_kod, s.sip_evrakno_seri, s.sip_evrakno_sira, s.sip_satirno`

	var out []entity.Reservation
	err := s.exec.Query(ctx, "active_reservations", func(ctx context.Context, db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("consultar reservas: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var r entity.Reservation
			var series string
			var seq int64
			var warehouse int
			if err := rows.Scan(&series, &seq, &r.RowNumber, &r.ProductCode, &r.CustomerCode,
				&r.CustomerName, &warehouse, &r.ActiveQty); err != nil {
				return fmt.Errorf("scan reserva: %w", err)
			}
			r.OrderNumber = fmt.Sprintf("%s-%d", series, seq)
			r.WarehouseCode = strconv.Itoa(warehouse)
			out = append(out, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
