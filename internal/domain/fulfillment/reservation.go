package fulfillment

import (
	"sort"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// ReservationsFromOrders aproxima las reservas activas a partir de la caché de pedidos.
// Se usa cuando la consulta en vivo al ERP falla.
func ReservationsFromOrders(orders []*entity.PendingOrder, products map[string]bool) []entity.Reservation {
	var out []entity.Reservation
	for _, o := range orders {
		for _, l := range o.Lines {
			if !products[l.ProductCode] {
				continue
			}
			active := l.ActiveReservation()
			if !active.IsPositive() {
				continue
			}
			out = append(out, entity.Reservation{
				OrderNumber:   o.OrderNumber,
				RowNumber:     l.RowNumber,
				ProductCode:   l.ProductCode,
				CustomerCode:  o.CustomerCode,
				CustomerName:  o.CustomerName,
				WarehouseCode: l.WarehouseCode,
				ActiveQty:     active,
			})
		}
	}
	return out
}

// GroupReservations agrupa por producto y marca las que pertenecen al pedido/línea en pantalla.
// currentRow < 0 desactiva la marca de línea.
func GroupReservations(list []entity.Reservation, currentOrder string, currentRow int) map[string][]entity.Reservation {
	out := make(map[string][]entity.Reservation)
	for _, r := range list {
		r.IsCurrentOrder = r.OrderNumber == currentOrder
		r.IsCurrentLine = r.IsCurrentOrder && currentRow >= 0 && r.RowNumber == currentRow
		out[r.ProductCode] = append(out[r.ProductCode], r)
	}
	for code := range out {
		rs := out[code]
		sort.SliceStable(rs, func(i, j int) bool {
			if rs[i].IsCurrentOrder != rs[j].IsCurrentOrder {
				return rs[i].IsCurrentOrder
			}
			if rs[i].OrderNumber != rs[j].OrderNumber {
				return rs[i].OrderNumber < rs[j].OrderNumber
			}
			return rs[i].RowNumber < rs[j].RowNumber
		})
	}
	return out
}
