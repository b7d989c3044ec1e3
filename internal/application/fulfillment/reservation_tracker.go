package fulfillment

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	rules "github.com/jhoicas/fulfillment-api/internal/domain/fulfillment"
)

// ReservationView reservas activas por producto. Degraded indica que salen de la caché y no del ERP.
type ReservationView struct {
	ByProduct map[string][]entity.Reservation
	Degraded  bool
}

// ReservationTracker reservas de stock de todos los pedidos abiertos sobre un conjunto de productos.
type ReservationTracker struct {
	source  ReservationSource
	orders  PendingOrderCache
	metrics Recorder
	log     zerolog.Logger
}

// NewReservationTracker construye el tracker.
func NewReservationTracker(source ReservationSource, orders PendingOrderCache, metrics Recorder, log zerolog.Logger) *ReservationTracker {
	if metrics == nil {
		metrics = NopRecorder{}
	}
	return &ReservationTracker{
		source:  source,
		orders:  orders,
		metrics: metrics,
		log:     log.With().Str("component", "reservations").Logger(),
	}
}

// ForProducts consulta el ERP en vivo; si falla aproxima con la caché de pedidos (modo degradado).
// currentRow < 0 no marca ninguna línea como actual.
func (t *ReservationTracker) ForProducts(ctx context.Context, productCodes []string, orderNumber string, currentRow int) (*ReservationView, error) {
	if len(productCodes) == 0 {
		return &ReservationView{ByProduct: map[string][]entity.Reservation{}}, nil
	}

	list, err := t.source.ActiveReservations(ctx, productCodes)
	if err == nil {
		return &ReservationView{ByProduct: rules.GroupReservations(list, orderNumber, currentRow)}, nil
	}

	t.metrics.ReservationFallback()
	t.log.Warn().Err(err).Int("products", len(productCodes)).Msg("consulta de reservas en el ERP falló, se usa la caché")

	cached, cerr := t.orders.List(ctx)
	if cerr != nil {
		return nil, domain.External("reservas", cerr)
	}
	wanted := make(map[string]bool, len(productCodes))
	for _, c := range productCodes {
		wanted[c] = true
	}
	orders := make([]*entity.PendingOrder, 0, len(cached))
	for _, c := range cached {
		o, err := rules.ParseOrder(c, rules.ParseOptions{IncludeNonRemaining: true})
		if err != nil {
			continue
		}
		orders = append(orders, o)
	}
	list = rules.ReservationsFromOrders(orders, wanted)
	return &ReservationView{ByProduct: rules.GroupReservations(list, orderNumber, currentRow), Degraded: true}, nil
}
