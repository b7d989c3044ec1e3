// Package fulfillment orquesta el picking y despacho de pedidos del ERP: sincroniza el workflow
// local con la caché de pedidos, aplica las reglas de dominio y escribe la irsaliye en el ERP.
package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	rules "github.com/jhoicas/fulfillment-api/internal/domain/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

// WorkflowDeps dependencias del caso de uso.
type WorkflowDeps struct {
	Tx            TxRunner
	Workflows     repository.WorkflowRepository
	Shelves       repository.ShelfLocationRepository
	Orders        PendingOrderCache
	Catalog       ProductCatalog
	Reservations  *ReservationTracker
	Emitter       DispatchEmitter
	Metrics       Recorder
	Logger        zerolog.Logger
	DefaultSeries string
}

// WorkflowUseCase máquina de estados del picking: inicio, avance por línea, despacho y lecturas.
type WorkflowUseCase struct {
	tx            TxRunner
	workflows     repository.WorkflowRepository
	shelves       repository.ShelfLocationRepository
	orders        PendingOrderCache
	catalog       ProductCatalog
	reservations  *ReservationTracker
	emitter       DispatchEmitter
	metrics       Recorder
	log           zerolog.Logger
	defaultSeries string
	now           func() time.Time
}

// NewWorkflowUseCase construye el caso de uso.
func NewWorkflowUseCase(d WorkflowDeps) *WorkflowUseCase {
	if d.Metrics == nil {
		d.Metrics = NopRecorder{}
	}
	if d.DefaultSeries == "" {
		d.DefaultSeries = "IRS"
	}
	return &WorkflowUseCase{
		tx:            d.Tx,
		workflows:     d.Workflows,
		shelves:       d.Shelves,
		orders:        d.Orders,
		catalog:       d.Catalog,
		reservations:  d.Reservations,
		emitter:       d.Emitter,
		metrics:       d.Metrics,
		log:           d.Logger.With().Str("component", "workflow").Logger(),
		defaultSeries: d.DefaultSeries,
		now:           time.Now,
	}
}

// StartPicking crea o refresca el workflow desde la última foto del pedido y lo pasa a PICKING.
// Repetirlo nunca borra lo ya recogido.
func (uc *WorkflowUseCase) StartPicking(ctx context.Context, orderNumber, userID string) (*dto.WorkflowResponse, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.loadOrder(ctx, orderNumber, true)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	products, _ := uc.lookupProducts(ctx, productCodes(order.Lines))

	var out *entity.OrderWorkflow
	err = uc.tx.Run(ctx, func(workflows repository.WorkflowRepository, shelves repository.ShelfLocationRepository, _ repository.DispatchRecordRepository) error {
		now := uc.now()
		if err := workflows.Ensure(ctx, orderNumber, now); err != nil {
			return err
		}
		w, err := workflows.GetByOrderNumberForUpdate(ctx, orderNumber)
		if err != nil {
			return err
		}
		if w == nil {
			return fmt.Errorf("workflow %s no encontrado tras crearlo", orderNumber)
		}
		if w.IsDispatched() {
			return domain.ErrWorkflowDispatched
		}

		if err := uc.syncItems(ctx, workflows, shelves, w, order, products, now); err != nil {
			return err
		}

		prev := w.Status
		w.AssignedPickerUserID = userID
		if w.StartedAt == nil {
			w.StartedAt = &now
		}
		switch w.Status {
		case entity.WorkflowStatusPending:
			w.Status = entity.WorkflowStatusPicking
		case entity.WorkflowStatusPicking, entity.WorkflowStatusLoaded:
			// la resincronización puede haber cerrado el faltante de alguna línea
			w.Status = rules.OrderStatus(w.Items)
		}
		uc.stampStatus(w, prev, now)
		w.LastActionAt = &now
		if err := workflows.Update(ctx, w); err != nil {
			return err
		}
		out = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order", orderNumber).Str("user", userID).Str("status", out.Status).Int("items", len(out.Items)).Msg("picking iniciado")
	return toWorkflowResponse(out, true), nil
}

// UpdateItem registra recogido/extra/estante de una línea y recalcula estados.
func (uc *WorkflowUseCase) UpdateItem(ctx context.Context, orderNumber, lineKey, userID string, in dto.UpdateItemRequest) (*dto.UpdateItemResponse, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	lineKey = strings.TrimSpace(lineKey)
	if orderNumber == "" || lineKey == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PickedQty == nil && in.ExtraQty == nil && in.ShelfCode == nil {
		return nil, fmt.Errorf("%w: no hay cambios que aplicar", domain.ErrInvalidInput)
	}
	if in.PickedQty != nil && in.PickedQty.IsNegative() {
		return nil, fmt.Errorf("%w: picked_qty no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.ExtraQty != nil && in.ExtraQty.IsNegative() {
		return nil, fmt.Errorf("%w: extra_qty no puede ser negativo", domain.ErrInvalidInput)
	}

	var item *entity.WorkflowItem
	var status string
	err := uc.tx.Run(ctx, func(workflows repository.WorkflowRepository, shelves repository.ShelfLocationRepository, _ repository.DispatchRecordRepository) error {
		w, err := workflows.GetByOrderNumberForUpdate(ctx, orderNumber)
		if err != nil {
			return err
		}
		if w == nil || !w.IsStarted() {
			return domain.ErrWorkflowNotStarted
		}
		if w.IsDispatched() {
			return domain.ErrWorkflowDispatched
		}
		it := w.ItemByKey(lineKey)
		if it == nil {
			return fmt.Errorf("%w: línea %s del pedido %s", domain.ErrNotFound, lineKey, orderNumber)
		}

		now := uc.now()
		if in.PickedQty != nil {
			it.PickedQty = *in.PickedQty
			it.PickedAt = &now
		}
		if in.ExtraQty != nil {
			it.ExtraQty = *in.ExtraQty
			it.PickedAt = &now
		}
		if in.ShelfCode != nil {
			it.ShelfCode = strings.TrimSpace(*in.ShelfCode)
			if it.ShelfCode != "" {
				if err := shelves.Upsert(ctx, &entity.ShelfLocation{
					ProductCode: it.ProductCode, ShelfCode: it.ShelfCode, UpdatedBy: userID, UpdatedAt: now,
				}); err != nil {
					return err
				}
			}
		}
		rules.Recompute(it)
		it.UpdatedAt = now
		if err := workflows.UpsertItem(ctx, w.ID, it); err != nil {
			return err
		}

		prev := w.Status
		if it.Touched() && w.LoadingStartedAt == nil {
			w.LoadingStartedAt = &now
		}
		w.Status = rules.OrderStatus(w.Items)
		uc.stampStatus(w, prev, now)
		w.LastActionAt = &now
		if err := workflows.Update(ctx, w); err != nil {
			return err
		}
		item, status = it, w.Status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.UpdateItemResponse{Item: toItemResponse(item), WorkflowStatus: status}, nil
}

// Dispatch emite la irsaliye en el ERP por lo recogido y concilia el workflow local.
// El ERP se escribe primero; si falla, nada local cambia y el error es reintentable.
func (uc *WorkflowUseCase) Dispatch(ctx context.Context, orderNumber, userID string, in dto.DispatchRequest) (*dto.DispatchResponse, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	series := strings.ToUpper(strings.TrimSpace(in.DeliverySeries))
	if series == "" {
		series = uc.defaultSeries
	}

	// ── 1. Foto fresca del pedido (incluye líneas ya entregadas para dejarlas en cero) ──
	order, err := uc.loadOrder(ctx, orderNumber, true)
	if err != nil {
		return nil, err
	}
	var products map[string]*entity.ProductStock
	if order != nil {
		products, _ = uc.lookupProducts(ctx, productCodes(order.Lines))
	}

	var (
		result *DispatchResult
		rec    *entity.DispatchRecord
		w      *entity.OrderWorkflow
	)
	err = uc.tx.Run(ctx, func(workflows repository.WorkflowRepository, shelves repository.ShelfLocationRepository, dispatches repository.DispatchRecordRepository) error {
		var err error
		// ── 2. Bloqueo del workflow durante toda la escritura en el ERP ──
		w, err = workflows.GetByOrderNumberForUpdate(ctx, orderNumber)
		if err != nil {
			return err
		}
		if w == nil || !w.IsStarted() {
			return domain.ErrWorkflowNotStarted
		}
		if w.IsDispatched() {
			return domain.ErrWorkflowDispatched
		}
		// sin la cabecera del pedido (serie y secuencia) no hay filas del ERP que despachar
		if order == nil {
			return fmt.Errorf("%w: pedido %s ya no está abierto en la caché", domain.ErrNotFound, orderNumber)
		}
		now := uc.now()
		if err := uc.syncItems(ctx, workflows, shelves, w, order, products, now); err != nil {
			return err
		}

		// ── 3. Plan: min(pendiente, recogido) > 0 ──
		plan := rules.PlanDispatch(w.Items)
		if len(plan) == 0 {
			return domain.ErrNothingToDispatch
		}
		req := DispatchRequest{
			OrderNumber:   orderNumber,
			OrderSeries:   order.Series,
			OrderSequence: order.Sequence,
			CustomerCode:  order.CustomerCode,
			Series:        series,
			Transport:     toTransport(in.Transport),
			UserID:        userID,
			Date:          now,
		}
		for _, p := range plan {
			req.Lines = append(req.Lines, DispatchRequestLine{
				LineKey:       p.Item.LineKey,
				ProductCode:   p.Item.ProductCode,
				RowNumber:     p.Item.RowNumber,
				WarehouseCode: p.Item.WarehouseCode,
				Quantity:      p.DeliverQty,
				UnitPrice:     p.Item.UnitPrice,
				VAT:           p.Item.VAT,
			})
		}

		// ── 4. Escritura externa ──
		uc.log.Info().Str("order", orderNumber).Str("series", series).Int("lines", len(req.Lines)).Msg("emitiendo irsaliye")
		result, err = uc.emitter.Emit(ctx, req)
		if err != nil {
			result = nil
			if errors.Is(err, domain.ErrStateGuard) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
				return err
			}
			return domain.External("emitir irsaliye", err)
		}

		// ── 5. Conciliación local con lo que el ERP realmente entregó ──
		delivered := make(map[string]DispatchResultLine, len(result.Lines))
		for _, l := range result.Lines {
			delivered[l.LineKey] = l
		}
		prev := w.Status
		for _, p := range plan {
			rl, ok := delivered[p.Item.LineKey]
			if !ok {
				continue
			}
			rules.ApplyDelivery(p.Item, decimal.Min(rl.DeliveredQty, p.DeliverQty))
			p.Item.UpdatedAt = now
			if err := workflows.UpsertItem(ctx, w.ID, p.Item); err != nil {
				return err
			}
		}
		w.Status = rules.StatusAfterDispatch(w.Items)
		w.DispatchedAt = &now
		w.DispatchedByUserID = userID
		w.DeliveryNoteNo = result.DocumentNo
		w.LastActionAt = &now
		uc.stampStatus(w, prev, now)
		if err := workflows.Update(ctx, w); err != nil {
			return err
		}

		rec = buildDispatchRecord(w, order, req, result, plan, now)
		return dispatches.Create(ctx, rec)
	})
	if err != nil {
		switch {
		case result != nil:
			// el ERP ya tiene la irsaliye; el estado local queda atrás hasta la próxima resincronización
			uc.metrics.DispatchOutcome(DispatchOutcomeReconcileFail)
			uc.log.Error().Err(err).Str("order", orderNumber).Str("document_no", result.DocumentNo).
				Msg("irsaliye emitida en el ERP pero la conciliación local falló")
		case errors.Is(err, domain.ErrExternal):
			uc.metrics.DispatchOutcome(DispatchOutcomeExternalError)
			uc.log.Warn().Err(err).Str("order", orderNumber).Msg("despacho fallido en el ERP")
		default:
			uc.metrics.DispatchOutcome(DispatchOutcomeRejected)
		}
		return nil, err
	}

	uc.metrics.DispatchOutcome(DispatchOutcomeSuccess)
	uc.log.Info().Str("order", orderNumber).Str("document_no", result.DocumentNo).Str("status", w.Status).Msg("pedido despachado")
	return toDispatchResponse(rec, w), nil
}

// GetWorkflowStatusMap estado del workflow por pedido (los pedidos sin workflow no aparecen).
func (uc *WorkflowUseCase) GetWorkflowStatusMap(ctx context.Context, orderNumbers []string) (map[string]string, error) {
	clean := make([]string, 0, len(orderNumbers))
	for _, n := range orderNumbers {
		if n = strings.TrimSpace(n); n != "" {
			clean = append(clean, n)
		}
	}
	if len(clean) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.workflows.StatusMap(ctx, clean)
}

// syncItems refresca los ítems del workflow con las líneas del pedido (upsert por lineKey).
func (uc *WorkflowUseCase) syncItems(
	ctx context.Context,
	workflows repository.WorkflowRepository,
	shelves repository.ShelfLocationRepository,
	w *entity.OrderWorkflow,
	order *entity.PendingOrder,
	products map[string]*entity.ProductStock,
	now time.Time,
) error {
	suggested, err := shelves.ListByProducts(ctx, productCodes(order.Lines))
	if err != nil {
		return err
	}
	for _, l := range order.Lines {
		in := rules.SyncInput{Line: l}
		if p := products[l.ProductCode]; p != nil {
			in.StockSnapshot = p.StockIn(l.WarehouseCode)
			in.ImageURL = p.ImageURL
		}
		if s := suggested[l.ProductCode]; s != nil {
			in.ShelfCode = s.ShelfCode
		}
		existing := w.ItemByKey(l.LineKey)
		it := rules.MergeItem(existing, in, now)
		if existing == nil {
			it.ID = uuid.New().String()
			it.WorkflowID = w.ID
			w.Items = append(w.Items, it)
		}
		if err := workflows.UpsertItem(ctx, w.ID, it); err != nil {
			return err
		}
	}
	return nil
}

// stampStatus registra la transición y sus marcas de tiempo.
func (uc *WorkflowUseCase) stampStatus(w *entity.OrderWorkflow, prev string, now time.Time) {
	if w.Status == prev {
		return
	}
	if w.Status == entity.WorkflowStatusLoaded {
		w.LoadedAt = &now
	}
	uc.metrics.WorkflowTransition(prev, w.Status)
	uc.log.Debug().Str("order", w.OrderNumber).Str("from", prev).Str("to", w.Status).Msg("transición de workflow")
}

// loadOrder lee y normaliza un pedido de la caché; nil, nil si no está.
func (uc *WorkflowUseCase) loadOrder(ctx context.Context, orderNumber string, includeNonRemaining bool) (*entity.PendingOrder, error) {
	return loadOrder(ctx, uc.orders, uc.log, orderNumber, includeNonRemaining)
}

// loadOrder las filas mal formadas se descartan con un warning; un payload ilegible es un fallo de la caché.
func loadOrder(ctx context.Context, orders PendingOrderCache, log zerolog.Logger, orderNumber string, includeNonRemaining bool) (*entity.PendingOrder, error) {
	cached, err := orders.Get(ctx, orderNumber)
	if err != nil {
		return nil, domain.External("caché de pedidos", err)
	}
	if cached == nil {
		return nil, nil
	}
	order, err := rules.ParseOrder(cached, rules.ParseOptions{IncludeNonRemaining: includeNonRemaining})
	if err != nil {
		return nil, domain.External("caché de pedidos", err)
	}
	for _, r := range order.Rejected {
		log.Warn().Str("order", order.OrderNumber).Int("index", r.Index).Str("product", r.ProductCode).
			Str("reason", r.Reason).Msg("línea ilegible en la caché, se omite")
	}
	return order, nil
}

// lookupProducts consulta el catálogo; si falla se sigue sin stock ni imágenes (degradado).
func (uc *WorkflowUseCase) lookupProducts(ctx context.Context, codes []string) (map[string]*entity.ProductStock, bool) {
	if len(codes) == 0 {
		return map[string]*entity.ProductStock{}, false
	}
	products, err := uc.catalog.Lookup(ctx, codes)
	if err != nil {
		uc.log.Warn().Err(err).Int("products", len(codes)).Msg("catálogo de productos no disponible, se continúa sin stock")
		return map[string]*entity.ProductStock{}, true
	}
	return products, false
}

func productCodes(lines []entity.PendingOrderLine) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if !seen[l.ProductCode] {
			seen[l.ProductCode] = true
			out = append(out, l.ProductCode)
		}
	}
	return out
}

func buildDispatchRecord(
	w *entity.OrderWorkflow,
	order *entity.PendingOrder,
	req DispatchRequest,
	res *DispatchResult,
	plan []rules.DispatchLine,
	now time.Time,
) *entity.DispatchRecord {
	rec := &entity.DispatchRecord{
		ID:                 uuid.New().String(),
		WorkflowID:         w.ID,
		OrderNumber:        w.OrderNumber,
		DocumentNo:         res.DocumentNo,
		Series:             res.Series,
		Sequence:           res.Sequence,
		Transport:          req.Transport,
		DispatchedByUserID: req.UserID,
		DispatchedAt:       now,
	}
	if order != nil {
		rec.CustomerCode, rec.CustomerName = order.CustomerCode, order.CustomerName
	}
	items := make(map[string]*entity.WorkflowItem, len(plan))
	for _, p := range plan {
		items[p.Item.LineKey] = p.Item
	}
	for _, l := range res.Lines {
		it := items[l.LineKey]
		if it == nil || !l.DeliveredQty.IsPositive() {
			continue
		}
		rec.Lines = append(rec.Lines, entity.DispatchRecordLine{
			LineKey:       l.LineKey,
			ProductCode:   it.ProductCode,
			ProductName:   it.ProductName,
			Unit:          it.Unit,
			RowNumber:     it.RowNumber,
			Quantity:      l.DeliveredQty,
			UnitPrice:     l.UnitPrice,
			VATRate:       l.VATRate,
			NetAmount:     l.NetAmount,
			VATAmount:     l.VATAmount,
			MovementGUID:  l.MovementGUID,
			MovementRowNo: l.MovementRowNo,
		})
		rec.NetTotal = rec.NetTotal.Add(l.NetAmount)
		rec.VATTotal = rec.VATTotal.Add(l.VATAmount)
	}
	rec.GrandTotal = rec.NetTotal.Add(rec.VATTotal)
	return rec
}
