package fulfillment

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	rules "github.com/jhoicas/fulfillment-api/internal/domain/fulfillment"
)

// GetOverview tablero de pedidos pendientes con cobertura y estado del workflow.
// Solo lectura: no crea ni modifica workflows.
func (uc *WorkflowUseCase) GetOverview(ctx context.Context, f dto.OverviewFilter) (*dto.OverviewResponse, error) {
	f.DefaultPage()

	cached, err := uc.orders.List(ctx)
	if err != nil {
		return nil, domain.External("caché de pedidos", err)
	}

	orders := make([]*entity.PendingOrder, 0, len(cached))
	var codes []string
	seen := map[string]bool{}
	for _, c := range cached {
		if f.CustomerCode != "" && !strings.EqualFold(strings.TrimSpace(c.CustomerCode), f.CustomerCode) {
			continue
		}
		if !rules.MatchesSearch(f.Search, c.OrderNumber, c.CustomerCode, c.CustomerName) {
			continue
		}
		o, err := rules.ParseOrder(c, rules.ParseOptions{})
		if err != nil {
			uc.log.Warn().Err(err).Str("order", c.OrderNumber).Msg("pedido ilegible en la caché, se omite")
			continue
		}
		if len(o.Lines) == 0 {
			continue
		}
		orders = append(orders, o)
		for _, l := range o.Lines {
			if !seen[l.ProductCode] {
				seen[l.ProductCode] = true
				codes = append(codes, l.ProductCode)
			}
		}
	}

	products, degraded := uc.lookupProducts(ctx, codes)

	numbers := make([]string, len(orders))
	for i, o := range orders {
		numbers[i] = o.OrderNumber
	}
	statuses := map[string]string{}
	if len(numbers) > 0 {
		if statuses, err = uc.workflows.StatusMap(ctx, numbers); err != nil {
			return nil, err
		}
	}

	rows := make([]dto.OrderSummary, 0, len(orders))
	for _, o := range orders {
		cov := rules.CalculateCoverage(o.Lines, availableFor(o.Lines, products))
		status, has := statuses[o.OrderNumber]
		if !has {
			status = entity.WorkflowStatusPending
		}
		if f.WorkflowStatus != "" && status != f.WorkflowStatus {
			continue
		}
		if f.CoverageStatus != "" && cov.Status != f.CoverageStatus {
			continue
		}
		rows = append(rows, dto.OrderSummary{
			OrderNumber:    o.OrderNumber,
			CustomerCode:   o.CustomerCode,
			CustomerName:   o.CustomerName,
			OrderDate:      o.OrderDate,
			DeliveryDate:   o.DeliveryDate,
			LineCount:      len(o.Lines),
			TotalRemaining: cov.TotalRemaining,
			CoveredPercent: cov.CoveredPercent,
			CoverageStatus: cov.Status,
			WorkflowStatus: status,
			HasWorkflow:    has,
		})
	}

	// más antiguos primero; sin fecha al final
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].OrderDate, rows[j].OrderDate
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.Before(*b)
		case (a == nil) != (b == nil):
			return a != nil
		}
		return rows[i].OrderNumber < rows[j].OrderNumber
	})

	total := len(rows)
	start := min(f.Offset, total)
	end := min(start+f.Limit, total)
	return &dto.OverviewResponse{
		Items:         rows[start:end],
		Page:          dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
		StockDegraded: degraded,
	}, nil
}

// GetOrderDetail arma el detalle de un pedido: líneas abiertas del ERP, cobertura, reservas de
// otros pedidos, estante sugerido y progreso del picking. Solo lectura.
func (uc *WorkflowUseCase) GetOrderDetail(ctx context.Context, orderNumber string) (*dto.OrderDetailResponse, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.loadOrder(ctx, orderNumber, false)
	if err != nil {
		return nil, err
	}
	w, err := uc.workflows.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil && w == nil {
		return nil, domain.ErrNotFound
	}
	if order == nil {
		// cerrado en el ERP: solo queda lo registrado localmente
		order = &entity.PendingOrder{OrderNumber: orderNumber}
	}

	codes := productCodes(order.Lines)
	if w != nil {
		for _, it := range w.Items {
			if !containsCode(codes, it.ProductCode) {
				codes = append(codes, it.ProductCode)
			}
		}
	}
	products, degraded := uc.lookupProducts(ctx, codes)
	cov := rules.CalculateCoverage(order.Lines, availableFor(order.Lines, products))
	byLine := cov.ByLineKey()

	shelves, err := uc.shelves.ListByProducts(ctx, codes)
	if err != nil {
		return nil, err
	}

	var resv *ReservationView
	if uc.reservations != nil && len(codes) > 0 {
		if resv, err = uc.reservations.ForProducts(ctx, codes, orderNumber, -1); err != nil {
			uc.log.Warn().Err(err).Str("order", orderNumber).Msg("reservas no disponibles")
			resv = nil
		}
	}

	out := &dto.OrderDetailResponse{
		OrderNumber:    order.OrderNumber,
		CustomerCode:   order.CustomerCode,
		CustomerName:   order.CustomerName,
		OrderDate:      order.OrderDate,
		DeliveryDate:   order.DeliveryDate,
		CoveredPercent: cov.CoveredPercent,
		CoverageStatus: cov.Status,
		StockDegraded:  degraded,
		Lines:          make([]dto.OrderLineDetail, 0, len(order.Lines)),
	}
	if w != nil {
		out.Workflow = toWorkflowResponse(w, false)
	}
	if resv != nil {
		out.ReservationDegraded = resv.Degraded
	}

	shown := make(map[string]bool, len(order.Lines))
	for _, l := range order.Lines {
		shown[l.LineKey] = true
		c := byLine[l.LineKey]
		line := dto.OrderLineDetail{
			LineKey:        l.LineKey,
			RowNumber:      l.RowNumber,
			ProductCode:    l.ProductCode,
			ProductName:    l.ProductName,
			Unit:           l.Unit,
			WarehouseCode:  l.WarehouseCode,
			Quantity:       l.Quantity,
			DeliveredQty:   l.DeliveredQty,
			RemainingQty:   l.RemainingQty,
			UnitPrice:      l.UnitPrice,
			VAT:            l.VAT,
			AvailableQty:   c.Available,
			CoveredQty:     c.Covered,
			CoverageStatus: c.Status,
			ShortageQty:    l.RemainingQty,
			Status:         entity.ItemStatusPending,
			Reservations:   []dto.ReservationDTO{},
		}
		if p := products[l.ProductCode]; p != nil {
			line.ImageURL, line.Unit2, line.Unit2Factor = p.ImageURL, p.Unit2, p.Unit2Factor
		}
		if s := shelves[l.ProductCode]; s != nil {
			line.ShelfCode = s.ShelfCode
		}
		if w != nil {
			if it := w.ItemByKey(l.LineKey); it != nil {
				applyItem(&line, it)
			}
		}
		if resv != nil {
			for _, r := range resv.ByProduct[l.ProductCode] {
				r.IsCurrentLine = r.IsCurrentOrder && r.RowNumber == l.RowNumber
				if !r.IsCurrentOrder {
					line.ReservedByOthers = line.ReservedByOthers.Add(r.ActiveQty)
				}
				line.Reservations = append(line.Reservations, toReservationDTO(r))
			}
		}
		out.Lines = append(out.Lines, line)
	}

	// líneas ya cerradas en el ERP que el workflow todavía recuerda
	if w != nil {
		for _, it := range w.Items {
			if shown[it.LineKey] {
				continue
			}
			line := dto.OrderLineDetail{
				LineKey:        it.LineKey,
				RowNumber:      it.RowNumber,
				ProductCode:    it.ProductCode,
				ProductName:    it.ProductName,
				Unit:           it.Unit,
				WarehouseCode:  it.WarehouseCode,
				Quantity:       it.RequestedQty,
				DeliveredQty:   it.DeliveredQty,
				RemainingQty:   it.RemainingQty,
				UnitPrice:      it.UnitPrice,
				VAT:            it.VAT,
				CoverageStatus: rules.CoverageFull,
				ImageURL:       it.ImageURL,
				Reservations:   []dto.ReservationDTO{},
			}
			applyItem(&line, it)
			out.Lines = append(out.Lines, line)
		}
	}
	return out, nil
}

// applyItem superpone el progreso del workflow; el pendiente del ítem manda porque la
// resincronización nunca lo sube.
func applyItem(line *dto.OrderLineDetail, it *entity.WorkflowItem) {
	line.RemainingQty = it.RemainingQty
	line.PickedQty = it.PickedQty
	line.ExtraQty = it.ExtraQty
	line.ShortageQty = it.ShortageQty
	line.Status = it.Status
	if it.ShelfCode != "" {
		line.ShelfCode = it.ShelfCode
	}
	if line.ImageURL == "" {
		line.ImageURL = it.ImageURL
	}
}

// availableFor stock disponible por (producto, almacén) de las líneas.
func availableFor(lines []entity.PendingOrderLine, products map[string]*entity.ProductStock) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		key := rules.StockKey(l.ProductCode, l.WarehouseCode)
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = products[l.ProductCode].StockIn(l.WarehouseCode)
	}
	return out
}

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
