package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

var (
	_ fulfillment.PendingOrderCache = (*OrderCache)(nil)
	_ fulfillment.ProductCatalog    = (*Catalog)(nil)
	_ fulfillment.ReservationSource = (*ReservationSource)(nil)
	_ fulfillment.DispatchEmitter   = (*Emitter)(nil)
	_ fulfillment.Recorder          = (*Recorder)(nil)
)

// ── caché de pedidos ─────────────────────────────────────────────────────────

// OrderCache caché de pedidos en memoria.
type OrderCache struct {
	mu     sync.Mutex
	orders map[string]*entity.CachedOrder
	keys   []string
	Err    error
}

// NewOrderCache crea la caché con los pedidos dados.
func NewOrderCache(orders ...*entity.CachedOrder) *OrderCache {
	c := &OrderCache{orders: map[string]*entity.CachedOrder{}}
	for _, o := range orders {
		c.Put(o)
	}
	return c
}

// Put reemplaza o agrega un pedido (simula el refresco externo).
func (c *OrderCache) Put(o *entity.CachedOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.orders[o.OrderNumber]; !ok {
		c.keys = append(c.keys, o.OrderNumber)
	}
	c.orders[o.OrderNumber] = o
}

// Remove quita un pedido (cerrado en el ERP y purgado por el refresco).
func (c *OrderCache) Remove(orderNumber string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.orders, orderNumber)
	for i, k := range c.keys {
		if k == orderNumber {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

func (c *OrderCache) Get(_ context.Context, orderNumber string) (*entity.CachedOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	return c.orders[orderNumber], nil
}

func (c *OrderCache) List(_ context.Context) ([]*entity.CachedOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := make([]*entity.CachedOrder, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.orders[k])
	}
	return out, nil
}

// Line línea cruda tal como la deja el refresco en la caché.
type Line struct {
	ProductCode          string  `json:"productCode"`
	ProductName          string  `json:"productName,omitempty"`
	Unit                 string  `json:"unit,omitempty"`
	WarehouseCode        string  `json:"warehouseCode,omitempty"`
	Quantity             float64 `json:"quantity"`
	DeliveredQty         float64 `json:"deliveredQty"`
	ReservedQty          float64 `json:"reservedQty,omitempty"`
	ReservedDeliveredQty float64 `json:"reservedDeliveredQty,omitempty"`
	UnitPrice            float64 `json:"unitPrice,omitempty"`
	VAT                  float64 `json:"vat,omitempty"`
	RowNumber            int     `json:"rowNumber"`
}

// Order arma un CachedOrder con líneas serializadas como en Redis.
func Order(orderNumber, customerCode string, lines ...Line) *entity.CachedOrder {
	raw, err := json.Marshal(lines)
	if err != nil {
		panic(err)
	}
	return &entity.CachedOrder{
		OrderNumber:  orderNumber,
		Series:       "SIP",
		Sequence:     1,
		CustomerCode: customerCode,
		CustomerName: "Cliente " + customerCode,
		Items:        raw,
	}
}

// ── catálogo ─────────────────────────────────────────────────────────────────

// Catalog catálogo de productos en memoria.
type Catalog struct {
	Products map[string]*entity.ProductStock
	Err      error
}

// NewCatalog crea un catálogo vacío.
func NewCatalog() *Catalog {
	return &Catalog{Products: map[string]*entity.ProductStock{}}
}

// WithStock registra stock de un producto en un almacén.
func (c *Catalog) WithStock(productCode, warehouse string, qty int64) *Catalog {
	p := c.Products[productCode]
	if p == nil {
		p = &entity.ProductStock{ProductCode: productCode, WarehouseStocks: map[string]decimal.Decimal{}}
		c.Products[productCode] = p
	}
	p.WarehouseStocks[warehouse] = decimal.NewFromInt(qty)
	return c
}

func (c *Catalog) Lookup(_ context.Context, codes []string) (map[string]*entity.ProductStock, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	out := make(map[string]*entity.ProductStock, len(codes))
	for _, code := range codes {
		if p, ok := c.Products[code]; ok {
			out[code] = p
		}
	}
	return out, nil
}

// ── reservas ─────────────────────────────────────────────────────────────────

// ReservationSource consulta de reservas del ERP simulada.
type ReservationSource struct {
	List []entity.Reservation
	Err  error
}

func (s *ReservationSource) ActiveReservations(_ context.Context, codes []string) ([]entity.Reservation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}
	var out []entity.Reservation
	for _, r := range s.List {
		if want[r.ProductCode] {
			out = append(out, r)
		}
	}
	return out, nil
}

// ── emisor de irsaliyes ──────────────────────────────────────────────────────

// Emitter ERP simulado: asigna secuencias por serie y entrega lo pedido, acotado por Caps.
type Emitter struct {
	mu    sync.Mutex
	seq   map[string]int64
	Calls []fulfillment.DispatchRequest
	Err   error
	// Caps pendiente vivo del ERP por lineKey; sin entrada no hay tope.
	Caps map[string]decimal.Decimal
	// VATRate tasa aplicada a todas las líneas.
	VATRate decimal.Decimal
}

// NewEmitter crea el emisor con la última secuencia usada por serie.
func NewEmitter() *Emitter {
	return &Emitter{seq: map[string]int64{}, Caps: map[string]decimal.Decimal{}, VATRate: decimal.NewFromInt(20)}
}

func (e *Emitter) Emit(_ context.Context, req fulfillment.DispatchRequest) (*fulfillment.DispatchResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Calls = append(e.Calls, req)
	if e.Err != nil {
		return nil, e.Err
	}
	e.seq[req.Series]++
	n := e.seq[req.Series]
	res := &fulfillment.DispatchResult{
		DocumentNo: fmt.Sprintf("%s-%d", req.Series, n),
		Series:     req.Series,
		Sequence:   n,
	}
	hundred := decimal.NewFromInt(100)
	for i, l := range req.Lines {
		q := l.Quantity
		if c, ok := e.Caps[l.LineKey]; ok {
			q = decimal.Min(q, c)
		}
		net := q.Mul(l.UnitPrice)
		res.Lines = append(res.Lines, fulfillment.DispatchResultLine{
			LineKey:       l.LineKey,
			DeliveredQty:  q,
			UnitPrice:     l.UnitPrice,
			VATRate:       e.VATRate,
			NetAmount:     net,
			VATAmount:     net.Mul(e.VATRate).Div(hundred),
			MovementGUID:  fmt.Sprintf("mov-%d-%d", n, i),
			MovementRowNo: i,
		})
	}
	return res, nil
}

// ── métricas ─────────────────────────────────────────────────────────────────

// Recorder cuenta las métricas emitidas.
type Recorder struct {
	mu          sync.Mutex
	Transitions []string
	Dispatches  map[string]int
	Fallbacks   int
}

// NewRecorder crea el contador.
func NewRecorder() *Recorder { return &Recorder{Dispatches: map[string]int{}} }

func (r *Recorder) WorkflowTransition(from, to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Transitions = append(r.Transitions, from+"->"+to)
}

func (r *Recorder) DispatchOutcome(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Dispatches[outcome]++
}

func (r *Recorder) ReservationFallback() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Fallbacks++
}
