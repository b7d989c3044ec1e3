package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverviewFilter query de GET /api/fulfillment/orders.
type OverviewFilter struct {
	Search         string `query:"search" validate:"max=100"`
	WorkflowStatus string `query:"status" validate:"omitempty,oneof=PENDING PICKING LOADED PARTIALLY_LOADED DISPATCHED"`
	CoverageStatus string `query:"coverage" validate:"omitempty,oneof=FULL PARTIAL NONE"`
	CustomerCode   string `query:"customer_code" validate:"max=50"`
	PageRequest
}

// OrderSummary fila del tablero de pedidos pendientes.
type OrderSummary struct {
	OrderNumber    string          `json:"order_number"`
	CustomerCode   string          `json:"customer_code"`
	CustomerName   string          `json:"customer_name"`
	OrderDate      *time.Time      `json:"order_date,omitempty"`
	DeliveryDate   *time.Time      `json:"delivery_date,omitempty"`
	LineCount      int             `json:"line_count"`
	TotalRemaining decimal.Decimal `json:"total_remaining" swaggertype:"string"`
	CoveredPercent int             `json:"covered_percent"`
	CoverageStatus string          `json:"coverage_status"`
	WorkflowStatus string          `json:"workflow_status"`
	HasWorkflow    bool            `json:"has_workflow"`
}

// OverviewResponse respuesta paginada del tablero.
type OverviewResponse struct {
	Items         []OrderSummary `json:"items"`
	Page          PageResponse   `json:"page"`
	StockDegraded bool           `json:"stock_degraded,omitempty"`
}

// ReservationDTO reserva activa de stock sobre el producto de una línea.
type ReservationDTO struct {
	OrderNumber    string          `json:"order_number"`
	RowNumber      int             `json:"row_number"`
	CustomerCode   string          `json:"customer_code"`
	CustomerName   string          `json:"customer_name"`
	WarehouseCode  string          `json:"warehouse_code"`
	ActiveQty      decimal.Decimal `json:"active_qty" swaggertype:"string"`
	IsCurrentOrder bool            `json:"is_current_order"`
	IsCurrentLine  bool            `json:"is_current_line"`
}

// OrderLineDetail línea del detalle: datos del ERP + cobertura + progreso del picking.
type OrderLineDetail struct {
	LineKey          string           `json:"line_key"`
	RowNumber        int              `json:"row_number"`
	ProductCode      string           `json:"product_code"`
	ProductName      string           `json:"product_name"`
	Unit             string           `json:"unit"`
	Unit2            string           `json:"unit2,omitempty"`
	Unit2Factor      decimal.Decimal  `json:"unit2_factor" swaggertype:"string"`
	WarehouseCode    string           `json:"warehouse_code"`
	Quantity         decimal.Decimal  `json:"quantity" swaggertype:"string"`
	DeliveredQty     decimal.Decimal  `json:"delivered_qty" swaggertype:"string"`
	RemainingQty     decimal.Decimal  `json:"remaining_qty" swaggertype:"string"`
	UnitPrice        decimal.Decimal  `json:"unit_price" swaggertype:"string"`
	VAT              decimal.Decimal  `json:"vat" swaggertype:"string"`
	AvailableQty     decimal.Decimal  `json:"available_qty" swaggertype:"string"`
	CoveredQty       decimal.Decimal  `json:"covered_qty" swaggertype:"string"`
	CoverageStatus   string           `json:"coverage_status"`
	PickedQty        decimal.Decimal  `json:"picked_qty" swaggertype:"string"`
	ExtraQty         decimal.Decimal  `json:"extra_qty" swaggertype:"string"`
	ShortageQty      decimal.Decimal  `json:"shortage_qty" swaggertype:"string"`
	Status           string           `json:"status"`
	ShelfCode        string           `json:"shelf_code,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	ReservedByOthers decimal.Decimal  `json:"reserved_by_others" swaggertype:"string"`
	Reservations     []ReservationDTO `json:"reservations"`
}

// OrderDetailResponse detalle de un pedido para el operario.
type OrderDetailResponse struct {
	OrderNumber         string            `json:"order_number"`
	CustomerCode        string            `json:"customer_code"`
	CustomerName        string            `json:"customer_name"`
	OrderDate           *time.Time        `json:"order_date,omitempty"`
	DeliveryDate        *time.Time        `json:"delivery_date,omitempty"`
	CoveredPercent      int               `json:"covered_percent"`
	CoverageStatus      string            `json:"coverage_status"`
	Workflow            *WorkflowResponse `json:"workflow,omitempty"`
	Lines               []OrderLineDetail `json:"lines"`
	StockDegraded       bool              `json:"stock_degraded,omitempty"`
	ReservationDegraded bool              `json:"reservation_degraded,omitempty"`
}

// WorkflowResponse cabecera del workflow.
type WorkflowResponse struct {
	ID                   string                 `json:"id"`
	OrderNumber          string                 `json:"order_number"`
	Status               string                 `json:"status"`
	AssignedPickerUserID string                 `json:"assigned_picker_user_id,omitempty"`
	StartedAt            *time.Time             `json:"started_at,omitempty"`
	LoadingStartedAt     *time.Time             `json:"loading_started_at,omitempty"`
	LoadedAt             *time.Time             `json:"loaded_at,omitempty"`
	DispatchedAt         *time.Time             `json:"dispatched_at,omitempty"`
	DispatchedByUserID   string                 `json:"dispatched_by_user_id,omitempty"`
	DeliveryNoteNo       string                 `json:"delivery_note_no,omitempty"`
	LastActionAt         *time.Time             `json:"last_action_at,omitempty"`
	Items                []WorkflowItemResponse `json:"items,omitempty"`
}

// WorkflowItemResponse progreso de una línea.
type WorkflowItemResponse struct {
	LineKey       string          `json:"line_key"`
	ProductCode   string          `json:"product_code"`
	ProductName   string          `json:"product_name"`
	RequestedQty  decimal.Decimal `json:"requested_qty" swaggertype:"string"`
	DeliveredQty  decimal.Decimal `json:"delivered_qty" swaggertype:"string"`
	RemainingQty  decimal.Decimal `json:"remaining_qty" swaggertype:"string"`
	PickedQty     decimal.Decimal `json:"picked_qty" swaggertype:"string"`
	ExtraQty      decimal.Decimal `json:"extra_qty" swaggertype:"string"`
	ShortageQty   decimal.Decimal `json:"shortage_qty" swaggertype:"string"`
	StockSnapshot decimal.Decimal `json:"stock_snapshot" swaggertype:"string"`
	ShelfCode     string          `json:"shelf_code,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	Status        string          `json:"status"`
}

// UpdateItemRequest body de PATCH /api/fulfillment/orders/:order/items/:lineKey.
// Campos nulos no se tocan.
type UpdateItemRequest struct {
	PickedQty *decimal.Decimal `json:"picked_qty" swaggertype:"string"`
	ExtraQty  *decimal.Decimal `json:"extra_qty" swaggertype:"string"`
	ShelfCode *string          `json:"shelf_code" validate:"omitempty,max=50"`
}

// UpdateItemResponse ítem actualizado y estado resultante del pedido.
type UpdateItemResponse struct {
	Item           WorkflowItemResponse `json:"item"`
	WorkflowStatus string               `json:"workflow_status"`
}

// TransportRequest datos de conductor y vehículo de la irsaliye.
type TransportRequest struct {
	DriverName   string `json:"driver_name" validate:"required,max=100"`
	DriverID     string `json:"driver_id" validate:"required,max=30"`
	VehiclePlate string `json:"vehicle_plate" validate:"required,max=20"`
	TrailerPlate string `json:"trailer_plate" validate:"max=20"`
	CarrierName  string `json:"carrier_name" validate:"max=100"`
	Note         string `json:"note" validate:"max=250"`
}

// DispatchRequest body de POST /api/fulfillment/orders/:order/dispatch.
type DispatchRequest struct {
	DeliverySeries string           `json:"delivery_series" validate:"omitempty,max=20,alphanum"`
	Transport      TransportRequest `json:"transport" validate:"required"`
}

// DispatchLineResponse línea despachada.
type DispatchLineResponse struct {
	LineKey      string          `json:"line_key"`
	ProductCode  string          `json:"product_code"`
	DeliveredQty decimal.Decimal `json:"delivered_qty" swaggertype:"string"`
	RemainingQty decimal.Decimal `json:"remaining_qty" swaggertype:"string"`
	UnitPrice    decimal.Decimal `json:"unit_price" swaggertype:"string"`
	VATRate      decimal.Decimal `json:"vat_rate" swaggertype:"string"`
	NetAmount    decimal.Decimal `json:"net_amount" swaggertype:"string"`
	VATAmount    decimal.Decimal `json:"vat_amount" swaggertype:"string"`
}

// DispatchResponse resultado del despacho.
type DispatchResponse struct {
	DocumentNo     string                 `json:"document_no"`
	WorkflowStatus string                 `json:"workflow_status"`
	DispatchedAt   time.Time              `json:"dispatched_at"`
	NetTotal       decimal.Decimal        `json:"net_total" swaggertype:"string"`
	VATTotal       decimal.Decimal        `json:"vat_total" swaggertype:"string"`
	GrandTotal     decimal.Decimal        `json:"grand_total" swaggertype:"string"`
	Lines          []DispatchLineResponse `json:"lines"`
}

// StatusMapRequest body de POST /api/fulfillment/status-map.
type StatusMapRequest struct {
	OrderNumbers []string `json:"order_numbers" validate:"required,min=1,max=500,dive,required,max=50"`
}

// DeliveryNoteSummary irsaliye emitida para un pedido.
type DeliveryNoteSummary struct {
	DocumentNo         string          `json:"document_no"`
	OrderNumber        string          `json:"order_number"`
	CustomerCode       string          `json:"customer_code"`
	DispatchedAt       time.Time       `json:"dispatched_at"`
	DispatchedByUserID string          `json:"dispatched_by_user_id"`
	VehiclePlate       string          `json:"vehicle_plate"`
	LineCount          int             `json:"line_count"`
	GrandTotal         decimal.Decimal `json:"grand_total" swaggertype:"string"`
}
