package fulfillment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

// PendingOrderCache lectura de la foto de pedidos abiertos del ERP (la refresca un proceso externo).
type PendingOrderCache interface {
	// Get devuelve el pedido o nil, nil si no está en la caché.
	Get(ctx context.Context, orderNumber string) (*entity.CachedOrder, error)
	List(ctx context.Context) ([]*entity.CachedOrder, error)
}

// ProductCatalog stock por almacén e imagen de los productos pedidos.
type ProductCatalog interface {
	Lookup(ctx context.Context, productCodes []string) (map[string]*entity.ProductStock, error)
}

// ReservationSource consulta en vivo de reservas activas en el ERP.
type ReservationSource interface {
	ActiveReservations(ctx context.Context, productCodes []string) ([]entity.Reservation, error)
}

// DispatchEmitter escribe la irsaliye en las tablas del ERP. Todo o nada.
type DispatchEmitter interface {
	Emit(ctx context.Context, req DispatchRequest) (*DispatchResult, error)
}

// DispatchRequest decisión de despacho ya validada por el workflow.
type DispatchRequest struct {
	OrderNumber   string
	OrderSeries   string
	OrderSequence int64
	CustomerCode  string
	Series        string // serie de la irsaliye
	Transport     entity.TransportInfo
	UserID        string
	Date          time.Time
	Lines         []DispatchRequestLine
}

// DispatchRequestLine línea a entregar. Precio e IVA locales solo se usan si el ERP no los trae.
type DispatchRequestLine struct {
	LineKey       string
	ProductCode   string
	RowNumber     int
	WarehouseCode string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	VAT           decimal.Decimal
}

// DispatchResult documento creado en el ERP y enlace por línea.
type DispatchResult struct {
	DocumentNo string
	Series     string
	Sequence   int64
	Lines      []DispatchResultLine
}

// DispatchResultLine cantidad realmente entregada (acotada por el pendiente vivo del ERP) y totales.
type DispatchResultLine struct {
	LineKey       string
	DeliveredQty  decimal.Decimal
	UnitPrice     decimal.Decimal
	VATRate       decimal.Decimal
	NetAmount     decimal.Decimal
	VATAmount     decimal.Decimal
	MovementGUID  string
	MovementRowNo int
}

// TxRunner ejecuta fn dentro de una transacción del almacén local con repos atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		workflows repository.WorkflowRepository,
		shelves repository.ShelfLocationRepository,
		dispatches repository.DispatchRecordRepository,
	) error) error
}

// Recorder métricas de negocio del motor.
type Recorder interface {
	WorkflowTransition(from, to string)
	DispatchOutcome(outcome string)
	ReservationFallback()
}

// Resultados de despacho para métricas.
const (
	DispatchOutcomeSuccess       = "success"
	DispatchOutcomeExternalError = "external_error"
	DispatchOutcomeRejected      = "rejected"
	DispatchOutcomeReconcileFail = "reconcile_failed"
)

// NopRecorder descarta las métricas.
type NopRecorder struct{}

func (NopRecorder) WorkflowTransition(string, string) {}
func (NopRecorder) DispatchOutcome(string)            {}
func (NopRecorder) ReservationFallback()              {}

// DeliveryNotePDFGenerator representación gráfica de la irsaliye.
type DeliveryNotePDFGenerator interface {
	Generate(rec *entity.DispatchRecord, issuer Issuer) ([]byte, error)
}

// DespatchAdviceBuilder XML UBL DespatchAdvice de la irsaliye y su digest canónico.
type DespatchAdviceBuilder interface {
	Build(rec *entity.DispatchRecord, issuer Issuer) (xml []byte, digest string, err error)
}

// Issuer datos del emisor impresos en los documentos.
type Issuer struct {
	Name  string
	TaxID string
}
