package fulfillment_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/testutil"
)

type fixture struct {
	store   *testutil.Store
	cache   *testutil.OrderCache
	catalog *testutil.Catalog
	emitter *testutil.Emitter
	resv    *testutil.ReservationSource
	metrics *testutil.Recorder
	uc      *fulfillment.WorkflowUseCase
}

func newFixture(orders ...*entity.CachedOrder) *fixture {
	f := &fixture{
		store:   testutil.NewStore(),
		cache:   testutil.NewOrderCache(orders...),
		catalog: testutil.NewCatalog(),
		emitter: testutil.NewEmitter(),
		resv:    &testutil.ReservationSource{},
		metrics: testutil.NewRecorder(),
	}
	f.uc = fulfillment.NewWorkflowUseCase(fulfillment.WorkflowDeps{
		Tx:            f.store,
		Workflows:     f.store.Workflows(),
		Shelves:       f.store.Shelves(),
		Orders:        f.cache,
		Catalog:       f.catalog,
		Reservations:  fulfillment.NewReservationTracker(f.resv, f.cache, f.metrics, zerolog.Nop()),
		Emitter:       f.emitter,
		Metrics:       f.metrics,
		Logger:        zerolog.Nop(),
		DefaultSeries: "IRS",
	})
	return f
}

func (f *fixture) workflow(t *testing.T, orderNumber string) *entity.OrderWorkflow {
	t.Helper()
	w, err := f.store.Workflows().GetByOrderNumber(context.Background(), orderNumber)
	require.NoError(t, err)
	require.NotNil(t, w)
	return w
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func picked(n int64) dto.UpdateItemRequest {
	q := qty(n)
	return dto.UpdateItemRequest{PickedQty: &q}
}

func transport() dto.DispatchRequest {
	return dto.DispatchRequest{Transport: dto.TransportRequest{DriverName: "Ali Veli", DriverID: "12345678901", VehiclePlate: "34 abc 123"}}
}

func sku1(remaining float64) testutil.Line {
	return testutil.Line{ProductCode: "SKU1", ProductName: "Vida", WarehouseCode: "1", Quantity: remaining, UnitPrice: 10, RowNumber: 0}
}

// ── Flujo completo ───────────────────────────────────────────────────────────

func TestWorkflow_FlujoCompletoHastaDespacho(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(20)))
	f.catalog.WithStock("SKU1", "1", 20)

	w, err := f.uc.StartPicking(ctx, "O-1", "picker-1")
	require.NoError(t, err)
	assert.Equal(t, entity.WorkflowStatusPicking, w.Status)
	require.Len(t, w.Items, 1)
	assert.Equal(t, entity.ItemStatusPending, w.Items[0].Status)
	assert.True(t, w.Items[0].StockSnapshot.Equal(qty(20)))

	upd, err := f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "picker-1", picked(20))
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusPicked, upd.Item.Status)
	assert.Equal(t, entity.WorkflowStatusLoaded, upd.WorkflowStatus)

	res, err := f.uc.Dispatch(ctx, "O-1", "dispatcher-1", transport())
	require.NoError(t, err)
	assert.Equal(t, "IRS-1", res.DocumentNo)
	assert.Equal(t, entity.WorkflowStatusDispatched, res.WorkflowStatus)
	require.Len(t, res.Lines, 1)
	assert.True(t, res.Lines[0].DeliveredQty.Equal(qty(20)))
	assert.True(t, res.Lines[0].RemainingQty.IsZero())
	assert.True(t, res.NetTotal.Equal(qty(200)))
	assert.True(t, res.GrandTotal.Equal(qty(240)))

	stored := f.workflow(t, "O-1")
	assert.Equal(t, entity.WorkflowStatusDispatched, stored.Status)
	assert.Equal(t, "IRS-1", stored.DeliveryNoteNo)
	assert.Equal(t, "dispatcher-1", stored.DispatchedByUserID)
	assert.NotNil(t, stored.DispatchedAt)
	it := stored.ItemByKey("SKU1-0")
	assert.True(t, it.RemainingQty.IsZero())
	assert.True(t, it.DeliveredQty.Equal(qty(20)))
	assert.True(t, it.PickedQty.IsZero())

	require.Len(t, f.emitter.Calls, 1)
	assert.Equal(t, "34 ABC 123", f.emitter.Calls[0].Transport.VehiclePlate)
	recs := f.store.Dispatches().All()
	require.Len(t, recs, 1)
	assert.Equal(t, "IRS-1", recs[0].DocumentNo)
	assert.Equal(t, []string{"PENDING->PICKING", "PICKING->LOADED", "LOADED->DISPATCHED"}, f.metrics.Transitions)
	assert.Equal(t, 1, f.metrics.Dispatches[fulfillment.DispatchOutcomeSuccess])
}

// ── startPicking ─────────────────────────────────────────────────────────────

func TestStartPicking_RepetirNoBorraLoRecogido(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(20)))

	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	extra := qty(2)
	p := qty(7)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", dto.UpdateItemRequest{PickedQty: &p, ExtraQty: &extra})
	require.NoError(t, err)

	// el ERP reporta más pendiente del que ya conocíamos: no debe crecer
	f.cache.Put(testutil.Order("O-1", "C1", sku1(25)))
	w, err := f.uc.StartPicking(ctx, "O-1", "p2")
	require.NoError(t, err)

	it := w.Items[0]
	assert.True(t, it.PickedQty.Equal(qty(7)))
	assert.True(t, it.ExtraQty.Equal(qty(2)))
	assert.True(t, it.RemainingQty.Equal(qty(20)))
	assert.Equal(t, entity.ItemStatusExtra, it.Status)
	assert.Equal(t, "p2", w.AssignedPickerUserID)
}

func TestStartPicking_ResyncReducePendiente(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(20)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(15))
	require.NoError(t, err)

	l := sku1(20)
	l.DeliveredQty = 5 // entregado por otra vía
	f.cache.Put(testutil.Order("O-1", "C1", l))
	w, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)

	assert.True(t, w.Items[0].RemainingQty.Equal(qty(15)))
	assert.True(t, w.Items[0].ShortageQty.IsZero())
	assert.Equal(t, entity.WorkflowStatusLoaded, w.Status, "la reducción cerró el faltante")
}

func TestStartPicking_ConservaStartedAtOriginal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(5)))
	first, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	second, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	assert.True(t, first.StartedAt.Equal(*second.StartedAt))
	assert.Equal(t, first.ID, second.ID)
}

func TestStartPicking_PedidoInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.StartPicking(context.Background(), "NOPE", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStartPicking_CacheCaidaEsReintentable(t *testing.T) {
	f := newFixture(testutil.Order("O-1", "C1", sku1(5)))
	f.cache.Err = errors.New("redis: connection refused")
	_, err := f.uc.StartPicking(context.Background(), "O-1", "p1")
	assert.ErrorIs(t, err, domain.ErrExternal)
	assert.True(t, domain.IsRetryable(err))
}

func TestStartPicking_CatalogoCaidoNoBloquea(t *testing.T) {
	f := newFixture(testutil.Order("O-1", "C1", sku1(5)))
	f.catalog.Err = errors.New("timeout")
	w, err := f.uc.StartPicking(context.Background(), "O-1", "p1")
	require.NoError(t, err)
	assert.True(t, w.Items[0].StockSnapshot.IsZero())
}

func TestStartPicking_LineaIlegibleNoBloqueaElPedido(t *testing.T) {
	ctx := context.Background()
	bad := testutil.Line{ProductCode: "", Quantity: 5, RowNumber: 1}
	f := newFixture(testutil.Order("O-9", "C1", sku1(10), bad))

	w, err := f.uc.StartPicking(ctx, "O-9", "p1")
	require.NoError(t, err)
	require.Len(t, w.Items, 1)
	assert.Equal(t, "SKU1-0", w.Items[0].LineKey)

	upd, err := f.uc.UpdateItem(ctx, "O-9", "SKU1-0", "p1", picked(10))
	require.NoError(t, err)
	assert.Equal(t, entity.WorkflowStatusLoaded, upd.WorkflowStatus)

	d, err := f.uc.GetOrderDetail(ctx, "O-9")
	require.NoError(t, err)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, "SKU1", d.Lines[0].ProductCode)

	res, err := f.uc.Dispatch(ctx, "O-9", "d1", transport())
	require.NoError(t, err)
	assert.Equal(t, entity.WorkflowStatusDispatched, res.WorkflowStatus)
}

func TestStartPicking_PayloadIlegibleEsFalloDeCache(t *testing.T) {
	o := testutil.Order("O-1", "C1")
	o.Items = []byte(`{"no":"array"}`)
	f := newFixture(o)

	_, err := f.uc.StartPicking(context.Background(), "O-1", "p1")
	assert.ErrorIs(t, err, domain.ErrExternal)
}

// ── updateItem ───────────────────────────────────────────────────────────────

func TestUpdateItem_SinIniciarEsGuardaDeEstado(t *testing.T) {
	f := newFixture(testutil.Order("O-1", "C1", sku1(5)))
	_, err := f.uc.UpdateItem(context.Background(), "O-1", "SKU1-0", "p1", picked(1))
	assert.ErrorIs(t, err, domain.ErrWorkflowNotStarted)
	assert.ErrorIs(t, err, domain.ErrStateGuard)
	assert.False(t, domain.IsRetryable(err))
}

func TestUpdateItem_Validaciones(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(5)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)

	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", dto.UpdateItemRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU9-0", "p1", picked(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem_EstadosDeLineaYPedido(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(10),
		testutil.Line{ProductCode: "SKU2", WarehouseCode: "1", Quantity: 4, RowNumber: 1}))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)

	upd, err := f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(0))
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusMissing, upd.Item.Status)
	assert.Equal(t, entity.WorkflowStatusPicking, upd.WorkflowStatus)

	upd, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(4))
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusPartial, upd.Item.Status)
	assert.True(t, upd.Item.ShortageQty.Equal(qty(6)))

	upd, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(10))
	require.NoError(t, err)
	assert.Equal(t, entity.WorkflowStatusPicking, upd.WorkflowStatus, "SKU2 sigue pendiente")

	upd, err = f.uc.UpdateItem(ctx, "O-1", "SKU2-1", "p1", picked(4))
	require.NoError(t, err)
	assert.Equal(t, entity.WorkflowStatusLoaded, upd.WorkflowStatus)

	w := f.workflow(t, "O-1")
	assert.NotNil(t, w.LoadingStartedAt)
	assert.NotNil(t, w.LoadedAt)
}

func TestUpdateItem_EstanteAlimentaElDirectorio(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(5)), testutil.Order("O-2", "C2", sku1(3)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)

	shelf := " A-07 "
	upd, err := f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", dto.UpdateItemRequest{ShelfCode: &shelf})
	require.NoError(t, err)
	assert.Equal(t, "A-07", upd.Item.ShelfCode)
	assert.Equal(t, entity.ItemStatusPending, upd.Item.Status, "el estante no cuenta como avance")

	loc, err := f.store.Shelves().Get(ctx, "SKU1")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, "A-07", loc.ShelfCode)

	w, err := f.uc.StartPicking(ctx, "O-2", "p1")
	require.NoError(t, err)
	assert.Equal(t, "A-07", w.Items[0].ShelfCode, "el siguiente pedido recibe la sugerencia")
}

// ── despacho ─────────────────────────────────────────────────────────────────

func TestDispatch_DespachadoEsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(3)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(3))
	require.NoError(t, err)
	_, err = f.uc.Dispatch(ctx, "O-1", "d1", transport())
	require.NoError(t, err)

	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(1))
	assert.ErrorIs(t, err, domain.ErrWorkflowDispatched)
	_, err = f.uc.Dispatch(ctx, "O-1", "d1", transport())
	assert.ErrorIs(t, err, domain.ErrWorkflowDispatched)
	_, err = f.uc.StartPicking(ctx, "O-1", "p1")
	assert.ErrorIs(t, err, domain.ErrWorkflowDispatched)

	for i := 0; i < 3; i++ {
		d, err := f.uc.GetOrderDetail(ctx, "O-1")
		require.NoError(t, err)
		assert.Equal(t, entity.WorkflowStatusDispatched, d.Workflow.Status)
	}
	assert.Equal(t, entity.WorkflowStatusDispatched, f.workflow(t, "O-1").Status)
	assert.Len(t, f.emitter.Calls, 1)
}

func TestDispatch_SinNadaRecogido(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(3)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)

	_, err = f.uc.Dispatch(ctx, "O-1", "d1", transport())
	assert.ErrorIs(t, err, domain.ErrNothingToDispatch)
	assert.Empty(t, f.emitter.Calls)
	assert.Equal(t, 1, f.metrics.Dispatches[fulfillment.DispatchOutcomeRejected])
}

func TestDispatch_SinIniciar(t *testing.T) {
	f := newFixture(testutil.Order("O-1", "C1", sku1(3)))
	_, err := f.uc.Dispatch(context.Background(), "O-1", "d1", transport())
	assert.ErrorIs(t, err, domain.ErrWorkflowNotStarted)
}

func TestDispatch_PedidoFueraDeCacheEsNoEncontrado(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(3)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(3))
	require.NoError(t, err)

	f.cache.Remove("O-1")
	_, err = f.uc.Dispatch(ctx, "O-1", "d1", transport())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrStateGuard)
	assert.Empty(t, f.emitter.Calls)
	assert.Equal(t, entity.WorkflowStatusLoaded, f.workflow(t, "O-1").Status)
}

func TestDispatch_ValidacionDelEmisorNoEsReintentable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(3)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(3))
	require.NoError(t, err)

	f.emitter.Err = fmt.Errorf("%w: serie de irsaliye vacía", domain.ErrInvalidInput)
	_, err = f.uc.Dispatch(ctx, "O-1", "d1", transport())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, domain.IsRetryable(err))
	assert.Equal(t, 1, f.metrics.Dispatches[fulfillment.DispatchOutcomeRejected])
	assert.Zero(t, f.metrics.Dispatches[fulfillment.DispatchOutcomeExternalError])
}

func TestDispatch_FalloDelERPNoTocaNadaLocal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(20)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(20))
	require.NoError(t, err)

	f.emitter.Err = errors.New("context deadline exceeded")
	_, err = f.uc.Dispatch(ctx, "O-1", "d1", transport())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternal)
	assert.True(t, domain.IsRetryable(err))

	w := f.workflow(t, "O-1")
	assert.Equal(t, entity.WorkflowStatusLoaded, w.Status)
	assert.Empty(t, w.DeliveryNoteNo)
	it := w.ItemByKey("SKU1-0")
	assert.True(t, it.PickedQty.Equal(qty(20)))
	assert.True(t, it.RemainingQty.Equal(qty(20)))
	assert.Empty(t, f.store.Dispatches().All())
	assert.Equal(t, 1, f.metrics.Dispatches[fulfillment.DispatchOutcomeExternalError])

	// reintento tal cual
	f.emitter.Err = nil
	res, err := f.uc.Dispatch(ctx, "O-1", "d1", transport())
	require.NoError(t, err)
	assert.Equal(t, "IRS-1", res.DocumentNo)
}

func TestDispatch_FalloLocalTrasEscribirEnERP(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(2)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(2))
	require.NoError(t, err)

	f.store.FailDispatchCreate = errors.New("disco lleno")
	_, err = f.uc.Dispatch(ctx, "O-1", "d1", transport())
	require.Error(t, err)
	assert.False(t, domain.IsRetryable(err))
	assert.Len(t, f.emitter.Calls, 1)
	assert.Equal(t, 1, f.metrics.Dispatches[fulfillment.DispatchOutcomeReconcileFail])
	assert.Equal(t, entity.WorkflowStatusLoaded, f.workflow(t, "O-1").Status)
}

func TestDispatch_ParcialYSegundaRonda(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(10)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(6))
	require.NoError(t, err)

	res, err := f.uc.Dispatch(ctx, "O-1", "d1", transport())
	require.NoError(t, err)
	assert.Equal(t, entity.WorkflowStatusPartiallyLoaded, res.WorkflowStatus)
	assert.True(t, res.Lines[0].DeliveredQty.Equal(qty(6)))
	assert.True(t, res.Lines[0].RemainingQty.Equal(qty(4)))

	it := f.workflow(t, "O-1").ItemByKey("SKU1-0")
	assert.True(t, it.DeliveredQty.Equal(qty(6)))
	assert.True(t, it.PickedQty.IsZero())
	assert.True(t, it.ShortageQty.Equal(qty(4)))

	// la caché aún no refleja la entrega: el pendiente local no debe volver a 10
	_, err = f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	upd, err := f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(4))
	require.NoError(t, err)
	assert.Equal(t, entity.WorkflowStatusLoaded, upd.WorkflowStatus)

	res, err = f.uc.Dispatch(ctx, "O-1", "d1", transport())
	require.NoError(t, err)
	assert.Equal(t, "IRS-2", res.DocumentNo)
	assert.Equal(t, entity.WorkflowStatusDispatched, res.WorkflowStatus)
	assert.True(t, f.workflow(t, "O-1").ItemByKey("SKU1-0").DeliveredQty.Equal(qty(10)))
}

func TestDispatch_ERPAcotaLoEntregado(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(20)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(20))
	require.NoError(t, err)

	f.emitter.Caps["SKU1-0"] = qty(5)
	res, err := f.uc.Dispatch(ctx, "O-1", "d1", transport())
	require.NoError(t, err)
	assert.True(t, res.Lines[0].DeliveredQty.Equal(qty(5)))

	it := f.workflow(t, "O-1").ItemByKey("SKU1-0")
	assert.True(t, it.RemainingQty.Equal(qty(15)))
	assert.True(t, it.PickedQty.Equal(qty(15)))
	assert.Equal(t, entity.WorkflowStatusPartiallyLoaded, res.WorkflowStatus)
}

func TestDispatch_SerieExplicitaYConservacion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(8),
		testutil.Line{ProductCode: "SKU2", WarehouseCode: "1", Quantity: 3, RowNumber: 1, UnitPrice: 5}))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU1-0", "p1", picked(9))
	require.NoError(t, err)
	_, err = f.uc.UpdateItem(ctx, "O-1", "SKU2-1", "p1", picked(1))
	require.NoError(t, err)
	before := f.workflow(t, "O-1")

	in := transport()
	in.DeliverySeries = "ank"
	res, err := f.uc.Dispatch(ctx, "O-1", "d1", in)
	require.NoError(t, err)
	assert.Equal(t, "ANK-1", res.DocumentNo)

	after := f.workflow(t, "O-1")
	for _, old := range before.Items {
		deliver := decimal.Min(old.RemainingQty, old.PickedQty)
		now := after.ItemByKey(old.LineKey)
		assert.True(t, now.RemainingQty.Equal(old.RemainingQty.Sub(deliver)), old.LineKey)
		assert.True(t, now.DeliveredQty.Equal(old.DeliveredQty.Add(deliver)), old.LineKey)
		assert.True(t, deliver.LessThanOrEqual(old.PickedQty))
	}
}

// ── mapa de estados ──────────────────────────────────────────────────────────

func TestGetWorkflowStatusMap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testutil.Order("O-1", "C1", sku1(3)), testutil.Order("O-2", "C1", sku1(3)))
	_, err := f.uc.StartPicking(ctx, "O-1", "p1")
	require.NoError(t, err)

	m, err := f.uc.GetWorkflowStatusMap(ctx, []string{"O-1", " O-2 ", ""})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"O-1": entity.WorkflowStatusPicking}, m)

	_, err = f.uc.GetWorkflowStatusMap(ctx, []string{" "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
