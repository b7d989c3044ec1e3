package fulfillment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/fulfillment"
)

func TestMergeItem_CreaItemPendiente(t *testing.T) {
	l := line("SKU1-1", "SKU1", 20)
	l.UnitPrice = d(7)

	it := fulfillment.MergeItem(nil, fulfillment.SyncInput{Line: l, StockSnapshot: d(30), ShelfCode: "A-01"}, time.Now())

	require.NotNil(t, it)
	assert.Equal(t, entity.ItemStatusPending, it.Status)
	assert.True(t, it.RemainingQty.Equal(d(20)))
	assert.True(t, it.ShortageQty.Equal(d(20)))
	assert.Equal(t, "A-01", it.ShelfCode)
	assert.True(t, it.StockSnapshot.Equal(d(30)))
}

// La cantidad pendiente nunca crece entre sincronizaciones y lo recogido se conserva.
func TestMergeItem_PendienteSoloBaja(t *testing.T) {
	now := time.Now()
	it := fulfillment.MergeItem(nil, fulfillment.SyncInput{Line: line("K", "SKU1", 10)}, now)
	it.PickedQty = d(4)
	it.ExtraQty = d(1)
	it.PickedAt = &now
	fulfillment.Recompute(it)

	it = fulfillment.MergeItem(it, fulfillment.SyncInput{Line: line("K", "SKU1", 15)}, now)
	assert.True(t, it.RemainingQty.Equal(d(10)), "no debe crecer a 15")

	it = fulfillment.MergeItem(it, fulfillment.SyncInput{Line: line("K", "SKU1", 6)}, now)
	assert.True(t, it.RemainingQty.Equal(d(6)))
	assert.True(t, it.PickedQty.Equal(d(4)))
	assert.True(t, it.ExtraQty.Equal(d(1)))
	assert.True(t, it.ShortageQty.Equal(d(2)))

	it = fulfillment.MergeItem(it, fulfillment.SyncInput{Line: line("K", "SKU1", 0)}, now)
	assert.True(t, it.RemainingQty.IsZero(), "línea entregada por otra vía queda en cero")
	assert.True(t, it.ShortageQty.IsZero())
}

func TestMergeItem_NoPisaUbicacionExistente(t *testing.T) {
	it := &entity.WorkflowItem{LineKey: "K", ShelfCode: "B-02", RemainingQty: d(3)}

	it = fulfillment.MergeItem(it, fulfillment.SyncInput{Line: line("K", "SKU1", 3), ShelfCode: "Z-99"}, time.Now())

	assert.Equal(t, "B-02", it.ShelfCode)
}

func TestDispatch_PlanYConservacion(t *testing.T) {
	now := time.Now()
	a := &entity.WorkflowItem{LineKey: "A", RemainingQty: d(10), PickedQty: d(6), DeliveredQty: d(2), PickedAt: &now}
	b := &entity.WorkflowItem{LineKey: "B", RemainingQty: d(3), PickedQty: d(5), PickedAt: &now}
	c := &entity.WorkflowItem{LineKey: "C", RemainingQty: d(4)}

	plan := fulfillment.PlanDispatch([]*entity.WorkflowItem{a, b, c})

	require.Len(t, plan, 2)
	assert.True(t, plan[0].DeliverQty.Equal(d(6)))
	assert.True(t, plan[1].DeliverQty.Equal(d(3)))

	for _, p := range plan {
		fulfillment.ApplyDelivery(p.Item, p.DeliverQty)
	}
	assert.True(t, a.RemainingQty.Equal(d(4)))
	assert.True(t, a.DeliveredQty.Equal(d(8)))
	assert.True(t, a.PickedQty.IsZero())
	assert.True(t, b.RemainingQty.IsZero())
	assert.True(t, b.PickedQty.Equal(d(2)))
	assert.Equal(t, entity.WorkflowStatusPartiallyLoaded, fulfillment.StatusAfterDispatch([]*entity.WorkflowItem{a, b, c}))
	assert.Equal(t, entity.WorkflowStatusDispatched, fulfillment.StatusAfterDispatch([]*entity.WorkflowItem{b}))
}
