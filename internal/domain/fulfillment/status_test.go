package fulfillment_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/fulfillment"
)

func TestItemStatus_Precedencia(t *testing.T) {
	cases := []struct {
		name                     string
		picked, extra, remaining int64
		want                     string
	}{
		{"extra gana aunque falte", 2, 1, 10, entity.ItemStatusExtra},
		{"cubierta", 10, 0, 10, entity.ItemStatusPicked},
		{"sobre-recogida sin extra", 12, 0, 10, entity.ItemStatusPicked},
		{"sin avance con faltante", 0, 0, 10, entity.ItemStatusMissing},
		{"avance parcial", 4, 0, 10, entity.ItemStatusPartial},
		{"sin pendiente", 0, 0, 0, entity.ItemStatusPicked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shortage := fulfillment.ShortageQty(d(tc.remaining), d(tc.picked))
			got := fulfillment.ItemStatus(d(tc.picked), d(tc.extra), shortage, d(tc.remaining))
			assert.Equal(t, tc.want, got)
		})
	}
}

// El faltante es siempre max(pendiente − recogido, 0).
func TestShortageQty_NuncaNegativo(t *testing.T) {
	for remaining := int64(0); remaining <= 5; remaining++ {
		for picked := int64(0); picked <= 7; picked++ {
			got := fulfillment.ShortageQty(d(remaining), d(picked))
			want := decimal.Max(d(remaining-picked), decimal.Zero)
			assert.True(t, got.Equal(want), "remaining=%d picked=%d", remaining, picked)
		}
	}
}

func TestRecompute_LineaSinTocarSigueEnPending(t *testing.T) {
	it := &entity.WorkflowItem{RemainingQty: d(5)}

	fulfillment.Recompute(it)

	assert.Equal(t, entity.ItemStatusPending, it.Status)
	assert.True(t, it.ShortageQty.Equal(d(5)))
}

func TestOrderStatus(t *testing.T) {
	now := time.Now()
	picked := func(remaining, picked int64) *entity.WorkflowItem {
		it := &entity.WorkflowItem{RemainingQty: d(remaining), PickedQty: d(picked), PickedAt: &now}
		fulfillment.Recompute(it)
		return it
	}

	assert.Equal(t, entity.WorkflowStatusLoaded,
		fulfillment.OrderStatus([]*entity.WorkflowItem{picked(5, 5), picked(3, 4)}))
	assert.Equal(t, entity.WorkflowStatusPicking,
		fulfillment.OrderStatus([]*entity.WorkflowItem{picked(5, 5), picked(3, 1)}), "mixto sigue en PICKING")
	assert.Equal(t, entity.WorkflowStatusPicking,
		fulfillment.OrderStatus([]*entity.WorkflowItem{{RemainingQty: d(2), ShortageQty: d(2)}}), "sin avance sigue en PICKING")
	assert.Equal(t, entity.WorkflowStatusPicking,
		fulfillment.OrderStatus([]*entity.WorkflowItem{picked(0, 0)}), "sin demanda no hay nada que cargar")
}
