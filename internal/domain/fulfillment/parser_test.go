package fulfillment_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/fulfillment"
)

const rawLines = `[
	{"productCode":" SKU1 ","productName":"Vida","unit":"AD","warehouseCode":"1","quantity":20,"deliveredQty":5,
	 "reservedQty":"8","reservedDeliveredQty":"3","unitPrice":"12,50","lineTotal":"250.00","vat":18,"rowNumber":0},
	{"productCode":"SKU2","quantity":"4","deliveredQty":"4","rowNumber":"1"},
	{"productCode":"SKU3","remainingQty":2}
]`

func TestParseLines_ModoVisualizacionFiltraSinPendiente(t *testing.T) {
	lines, _, err := fulfillment.ParseLines(json.RawMessage(rawLines), fulfillment.ParseOptions{})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	first := lines[0]
	assert.Equal(t, "SKU1", first.ProductCode)
	assert.Equal(t, "SKU1-0", first.LineKey)
	assert.True(t, first.RemainingQty.Equal(d(15)), "pendiente = pedido − entregado")
	assert.Equal(t, "12.5", first.UnitPrice.String())
	assert.True(t, first.ActiveReservation().Equal(d(5)))

	assert.Equal(t, "SKU3-i2", lines[1].LineKey, "sin número de fila se usa la posición")
	assert.True(t, lines[1].Quantity.Equal(d(2)))
}

func TestParseLines_ModoResyncConservaLineasEntregadas(t *testing.T) {
	lines, _, err := fulfillment.ParseLines(json.RawMessage(rawLines), fulfillment.ParseOptions{IncludeNonRemaining: true})
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "SKU2-1", lines[1].LineKey)
	assert.True(t, lines[1].RemainingQty.IsZero())
}

func TestParseLines_ClaveEstableEntreSincronizaciones(t *testing.T) {
	a, _, err := fulfillment.ParseLines(json.RawMessage(rawLines), fulfillment.ParseOptions{IncludeNonRemaining: true})
	require.NoError(t, err)
	b, _, err := fulfillment.ParseLines(json.RawMessage(rawLines), fulfillment.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, a[0].LineKey, b[0].LineKey)
}

func TestParseLines_Errores(t *testing.T) {
	_, _, err := fulfillment.ParseLines(json.RawMessage(`{"no":"array"}`), fulfillment.ParseOptions{})
	assert.Error(t, err)

	lines, rejected, err := fulfillment.ParseLines(nil, fulfillment.ParseOptions{})
	assert.NoError(t, err)
	assert.Empty(t, lines)
	assert.Empty(t, rejected)
}

func TestParseLines_FilaMalFormadaSeDescartaSinPerderElPedido(t *testing.T) {
	raw := `[
		{"productCode":"SKU1","rowNumber":0,"quantity":10},
		{"productCode":"","rowNumber":1,"quantity":5},
		{"productCode":"SKU3","rowNumber":2,"quantity":"abc"},
		{"quantity":1}
	]`
	lines, rejected, err := fulfillment.ParseLines(json.RawMessage(raw), fulfillment.ParseOptions{IncludeNonRemaining: true})
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "SKU1-0", lines[0].LineKey)
	assert.True(t, lines[0].RemainingQty.Equal(d(10)))

	require.Len(t, rejected, 3)
	assert.Equal(t, 1, rejected[0].Index)
	assert.Contains(t, rejected[0].Reason, "productCode")
	assert.Equal(t, "SKU3", rejected[1].ProductCode)
	assert.Contains(t, rejected[1].Reason, "quantity")
	assert.Equal(t, 3, rejected[2].Index)
}

func TestParseOrder_Cabecera(t *testing.T) {
	o, err := fulfillment.ParseOrder(&entity.CachedOrder{
		OrderNumber: " SIP-10 ", Series: "SIP", Sequence: 10, CustomerName: "ACME",
		Items: json.RawMessage(rawLines),
	}, fulfillment.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, "SIP-10", o.OrderNumber)
	assert.Len(t, o.Lines, 2)
	assert.Empty(t, o.Rejected)
}
