package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

func TestFormatAmount_MilesYDecimales(t *testing.T) {
	assert.Equal(t, "0,00", formatAmount(decimal.Zero))
	assert.Equal(t, "240,00", formatAmount(decimal.NewFromInt(240)))
	assert.Equal(t, "1.234,50", formatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "1.000.000,00", formatAmount(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-12,30", formatAmount(decimal.RequireFromString("-12.3")))
}

func TestGenerate_DevuelvePDF(t *testing.T) {
	rec := &entity.DispatchRecord{
		OrderNumber:  "SIP-1",
		CustomerCode: "C1",
		CustomerName: "Market Bir",
		DocumentNo:   "IRS-1",
		Transport:    entity.TransportInfo{DriverName: "Ali", DriverID: "1", VehiclePlate: "34ABC123"},
		DispatchedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		NetTotal:     decimal.NewFromInt(200),
		VATTotal:     decimal.NewFromInt(40),
		GrandTotal:   decimal.NewFromInt(240),
		Lines: []entity.DispatchRecordLine{{
			ProductCode: "SKU1", Unit: "AD", Quantity: decimal.NewFromInt(20),
			UnitPrice: decimal.NewFromInt(10), VATRate: decimal.NewFromInt(20),
			NetAmount: decimal.NewFromInt(200), VATAmount: decimal.NewFromInt(40),
		}},
	}

	out, err := NewDeliveryNoteGenerator().Generate(rec, fulfillment.Issuer{Name: "Depo AŞ", TaxID: "1234567890"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerate_IrsaliyeNulaEsError(t *testing.T) {
	_, err := NewDeliveryNoteGenerator().Generate(nil, fulfillment.Issuer{})
	assert.Error(t, err)
}
