package erp

import "github.com/shopspring/decimal"

// Tasas de IVA (KDV) por puntero de vergi de Mikro. El puntero 0 significa "sin asignar".
var vatRateByPointer = map[int]decimal.Decimal{
	1: decimal.Zero,
	2: decimal.NewFromInt(1),
	3: decimal.NewFromInt(10),
	4: decimal.NewFromInt(20),
	5: decimal.NewFromInt(8),
	6: decimal.NewFromInt(18),
}

// pointerForRate puntero a grabar en stok_hareketleri para una tasa ya resuelta.
func pointerForRate(rate decimal.Decimal) int {
	for p, r := range vatRateByPointer {
		if p > 1 && r.Equal(rate) {
			return p
		}
	}
	if rate.IsZero() {
		return 1
	}
	return 0
}

// vatEvidence datos de la línea de pedido y del producto para resolver la tasa.
type vatEvidence struct {
	LinePointer    int
	LineVATAmount  decimal.Decimal // sip_vergi
	LineNetAmount  decimal.Decimal // sip_tutar
	CachedVAT      decimal.Decimal // IVA de la línea según la caché
	ProductPointer int             // sto_toptan_vergi; 0 si no se consultó
}

// resolveVATRate cascada: puntero de la línea → evidencia histórica (vergi/tutar) → clase del producto.
// Nunca falla: sin ninguna evidencia la tasa es cero.
func resolveVATRate(ev vatEvidence) decimal.Decimal {
	if r, ok := vatRateByPointer[ev.LinePointer]; ok && !r.IsZero() {
		return r
	}
	if ev.LineNetAmount.IsPositive() {
		amount := ev.LineVATAmount
		if !amount.IsPositive() {
			amount = ev.CachedVAT
		}
		if amount.IsPositive() {
			return amount.Div(ev.LineNetAmount).Mul(decimal.NewFromInt(100)).Round(0)
		}
	}
	if r, ok := vatRateByPointer[ev.ProductPointer]; ok {
		return r
	}
	if r, ok := vatRateByPointer[ev.LinePointer]; ok {
		return r
	}
	return decimal.Zero
}

// needsProductClass indica si hace falta consultar stoklar para resolver la tasa.
func needsProductClass(ev vatEvidence) bool {
	if r, ok := vatRateByPointer[ev.LinePointer]; ok && !r.IsZero() {
		return false
	}
	if ev.LineNetAmount.IsPositive() && (ev.LineVATAmount.IsPositive() || ev.CachedVAT.IsPositive()) {
		return false
	}
	return true
}
