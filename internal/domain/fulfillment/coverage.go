package fulfillment

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// Clasificación de cobertura de stock.
const (
	CoverageFull    = "FULL"
	CoveragePartial = "PARTIAL"
	CoverageNone    = "NONE"
)

// LineCoverage cobertura de una línea tras asignar el stock disponible.
type LineCoverage struct {
	LineKey     string
	ProductCode string
	Remaining   decimal.Decimal
	Available   decimal.Decimal // saldo del producto en su almacén antes de asignar a esta línea
	Covered     decimal.Decimal
	Status      string
}

// OrderCoverage agregado del pedido.
type OrderCoverage struct {
	Lines          []LineCoverage
	TotalRemaining decimal.Decimal
	TotalCovered   decimal.Decimal
	CoveredPercent int
	Status         string
}

// ByLineKey indexa la cobertura por línea.
func (c OrderCoverage) ByLineKey() map[string]LineCoverage {
	out := make(map[string]LineCoverage, len(c.Lines))
	for _, l := range c.Lines {
		out[l.LineKey] = l
	}
	return out
}

var hundred = decimal.NewFromInt(100)

// StockKey clave del saldo de stock: producto en un almacén. Sin almacén, solo el producto.
func StockKey(productCode, warehouseCode string) string {
	if warehouseCode == "" {
		return productCode
	}
	return productCode + "@" + warehouseCode
}

// CalculateCoverage asigna el stock disponible (indexado por StockKey) a las líneas en orden,
// con un saldo corrido para que dos líneas del mismo producto y almacén no cuenten el stock dos veces.
func CalculateCoverage(lines []entity.PendingOrderLine, available map[string]decimal.Decimal) OrderCoverage {
	balance := make(map[string]decimal.Decimal, len(available))
	for code, qty := range available {
		balance[code] = decimal.Max(qty, decimal.Zero)
	}

	out := OrderCoverage{Lines: make([]LineCoverage, 0, len(lines))}
	var full, partial, none int
	for _, l := range lines {
		key := StockKey(l.ProductCode, l.WarehouseCode)
		lc := LineCoverage{
			LineKey:     l.LineKey,
			ProductCode: l.ProductCode,
			Remaining:   decimal.Max(l.RemainingQty, decimal.Zero),
			Available:   balance[key],
		}
		switch {
		case !lc.Remaining.IsPositive():
			lc.Status = CoverageFull
		default:
			lc.Covered = decimal.Min(lc.Available, lc.Remaining)
			balance[key] = lc.Available.Sub(lc.Covered)
			switch {
			case lc.Covered.Equal(lc.Remaining):
				lc.Status = CoverageFull
			case lc.Covered.IsPositive():
				lc.Status = CoveragePartial
			default:
				lc.Status = CoverageNone
			}
		}
		switch lc.Status {
		case CoverageFull:
			full++
		case CoveragePartial:
			partial++
		default:
			none++
		}
		out.TotalRemaining = out.TotalRemaining.Add(lc.Remaining)
		out.TotalCovered = out.TotalCovered.Add(lc.Covered)
		out.Lines = append(out.Lines, lc)
	}

	out.CoveredPercent = 100
	if out.TotalRemaining.IsPositive() {
		pct := out.TotalCovered.Mul(hundred).Div(out.TotalRemaining).Round(0).IntPart()
		out.CoveredPercent = int(min(max(pct, 0), 100))
	}

	switch {
	case partial == 0 && none == 0:
		out.Status = CoverageFull
	case full == 0 && partial == 0:
		out.Status = CoverageNone
	default:
		out.Status = CoveragePartial
	}
	return out
}
