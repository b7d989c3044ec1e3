package entity

import "github.com/shopspring/decimal"

// ProductStock datos del producto para el picking: stock por almacén, imagen y unidad secundaria.
type ProductStock struct {
	ProductCode     string                     `json:"productCode"`
	WarehouseStocks map[string]decimal.Decimal `json:"warehouseStocks"`
	ImageURL        string                     `json:"imageUrl"`
	Unit2           string                     `json:"unit2"`
	Unit2Factor     decimal.Decimal            `json:"unit2Factor"`
}

// StockIn devuelve el stock en el almacén indicado (cero si no hay dato).
func (p *ProductStock) StockIn(warehouseCode string) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	if q, ok := p.WarehouseStocks[warehouseCode]; ok {
		return q
	}
	return decimal.Zero
}
