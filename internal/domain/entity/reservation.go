package entity

import "github.com/shopspring/decimal"

// Reservation reserva activa de stock de otro (o del mismo) pedido abierto.
type Reservation struct {
	OrderNumber    string
	RowNumber      int
	ProductCode    string
	CustomerCode   string
	CustomerName   string
	WarehouseCode  string
	ActiveQty      decimal.Decimal
	IsCurrentOrder bool
	IsCurrentLine  bool
}
