package entity

import "time"

// ShelfLocation ubicación sugerida de un producto en el almacén (última escritura gana).
type ShelfLocation struct {
	ProductCode string
	ShelfCode   string
	UpdatedBy   string
	UpdatedAt   time.Time
}
