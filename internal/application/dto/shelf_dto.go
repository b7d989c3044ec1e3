package dto

import "time"

// UpsertShelfRequest body de PUT /api/fulfillment/shelves/:productCode.
type UpsertShelfRequest struct {
	ShelfCode string `json:"shelf_code" validate:"required,max=50"`
}

// ShelfResponse ubicación de un producto.
type ShelfResponse struct {
	ProductCode string    `json:"product_code"`
	ShelfCode   string    `json:"shelf_code"`
	UpdatedBy   string    `json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
