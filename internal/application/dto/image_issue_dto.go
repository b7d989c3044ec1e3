package dto

import "time"

// ReportImageIssueRequest body de POST /api/fulfillment/image-issues.
type ReportImageIssueRequest struct {
	OrderNumber string `json:"order_number" validate:"required,max=50"`
	LineKey     string `json:"line_key" validate:"required,max=80"`
	Note        string `json:"note" validate:"max=500"`
}

// UpdateImageIssueStatusRequest body de PATCH /api/fulfillment/image-issues/:id.
type UpdateImageIssueStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN REVIEWED FIXED"`
	Note   string `json:"note" validate:"max=500"`
}

// ImageIssueFilter query del listado.
type ImageIssueFilter struct {
	OrderNumber string `query:"order_number" validate:"max=50"`
	ProductCode string `query:"product_code" validate:"max=50"`
	Status      string `query:"status" validate:"omitempty,oneof=OPEN REVIEWED FIXED"`
	PageRequest
}

// ImageIssueResponse reporte de imagen.
type ImageIssueResponse struct {
	ID               string     `json:"id"`
	OrderNumber      string     `json:"order_number"`
	LineKey          string     `json:"line_key"`
	ProductCode      string     `json:"product_code"`
	ProductName      string     `json:"product_name,omitempty"`
	ImageURL         string     `json:"image_url,omitempty"`
	Note             string     `json:"note,omitempty"`
	Status           string     `json:"status"`
	ReportedByUserID string     `json:"reported_by_user_id"`
	ReportedByName   string     `json:"reported_by_name,omitempty"`
	ReviewedByUserID string     `json:"reviewed_by_user_id,omitempty"`
	ReviewNote       string     `json:"review_note,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
