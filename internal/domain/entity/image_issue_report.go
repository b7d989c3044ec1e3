package entity

import "time"

// Estados de un reporte de imagen incorrecta.
const (
	ImageIssueStatusOpen     = "OPEN"
	ImageIssueStatusReviewed = "REVIEWED"
	ImageIssueStatusFixed    = "FIXED"
)

// ImageIssueReport reporte de imagen de producto que no corresponde a lo recogido.
// Como máximo un reporte OPEN por (pedido, línea).
type ImageIssueReport struct {
	ID               string
	OrderNumber      string
	LineKey          string
	ProductCode      string
	ProductName      string
	ImageURL         string // imagen vigente al momento del reporte
	Note             string
	Status           string
	ReportedByUserID string
	ReportedByName   string
	ReviewedByUserID string
	ReviewNote       string
	ReviewedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidImageIssueStatus indica si s es un estado conocido.
func ValidImageIssueStatus(s string) bool {
	switch s {
	case ImageIssueStatusOpen, ImageIssueStatusReviewed, ImageIssueStatusFixed:
		return true
	}
	return false
}
