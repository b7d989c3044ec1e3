package repository

import (
	"context"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// ImageIssueFilter filtros del listado de reportes (campos vacíos no filtran).
type ImageIssueFilter struct {
	OrderNumber string
	ProductCode string
	Status      string
	Limit       int
	Offset      int
}

// ImageIssueRepository puerto de persistencia de reportes de imagen.
type ImageIssueRepository interface {
	// FindOpen devuelve el reporte OPEN de (pedido, línea) o nil, nil.
	FindOpen(ctx context.Context, orderNumber, lineKey string) (*entity.ImageIssueReport, error)

	// Create inserta el reporte. Si ya existe uno OPEN para (pedido, línea) devuelve domain.ErrDuplicate.
	Create(ctx context.Context, r *entity.ImageIssueReport) error

	GetByID(ctx context.Context, id string) (*entity.ImageIssueReport, error)
	Update(ctx context.Context, r *entity.ImageIssueReport) error
	List(ctx context.Context, f ImageIssueFilter) ([]*entity.ImageIssueReport, error)
}
