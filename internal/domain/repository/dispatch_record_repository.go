package repository

import (
	"context"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// DispatchRecordRepository copia local de las irsaliyes emitidas.
type DispatchRecordRepository interface {
	Create(ctx context.Context, rec *entity.DispatchRecord) error
	// GetByDocumentNo devuelve la irsaliye con sus líneas o nil, nil.
	GetByDocumentNo(ctx context.Context, documentNo string) (*entity.DispatchRecord, error)
	ListByOrder(ctx context.Context, orderNumber string) ([]*entity.DispatchRecord, error)
}
