package repository

import (
	"context"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// ShelfLocationRepository directorio producto → estante (última escritura gana).
type ShelfLocationRepository interface {
	Upsert(ctx context.Context, loc *entity.ShelfLocation) error
	Delete(ctx context.Context, productCode string) (bool, error)
	Get(ctx context.Context, productCode string) (*entity.ShelfLocation, error)
	// ListByProducts devuelve las ubicaciones conocidas; lista vacía devuelve todo el directorio.
	ListByProducts(ctx context.Context, productCodes []string) (map[string]*entity.ShelfLocation, error)
}
