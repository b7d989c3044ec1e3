package fulfillment

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

// ShelfUseCase directorio de ubicaciones, independiente de los pedidos.
type ShelfUseCase struct {
	repo repository.ShelfLocationRepository
	now  func() time.Time
}

// NewShelfUseCase construye el caso de uso.
func NewShelfUseCase(repo repository.ShelfLocationRepository) *ShelfUseCase {
	return &ShelfUseCase{repo: repo, now: time.Now}
}

// Upsert asigna el estante del producto (última escritura gana).
func (uc *ShelfUseCase) Upsert(ctx context.Context, productCode, userID string, in dto.UpsertShelfRequest) (*dto.ShelfResponse, error) {
	productCode = strings.TrimSpace(productCode)
	shelf := strings.TrimSpace(in.ShelfCode)
	if productCode == "" || shelf == "" {
		return nil, domain.ErrInvalidInput
	}
	loc := &entity.ShelfLocation{ProductCode: productCode, ShelfCode: shelf, UpdatedBy: userID, UpdatedAt: uc.now()}
	if err := uc.repo.Upsert(ctx, loc); err != nil {
		return nil, err
	}
	return toShelfResponse(loc), nil
}

// Delete elimina la ubicación; ErrNotFound si no existía.
func (uc *ShelfUseCase) Delete(ctx context.Context, productCode string) error {
	productCode = strings.TrimSpace(productCode)
	if productCode == "" {
		return domain.ErrInvalidInput
	}
	ok, err := uc.repo.Delete(ctx, productCode)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Get ubicación de un producto.
func (uc *ShelfUseCase) Get(ctx context.Context, productCode string) (*dto.ShelfResponse, error) {
	loc, err := uc.repo.Get(ctx, strings.TrimSpace(productCode))
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return toShelfResponse(loc), nil
}

// List ubicaciones de los productos pedidos (todas si la lista va vacía).
func (uc *ShelfUseCase) List(ctx context.Context, productCodes []string) ([]*dto.ShelfResponse, error) {
	m, err := uc.repo.ListByProducts(ctx, productCodes)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ShelfResponse, 0, len(m))
	for _, loc := range m {
		out = append(out, toShelfResponse(loc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductCode < out[j].ProductCode })
	return out, nil
}
