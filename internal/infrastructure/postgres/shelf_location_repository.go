package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

var _ repository.ShelfLocationRepository = (*ShelfLocationRepo)(nil)

// ShelfLocationRepo directorio de estantes sobre PostgreSQL.
type ShelfLocationRepo struct {
	q Querier
}

// NewShelfLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShelfLocationRepository(q Querier) *ShelfLocationRepo {
	return &ShelfLocationRepo{q: q}
}

// Upsert última escritura gana.
func (r *ShelfLocationRepo) Upsert(ctx context.Context, loc *entity.ShelfLocation) error {
	query := `
		INSERT INTO shelf_locations (product_code, shelf_code, updated_by, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_code) DO UPDATE SET
			shelf_code = EXCLUDED.shelf_code, updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, loc.ProductCode, loc.ShelfCode, nullString(loc.UpdatedBy), loc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert shelf location: %w", err)
	}
	return nil
}

// Delete devuelve false si el producto no tenía ubicación.
func (r *ShelfLocationRepo) Delete(ctx context.Context, productCode string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM shelf_locations WHERE product_code = $1`, productCode)
	if err != nil {
		return false, fmt.Errorf("delete shelf location: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Get devuelve la ubicación o nil, nil.
func (r *ShelfLocationRepo) Get(ctx context.Context, productCode string) (*entity.ShelfLocation, error) {
	query := `SELECT product_code, shelf_code, updated_by, updated_at FROM shelf_locations WHERE product_code = $1`
	loc, err := scanShelf(r.q.QueryRow(ctx, query, productCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shelf location: %w", err)
	}
	return loc, nil
}

// ListByProducts sin códigos devuelve el directorio completo.
func (r *ShelfLocationRepo) ListByProducts(ctx context.Context, productCodes []string) (map[string]*entity.ShelfLocation, error) {
	query := `SELECT product_code, shelf_code, updated_by, updated_at FROM shelf_locations`
	var args []any
	if len(productCodes) > 0 {
		query += ` WHERE product_code = ANY($1)`
		args = append(args, productCodes)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shelf locations: %w", err)
	}
	defer rows.Close()
	out := make(map[string]*entity.ShelfLocation)
	for rows.Next() {
		loc, err := scanShelf(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shelf location: %w", err)
		}
		out[loc.ProductCode] = loc
	}
	return out, rows.Err()
}

func scanShelf(row pgx.Row) (*entity.ShelfLocation, error) {
	var loc entity.ShelfLocation
	var updatedBy *string
	if err := row.Scan(&loc.ProductCode, &loc.ShelfCode, &updatedBy, &loc.UpdatedAt); err != nil {
		return nil, err
	}
	loc.UpdatedBy = derefString(updatedBy)
	return &loc, nil
}
