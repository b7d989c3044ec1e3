package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

var _ fulfillment.ProductCatalog = (*ProductCatalog)(nil)

// ProductCatalog stock por almacén e imagen, JSON en un hash (campo = código de producto).
type ProductCatalog struct {
	client redis.Cmdable
	key    string
	log    zerolog.Logger
}

// NewProductCatalog construye el lector sobre el hash key.
func NewProductCatalog(client redis.Cmdable, key string, log zerolog.Logger) *ProductCatalog {
	return &ProductCatalog{client: client, key: key, log: log}
}

// Lookup devuelve solo los productos presentes en la caché.
func (c *ProductCatalog) Lookup(ctx context.Context, productCodes []string) (map[string]*entity.ProductStock, error) {
	out := make(map[string]*entity.ProductStock, len(productCodes))
	if len(productCodes) == 0 {
		return out, nil
	}
	vals, err := c.client.HMGet(ctx, c.key, productCodes...).Result()
	if err != nil {
		return nil, domain.External("cache lookup products", err)
	}
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var p entity.ProductStock
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			c.log.Warn().Err(err).Str("product", productCodes[i]).Msg("producto ilegible en caché, se omite")
			continue
		}
		if p.ProductCode == "" {
			p.ProductCode = productCodes[i]
		}
		out[productCodes[i]] = &p
	}
	return out, nil
}
