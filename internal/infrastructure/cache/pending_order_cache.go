package cache

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

var _ fulfillment.PendingOrderCache = (*PendingOrderCache)(nil)

// PendingOrderCache pedidos abiertos guardados como JSON en un hash (campo = número de pedido).
type PendingOrderCache struct {
	client redis.Cmdable
	key    string
	log    zerolog.Logger
}

// NewPendingOrderCache construye el lector sobre el hash key.
func NewPendingOrderCache(client redis.Cmdable, key string, log zerolog.Logger) *PendingOrderCache {
	return &PendingOrderCache{client: client, key: key, log: log}
}

// Get devuelve el pedido o nil, nil si no está en la caché.
func (c *PendingOrderCache) Get(ctx context.Context, orderNumber string) (*entity.CachedOrder, error) {
	raw, err := c.client.HGet(ctx, c.key, orderNumber).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.External("cache get order", err)
	}
	var o entity.CachedOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		c.log.Warn().Err(err).Str("order", orderNumber).Msg("entrada de caché ilegible")
		return nil, domain.External("cache decode order", err)
	}
	if o.OrderNumber == "" {
		o.OrderNumber = orderNumber
	}
	return &o, nil
}

// List todos los pedidos; las entradas ilegibles se omiten con un warning.
func (c *PendingOrderCache) List(ctx context.Context) ([]*entity.CachedOrder, error) {
	all, err := c.client.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, domain.External("cache list orders", err)
	}
	out := make([]*entity.CachedOrder, 0, len(all))
	for number, raw := range all {
		var o entity.CachedOrder
		if err := json.Unmarshal([]byte(raw), &o); err != nil {
			c.log.Warn().Err(err).Str("order", number).Msg("entrada de caché ilegible, se omite")
			continue
		}
		if o.OrderNumber == "" {
			o.OrderNumber = number
		}
		out = append(out, &o)
	}
	return out, nil
}
