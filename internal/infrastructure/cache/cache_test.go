package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfillment-api/internal/domain"
)

// Cliente contra un puerto cerrado: cualquier comando falla de inmediato.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	c := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestPendingOrderCache_RedisCaidoEsExterno(t *testing.T) {
	c := NewPendingOrderCache(unreachableClient(t), "mikro:pending-orders", zerolog.Nop())

	_, err := c.Get(context.Background(), "SIP-1")
	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))

	_, err = c.List(context.Background())
	assert.True(t, domain.IsRetryable(err))
}

func TestProductCatalog_SinCodigosNoConsulta(t *testing.T) {
	c := NewProductCatalog(unreachableClient(t), "mikro:products", zerolog.Nop())

	out, err := c.Lookup(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = c.Lookup(context.Background(), []string{"SKU1"})
	assert.True(t, domain.IsRetryable(err))
}
