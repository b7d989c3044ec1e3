// Package erp adaptador contra las tablas de Mikro (siparisler, stok_hareketleri,
// evrak_aciklamalari, stoklar). Todas las consultas pasan por Executor: timeout,
// circuit breaker y traducción de fallos a domain.ErrExternal.
package erp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/jhoicas/fulfillment-api/internal/domain"
)

// Observer recibe latencias y cambios de estado del circuito (lo implementa metrics.Metrics).
type Observer interface {
	ObserveERPQuery(op string, d time.Duration, err error)
	SetBreakerState(name string, state int)
}

type nopObserver struct{}

func (nopObserver) ObserveERPQuery(string, time.Duration, error) {}
func (nopObserver) SetBreakerState(string, int)                  {}

// ExecutorConfig protección de las consultas.
type ExecutorConfig struct {
	QueryTimeout    time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Executor ejecuta consultas contra la base del ERP.
type Executor struct {
	db       *sql.DB
	breaker  *gobreaker.CircuitBreaker
	timeout  time.Duration
	observer Observer
	log      zerolog.Logger
}

// NewExecutor envuelve db con timeout por operación y circuit breaker. observer puede ser nil.
func NewExecutor(db *sql.DB, cfg ExecutorConfig, observer Observer, log zerolog.Logger) *Executor {
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 15 * time.Second
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}
	if observer == nil {
		observer = nopObserver{}
	}
	e := &Executor{db: db, timeout: cfg.QueryTimeout, observer: observer, log: log}
	e.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "erp",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// Los rechazos de negocio no son fallos del ERP.
		IsSuccessful: func(err error) bool {
			return err == nil || isBusinessError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			e.log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("cambio de estado del circuito ERP")
			e.observer.SetBreakerState(name, int(to))
		},
	})
	return e
}

// Query ejecuta fn con un contexto acotado por el timeout.
func (e *Executor) Query(ctx context.Context, op string, fn func(ctx context.Context, db *sql.DB) error) error {
	return e.run(ctx, op, func(ctx context.Context) error {
		return fn(ctx, e.db)
	})
}

// InTx ejecuta fn dentro de una transacción del ERP: commit si fn no falla, rollback si no.
func (e *Executor) InTx(ctx context.Context, op string, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return e.run(ctx, op, func(ctx context.Context) error {
		tx, err := e.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()
		if err := fn(ctx, tx); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

func (e *Executor) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	_, err := e.breaker.Execute(func() (interface{}, error) {
		return nil, fn(ctx)
	})
	e.observer.ObserveERPQuery(op, time.Since(start), errIfExternal(err))

	if err == nil || isBusinessError(err) {
		return err
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.External("erp "+op, fmt.Errorf("circuito abierto: %w", err))
	}
	return domain.External("erp "+op, err)
}

func isBusinessError(err error) bool {
	return errors.Is(err, domain.ErrStateGuard) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidInput)
}

func errIfExternal(err error) error {
	if err == nil || isBusinessError(err) {
		return nil
	}
	return err
}
