//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

func startStore(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("fulfillment_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	pool, err := NewPoolFromDSN(ctx, dsn, PoolOptions{MaxConns: 5})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	m, err := NewMigrator(pool, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	v, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)
	return pool
}

func TestRepositorios_WorkflowEItems(t *testing.T) {
	pool := startStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	err := NewTxRunner(pool).Run(ctx, func(workflows repository.WorkflowRepository, _ repository.ShelfLocationRepository, _ repository.DispatchRecordRepository) error {
		require.NoError(t, workflows.Ensure(ctx, "SIP-1", now))
		// idempotente
		require.NoError(t, workflows.Ensure(ctx, "SIP-1", now))

		w, err := workflows.GetByOrderNumberForUpdate(ctx, "SIP-1")
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, entity.WorkflowStatusPending, w.Status)

		it := &entity.WorkflowItem{
			LineKey: "SKU1-1", ProductCode: "SKU1", RowNumber: 1, Status: entity.ItemStatusPending,
			RequestedQty: decimal.NewFromInt(10), RemainingQty: decimal.NewFromInt(10),
			UnitPrice: decimal.RequireFromString("12.50"), CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, workflows.UpsertItem(ctx, w.ID, it))
		assert.NotEmpty(t, it.ID)

		it.PickedQty = decimal.NewFromInt(4)
		it.Status = entity.ItemStatusPartial
		require.NoError(t, workflows.UpsertItem(ctx, w.ID, it))

		w.Status = entity.WorkflowStatusPicking
		w.StartedAt = &now
		w.AssignedPickerUserID = "u-1"
		return workflows.Update(ctx, w)
	})
	require.NoError(t, err)

	repo := NewWorkflowRepository(pool)
	w, err := repo.GetByOrderNumber(ctx, "SIP-1")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, entity.WorkflowStatusPicking, w.Status)
	require.Len(t, w.Items, 1)
	assert.True(t, w.Items[0].PickedQty.Equal(decimal.NewFromInt(4)))
	assert.True(t, w.Items[0].UnitPrice.Equal(decimal.RequireFromString("12.5")))

	statuses, err := repo.StatusMap(ctx, []string{"SIP-1", "SIP-2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"SIP-1": entity.WorkflowStatusPicking}, statuses)

	missing, err := repo.GetByOrderNumber(ctx, "SIP-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepositorios_TxRollbackNoDejaRastro(t *testing.T) {
	pool := startStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTxRunner(pool).Run(ctx, func(workflows repository.WorkflowRepository, _ repository.ShelfLocationRepository, _ repository.DispatchRecordRepository) error {
		require.NoError(t, workflows.Ensure(ctx, "SIP-9", time.Now()))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	w, err := NewWorkflowRepository(pool).GetByOrderNumber(ctx, "SIP-9")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestRepositorios_UnSoloReporteAbiertoPorLinea(t *testing.T) {
	pool := startStore(t)
	ctx := context.Background()
	repo := NewImageIssueRepository(pool)
	now := time.Now().UTC()

	newReport := func() *entity.ImageIssueReport {
		return &entity.ImageIssueReport{
			ID: uuid.New().String(), OrderNumber: "SIP-1", LineKey: "SKU1-1", ProductCode: "SKU1",
			Status: entity.ImageIssueStatusOpen, ReportedByUserID: "u-1", CreatedAt: now, UpdatedAt: now,
		}
	}
	first := newReport()
	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, newReport()), domain.ErrDuplicate)

	// una vez cerrado se puede abrir otro
	first.Status = entity.ImageIssueStatusFixed
	first.ReviewedByUserID = "u-2"
	first.ReviewedAt = &now
	require.NoError(t, repo.Update(ctx, first))
	require.NoError(t, repo.Create(ctx, newReport()))

	// reabrir el primero choca con el nuevo OPEN
	first.Status = entity.ImageIssueStatusOpen
	assert.ErrorIs(t, repo.Update(ctx, first), domain.ErrDuplicate)

	list, err := repo.List(ctx, repository.ImageIssueFilter{OrderNumber: "SIP-1"})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRepositorios_IrsaliyeYEstantes(t *testing.T) {
	pool := startStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	shelves := NewShelfLocationRepository(pool)
	require.NoError(t, shelves.Upsert(ctx, &entity.ShelfLocation{ProductCode: "SKU1", ShelfCode: "A-01", UpdatedBy: "u-1", UpdatedAt: now}))
	require.NoError(t, shelves.Upsert(ctx, &entity.ShelfLocation{ProductCode: "SKU1", ShelfCode: "B-02", UpdatedBy: "u-2", UpdatedAt: now}))
	loc, err := shelves.Get(ctx, "SKU1")
	require.NoError(t, err)
	assert.Equal(t, "B-02", loc.ShelfCode)
	ok, err := shelves.Delete(ctx, "SKU1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = shelves.Delete(ctx, "SKU1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, NewWorkflowRepository(pool).Ensure(ctx, "SIP-1", now))
	w, err := NewWorkflowRepository(pool).GetByOrderNumber(ctx, "SIP-1")
	require.NoError(t, err)

	records := NewDispatchRecordRepository(pool)
	rec := &entity.DispatchRecord{
		ID: uuid.New().String(), WorkflowID: w.ID, OrderNumber: "SIP-1", CustomerCode: "C1",
		DocumentNo: "IRS-1", Series: "IRS", Sequence: 1, DispatchedByUserID: "u-1", DispatchedAt: now,
		Transport:  entity.TransportInfo{DriverName: "Ali", DriverID: "1", VehiclePlate: "34ABC1"},
		NetTotal:   decimal.NewFromInt(100), VATTotal: decimal.NewFromInt(20), GrandTotal: decimal.NewFromInt(120),
		Lines: []entity.DispatchRecordLine{{
			LineKey: "SKU1-1", ProductCode: "SKU1", RowNumber: 1, Quantity: decimal.NewFromInt(10),
			UnitPrice: decimal.NewFromInt(10), VATRate: decimal.NewFromInt(20),
			NetAmount: decimal.NewFromInt(100), VATAmount: decimal.NewFromInt(20), MovementGUID: "g-1",
		}},
	}
	require.NoError(t, records.Create(ctx, rec))

	dup := *rec
	dup.ID = uuid.New().String()
	assert.ErrorIs(t, records.Create(ctx, &dup), domain.ErrDuplicate)

	got, err := records.GetByDocumentNo(ctx, "IRS-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "34ABC1", got.Transport.VehiclePlate)
	require.Len(t, got.Lines, 1)
	assert.True(t, got.Lines[0].Quantity.Equal(decimal.NewFromInt(10)))

	list, err := records.ListByOrder(ctx, "SIP-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
