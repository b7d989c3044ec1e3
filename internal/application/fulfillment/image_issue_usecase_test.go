package fulfillment_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/testutil"
)

func newImageIssues(t *testing.T) (*fulfillment.ImageIssueUseCase, *testutil.Catalog) {
	t.Helper()
	store := testutil.NewStore()
	cache := testutil.NewOrderCache(testutil.Order("O-1", "C1", sku1(4)))
	catalog := testutil.NewCatalog().WithStock("SKU1", "1", 1)
	catalog.Products["SKU1"].ImageURL = "https://cdn/sku1.jpg"
	return fulfillment.NewImageIssueUseCase(store.ImageIssues(), cache, catalog, zerolog.Nop()), catalog
}

func TestReportImageIssue_Idempotente(t *testing.T) {
	ctx := context.Background()
	uc, _ := newImageIssues(t)
	in := dto.ReportImageIssueRequest{OrderNumber: "O-1", LineKey: "SKU1-0", Note: "la foto es de otro tornillo"}

	a, err := uc.Report(ctx, "u1", "Ayşe", in)
	require.NoError(t, err)
	b, err := uc.Report(ctx, "u2", "Mehmet", in)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "u1", b.ReportedByUserID)
	assert.Equal(t, "https://cdn/sku1.jpg", a.ImageURL)
	assert.Equal(t, entity.ImageIssueStatusOpen, a.Status)
}

func TestReportImageIssue_TrasCerrarSeAbreOtro(t *testing.T) {
	ctx := context.Background()
	uc, _ := newImageIssues(t)
	in := dto.ReportImageIssueRequest{OrderNumber: "O-1", LineKey: "SKU1-0"}

	a, err := uc.Report(ctx, "u1", "", in)
	require.NoError(t, err)
	_, err = uc.UpdateStatus(ctx, a.ID, "rev", dto.UpdateImageIssueStatusRequest{Status: entity.ImageIssueStatusFixed})
	require.NoError(t, err)

	b, err := uc.Report(ctx, "u1", "", in)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	// no puede haber dos OPEN para la misma línea
	_, err = uc.UpdateStatus(ctx, a.ID, "rev", dto.UpdateImageIssueStatusRequest{Status: entity.ImageIssueStatusOpen})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestReportImageIssue_LineaDesconocida(t *testing.T) {
	uc, _ := newImageIssues(t)
	_, err := uc.Report(context.Background(), "u1", "", dto.ReportImageIssueRequest{OrderNumber: "O-1", LineKey: "SKU9-0"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Report(context.Background(), "u1", "", dto.ReportImageIssueRequest{OrderNumber: "O-9", LineKey: "SKU1-0"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateImageIssueStatus_RevisorYReapertura(t *testing.T) {
	ctx := context.Background()
	uc, _ := newImageIssues(t)
	r, err := uc.Report(ctx, "u1", "", dto.ReportImageIssueRequest{OrderNumber: "O-1", LineKey: "SKU1-0"})
	require.NoError(t, err)

	rev, err := uc.UpdateStatus(ctx, r.ID, "rev-1", dto.UpdateImageIssueStatusRequest{Status: entity.ImageIssueStatusReviewed, Note: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "rev-1", rev.ReviewedByUserID)
	assert.NotNil(t, rev.ReviewedAt)
	assert.Equal(t, "ok", rev.ReviewNote)

	open, err := uc.UpdateStatus(ctx, r.ID, "rev-1", dto.UpdateImageIssueStatusRequest{Status: entity.ImageIssueStatusOpen})
	require.NoError(t, err)
	assert.Empty(t, open.ReviewedByUserID)
	assert.Nil(t, open.ReviewedAt)
	assert.Empty(t, open.ReviewNote)

	_, err = uc.UpdateStatus(ctx, r.ID, "rev-1", dto.UpdateImageIssueStatusRequest{Status: "BORRADO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.UpdateStatus(ctx, "no-existe", "rev-1", dto.UpdateImageIssueStatusRequest{Status: entity.ImageIssueStatusFixed})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListImageIssues_Filtros(t *testing.T) {
	ctx := context.Background()
	uc, _ := newImageIssues(t)
	r, err := uc.Report(ctx, "u1", "", dto.ReportImageIssueRequest{OrderNumber: "O-1", LineKey: "SKU1-0"})
	require.NoError(t, err)

	open, err := uc.List(ctx, dto.ImageIssueFilter{Status: entity.ImageIssueStatusOpen})
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, r.ID, open[0].ID)

	fixed, err := uc.List(ctx, dto.ImageIssueFilter{Status: entity.ImageIssueStatusFixed})
	require.NoError(t, err)
	assert.Empty(t, fixed)
}
