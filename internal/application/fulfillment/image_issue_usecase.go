package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

// ImageIssueUseCase reportes de imágenes de producto que no corresponden a lo recogido.
type ImageIssueUseCase struct {
	repo    repository.ImageIssueRepository
	orders  PendingOrderCache
	catalog ProductCatalog
	log     zerolog.Logger
	now     func() time.Time
}

// NewImageIssueUseCase construye el caso de uso.
func NewImageIssueUseCase(repo repository.ImageIssueRepository, orders PendingOrderCache, catalog ProductCatalog, log zerolog.Logger) *ImageIssueUseCase {
	return &ImageIssueUseCase{
		repo:    repo,
		orders:  orders,
		catalog: catalog,
		log:     log.With().Str("component", "image_issues").Logger(),
		now:     time.Now,
	}
}

// Report crea el reporte o devuelve el OPEN existente para la misma (pedido, línea).
func (uc *ImageIssueUseCase) Report(ctx context.Context, userID, userName string, in dto.ReportImageIssueRequest) (*dto.ImageIssueResponse, error) {
	orderNumber := strings.TrimSpace(in.OrderNumber)
	lineKey := strings.TrimSpace(in.LineKey)
	if orderNumber == "" || lineKey == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.FindOpen(ctx, orderNumber, lineKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toImageIssueResponse(existing), nil
	}

	order, err := loadOrder(ctx, uc.orders, uc.log, orderNumber, true)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, orderNumber)
	}
	var line *entity.PendingOrderLine
	for i := range order.Lines {
		if order.Lines[i].LineKey == lineKey {
			line = &order.Lines[i]
			break
		}
	}
	if line == nil {
		return nil, fmt.Errorf("%w: línea %s del pedido %s", domain.ErrNotFound, lineKey, orderNumber)
	}

	// ── foto de la imagen vigente ──
	var imageURL string
	if products, err := uc.catalog.Lookup(ctx, []string{line.ProductCode}); err != nil {
		uc.log.Warn().Err(err).Str("product", line.ProductCode).Msg("catálogo no disponible, reporte sin imagen")
	} else if p := products[line.ProductCode]; p != nil {
		imageURL = p.ImageURL
	}

	now := uc.now()
	r := &entity.ImageIssueReport{
		ID:               uuid.New().String(),
		OrderNumber:      orderNumber,
		LineKey:          lineKey,
		ProductCode:      line.ProductCode,
		ProductName:      line.ProductName,
		ImageURL:         imageURL,
		Note:             strings.TrimSpace(in.Note),
		Status:           entity.ImageIssueStatusOpen,
		ReportedByUserID: userID,
		ReportedByName:   userName,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// otro operario lo reportó en paralelo
			if existing, ferr := uc.repo.FindOpen(ctx, orderNumber, lineKey); ferr == nil && existing != nil {
				return toImageIssueResponse(existing), nil
			}
		}
		return nil, err
	}
	uc.log.Info().Str("order", orderNumber).Str("line", lineKey).Str("report", r.ID).Msg("imagen reportada")
	return toImageIssueResponse(r), nil
}

// List lista reportes con filtros.
func (uc *ImageIssueUseCase) List(ctx context.Context, f dto.ImageIssueFilter) ([]*dto.ImageIssueResponse, error) {
	f.DefaultPage()
	if f.Status != "" && !entity.ValidImageIssueStatus(f.Status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, repository.ImageIssueFilter{
		OrderNumber: strings.TrimSpace(f.OrderNumber),
		ProductCode: strings.TrimSpace(f.ProductCode),
		Status:      f.Status,
		Limit:       f.Limit,
		Offset:      f.Offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ImageIssueResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toImageIssueResponse(r))
	}
	return out, nil
}

// UpdateStatus mueve el reporte entre OPEN, REVIEWED y FIXED. Volver a OPEN limpia al revisor.
func (uc *ImageIssueUseCase) UpdateStatus(ctx context.Context, id, userID string, in dto.UpdateImageIssueStatusRequest) (*dto.ImageIssueResponse, error) {
	if strings.TrimSpace(id) == "" || userID == "" || !entity.ValidImageIssueStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	r.Status = in.Status
	r.UpdatedAt = now
	if in.Status == entity.ImageIssueStatusOpen {
		r.ReviewedByUserID = ""
		r.ReviewNote = ""
		r.ReviewedAt = nil
	} else {
		r.ReviewedByUserID = userID
		r.ReviewNote = strings.TrimSpace(in.Note)
		r.ReviewedAt = &now
	}
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toImageIssueResponse(r), nil
}
