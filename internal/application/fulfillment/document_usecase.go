package fulfillment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/domain/repository"
)

// DocumentUseCase representación de la irsaliye: PDF y XML DespatchAdvice.
type DocumentUseCase struct {
	records repository.DispatchRecordRepository
	pdf     DeliveryNotePDFGenerator
	xml     DespatchAdviceBuilder
	issuer  Issuer
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(records repository.DispatchRecordRepository, pdf DeliveryNotePDFGenerator, xml DespatchAdviceBuilder, issuer Issuer) *DocumentUseCase {
	return &DocumentUseCase{records: records, pdf: pdf, xml: xml, issuer: issuer}
}

// DeliveryNotePDF devuelve el PDF y el nombre de archivo sugerido.
func (uc *DocumentUseCase) DeliveryNotePDF(ctx context.Context, documentNo string) ([]byte, string, error) {
	rec, err := uc.load(ctx, documentNo)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.Generate(rec, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf irsaliye %s: %w", rec.DocumentNo, err)
	}
	return b, fmt.Sprintf("irsaliye_%s.pdf", rec.DocumentNo), nil
}

// DeliveryNoteXML devuelve el DespatchAdvice y el SHA-256 de su forma canónica.
func (uc *DocumentUseCase) DeliveryNoteXML(ctx context.Context, documentNo string) ([]byte, string, error) {
	rec, err := uc.load(ctx, documentNo)
	if err != nil {
		return nil, "", err
	}
	b, digest, err := uc.xml.Build(rec, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("xml irsaliye %s: %w", rec.DocumentNo, err)
	}
	return b, digest, nil
}

// ListByOrder irsaliyes emitidas para un pedido.
func (uc *DocumentUseCase) ListByOrder(ctx context.Context, orderNumber string) ([]dto.DeliveryNoteSummary, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	recs, err := uc.records.ListByOrder(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeliveryNoteSummary, 0, len(recs))
	for _, r := range recs {
		out = append(out, toDeliveryNoteSummary(r))
	}
	return out, nil
}

func (uc *DocumentUseCase) load(ctx context.Context, documentNo string) (*entity.DispatchRecord, error) {
	documentNo = strings.TrimSpace(documentNo)
	if documentNo == "" {
		return nil, domain.ErrInvalidInput
	}
	rec, err := uc.records.GetByDocumentNo(ctx, documentNo)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}
