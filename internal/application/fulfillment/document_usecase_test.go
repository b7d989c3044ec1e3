package fulfillment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
	"github.com/jhoicas/fulfillment-api/internal/testutil"
)

type stubPDF struct{ got *entity.DispatchRecord }

func (s *stubPDF) Generate(rec *entity.DispatchRecord, _ fulfillment.Issuer) ([]byte, error) {
	s.got = rec
	return []byte("%PDF-1.7"), nil
}

type stubXML struct{}

func (stubXML) Build(rec *entity.DispatchRecord, issuer fulfillment.Issuer) ([]byte, string, error) {
	return []byte("<DespatchAdvice/>"), "digest-" + rec.DocumentNo + "-" + issuer.TaxID, nil
}

func TestDocuments_PDFYXMLDeIrsaliyeEmitida(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	require.NoError(t, store.Dispatches().Create(ctx, &entity.DispatchRecord{ID: "r1", OrderNumber: "O-1", DocumentNo: "IRS-7"}))

	pdf := &stubPDF{}
	uc := fulfillment.NewDocumentUseCase(store.Dispatches(), pdf, stubXML{}, fulfillment.Issuer{Name: "ACME", TaxID: "123"})

	b, name, err := uc.DeliveryNotePDF(ctx, "IRS-7")
	require.NoError(t, err)
	assert.Equal(t, "irsaliye_IRS-7.pdf", name)
	assert.Equal(t, []byte("%PDF-1.7"), b)
	assert.Equal(t, "O-1", pdf.got.OrderNumber)

	_, digest, err := uc.DeliveryNoteXML(ctx, "IRS-7")
	require.NoError(t, err)
	assert.Equal(t, "digest-IRS-7-123", digest)

	_, _, err = uc.DeliveryNotePDF(ctx, "IRS-8")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.ListByOrder(ctx, "O-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
