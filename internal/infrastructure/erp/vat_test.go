package erp

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveVATRate_Cascada(t *testing.T) {
	tests := []struct {
		name string
		ev   vatEvidence
		want int64
	}{
		{"puntero de la línea", vatEvidence{LinePointer: 4}, 20},
		{"evidencia vergi/tutar", vatEvidence{LineVATAmount: decimal.NewFromInt(10), LineNetAmount: decimal.NewFromInt(100)}, 10},
		{"puntero cero con evidencia", vatEvidence{LinePointer: 1, LineVATAmount: decimal.NewFromInt(20), LineNetAmount: decimal.NewFromInt(100)}, 20},
		{"IVA de la caché como evidencia", vatEvidence{CachedVAT: decimal.NewFromInt(8), LineNetAmount: decimal.NewFromInt(100)}, 8},
		{"clase del producto", vatEvidence{ProductPointer: 3, LineNetAmount: decimal.NewFromInt(100)}, 10},
		{"sin evidencia", vatEvidence{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveVATRate(tt.ev)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestNeedsProductClass_SoloSinOtraEvidencia(t *testing.T) {
	assert.False(t, needsProductClass(vatEvidence{LinePointer: 4}))
	assert.False(t, needsProductClass(vatEvidence{LineVATAmount: decimal.NewFromInt(1), LineNetAmount: decimal.NewFromInt(10)}))
	assert.True(t, needsProductClass(vatEvidence{LinePointer: 1, LineNetAmount: decimal.NewFromInt(10)}))
}

func TestPointerForRate_TasasConocidas(t *testing.T) {
	assert.Equal(t, 4, pointerForRate(decimal.NewFromInt(20)))
	assert.Equal(t, 3, pointerForRate(decimal.NewFromInt(10)))
	assert.Equal(t, 1, pointerForRate(decimal.Zero))
	assert.Equal(t, 0, pointerForRate(decimal.NewFromInt(7)))
}
