// Package pdf representación gráfica de la irsaliye (albarán de despacho).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + VKN          │  N° irsaliye + Fecha        │
//	│  CLIENTE: código + nombre / pedido de origen                 │
//	│  TRANSPORTE: conductor / placa / remolque / transportista    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Unid | Producto | P.Unit | KDV | Neto         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Neto / KDV / TOTAL                                 │
//	│  FOOTER: QR con el número de documento + firmas              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ fulfillment.DeliveryNotePDFGenerator = (*DeliveryNoteGenerator)(nil)

// DeliveryNoteGenerator implementa fulfillment.DeliveryNotePDFGenerator con Maroto v2.
type DeliveryNoteGenerator struct{}

// NewDeliveryNoteGenerator construye el generador.
func NewDeliveryNoteGenerator() *DeliveryNoteGenerator { return &DeliveryNoteGenerator{} }

// Generate arma el PDF de la irsaliye y devuelve sus bytes.
func (g *DeliveryNoteGenerator) Generate(rec *entity.DispatchRecord, issuer fulfillment.Issuer) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("pdf: irsaliye nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sevk İrsaliyesi "+rec.DocumentNo, true).
		WithAuthor(nonEmpty(issuer.Name, "—"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rec, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(rec))
	m.AddRows(transportRow(rec.Transport))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(rec.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rec))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(rec))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rec *entity.DispatchRecord, issuer fulfillment.Issuer) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(issuer.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("VKN: "+nonEmpty(issuer.TaxID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SEVK İRSALİYESİ", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(rec.DocumentNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+rec.DispatchedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(rec *entity.DispatchRecord) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(rec.CustomerName, rec.CustomerCode), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Código: "+rec.CustomerCode, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("PEDIDO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(rec.OrderNumber, props.Text{Size: 10, Align: align.Right, Top: 6}),
		),
	)
}

func transportRow(t entity.TransportInfo) core.Row {
	vehicle := t.VehiclePlate
	if t.TrailerPlate != "" {
		vehicle += " / " + t.TrailerPlate
	}
	components := []core.Component{
		text.New("TRANSPORTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(fmt.Sprintf("Conductor: %s (%s)   |   Vehículo: %s   |   Transportista: %s",
			t.DriverName, t.DriverID, vehicle, nonEmpty(t.CarrierName, "—"),
		), props.Text{Size: 8, Top: 6}),
	}
	if t.Note != "" {
		components = append(components, text.New(t.Note, props.Text{Size: 7, Top: 10.5, Color: colorGray}))
	}
	return row.New(14).Add(col.New(12).Add(components...))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Unid.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("P.Unit", 2, align.Right),
		h("KDV%", 1, align.Center),
		h("Neto", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDetailRows(lines []entity.DispatchRecordLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := l.ProductCode
		if l.ProductName != "" {
			name += " · " + l.ProductName
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(l.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatAmount(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(l.VATRate.StringFixed(0)+"%", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatAmount(l.NetAmount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(rec *entity.DispatchRecord) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Neto:", 1),
			label("KDV:", 7),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 13}),
		),
		col.New(3).Add(
			value(formatAmount(rec.NetTotal), 1),
			value(formatAmount(rec.VATTotal), 7),
			text.New(formatAmount(rec.GrandTotal), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 13}),
		),
	)
}

func footerRow(rec *entity.DispatchRecord) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(rec.DocumentNo, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Teslim eden", props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("Teslim alan", props.Text{Size: 8, Top: 4, Align: align.Right, Color: colorGray}),
			text.New("Operario: "+rec.DispatchedByUserID, props.Text{Size: 7, Top: 30, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount formato turco con dos decimales: 1234.5 → "1.234,50".
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
