// Package fulfillment contiene las reglas puras del picking y despacho de pedidos del ERP:
// normalización de líneas de la caché, cobertura de stock, estados de línea y pedido,
// resincronización y planificación del despacho. No depende de infraestructura.
package fulfillment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// ParseOptions controla el filtrado de líneas.
type ParseOptions struct {
	// IncludeNonRemaining conserva las líneas sin cantidad pendiente. Lo usa la resincronización
	// del workflow para que una línea entregada por otra vía quede en cero en lugar de desaparecer.
	IncludeNonRemaining bool
}

// ParseLines convierte las líneas sin tipar de la caché en PendingOrderLine canónicas.
// Los numéricos pueden venir como número JSON o como texto ("12,5" o "12.5").
// Una fila mal formada se descarta y se informa en rejected; el resto del pedido sigue usable.
// Solo un payload que no es un arreglo devuelve error.
func ParseLines(raw json.RawMessage, opts ParseOptions) (lines []entity.PendingOrderLine, rejected []entity.RejectedLine, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []entity.PendingOrderLine{}, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, nil, fmt.Errorf("fulfillment: líneas de pedido ilegibles: %w", err)
	}

	lines = make([]entity.PendingOrderLine, 0, len(rows))
	for i, row := range rows {
		line, err := parseLine(row, i)
		if err != nil {
			rejected = append(rejected, entity.RejectedLine{
				Index:       i,
				ProductCode: str(row["productCode"]),
				Reason:      err.Error(),
			})
			continue
		}
		if !opts.IncludeNonRemaining && !line.RemainingQty.IsPositive() {
			continue
		}
		lines = append(lines, line)
	}
	return lines, rejected, nil
}

// ParseOrder tipa la cabecera y normaliza sus líneas.
func ParseOrder(c *entity.CachedOrder, opts ParseOptions) (*entity.PendingOrder, error) {
	if c == nil {
		return nil, fmt.Errorf("fulfillment: pedido vacío")
	}
	lines, rejected, err := ParseLines(c.Items, opts)
	if err != nil {
		return nil, fmt.Errorf("pedido %s: %w", c.OrderNumber, err)
	}
	return &entity.PendingOrder{
		OrderNumber:  strings.TrimSpace(c.OrderNumber),
		Series:       strings.TrimSpace(c.Series),
		Sequence:     c.Sequence,
		CustomerCode: strings.TrimSpace(c.CustomerCode),
		CustomerName: strings.TrimSpace(c.CustomerName),
		OrderDate:    c.OrderDate,
		DeliveryDate: c.DeliveryDate,
		Lines:        lines,
		Rejected:     rejected,
	}, nil
}

func parseLine(row map[string]any, index int) (entity.PendingOrderLine, error) {
	var l entity.PendingOrderLine
	var err error

	l.ProductCode = str(row["productCode"])
	if l.ProductCode == "" {
		return l, fmt.Errorf("productCode vacío")
	}
	l.ProductName = str(row["productName"])
	l.Unit = str(row["unit"])
	l.WarehouseCode = str(row["warehouseCode"])

	fields := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"quantity", &l.Quantity},
		{"deliveredQty", &l.DeliveredQty},
		{"remainingQty", &l.RemainingQty},
		{"reservedQty", &l.ReservedQty},
		{"reservedDeliveredQty", &l.ReservedDeliveredQty},
		{"unitPrice", &l.UnitPrice},
		{"lineTotal", &l.LineTotal},
		{"vat", &l.VAT},
	}
	for _, f := range fields {
		if *f.dst, err = num(row[f.key]); err != nil {
			return l, fmt.Errorf("%s: %w", f.key, err)
		}
	}

	// La cantidad pendiente se deriva de pedido − entregado siempre que el pedido venga informado.
	if row["quantity"] != nil {
		l.RemainingQty = decimal.Max(l.Quantity.Sub(l.DeliveredQty), decimal.Zero)
	} else {
		l.RemainingQty = decimal.Max(l.RemainingQty, decimal.Zero)
		l.Quantity = l.RemainingQty.Add(l.DeliveredQty)
	}

	if v, ok := row["rowNumber"]; ok && v != nil && str(v) != "" {
		n, err := num(v)
		if err != nil {
			return l, fmt.Errorf("rowNumber: %w", err)
		}
		l.RowNumber = int(n.IntPart())
		l.HasRowNumber = true
	}
	l.LineKey = LineKey(l.ProductCode, l.RowNumber, l.HasRowNumber, index)
	return l, nil
}

// LineKey clave estable de la línea entre sincronizaciones: código + número de fila del ERP.
// Sin número de fila se recurre a la posición; perderla implica perder el progreso registrado.
func LineKey(productCode string, rowNumber int, hasRowNumber bool, index int) string {
	if hasRowNumber {
		return fmt.Sprintf("%s-%d", productCode, rowNumber)
	}
	return fmt.Sprintf("%s-i%d", productCode, index)
}

func str(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func num(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case nil:
		return decimal.Zero, nil
	case json.Number:
		return decimal.NewFromString(t.String())
	case float64:
		return decimal.NewFromFloat(t), nil
	case bool:
		if t {
			return decimal.NewFromInt(1), nil
		}
		return decimal.Zero, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero, nil
		}
		// Formato local "1.234,50": el punto es separador de miles cuando también hay coma.
		if strings.Contains(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return decimal.Zero, fmt.Errorf("valor numérico inválido %q", t)
		}
		return decimal.NewFromString(s)
	default:
		return decimal.Zero, fmt.Errorf("tipo no numérico %T", v)
	}
}
