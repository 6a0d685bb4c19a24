// Package pdf genera la representación gráfica de una factura de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Factura + Fecha          │
//	│  CLIENTE: código + nombre    │  Vendedor                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Peso | Precio | Importe              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PLANILLA DE PESADAS 7×6                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Peso total / Merma / TOTAL A PAGAR                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/application/billing"
	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/entity"
)

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 110, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	shopName string
	loc      *time.Location
}

// NewMarotoPDFGenerator construye el generador; las fechas se imprimen en loc.
func NewMarotoPDFGenerator(shopName string, loc *time.Location) *MarotoPDFGenerator {
	if loc == nil {
		loc = time.Local
	}
	return &MarotoPDFGenerator{shopName: shopName, loc: loc}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, data billing.InvoicePDFData) ([]byte, error) {
	if data.Invoice == nil {
		return nil, fmt.Errorf("pdf: factura vacía")
	}
	inv := data.Invoice

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Factura %d", inv.ID), true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(inv))
	m.AddRows(customerRow(inv, data.CreatorName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(data.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(weightGridRows(inv.WeightGrid)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(inv *entity.Invoice) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("FACTURA N° %d", inv.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+inv.CreatedAt.In(g.loc).Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func customerRow(inv *entity.Invoice, creatorName string) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%s  (%s)", nonEmpty(inv.CustomerName, "—"), inv.CustomerID), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Vendedor: "+nonEmpty(creatorName, inv.CreatedBy), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Peso (kg)", 2, align.Right),
		h("Precio/kg", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

// tableLineRows una fila por línea; importe = peso × precio.
func tableLineRows(lines []*entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for i, li := range lines {
		name := li.ProductName
		if li.ProductIsOriginal {
			name += " *"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(li.ProductWeight.StringFixed(1), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(li.ProductPrice.StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(li.ProductWeight.Mul(li.ProductPrice).StringFixed(0)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// weightGridRows planilla de pesadas; las celdas vacías se dejan en blanco.
func weightGridRows(grid entity.WeightGrid) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("PLANILLA DE PESADAS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, cells := range grid {
		r := row.New(6)
		for _, cell := range cells {
			label := ""
			if cell != nil {
				label = strconv.FormatFloat(*cell, 'f', -1, 64)
			}
			r.Add(col.New(2).Add(text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1})))
		}
		rows = append(rows, r)
	}
	return rows
}

func totalsRow(inv *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	depreciation := "—"
	if inv.DepreciationWeight.Valid {
		depreciation = inv.DepreciationWeight.Decimal.StringFixed(1) + " kg"
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Peso total:"),
			text.New("Merma:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("TOTAL A PAGAR:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 12}),
		),
		col.New(3).Add(
			value(inv.TotalWeight.StringFixed(1)+" kg", 0),
			value(depreciation, 6),
			text.New(formatMoney(inv.TotalPrice.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 12,
			}),
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

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
