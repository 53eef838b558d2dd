// Package pdf implementa la generación del Acta de Entrega de Dotación:
// el soporte impreso que firma el docente al retirar material del depósito.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Institución  │  N° Acta + Fecha de entrega          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CURSO: nombre + nivel   PERIODO: nombre + año               │
//	│  DOCENTE RECEPTOR: nombre + correo                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Ítem | Unidad | Costo Unit | Costo Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OBSERVACIONES                                               │
//	│  FIRMAS: Almacén / Docente receptor                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"

	appdist "github.com/jhoicas/Dotacion-api/internal/application/distribution"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ActaGenerator implementa distribution.ActaPDFGenerator usando Maroto v2.
type ActaGenerator struct {
	schoolName string
}

// NewActaGenerator construye el generador con el nombre de la institución.
func NewActaGenerator(schoolName string) *ActaGenerator {
	if schoolName == "" {
		schoolName = "Institución Educativa"
	}
	return &ActaGenerator{schoolName: schoolName}
}

// GenerateActaPDF genera el acta y devuelve sus bytes.
func (g *ActaGenerator) GenerateActaPDF(_ context.Context, data appdist.ActaData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de Entrega de Dotación", true).
		WithAuthor(g.schoolName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contextRow(data))
	m.AddRows(teacherRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRow(data))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(notesRows(data)...)
	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow())
	m.AddRows(legendRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar acta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: institución (izq) y número de acta + fecha (der).
func (g *ActaGenerator) headerRow(data appdist.ActaData) core.Row {
	fecha := data.Distribution.DistributionDate.Format("02/01/2006")
	numActa := shortID(data.Distribution.ID)

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.schoolName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Almacén de dotación escolar", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ACTA DE ENTREGA DE DOTACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+numActa, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// contextRow: curso destinatario y periodo académico.
func contextRow(data appdist.ActaData) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("CURSO DESTINATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", data.Class.Name, nonEmpty(data.Class.Level, "—")),
				props.Text{Size: 9, Top: 7}),
		),
		col.New(6).Add(
			text.New("PERIODO ACADÉMICO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s — %d", data.Term.Name, data.Term.Year),
				props.Text{Size: 9, Top: 7}),
		),
	)
}

// teacherRow: docente que recibe la dotación.
func teacherRow(data appdist.ActaData) core.Row {
	name, email := "—", "—"
	if data.Teacher != nil {
		name = data.Teacher.Name
		email = nonEmpty(data.Teacher.Email, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DOCENTE RECEPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Correo: "+email, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de entrega.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Ítem entregado", 5, align.Left),
		h("Unidad", 2, align.Center),
		h("Costo Unit.", 2, align.Right),
		h("Costo Total", 2, align.Right),
	)
}

// itemRow: la línea entregada con su valorización a costo de catálogo.
func itemRow(data appdist.ActaData) core.Row {
	qty := decimal.NewFromInt(data.Distribution.Quantity)
	total := data.Item.CostPrice.Mul(qty)

	return row.New(7).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", data.Distribution.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			data.Item.Name,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			nonEmpty(data.Item.Unit, "unidad"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			"$"+formatMoney(data.Item.CostPrice.StringFixed(0)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			"$"+formatMoney(total.StringFixed(0)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// notesRows: observaciones de la entrega, si las hay.
func notesRows(data appdist.ActaData) []core.Row {
	if data.Distribution.Notes == "" {
		return nil
	}
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.Distribution.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)),
	}
}

// signatureRow: líneas de firma de quien entrega y quien recibe.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(5).Add(
			text.New("________________________________", props.Text{
				Size: 9, Align: align.Center, Top: 10,
			}),
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 16,
			}),
		)
	}
	return row.New(22).Add(
		col.New(1),
		sig("Entrega — Almacén"),
		col.New(1),
		sig("Recibe — Docente"),
	)
}

// legendRow: leyenda de conservación del documento.
func legendRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"El docente receptor declara recibir la dotación descrita en cantidad y estado "+
				"conformes. Conserve este documento como soporte de inventario.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID toma el primer bloque de un UUID como número de acta legible.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
