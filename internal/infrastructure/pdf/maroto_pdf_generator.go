// Package pdf genera los documentos imprimibles del club con Maroto v2:
// la credencial del cliente y el listado de socios morosos.
//
// Credencial (A4, mitad superior):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  NOMBRE DEL CLUB                         │  SOCIO / NO SOCIO │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Nombre completo + DNI + N° carnet       │                   │
//	│  Estado + vencimiento de cuota           │        QR         │
//	│  Emitida el ...                          │                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
	"github.com/jhoicas/club-deportivo-api/internal/application/usecase"
	"github.com/jhoicas/club-deportivo-api/internal/domain/fecha"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var printer = message.NewPrinter(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ usecase.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// CredencialPDF genera el carnet del cliente con un QR que identifica al titular.
func (g *MarotoPDFGenerator) CredencialPDF(_ context.Context, club string, cred dto.CredencialResponse) ([]byte, error) {
	m := nuevoDocumento(club, "Credencial")

	m.AddRows(credencialHeaderRow(club, cred))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(credencialBodyRow(cred))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	return generate(m)
}

// MorososPDF genera el listado de socios con la cuota vencida.
func (g *MarotoPDFGenerator) MorososPDF(_ context.Context, club string, rep dto.ReporteMorososResponse) ([]byte, error) {
	m := nuevoDocumento(club, "Socios morosos")

	m.AddRows(reporteHeaderRow(club, rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tablaHeaderRow())
	for _, r := range tablaMorososRows(rep.Morosos) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de socios morosos: %d", rep.Total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		}),
	)))

	return generate(m)
}

func nuevoDocumento(club, titulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titulo, true).
		WithAuthor(nonEmpty(club, "Club"), true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Credencial ────────────────────────────────────────────────────────────────

func credencialHeaderRow(club string, cred dto.CredencialResponse) core.Row {
	tipo := "SOCIO"
	if cred.Tipo != "SOCIO" {
		tipo = "NO SOCIO"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(nonEmpty(club, "Club"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
			text.New("Credencial de acceso", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(tipo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 4,
			}),
		),
	)
}

func credencialBodyRow(cred dto.CredencialResponse) core.Row {
	estadoColor := colorGray
	if cred.Estado == "MOROSO" {
		estadoColor = colorAlerta
	}
	carnet := "—"
	if cred.NumeroCarnet > 0 {
		carnet = printer.Sprintf("%d", cred.NumeroCarnet)
	}

	return row.New(45).Add(
		col.New(8).Add(
			text.New(cred.NombreCompleto, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 3,
			}),
			text.New("DNI: "+formatDNI(cred.DNI), props.Text{Size: 10, Top: 12}),
			text.New("Carnet N°: "+carnet, props.Text{Size: 10, Top: 18}),
			text.New("Estado: "+cred.Estado, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 26, Color: estadoColor,
			}),
			text.New("Vencimiento de cuota: "+formatFecha(cred.FechaVencimiento), props.Text{
				Size: 9, Top: 32, Color: colorGray,
			}),
			text.New("Emitida el "+formatFecha(cred.FechaEmision), props.Text{
				Size: 7, Top: 39, Color: colorGray,
			}),
		),
		col.New(4).Add(code.NewQr(qrCredencial(cred), props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// qrCredencial contenido del QR: lo lee el control de acceso del club.
func qrCredencial(cred dto.CredencialResponse) string {
	return fmt.Sprintf("CLUB|%d|%d|%s|%s", cred.ClienteID, cred.DNI, cred.Tipo, cred.FechaVencimiento.String())
}

// ── Reporte de morosos ────────────────────────────────────────────────────────

func reporteHeaderRow(club string, rep dto.ReporteMorososResponse) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(nonEmpty(club, "Club"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Socios con cuota vencida", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Al "+formatFecha(rep.Fecha), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 4,
			}),
		),
	)
}

func tablaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Apellido y nombre", 4, align.Left),
		h("DNI", 2, align.Right),
		h("Teléfono", 2, align.Left),
		h("Venció", 2, align.Center),
		h("Días", 2, align.Right),
	)
}

// tablaMorososRows una fila por socio. Sin morosos se imprime una leyenda.
func tablaMorososRows(morosos []dto.MorosoResponse) []core.Row {
	if len(morosos) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("No hay socios con la cuota vencida.", props.Text{
				Size: 9, Align: align.Center, Top: 2, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(morosos))
	for _, m := range morosos {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(m.Apellido+", "+m.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatDNI(m.DNI), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(nonEmpty(m.Telefono, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatFecha(m.FechaVencimientoCuota), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", m.DiasAtraso), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAlerta,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDNI separa miles con punto. Ej: 30111222 → "30.111.222"
func formatDNI(dni int64) string {
	return printer.Sprintf("%d", dni)
}

// formatFecha dd/mm/aaaa; fechas ilegibles se imprimen tal cual.
func formatFecha(f fecha.Fecha) string {
	if !f.Valid {
		return nonEmpty(f.String(), "—")
	}
	return f.Time().Format("02/01/2006")
}
