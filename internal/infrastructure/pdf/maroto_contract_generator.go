// Package pdf implementa la generación del contrato de arrendamiento
// ("Mkataba wa Ukodishaji") en suajili, el idioma de los contratos del negocio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Mkataba wa Ukodishaji                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTES: Mwenye Nyumba (arrendador) / Mpangaji (inquilino)  │
//	│  MALI: dirección de la propiedad + unidad                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MASHARTI: 5 cláusulas (plazo, renta TZS, pago, uso, daños) │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SAINI: líneas de firma de ambas partes                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// nombre del arrendador en todos los contratos
const landlordName = "Chino Property Management"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoContractGenerator implementa contracts.ContractPDFGenerator usando Maroto v2.
type MarotoContractGenerator struct {
	printer *message.Printer
}

// NewMarotoContractGenerator construye el generador. Los montos se formatean
// con agrupación de miles según el locale suajili.
func NewMarotoContractGenerator() *MarotoContractGenerator {
	return &MarotoContractGenerator{printer: message.NewPrinter(language.Swahili)}
}

// GenerateContractPDF genera el PDF del contrato y devuelve sus bytes.
func (g *MarotoContractGenerator) GenerateContractPDF(
	_ context.Context,
	contract *repository.LeaseContract,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Mkataba wa Ukodishaji", true).
		WithAuthor(landlordName, true).
		Build()

	m := maroto.New(cfg)

	// Título y fecha de emisión
	m.AddRows(titleRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Partes y mali
	m.AddRows(partiesRows(contract)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	// Masharti
	m.AddRows(termsRows(g.printer, contract)...)

	// Saini
	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow() core.Row {
	issued := time.Now().Format("02/01/2006")
	return row.New(20).Add(
		col.New(12).Add(
			text.New("Mkataba wa Ukodishaji", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
			text.New("Mkataba huu umefanywa tarehe "+issued+" kati ya:", props.Text{
				Size: 10, Align: align.Center, Top: 13,
			}),
		),
	)
}

// partiesRows: arrendador, inquilino y la mali arrendada.
func partiesRows(c *repository.LeaseContract) []core.Row {
	labeled := func(label, value string) core.Row {
		return row.New(8).Add(
			col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
			col.New(8).Add(text.New(value, props.Text{Size: 10, Top: 1})),
		)
	}
	return []core.Row{
		labeled("Mwenye Nyumba:", landlordName),
		labeled("Mpangaji:", c.TenantName),
		labeled("Anwani ya Mali:", c.PropertyAddress),
		labeled("Nambari ya Nyumba/Chumba:", c.UnitName),
	}
}

// termsRows: las 5 cláusulas fijas del contrato.
func termsRows(p *message.Printer, c *repository.LeaseContract) []core.Row {
	rentF, _ := c.RentAmount.Round(2).Float64()
	rent := p.Sprintf("%v", number.Decimal(rentF,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	terms := []string{
		fmt.Sprintf("Muda wa ukodishaji ni kuanzia tarehe %s hadi tarehe %s.",
			c.LeaseStart.Format("02/01/2006"), c.LeaseEnd.Format("02/01/2006")),
		fmt.Sprintf("Kodi ya pango ni TZS %s kwa mwezi.", rent),
		"Malipo ya kodi yatafanywa kila mwezi kabla ya tarehe 5.",
		"Mpangaji atatumia mali kwa makazi tu.",
		"Uharibifu wowote utakaosababishwa na mpangaji utarekebishwa kwa gharama za mpangaji.",
	}

	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Masharti ya Ukodishaji:", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	for i, t := range terms {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", i+1, t), props.Text{Size: 10, Top: 1}),
		)))
	}
	return rows
}

// signatureRows: líneas de firma de ambas partes.
func signatureRows() []core.Row {
	sig := func(party string) []core.Row {
		return []core.Row{
			row.New(10).Add(col.New(6).Add(
				text.New("_________________________", props.Text{Size: 10, Top: 4}),
			)),
			row.New(6).Add(col.New(6).Add(
				text.New(party, props.Text{Size: 10, Color: colorGray}),
			)),
		}
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Saini:", props.Text{Style: fontstyle.Bold, Size: 11}),
		)),
	}
	rows = append(rows, sig("Mwenye Nyumba")...)
	rows = append(rows, sig("Mpangaji")...)
	return rows
}
