// Package pdf implementa la generación del comprobante de agendamiento en
// PDF (A4): cabecera de la clínica, datos del dueño, detalle del servicio
// y estado actual.
package pdf

import (
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

	"github.com/vetcare/petclinic-pro/internal/application/usecase"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 57}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.VoucherGenerator = (*MarotoVoucherGenerator)(nil)

// MarotoVoucherGenerator implementa usecase.VoucherGenerator usando Maroto v2.
type MarotoVoucherGenerator struct {
	clinicName string
}

// NewMarotoVoucherGenerator construye el generador.
func NewMarotoVoucherGenerator(clinicName string) *MarotoVoucherGenerator {
	return &MarotoVoucherGenerator{clinicName: clinicName}
}

// GenerateVoucher genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoVoucherGenerator) GenerateVoucher(schedule *entity.Schedule, pet *entity.Pet, owner *entity.User) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Agendamiento", true).
		WithAuthor(g.clinicName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.clinicName, schedule))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(ownerRow(owner))
	m.AddRows(petRow(pet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(serviceRow(schedule))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la clínica (izq), id del comprobante y fecha (der).
func headerRow(clinicName string, schedule *entity.Schedule) core.Row {
	fecha := schedule.Date.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(clinicName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de agendamiento", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("AGENDAMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(schedule.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// ownerRow: datos del dueño.
func ownerRow(owner *entity.User) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DUEÑO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Email: %s", owner.Name, owner.Email),
				props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

// petRow: datos de la mascota.
func petRow(pet *entity.Pet) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("MASCOTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(pet.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Especie: %s   |   Edad: %d años   |   Peso: %s kg",
				pet.Species, pet.Age, pet.Weight.StringFixed(1),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// serviceRow: servicio agendado y estado actual.
func serviceRow(schedule *entity.Schedule) core.Row {
	obs := schedule.Observations
	if obs == "" {
		obs = "—"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(schedule.Service, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
			text.New("Observaciones: "+obs, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("ESTADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(schedule.Status, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
		),
	)
}
