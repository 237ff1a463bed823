// Package pdf implementa la generación del kardex (tarjeta de existencias)
// de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: KARDEX DE PRODUCTO  │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: Nombre + SKU + Precio + Stock actual/mínimo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cant. | Delta | Saldo | Responsable  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de movimientos listados                         │
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

	"github.com/sclconsulting/inventario-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPositive = &props.Color{Red: 0, Green: 120, Blue: 60}
	colorNegative = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// KardexGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type KardexGenerator struct{}

// NewKardexGenerator construye el generador.
func NewKardexGenerator() *KardexGenerator { return &KardexGenerator{} }

// GenerateKardexPDF genera el PDF y devuelve sus bytes. movements viene del
// más reciente al más antiguo; el saldo por fila se reconstruye hacia atrás
// partiendo del stock actual del producto.
func (g *KardexGenerator) GenerateKardexPDF(
	_ context.Context,
	product *entity.Product,
	movements []*entity.MovementDetail,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de Producto", true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de movimientos
	m.AddRows(tableHeaderRow())
	for _, r := range tableMovementRows(product, movements) {
		m.AddRows(r)
	}

	// Pie
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(movements)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión (der).
func headerRow(product *entity.Product) core.Row {
	emitido := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("KARDEX DE PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(product.Name, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TARJETA DE EXISTENCIAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+emitido, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// productRow: identificación y niveles de stock del producto.
func productRow(product *entity.Product) core.Row {
	stockColor := colorPositive
	if product.Stock <= product.StockMin {
		stockColor = colorNegative
	}

	return row.New(14).Add(
		col.New(8).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("SKU: %s   |   N° Serie: %s   |   Precio: $%s",
				nonEmptyPtr(product.SKU, "—"),
				nonEmptyPtr(product.SerialNumber, "—"),
				product.Price.StringFixed(2),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Stock actual: %d", product.Stock), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: stockColor, Top: 1,
			}),
			text.New(fmt.Sprintf("Stock mínimo: %d", product.StockMin), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo de movimiento", 4, align.Left),
		h("Cant.", 1, align.Right),
		h("Delta", 1, align.Right),
		h("Saldo", 1, align.Right),
		h("Responsable", 3, align.Left),
	)
}

// tableMovementRows: una fila por movimiento, más reciente primero. El saldo
// de la fila más reciente es el stock actual; cada fila anterior se obtiene
// restando el delta de la fila que la sigue en el tiempo.
func tableMovementRows(product *entity.Product, movements []*entity.MovementDetail) []core.Row {
	result := make([]core.Row, 0, len(movements))

	balance := product.Stock
	for _, mv := range movements {
		delta := entity.DeltaFor(mv.Type, mv.Quantity)

		deltaColor := colorGray
		deltaText := "0"
		switch {
		case delta > 0:
			deltaColor = colorPositive
			deltaText = fmt.Sprintf("+%d", delta)
		case delta < 0:
			deltaColor = colorNegative
			deltaText = fmt.Sprintf("%d", delta)
		}

		responsable := "—"
		if mv.Responsible != nil {
			responsable = mv.Responsible.Username
		}

		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				mv.Date.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				mv.Type,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", mv.Quantity),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				deltaText,
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1, Color: deltaColor},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", balance),
				props.Text{Style: fontstyle.Bold, Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				responsable,
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
		))

		balance -= delta
	}

	return result
}

// footerRow: resumen del listado.
func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Movimientos listados: %d. Documento generado automáticamente como soporte de inventario.", count),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmptyPtr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
