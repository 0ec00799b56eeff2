// Package pdf genera el extracto de cuenta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio  │  Cuenta + Categoría + Fecha de emisión   │
//	│  ───────────────────────────────────────────────────────────│
//	│  TABLA: Fecha | Tipo | Descripción | Monto                   │
//	│  ───────────────────────────────────────────────────────────│
//	│  TOTALES: Saldo inicial / Movimientos / Saldo actual         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/negocio-api/internal/application/ledger"
	"github.com/jhoicas/negocio-api/internal/domain/entity"
	"github.com/jhoicas/negocio-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

var _ ledger.StatementGenerator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa ledger.StatementGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatement genera el PDF del extracto y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatement(
	business *entity.Business,
	account *entity.Account,
	category *entity.AccountCategory,
	transactions []*entity.Transaction,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extracto de cuenta", true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, account, category))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(transactions) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(account))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar extracto: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: negocio (izq) y cuenta + categoría + fecha de emisión (der).
func headerRow(business *entity.Business, account *entity.Account, category *entity.AccountCategory) core.Row {
	categoryName := ""
	if category != nil {
		categoryName = category.Name
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Extracto de cuenta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(account.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(categoryName, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
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
		h("Tipo", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("Monto", 3, align.Right),
	)
}

// tableRows: una fila por movimiento; los egresos van en rojo con signo.
func tableRows(transactions []*entity.Transaction) []core.Row {
	result := make([]core.Row, 0, len(transactions))
	for _, t := range transactions {
		amount := "$" + money.FromCents(t.Amount)
		amountColor := colorPrimary
		if t.Type == entity.TransactionExpense {
			amount = "-" + amount
			amountColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				t.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				t.Type,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(5).Add(text.New(
				t.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				amount,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor},
			)),
		))
	}
	return result
}

// totalsRow: saldo inicial, movimientos y saldo actual alineados a la derecha.
func totalsRow(account *entity.Account) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	movements := account.CurrentBalance - account.InitialBalance
	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Saldo inicial:"),
			label("Movimientos:"),
			grandLabel("SALDO ACTUAL:"),
		),
		col.New(4).Add(
			value("$"+money.FromCents(account.InitialBalance)),
			value("$"+money.FromCents(movements)),
			grandValue("$"+money.FromCents(account.CurrentBalance)),
		),
		col.New(1),
	)
}
