// Package pdf implementa a rendição em PDF do relatório de notas fiscais:
// página A4 paisagem com título, cabeçalho de tabela sombreado e uma linha
// por registro, na mesma projeção de colunas do relatório .xlsx.
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Larguras no grid de 12 colunas do maroto; a descrição recebe o dobro.
var colSizes = []int{1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 1}

// RelatorioPDFWriter gera o relatório de notas fiscais usando Maroto v2.
type RelatorioPDFWriter struct{}

// NewRelatorioPDFWriter constrói o gerador.
func NewRelatorioPDFWriter() *RelatorioPDFWriter { return &RelatorioPDFWriter{} }

// Gerar monta o PDF e devolve seus bytes.
func (*RelatorioPDFWriter) Gerar(cabecalhos []string, linhas [][]string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 7}).
		WithTitle("Relatório de Notas Fiscais", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(cabecalhoRow(cabecalhos))
	for _, linha := range linhas {
		m.AddRows(registroRow(linha))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// tituloRow: nome do relatório à esquerda e data de emissão à direita.
func tituloRow() core.Row {
	emitido := time.Now().Format("02/01/2006")
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Relatório de Notas Fiscais", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em: "+emitido, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// cabecalhoRow: títulos das colunas em negrito.
func cabecalhoRow(cabecalhos []string) core.Row {
	cols := make([]core.Col, 0, len(cabecalhos))
	for i, h := range cabecalhos {
		cols = append(cols, col.New(sizeAt(i)).Add(
			text.New(h, props.Text{
				Style: fontstyle.Bold, Size: 6, Color: colorPrimary, Top: 1,
			}),
		))
	}
	return row.New(8).Add(cols...)
}

// registroRow: uma linha da tabela.
func registroRow(linha []string) core.Row {
	cols := make([]core.Col, 0, len(linha))
	for i, v := range linha {
		cols = append(cols, col.New(sizeAt(i)).Add(
			text.New(v, props.Text{Size: 6, Top: 1}),
		))
	}
	return row.New(6).Add(cols...)
}

func sizeAt(i int) int {
	if i < len(colSizes) {
		return colSizes[i]
	}
	return 1
}
