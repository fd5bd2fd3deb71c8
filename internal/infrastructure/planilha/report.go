package planilha

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Relatório de Notas Fiscais"

// Larguras por coluna do relatório, na ordem fixa das colunas.
var colWidths = []float64{15, 20, 30, 15, 12, 12, 15, 18, 18, 18, 20}

// ReportWriter gera o relatório .xlsx com cabeçalho em negrito e sombreado.
type ReportWriter struct{}

// NewReportWriter constrói o gerador do relatório.
func NewReportWriter() *ReportWriter { return &ReportWriter{} }

// Gerar monta a planilha com a linha de cabeçalho estilizada seguida de uma
// linha por registro, e devolve os bytes do arquivo.
func (*ReportWriter) Gerar(cabecalhos []string, linhas [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("renomear aba: %w", err)
	}

	for i, w := range colWidths {
		if i >= len(cabecalhos) {
			break
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(reportSheet, col, col, w); err != nil {
			return nil, fmt.Errorf("largura de coluna: %w", err)
		}
	}

	header := make([]any, len(cabecalhos))
	for i, h := range cabecalhos {
		header[i] = h
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("cabeçalho: %w", err)
	}

	// Cabeçalho em negrito com fundo cinza
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo do cabeçalho: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(cabecalhos))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(reportSheet, "A1", lastCol+"1", style); err != nil {
		return nil, fmt.Errorf("aplicar estilo: %w", err)
	}

	for i, linha := range linhas {
		row := make([]any, len(linha))
		for j, v := range linha {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("linha %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("gravar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
