package usecase

import "io"

// RowReader porta da fonte tabular: devolve uma linha por registro, chaveada
// pelos cabeçalhos da primeira linha do arquivo.
type RowReader interface {
	LerLinhas(filename string, r io.Reader) ([]map[string]string, error)
}

// RelatorioWriter porta do gerador do artefato de relatório (xlsx, pdf).
type RelatorioWriter interface {
	Gerar(cabecalhos []string, linhas [][]string) ([]byte, error)
}
