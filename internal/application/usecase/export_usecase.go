package usecase

import (
	"fmt"
	"time"

	"github.com/rfmachado/controle-trocas/internal/domain/entity"
	"github.com/rfmachado/controle-trocas/internal/domain/repository"
	"github.com/rfmachado/controle-trocas/pkg/dateconv"
)

// Colunas do relatório, em ordem fixa.
var relatorioCabecalhos = []string{
	"Data de Abertura",
	"Código do Produto",
	"Descrição",
	"Medida",
	"Tipo",
	"Status",
	"Nº da Troca",
	"Nº da Ocorrência",
	"Data Troca/Devolução",
	"NF Troca/Devolução",
	"Baixado do Consignado",
}

// ExportUseCase projeta as notas do filtro no relatório tabular, em .xlsx ou
// .pdf. Mesma semântica de filtro da listagem; sem paginação — todas as
// linhas saem em um único artefato.
type ExportUseCase struct {
	repo repository.NotaFiscalRepository
	xlsx RelatorioWriter
	pdf  RelatorioWriter
}

// NewExportUseCase constrói o caso de uso de exportação.
func NewExportUseCase(repo repository.NotaFiscalRepository, xlsx, pdf RelatorioWriter) *ExportUseCase {
	return &ExportUseCase{repo: repo, xlsx: xlsx, pdf: pdf}
}

// ExportarXLSX gera o relatório .xlsx e o nome de arquivo com a data corrente.
func (uc *ExportUseCase) ExportarXLSX(filter repository.NotaFiscalFilter) ([]byte, string, error) {
	return uc.exportar(filter, uc.xlsx, "xlsx")
}

// ExportarPDF gera a rendição em PDF do mesmo relatório.
func (uc *ExportUseCase) ExportarPDF(filter repository.NotaFiscalFilter) ([]byte, string, error) {
	return uc.exportar(filter, uc.pdf, "pdf")
}

func (uc *ExportUseCase) exportar(filter repository.NotaFiscalFilter, writer RelatorioWriter, ext string) ([]byte, string, error) {
	notas, err := uc.repo.List(normalizarFiltro(filter))
	if err != nil {
		return nil, "", err
	}

	artefato, err := writer.Gerar(relatorioCabecalhos, projetarLinhas(notas))
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("relatorio_notas_fiscais_%s.%s", time.Now().Format("2006-01-02"), ext)
	return artefato, filename, nil
}

// projetarLinhas converte as notas na projeção fixa do relatório, com as
// datas no formato de exibição e opcionais nulos como células vazias.
func projetarLinhas(notas []*entity.NotaFiscal) [][]string {
	linhas := make([][]string, 0, len(notas))
	for _, n := range notas {
		linhas = append(linhas, []string{
			dateconv.ToBR(n.DataAbertura),
			n.CodigoProduto,
			n.Descricao,
			deref(n.Medida),
			n.Tipo,
			n.Status,
			deref(n.NumeroTroca),
			deref(n.NumeroOcorrencia),
			dateconv.ToBR(deref(n.DataTrocaDevolucao)),
			deref(n.NfTrocaDevolucao),
			n.BaixadoConsignado,
		})
	}
	return linhas
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
