package usecase

import "strings"

// Aliases de cabeçalho por campo canônico da importação. Planilhas chegam de
// sistemas distintos com variações de acento e caixa; cada lista é tentada em
// ordem e vence o primeiro alias presente com valor não vazio.
var (
	colDataAbertura = []string{"DATA DA ABERTURA", "DATA ABERTURA", "data da abertura"}
	colCodigoNota   = []string{"CODIGO DO PRODUTO", "CÓDIGO DO PRODUTO", "CODIGO", "CÓDIGO", "codigo"}
	colDescricao    = []string{"DESCRICAO", "DESCRIÇÃO", "descricao"}
	colMedida       = []string{"MEDIDA", "medida"}
	colStatus       = []string{"TROCADO OU DEVOLVIDO", "STATUS", "status"}
	colNumeroTroca  = []string{"n° da TROCA", "N° DA TROCA", "Nº DA TROCA", "NUMERO DA TROCA"}
	colDataTrocaDev = []string{"DATA DA TROCA/DEVOLUÇÃO", "DATA DA TROCA/DEVOLUCAO"}
	colNfTrocaDev   = []string{"NF DA TROCA/NF DA DEVOLUÇÃO", "NF DA TROCA/NF DA DEVOLUCAO"}

	colCodigoProduto = []string{"CODIGO", "CÓDIGO", "CODIGO DO PRODUTO", "codigo"}
)

// valorColuna devolve o primeiro valor não vazio entre os aliases, com
// espaços aparados, ou "" se nenhum estiver presente.
func valorColuna(row map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v := strings.TrimSpace(row[alias]); v != "" {
			return v
		}
	}
	return ""
}
