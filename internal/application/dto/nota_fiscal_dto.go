package dto

import "time"

// CreateNotaFiscalRequest entrada para criar uma nota fiscal. Datas em
// DD/MM/AAAA; campos opcionais vazios são gravados como nulos.
type CreateNotaFiscalRequest struct {
	DataAbertura       string `json:"data_abertura"`
	CodigoProduto      string `json:"codigo_produto"`
	Descricao          string `json:"descricao"`
	Medida             string `json:"medida"`
	Tipo               string `json:"tipo"`
	Status             string `json:"status"`
	NumeroTroca        string `json:"numero_troca"`
	NumeroOcorrencia   string `json:"numero_ocorrencia"`
	DataTrocaDevolucao string `json:"data_troca_devolucao"`
	NfTrocaDevolucao   string `json:"nf_troca_devolucao"`
	BaixadoConsignado  string `json:"baixado_consignado"`
}

// UpdateNotaFiscalRequest entrada para atualização parcial. Ponteiro nulo
// mantém o valor armazenado; campo presente (mesmo vazio) sobrescreve —
// vazio limpa os opcionais e é rejeitado nos obrigatórios. Não aceita tipo
// nem baixado_consignado (este tem operação dedicada).
type UpdateNotaFiscalRequest struct {
	DataAbertura       *string `json:"data_abertura"`
	CodigoProduto      *string `json:"codigo_produto"`
	Descricao          *string `json:"descricao"`
	Medida             *string `json:"medida"`
	Status             *string `json:"status"`
	NumeroTroca        *string `json:"numero_troca"`
	DataTrocaDevolucao *string `json:"data_troca_devolucao"`
	NfTrocaDevolucao   *string `json:"nf_troca_devolucao"`
}

// NotaFiscalResponse saída de uma nota fiscal, datas em DD/MM/AAAA.
type NotaFiscalResponse struct {
	ID                 int64     `json:"id"`
	DataAbertura       string    `json:"data_abertura"`
	CodigoProduto      string    `json:"codigo_produto"`
	Descricao          string    `json:"descricao"`
	Medida             *string   `json:"medida"`
	Tipo               string    `json:"tipo"`
	Status             string    `json:"status"`
	NumeroTroca        *string   `json:"numero_troca"`
	NumeroOcorrencia   *string   `json:"numero_ocorrencia"`
	DataTrocaDevolucao *string   `json:"data_troca_devolucao"`
	NfTrocaDevolucao   *string   `json:"nf_troca_devolucao"`
	BaixadoConsignado  string    `json:"baixado_consignado"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NotaFiscalListResponse listagem com total.
type NotaFiscalListResponse struct {
	Success bool                 `json:"success"`
	Data    []NotaFiscalResponse `json:"data"`
	Total   int                  `json:"total"`
}

// NotaFiscalDataResponse envelope de uma nota com mensagem opcional.
type NotaFiscalDataResponse struct {
	Success bool               `json:"success"`
	Data    NotaFiscalResponse `json:"data"`
	Message string             `json:"message,omitempty"`
}

// StatsData contagens agregadas.
type StatsData struct {
	Total      int64 `json:"total"`
	Trocados   int64 `json:"trocados"`
	Devolvidos int64 `json:"devolvidos"`
}

// StatsResponse envelope das estatísticas.
type StatsResponse struct {
	Success bool      `json:"success"`
	Data    StatsData `json:"data"`
}

// ImportNotasResult resultado da importação de notas fiscais. Linhas
// duplicadas silenciosas não contam como importadas nem como erros.
type ImportNotasResult struct {
	ImportedCount int
	Errors        []string
}

// ImportNotasResponse envelope da importação de notas.
type ImportNotasResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	ImportedCount int      `json:"imported_count"`
	Errors        []string `json:"errors"`
}

// ConsignadoData payload da operação dedicada de baixa do consignado.
type ConsignadoData struct {
	ID                int64  `json:"id"`
	BaixadoConsignado string `json:"baixado_consignado"`
}

// ConsignadoResponse envelope da baixa do consignado.
type ConsignadoResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    ConsignadoData `json:"data"`
}
