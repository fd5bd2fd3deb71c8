package entity

import "time"

// Valores dos enums de NotaFiscal. A correlação entre Tipo e qual dos números
// (troca/ocorrência) está preenchido é convenção, não constraint: um registro
// pode ter tipo OCORRENCIA com NumeroTroca preenchido.
const (
	TipoTroca      = "TROCA"
	TipoOcorrencia = "OCORRENCIA"

	StatusTrocado   = "TROCADO"
	StatusDevolvido = "DEVOLVIDO"

	ConsignadoSim = "SIM"
	ConsignadoNao = "NAO"
)

// NotaFiscal registro de troca de produto ou ocorrência.
// As datas são strings ISO (AAAA-MM-DD) sem validação de calendário;
// CodigoProduto é referência textual livre, não chave estrangeira para Produto.
type NotaFiscal struct {
	ID                 int64
	DataAbertura       string // AAAA-MM-DD, obrigatória
	CodigoProduto      string
	Descricao          string
	Medida             *string
	Tipo               string // TROCA | OCORRENCIA
	Status             string // TROCADO | DEVOLVIDO
	NumeroTroca        *string
	NumeroOcorrencia   *string
	DataTrocaDevolucao *string // AAAA-MM-DD
	NfTrocaDevolucao   *string
	BaixadoConsignado  string // SIM | NAO, mutável apenas pela operação dedicada
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ValidStatus informa se s é um status reconhecido (já em maiúsculas).
func ValidStatus(s string) bool {
	return s == StatusTrocado || s == StatusDevolvido
}

// ValidTipo informa se t é um tipo reconhecido (já em maiúsculas).
func ValidTipo(t string) bool {
	return t == TipoTroca || t == TipoOcorrencia
}

// ValidConsignado informa se v é SIM ou NAO (já em maiúsculas).
func ValidConsignado(v string) bool {
	return v == ConsignadoSim || v == ConsignadoNao
}
