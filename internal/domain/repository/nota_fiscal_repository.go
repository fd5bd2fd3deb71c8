package repository

import "github.com/rfmachado/controle-trocas/internal/domain/entity"

// NotaFiscalFilter filtros conjuntivos do listado (campos vazios são ignorados).
// Status e BaixadoConsignado comparam por igualdade exata (já normalizados em
// maiúsculas pela camada de aplicação); CodigoProduto compara por substring;
// DataInicio/DataFim são limites inclusivos sobre DataAbertura (ISO), podendo
// vir isolados para intervalo aberto.
type NotaFiscalFilter struct {
	Status            string
	CodigoProduto     string
	BaixadoConsignado string
	DataInicio        string
	DataFim           string
}

// NotaFiscalStats contagens agregadas por status.
type NotaFiscalStats struct {
	Total      int64
	Trocados   int64
	Devolvidos int64
}

// NotaFiscalRepository define o porte de persistência para NotaFiscal.
type NotaFiscalRepository interface {
	Create(nota *entity.NotaFiscal) error
	GetByID(id int64) (*entity.NotaFiscal, error)
	// List devolve as notas do filtro ordenadas por DataAbertura decrescente,
	// com desempate estável pela ordem de inserção.
	List(filter NotaFiscalFilter) ([]*entity.NotaFiscal, error)
	Update(nota *entity.NotaFiscal) error
	Delete(id int64) error
	// ExistsDuplicada verifica se já existe registro com o mesmo par
	// (codigoProduto, numeroTroca), tratando numeroTroca nulo como igual a nulo.
	ExistsDuplicada(codigoProduto string, numeroTroca *string) (bool, error)
	Stats() (NotaFiscalStats, error)
}
