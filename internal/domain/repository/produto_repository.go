package repository

import "github.com/rfmachado/controle-trocas/internal/domain/entity"

// ProdutoRepository define o porte de persistência para Produto.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id int64) (*entity.Produto, error)
	GetByCodigo(codigo string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	// Search busca por substring (case-sensitive) em codigo OU descricao,
	// ordenado por descricao ascendente, limitado a limit linhas. Query vazia
	// devolve as primeiras limit linhas.
	Search(query string, limit int) ([]*entity.Produto, error)
	Delete(id int64) error
}
