package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rfmachado/controle-trocas/internal/domain"
	"github.com/rfmachado/controle-trocas/internal/domain/entity"
	"github.com/rfmachado/controle-trocas/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porte ProdutoRepository sobre PostgreSQL.
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto e preenche o ID gerado.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (codigo, descricao, medida, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		produto.Codigo, produto.Descricao, produto.Medida, produto.CreatedAt, produto.UpdatedAt,
	).Scan(&produto.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. Devolve nil se não existir.
func (r *ProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	query := `SELECT id, codigo, descricao, medida, created_at, updated_at FROM produtos WHERE id = $1`
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Codigo, &p.Descricao, &p.Medida, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// GetByCodigo obtém um produto pelo código de negócio. Devolve nil se não existir.
func (r *ProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	query := `SELECT id, codigo, descricao, medida, created_at, updated_at FROM produtos WHERE codigo = $1`
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&p.ID, &p.Codigo, &p.Descricao, &p.Medida, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto por codigo: %w", err)
	}
	return &p, nil
}

// Update atualiza descricao e medida do produto. Codigo é imutável.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `UPDATE produtos SET descricao = $2, medida = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Descricao, produto.Medida, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Search busca por substring em codigo OU descricao, ordenado por descricao.
// LIKE no PostgreSQL é case-sensitive, como a busca do catálogo exige.
func (r *ProdutoRepo) Search(query string, limit int) ([]*entity.Produto, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if query == "" {
		rows, err = r.q.Query(context.Background(),
			`SELECT id, codigo, descricao, medida, created_at, updated_at
			FROM produtos ORDER BY descricao ASC LIMIT $1`, limit)
	} else {
		pattern := "%" + query + "%"
		rows, err = r.q.Query(context.Background(),
			`SELECT id, codigo, descricao, medida, created_at, updated_at
			FROM produtos WHERE codigo LIKE $1 OR descricao LIKE $1
			ORDER BY descricao ASC LIMIT $2`, pattern, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("search produtos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Descricao, &p.Medida, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove um produto por ID.
func (r *ProdutoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
