package usecase

import (
	"time"

	"github.com/rfmachado/controle-trocas/internal/application/dto"
	"github.com/rfmachado/controle-trocas/internal/domain"
	"github.com/rfmachado/controle-trocas/internal/domain/entity"
	"github.com/rfmachado/controle-trocas/internal/domain/repository"
)

// Máximo de linhas devolvidas pela busca do catálogo.
const searchLimit = 50

// ProdutoUseCase casos de uso do catálogo de produtos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Search busca por substring em codigo ou descricao (case-sensitive),
// ordenado por descricao, limitado a 50 linhas. Query vazia lista as 50
// primeiras.
func (uc *ProdutoUseCase) Search(query string) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.repo.Search(query, searchLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		items = append(items, *toProdutoResponse(p))
	}
	return items, nil
}

// GetByCodigo busca um produto pelo código de negócio. Devolve nil se não existir.
func (uc *ProdutoUseCase) GetByCodigo(codigo string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return toProdutoResponse(produto), nil
}

// Create cria um produto. Codigo e descricao são obrigatórios; codigo repetido
// devolve ErrDuplicate.
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Codigo == "" || in.Descricao == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	produto := &entity.Produto{
		Codigo:    in.Codigo,
		Descricao: in.Descricao,
		Medida:    optional(in.Medida),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// Upsert insere ou mescla pelo codigo: se já existir, sobrescreve descricao e
// medida no lugar (codigo intocado) e devolve created=false. É a operação da
// importação em massa — nunca falha por duplicata.
func (uc *ProdutoUseCase) Upsert(codigo, descricao string, medida *string) (*dto.ProdutoResponse, bool, error) {
	existente, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, false, err
	}

	if existente != nil {
		existente.Descricao = descricao
		existente.Medida = medida
		existente.UpdatedAt = time.Now()
		if err := uc.repo.Update(existente); err != nil {
			return nil, false, err
		}
		return toProdutoResponse(existente), false, nil
	}

	now := time.Now()
	produto := &entity.Produto{
		Codigo:    codigo,
		Descricao: descricao,
		Medida:    medida,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, false, err
	}
	return toProdutoResponse(produto), true, nil
}

// Delete remove um produto por ID.
func (uc *ProdutoUseCase) Delete(id int64) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:        p.ID,
		Codigo:    p.Codigo,
		Descricao: p.Descricao,
		Medida:    p.Medida,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
