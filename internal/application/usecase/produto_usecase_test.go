package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfmachado/controle-trocas/internal/application/dto"
	"github.com/rfmachado/controle-trocas/internal/domain"
)

func TestProdutoCreate(t *testing.T) {
	uc := NewProdutoUseCase(newFakeProdutoRepo())

	t.Run("cria com medida opcional", func(t *testing.T) {
		p, err := uc.Create(dto.CreateProdutoRequest{Codigo: "P-001", Descricao: "Parafuso"})
		require.NoError(t, err)
		assert.Equal(t, "P-001", p.Codigo)
		assert.Nil(t, p.Medida)
	})

	t.Run("rejeita obrigatorios ausentes", func(t *testing.T) {
		_, err := uc.Create(dto.CreateProdutoRequest{Codigo: "P-002"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("codigo repetido devolve duplicata", func(t *testing.T) {
		_, err := uc.Create(dto.CreateProdutoRequest{Codigo: "P-001", Descricao: "Outro"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestProdutoUpsert(t *testing.T) {
	uc := NewProdutoUseCase(newFakeProdutoRepo())

	p1, created, err := uc.Upsert("P-010", "Porca", nil)
	require.NoError(t, err)
	assert.True(t, created)

	medida := "CX"
	p2, created, err := uc.Upsert("P-010", "Porca sextavada", &medida)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Equal(t, "Porca sextavada", p2.Descricao)
	require.NotNil(t, p2.Medida)
	assert.Equal(t, "CX", *p2.Medida)
}

func TestProdutoSearch(t *testing.T) {
	uc := NewProdutoUseCase(newFakeProdutoRepo())
	_, err := uc.Create(dto.CreateProdutoRequest{Codigo: "ABC-1", Descricao: "Martelo"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProdutoRequest{Codigo: "ABC-2", Descricao: "Alicate"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProdutoRequest{Codigo: "XYZ-1", Descricao: "Chave de fenda"})
	require.NoError(t, err)

	t.Run("busca por substring do codigo", func(t *testing.T) {
		items, err := uc.Search("ABC")
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("busca por substring da descricao", func(t *testing.T) {
		items, err := uc.Search("fenda")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "XYZ-1", items[0].Codigo)
	})

	t.Run("case-sensitive", func(t *testing.T) {
		items, err := uc.Search("martelo")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("query vazia lista ordenado por descricao", func(t *testing.T) {
		items, err := uc.Search("")
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Alicate", items[0].Descricao)
	})
}

func TestProdutoSearchLimite(t *testing.T) {
	uc := NewProdutoUseCase(newFakeProdutoRepo())
	for i := 0; i < searchLimit+10; i++ {
		_, err := uc.Create(dto.CreateProdutoRequest{
			Codigo:    fmt.Sprintf("P-%03d", i),
			Descricao: fmt.Sprintf("Produto %03d", i),
		})
		require.NoError(t, err)
	}

	items, err := uc.Search("")
	require.NoError(t, err)
	assert.Len(t, items, searchLimit)
}

func TestProdutoGetByCodigo(t *testing.T) {
	uc := NewProdutoUseCase(newFakeProdutoRepo())
	_, err := uc.Create(dto.CreateProdutoRequest{Codigo: "P-777", Descricao: "Existente"})
	require.NoError(t, err)

	p, err := uc.GetByCodigo("P-777")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Existente", p.Descricao)

	p, err = uc.GetByCodigo("inexistente")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProdutoDelete(t *testing.T) {
	uc := NewProdutoUseCase(newFakeProdutoRepo())
	p, err := uc.Create(dto.CreateProdutoRequest{Codigo: "P-DEL", Descricao: "Para excluir"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(p.ID))
	assert.ErrorIs(t, uc.Delete(p.ID), domain.ErrNotFound)
}
