package dto

import "time"

// CreateProdutoRequest entrada para criar um produto.
type CreateProdutoRequest struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
	Medida    string `json:"medida"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID        int64     `json:"id"`
	Codigo    string    `json:"codigo"`
	Descricao string    `json:"descricao"`
	Medida    *string   `json:"medida"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProdutoListResponse listagem do catálogo (limitada a 50 linhas).
type ProdutoListResponse struct {
	Success bool              `json:"success"`
	Data    []ProdutoResponse `json:"data"`
}

// ProdutoDataResponse envelope de um produto com mensagem opcional.
type ProdutoDataResponse struct {
	Success bool            `json:"success"`
	Data    ProdutoResponse `json:"data"`
	Message string          `json:"message,omitempty"`
}

// ImportProdutosResult resultado da importação de produtos.
type ImportProdutosResult struct {
	ImportedCount int
	UpdatedCount  int
	Errors        []string
}

// ImportProdutosResponse envelope da importação de produtos.
type ImportProdutosResponse struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	ImportedCount int      `json:"imported_count"`
	UpdatedCount  int      `json:"updated_count"`
	Errors        []string `json:"errors"`
}
