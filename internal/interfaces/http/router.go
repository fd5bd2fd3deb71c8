package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rfmachado/controle-trocas/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	NotaFiscalUC *usecase.NotaFiscalUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	ImportUC     *usecase.ImportUseCase
	ExportUC     *usecase.ExportUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Notas fiscais. As rotas fixas vêm antes de /:id para não serem
	// capturadas pelo parâmetro.
	notas := api.Group("/notas-fiscais")
	notaHandler := NewNotaFiscalHandler(deps.NotaFiscalUC, deps.ImportUC, deps.ExportUC)
	notas.Get("/stats", notaHandler.Stats)
	notas.Post("/import", notaHandler.Import)
	notas.Get("/export", notaHandler.Export)
	notas.Get("/export-pdf", notaHandler.ExportPDF)
	notas.Get("/", notaHandler.List)
	notas.Post("/", notaHandler.Create)
	notas.Put("/:id", notaHandler.Update)
	notas.Delete("/:id", notaHandler.Delete)

	// Catálogo de produtos. /import antes de /:codigo pela mesma razão.
	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.ImportUC)
	produtos.Post("/import", produtoHandler.Import)
	produtos.Get("/", produtoHandler.Search)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/:codigo", produtoHandler.GetByCodigo)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Baixa do consignado (operação dedicada, fora do PUT de notas)
	consignadoHandler := NewConsignadoHandler(deps.NotaFiscalUC)
	api.Put("/baixar-consignado/:id", consignadoHandler.Baixar)
}
