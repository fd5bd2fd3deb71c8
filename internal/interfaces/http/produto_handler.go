package http

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/rfmachado/controle-trocas/internal/application/dto"
	"github.com/rfmachado/controle-trocas/internal/application/usecase"
)

const msgProdutoNaoEncontrado = "Produto não encontrado"

// ProdutoHandler atende as rotas do catálogo de produtos.
type ProdutoHandler struct {
	uc       *usecase.ProdutoUseCase
	importUC *usecase.ImportUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase, importUC *usecase.ImportUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, importUC: importUC}
}

// Search godoc
// @Summary      Buscar produtos por substring de código ou descrição
// @Tags         produtos
// @Produce      json
// @Param        search  query  string  false  "Substring; vazio lista as 50 primeiras"
// @Success      200  {object}  dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Search(c *fiber.Ctx) error {
	produtos, err := h.uc.Search(c.Query("search"))
	if err != nil {
		return respondError(c, err, "", msgProdutoNaoEncontrado)
	}
	return c.JSON(dto.ProdutoListResponse{Success: true, Data: produtos})
}

// GetByCodigo godoc
// @Summary      Buscar um produto pelo código
// @Tags         produtos
// @Produce      json
// @Param        codigo  path  string  true  "Código de negócio"
// @Success      200  {object}  dto.ProdutoDataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{codigo} [get]
func (h *ProdutoHandler) GetByCodigo(c *fiber.Ctx) error {
	produto, err := h.uc.GetByCodigo(c.Params("codigo"))
	if err != nil {
		return respondError(c, err, "", msgProdutoNaoEncontrado)
	}
	if produto == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Erro(msgProdutoNaoEncontrado))
	}
	return c.JSON(dto.ProdutoDataResponse{Success: true, Data: *produto})
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("Corpo da requisição inválido"))
	}
	produto, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, "Campos obrigatórios: codigo, descricao", msgProdutoNaoEncontrado)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProdutoDataResponse{
		Success: true,
		Data:    *produto,
		Message: "Produto criado com sucesso",
	})
}

// Import godoc
// @Summary      Importar catálogo de planilha (.xlsx, .xls ou .csv)
// @Tags         produtos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilha"
// @Success      200   {object}  dto.ImportProdutosResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos/import [post]
func (h *ProdutoHandler) Import(c *fiber.Ctx) error {
	return comUpload(c, func(filename string, f *os.File) (any, error) {
		out, err := h.importUC.ImportarProdutos(filename, f)
		if err != nil {
			return nil, err
		}
		return dto.ImportProdutosResponse{
			Success:       true,
			Message:       fmt.Sprintf("%d produtos importados, %d atualizados", out.ImportedCount, out.UpdatedCount),
			ImportedCount: out.ImportedCount,
			UpdatedCount:  out.UpdatedCount,
			Errors:        out.Errors,
		}, nil
	})
}

// Delete godoc
// @Summary      Excluir produto
// @Tags         produtos
// @Produce      json
// @Param        id  path  int  true  "ID do produto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("ID inválido"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err, "", msgProdutoNaoEncontrado)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Produto excluído com sucesso"})
}
