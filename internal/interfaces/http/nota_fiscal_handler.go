package http

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rfmachado/controle-trocas/internal/application/dto"
	"github.com/rfmachado/controle-trocas/internal/application/usecase"
	"github.com/rfmachado/controle-trocas/internal/domain/repository"
)

const (
	msgNotaNaoEncontrada  = "Nota fiscal não encontrada"
	msgCamposObrigatorios = "Campos obrigatórios: data_abertura, codigo_produto, descricao, status"
	msgUpdateInvalido     = "Campo obrigatório vazio ou data em formato inválido (use DD/MM/AAAA)"
	contentTypeXLSX       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// NotaFiscalHandler atende as rotas de notas fiscais, incluindo importação e
// exportação de planilhas.
type NotaFiscalHandler struct {
	uc       *usecase.NotaFiscalUseCase
	importUC *usecase.ImportUseCase
	exportUC *usecase.ExportUseCase
}

// NewNotaFiscalHandler constrói o handler.
func NewNotaFiscalHandler(uc *usecase.NotaFiscalUseCase, importUC *usecase.ImportUseCase, exportUC *usecase.ExportUseCase) *NotaFiscalHandler {
	return &NotaFiscalHandler{uc: uc, importUC: importUC, exportUC: exportUC}
}

// filterFromQuery monta o filtro conjuntivo a partir da query string.
func filterFromQuery(c *fiber.Ctx) repository.NotaFiscalFilter {
	return repository.NotaFiscalFilter{
		Status:            c.Query("status"),
		CodigoProduto:     c.Query("codigo_produto"),
		BaixadoConsignado: c.Query("baixado_consignado"),
		DataInicio:        c.Query("data_inicio"),
		DataFim:           c.Query("data_fim"),
	}
}

// List godoc
// @Summary      Listar notas fiscais com filtros
// @Tags         notas-fiscais
// @Produce      json
// @Param        status              query  string  false  "TROCADO ou DEVOLVIDO"
// @Param        codigo_produto      query  string  false  "Substring do código"
// @Param        data_inicio         query  string  false  "AAAA-MM-DD inclusivo"
// @Param        data_fim            query  string  false  "AAAA-MM-DD inclusivo"
// @Param        baixado_consignado  query  string  false  "SIM ou NAO"
// @Success      200  {object}  dto.NotaFiscalListResponse
// @Router       /api/notas-fiscais [get]
func (h *NotaFiscalHandler) List(c *fiber.Ctx) error {
	notas, err := h.uc.List(filterFromQuery(c))
	if err != nil {
		return respondError(c, err, "", msgNotaNaoEncontrada)
	}
	return c.JSON(dto.NotaFiscalListResponse{Success: true, Data: notas, Total: len(notas)})
}

// Create godoc
// @Summary      Criar nota fiscal
// @Tags         notas-fiscais
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNotaFiscalRequest  true  "Dados da nota"
// @Success      201   {object}  dto.NotaFiscalDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notas-fiscais [post]
func (h *NotaFiscalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNotaFiscalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("Corpo da requisição inválido"))
	}
	nota, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err, msgCamposObrigatorios, msgNotaNaoEncontrada)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NotaFiscalDataResponse{
		Success: true,
		Data:    *nota,
		Message: "Nota fiscal criada com sucesso",
	})
}

// Update godoc
// @Summary      Atualizar nota fiscal (não aceita tipo nem baixado_consignado)
// @Tags         notas-fiscais
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da nota"
// @Param        body  body  dto.UpdateNotaFiscalRequest  true  "Campos a sobrescrever"
// @Success      200   {object}  dto.NotaFiscalDataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/notas-fiscais/{id} [put]
func (h *NotaFiscalHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("ID inválido"))
	}
	var in dto.UpdateNotaFiscalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("Corpo da requisição inválido"))
	}
	nota, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err, msgUpdateInvalido, msgNotaNaoEncontrada)
	}
	return c.JSON(dto.NotaFiscalDataResponse{
		Success: true,
		Data:    *nota,
		Message: "Nota fiscal atualizada com sucesso",
	})
}

// Delete godoc
// @Summary      Excluir nota fiscal
// @Tags         notas-fiscais
// @Produce      json
// @Param        id  path  int  true  "ID da nota"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notas-fiscais/{id} [delete]
func (h *NotaFiscalHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("ID inválido"))
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err, "", msgNotaNaoEncontrada)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Nota fiscal excluída com sucesso"})
}

// Stats godoc
// @Summary      Estatísticas de notas fiscais
// @Tags         notas-fiscais
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/notas-fiscais/stats [get]
func (h *NotaFiscalHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return respondError(c, err, "", msgNotaNaoEncontrada)
	}
	return c.JSON(dto.StatsResponse{Success: true, Data: *stats})
}

// Import godoc
// @Summary      Importar notas fiscais de planilha (.xlsx, .xls ou .csv)
// @Tags         notas-fiscais
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilha"
// @Success      200   {object}  dto.ImportNotasResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/notas-fiscais/import [post]
func (h *NotaFiscalHandler) Import(c *fiber.Ctx) error {
	return comUpload(c, func(filename string, f *os.File) (any, error) {
		out, err := h.importUC.ImportarNotas(filename, f)
		if err != nil {
			return nil, err
		}
		return dto.ImportNotasResponse{
			Success:       true,
			Message:       fmt.Sprintf("%d registros importados com sucesso", out.ImportedCount),
			ImportedCount: out.ImportedCount,
			Errors:        out.Errors,
		}, nil
	})
}

// Export godoc
// @Summary      Exportar relatório .xlsx (mesmos filtros da listagem)
// @Tags         notas-fiscais
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/notas-fiscais/export [get]
func (h *NotaFiscalHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.exportUC.ExportarXLSX(filterFromQuery(c))
	if err != nil {
		return respondError(c, err, "", msgNotaNaoEncontrada)
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar relatório em PDF (mesmos filtros da listagem)
// @Tags         notas-fiscais
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/notas-fiscais/export-pdf [get]
func (h *NotaFiscalHandler) ExportPDF(c *fiber.Ctx) error {
	data, filename, err := h.exportUC.ExportarPDF(filterFromQuery(c))
	if err != nil {
		return respondError(c, err, "", msgNotaNaoEncontrada)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// comUpload grava o arquivo enviado sob nome temporário, executa fn e
// responde com o resultado. A remoção do temporário é garantida em sucesso
// e em falha.
func comUpload(c *fiber.Ctx, fn func(filename string, f *os.File) (any, error)) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("Nenhum arquivo foi enviado"))
	}

	tmpPath := filepath.Join(os.TempDir(), "upload-"+uuid.NewString()+strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		log.Error().Err(err).Msg("gravar upload temporário")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro(msgErroInterno))
	}
	defer os.Remove(tmpPath)

	f, err := os.Open(tmpPath)
	if err != nil {
		log.Error().Err(err).Msg("abrir upload temporário")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro(msgErroInterno))
	}
	defer f.Close()

	res, err := fn(fileHeader.Filename, f)
	if err != nil {
		log.Error().Err(err).Str("arquivo", fileHeader.Filename).Msg("processar importação")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro(msgErroInterno))
	}
	return c.JSON(res)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
