package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rfmachado/controle-trocas/internal/application/dto"
	"github.com/rfmachado/controle-trocas/internal/application/usecase"
)

// ConsignadoHandler atende a operação dedicada de baixa do consignado.
type ConsignadoHandler struct {
	uc *usecase.NotaFiscalUseCase
}

// NewConsignadoHandler constrói o handler.
func NewConsignadoHandler(uc *usecase.NotaFiscalUseCase) *ConsignadoHandler {
	return &ConsignadoHandler{uc: uc}
}

type baixarConsignadoRequest struct {
	BaixadoConsignado string `json:"baixado_consignado"`
}

// Baixar godoc
// @Summary      Alterar o marcador de baixa do consignado
// @Description  Operação idempotente; altera apenas baixado_consignado.
// @Tags         consignado
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da nota"
// @Param        body  body  baixarConsignadoRequest  true  "SIM ou NAO"
// @Success      200   {object}  dto.ConsignadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/baixar-consignado/{id} [put]
func (h *ConsignadoHandler) Baixar(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("ID inválido"))
	}
	var in baixarConsignadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("Corpo da requisição inválido"))
	}
	data, err := h.uc.ToggleConsignado(id, in.BaixadoConsignado)
	if err != nil {
		return respondError(c, err, "Campo baixado_consignado deve ser SIM ou NAO", msgNotaNaoEncontrada)
	}
	return c.JSON(dto.ConsignadoResponse{
		Success: true,
		Message: "Status de baixado do consignado atualizado para " + data.BaixadoConsignado,
		Data:    *data,
	})
}
