package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/rfmachado/controle-trocas/internal/application/dto"
	"github.com/rfmachado/controle-trocas/internal/domain"
)

// Mensagem genérica de erro interno; o detalhe fica apenas no log do servidor.
const msgErroInterno = "Erro interno do servidor"

// respondError mapeia os erros de domínio para o envelope HTTP padrão:
// entrada inválida → 400, não encontrado → 404, duplicata → 400, resto → 500.
// As mensagens de 400/404 são específicas de cada endpoint; o 500 é genérico.
func respondError(c *fiber.Ctx, err error, msgInvalido, msgNaoEncontrado string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro(msgInvalido))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Erro(msgNaoEncontrado))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("Código do produto já existe"))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("erro não tratado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro(msgErroInterno))
	}
}
