package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sclconsulting/inventario-api/internal/application/dto"
	"github.com/sclconsulting/inventario-api/pkg/logger"
)

// internalError registra el error completo para operaciones y responde 500
// con un mensaje genérico: el detalle interno nunca viaja al caller.
func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno atendiendo la petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
