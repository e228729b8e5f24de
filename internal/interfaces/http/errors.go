package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// msgInternalError texto fijo de los 500: el error de infraestructura se
// registra en el log con contexto y nunca se devuelve al cliente.
const msgInternalError = "ocurrió un error inesperado, intente nuevamente"

// internalError registra el error subyacente y responde 500 genérico.
func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno atendiendo la request")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgInternalError})
}
