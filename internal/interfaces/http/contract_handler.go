package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/contracts"
	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// ContractHandler genera el PDF del contrato de arrendamiento en suajili.
type ContractHandler struct {
	uc  *contracts.UseCase
	log *logger.Logger
}

// NewContractHandler construye el handler.
func NewContractHandler(uc *contracts.UseCase, log *logger.Logger) *ContractHandler {
	return &ContractHandler{uc: uc, log: log}
}

// Download godoc
// @Summary      Descargar contrato de arrendamiento en PDF
// @Tags         leases
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leases/{id}/contract [get]
func (h *ContractHandler) Download(c *fiber.Ctx) error {
	leaseID := c.Params("id")
	pdfBytes, err := h.uc.GetContractPDF(c.UserContext(), leaseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
		}
		return internalError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="lease_contract_%s.pdf"`, leaseID))
	return c.Send(pdfBytes)
}
