package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sclconsulting/inventario-api/internal/application/dto"
	"github.com/sclconsulting/inventario-api/internal/application/inventory"
	"github.com/sclconsulting/inventario-api/internal/domain"
	"github.com/sclconsulting/inventario-api/pkg/logger"
)

// MovementHandler maneja el registro y consulta de movimientos de inventario.
type MovementHandler struct {
	movUC    *inventory.MovementUseCase
	kardexUC *inventory.KardexUseCase
	log      *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(movUC *inventory.MovementUseCase, kardexUC *inventory.KardexUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{movUC: movUC, kardexUC: kardexUC, log: log}
}

// Register godoc
// @Summary      Registrar movimiento de inventario
// @Description  Registra el movimiento y ajusta el stock del producto en la misma transacción. El responsable se toma del token.
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.movUC.Register(c.UserContext(), in, GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id, tipo_movimiento y cantidad > 0 son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movimientos
// @Produce      json
// @Param        productoId  path   string  true   "ID del producto"
// @Param        limit       query  int     false  "Límite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {object}  dto.MovementListResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos/producto/{productoId} [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	productID := c.Params("productoId")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.movUC.History(c.UserContext(), productID, limit, offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Kardex godoc
// @Summary      Kardex del producto en PDF
// @Tags         movimientos
// @Security     Bearer
// @Produce      application/pdf
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/movimientos/producto/{productoId}/kardex [get]
func (h *MovementHandler) Kardex(c *fiber.Ctx) error {
	productID := c.Params("productoId")
	pdfBytes, err := h.kardexUC.Generate(c.UserContext(), productID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return internalError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex.pdf"`)
	return c.Send(pdfBytes)
}
