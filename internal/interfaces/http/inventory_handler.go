package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/internal/application/dto"
	"github.com/salesphere/salesphere-api/internal/application/ledger"
	"github.com/salesphere/salesphere-api/internal/domain"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
	"github.com/salesphere/salesphere-api/pkg/validator"
)

// InventoryHandler maneja ajustes, traslados, consulta de movimientos y el
// disparo manual del chequeo de stock.
type InventoryHandler struct {
	stockLedger *ledger.StockLedger
	monitor     *alert.Monitor
	movRepo     repository.InventoryMovementRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stockLedger *ledger.StockLedger, monitor *alert.Monitor, movRepo repository.InventoryMovementRepository) *InventoryHandler {
	return &InventoryHandler{stockLedger: stockLedger, monitor: monitor, movRepo: movRepo}
}

// Adjust godoc
// @Summary      Ajustar stock global de un producto
// @Description  Aplica un delta con signo al stock global. Un resultado negativo se rechaza sin aplicar nada.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustInventoryRequest  true  "Ajuste"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	if err := h.stockLedger.Adjust(c.Context(), in.ProductID, in.Quantity, in.Reason); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transfer godoc
// @Summary      Trasladar stock entre bodegas
// @Description  Mueve cantidad de una bodega a otra en una sola transacción. La fila destino se crea si no existe.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferProductRequest  true  "Traslado"
// @Success      204   "Sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(errs)})
	}
	if err := h.stockLedger.Transfer(c.Context(), in.ProductID, in.FromWarehouseID, in.ToWarehouseID, in.Quantity); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMovements godoc
// @Summary      Listar movimientos de un producto
// @Tags         inventory
// @Produce      json
// @Param        productId  path   string  true   "ID del producto"
// @Param        limit      query  int     false  "Límite"  default(50)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {array}  dto.MovementResponse
// @Router       /api/inventory/movements/{productId} [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	movements, err := h.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, &dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			WarehouseID: m.WarehouseID,
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// CheckStock godoc
// @Summary      Disparar el chequeo de stock bajo manualmente
// @Description  Ejecuta el mismo ciclo que el scheduler: consulta productos bajo el mínimo y notifica por WebSocket y correo.
// @Tags         inventory
// @Produce      json
// @Success      202  "Aceptado"
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/check-stock [post]
func (h *InventoryHandler) CheckStock(c *fiber.Ctx) error {
	if err := h.monitor.CheckStock(c.Context()); err != nil {
		if domain.IsDeliveryError(err) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DELIVERY_FAILED", Message: err.Error()})
		}
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}
