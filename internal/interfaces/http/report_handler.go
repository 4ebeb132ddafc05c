package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesphere/salesphere-api/internal/application/alert"
	"github.com/salesphere/salesphere-api/internal/application/dto"
	"github.com/salesphere/salesphere-api/internal/domain/repository"
)

// ReportHandler expone los reportes de stock bajo para descarga directa,
// los mismos que viajan como adjuntos en el correo de alerta.
type ReportHandler struct {
	productRepo repository.ProductRepository
	renderer    alert.ReportRenderer
}

// NewReportHandler construye el handler.
func NewReportHandler(productRepo repository.ProductRepository, renderer alert.ReportRenderer) *ReportHandler {
	return &ReportHandler{productRepo: productRepo, renderer: renderer}
}

// LowStockPDF godoc
// @Summary      Descargar reporte PDF de stock bajo
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/reports/low-stock/pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	products, err := h.productRepo.ListWithLowStock()
	if err != nil {
		return mapDomainError(c, err)
	}
	content, err := h.renderer.RenderPDF(c.Context(), products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_stock_bajo.pdf"`)
	return c.Send(content)
}

// LowStockSpreadsheet godoc
// @Summary      Descargar reporte XLSX de stock bajo
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/reports/low-stock/xlsx [get]
func (h *ReportHandler) LowStockSpreadsheet(c *fiber.Ctx) error {
	products, err := h.productRepo.ListWithLowStock()
	if err != nil {
		return mapDomainError(c, err)
	}
	content, err := h.renderer.RenderSpreadsheet(c.Context(), products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDER_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_stock_bajo.xlsx"`)
	return c.Send(content)
}
