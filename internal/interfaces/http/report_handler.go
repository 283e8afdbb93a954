package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
	"github.com/coffee-urbantech/pos-api/internal/application/reports"
)

// ReportHandler expone el reporte financiero por período (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte financiero del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | year"  default(month)
// @Success      200     {object}  dto.ReportResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	period := c.Query("period", dto.PeriodMonth)
	out, err := h.uc.Generate(c.Context(), period)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar el reporte financiero en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "today | week | month | year"  default(month)
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) DownloadPDF(c *fiber.Ctx) error {
	period := c.Query("period", dto.PeriodMonth)
	data, err := h.uc.GeneratePDF(c.Context(), period)
	if err != nil {
		return mapError(c, err)
	}
	filename := fmt.Sprintf("reporte-%s-%s.pdf", period, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
