package reports

import (
	"context"

	"github.com/coffee-urbantech/pos-api/internal/application/dto"
)

// ReportPDFGenerator genera la representación PDF de un reporte financiero.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.ReportResponse) ([]byte, error)
}
