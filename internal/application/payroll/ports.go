package payroll

import (
	"context"

	"github.com/jhoicas/nomina-cli/internal/application/dto"
)

// ReportPDFGenerator puerto para generar la representación PDF del reporte de nómina.
// La implementación concreta vive en infrastructure/pdf (Maroto).
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.PayrollReport) ([]byte, error)
}
