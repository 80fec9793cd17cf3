package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ReportExporter exporta el reporte de la sesión a un archivo PDF.
type ReportExporter struct {
	registry  *Registry
	generator ReportPDFGenerator
	title     string
	currency  string
}

// NewReportExporter construye el exportador inyectando el generador PDF.
func NewReportExporter(registry *Registry, generator ReportPDFGenerator, title, currency string) *ReportExporter {
	return &ReportExporter{registry: registry, generator: generator, title: title, currency: currency}
}

// Export escribe el PDF en path. Con el registro vacío no escribe nada y devuelve false.
func (e *ReportExporter) Export(ctx context.Context, path string) (bool, error) {
	if e.registry.IsEmpty() {
		return false, nil
	}
	report, err := e.registry.Report(e.title, e.currency)
	if err != nil {
		return false, err
	}
	data, err := e.generator.GenerateReportPDF(ctx, report)
	if err != nil {
		return false, fmt.Errorf("exportar reporte: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("exportar reporte: crear directorio: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("exportar reporte: escribir %s: %w", path, err)
	}
	return true, nil
}
