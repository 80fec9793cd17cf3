// nomina es el registro de nómina interactivo por consola.
//
// Uso: go run ./cmd/nomina
// Con REPORT_PDF_PATH definido, al salir exporta el reporte a PDF.
package main

import (
	"context"
	"os"

	apppayroll "github.com/jhoicas/nomina-cli/internal/application/payroll"
	"github.com/jhoicas/nomina-cli/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/nomina-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/nomina-cli/internal/interfaces/cli"
	"github.com/jhoicas/nomina-cli/pkg/config"
	"github.com/jhoicas/nomina-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log = logger.Child(log.With().Str("app", cfg.App.Name).Logger())
	log.Info().Str("env", cfg.App.Env).Msg("iniciando sesión")

	employeeRepo := memory.NewEmployeeRepository()
	registry := apppayroll.NewRegistry(employeeRepo, log)

	handler := cli.NewHandler(registry, log, os.Stdin, os.Stdout, cfg.App.Name)
	if err := handler.Run(); err != nil {
		log.Fatal().Err(err).Msg("sesión interrumpida")
	}

	if cfg.Report.PDFPath != "" {
		exporter := apppayroll.NewReportExporter(
			registry, infrapdf.NewMarotoReportGenerator(), cfg.App.Name, cfg.Report.Currency,
		)
		written, err := exporter.Export(context.Background(), cfg.Report.PDFPath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.Report.PDFPath).Msg("exportar reporte PDF")
			os.Exit(1)
		}
		if written {
			log.Info().Str("path", cfg.Report.PDFPath).Msg("reporte PDF exportado")
		}
	}

	log.Info().Int("employees", len(registry.List())).Msg("sesión finalizada")
}
