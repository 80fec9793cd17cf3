package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nomina-cli/internal/application/dto"
	"github.com/jhoicas/nomina-cli/internal/infrastructure/pdf"
)

func TestGenerateReportPDF_DevuelveDocumento(t *testing.T) {
	report := &dto.PayrollReport{
		Title:       "nomina-cli",
		GeneratedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
		Currency:    "COP",
		Rows: []dto.PayrollReportRow{
			{
				Name: "José Pérez", Department: "RRHH",
				Gross: decimal.NewFromInt(1000), Tax: decimal.NewFromInt(160),
				Cafeteria: decimal.NewFromInt(50), Net: decimal.NewFromInt(790),
			},
			{
				Name: "Ana", Department: "Ventas",
				Gross: decimal.NewFromInt(1000), Tax: decimal.NewFromInt(150),
				Cafeteria: decimal.NewFromInt(50), Net: decimal.NewFromInt(800),
			},
		},
		TotalGross: decimal.NewFromInt(2000),
		TotalNet:   decimal.NewFromInt(1590),
		Count:      2,
	}

	data, err := pdf.NewMarotoReportGenerator().GenerateReportPDF(context.Background(), report)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el documento debe empezar con la cabecera PDF")
}

func TestGenerateReportPDF_ReporteNil(t *testing.T) {
	_, err := pdf.NewMarotoReportGenerator().GenerateReportPDF(context.Background(), nil)
	assert.Error(t, err)
}
