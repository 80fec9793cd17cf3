package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollReportRow fila del reporte: un empleado con su desglose.
type PayrollReportRow struct {
	ID         string
	Name       string
	Department string // etiqueta visible (Ventas, IT, RRHH)
	Gross      decimal.Decimal
	Tax        decimal.Decimal
	Cafeteria  decimal.Decimal
	Net        decimal.Decimal
}

// PayrollReport reporte completo en orden de inserción.
type PayrollReport struct {
	Title       string
	GeneratedAt time.Time
	Currency    string
	Rows        []PayrollReportRow
	TotalGross  decimal.Decimal
	TotalNet    decimal.Decimal
	Count       int
}
