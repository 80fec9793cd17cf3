package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee registro de nómina. Se crea una sola vez al agregarlo;
// NetSalary queda congelado en ese momento y nunca se recalcula.
type Employee struct {
	ID          string
	Name        string
	Department  Department
	GrossSalary decimal.Decimal // sueldo bruto (>= 0)
	NetSalary   decimal.Decimal // neto tras impuesto y descuento de cafetería
	CreatedAt   time.Time
}
