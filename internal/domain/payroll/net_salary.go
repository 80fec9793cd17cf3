package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nomina-cli/internal/domain"
	"github.com/jhoicas/nomina-cli/internal/domain/entity"
)

// cafeteriaDeduction descuento fijo de cafetería, igual para todos los departamentos.
var cafeteriaDeduction = decimal.NewFromInt(50)

// CafeteriaDeduction devuelve el descuento fijo de cafetería (50).
func CafeteriaDeduction() decimal.Decimal { return cafeteriaDeduction }

// Deductions desglose del cálculo de un sueldo.
type Deductions struct {
	Gross     decimal.Decimal
	TaxRate   decimal.Decimal
	Tax       decimal.Decimal
	Cafeteria decimal.Decimal
	Net       decimal.Decimal
}

// Breakdown calcula impuesto, descuento de cafetería y neto (servicio de dominio).
// Neto = max(Bruto - Bruto*Tasa - 50, 0)
func Breakdown(gross decimal.Decimal, department entity.Department) (Deductions, error) {
	if gross.IsNegative() {
		return Deductions{}, fmt.Errorf("%w: el sueldo bruto no puede ser negativo", domain.ErrInvalidInput)
	}
	rate, ok := department.TaxRate()
	if !ok {
		return Deductions{}, fmt.Errorf("%w: departamento %d no existe", domain.ErrInvalidInput, int(department))
	}
	tax := gross.Mul(rate)
	net := gross.Sub(tax).Sub(cafeteriaDeduction)
	if net.IsNegative() {
		net = decimal.Zero
	}
	return Deductions{
		Gross:     gross,
		TaxRate:   rate,
		Tax:       tax,
		Cafeteria: cafeteriaDeduction,
		Net:       net,
	}, nil
}

// NetSalary devuelve solo el neto. Función pura: mismo input, mismo resultado.
func NetSalary(gross decimal.Decimal, department entity.Department) (decimal.Decimal, error) {
	d, err := Breakdown(gross, department)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Net, nil
}
