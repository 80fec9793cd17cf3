package entity

import "github.com/shopspring/decimal"

// Department identifica el departamento de un empleado. El conjunto es fijo.
type Department int

const (
	DepartmentSales Department = iota + 1
	DepartmentIT
	DepartmentHR
)

// departmentInfo fila de la tabla de tasas: etiqueta visible + tasa de impuesto.
type departmentInfo struct {
	label   string
	taxRate decimal.Decimal
}

// rateTable tabla de tasas por departamento (Ventas/IT 15%, RRHH 16%).
var rateTable = map[Department]departmentInfo{
	DepartmentSales: {label: "Ventas", taxRate: decimal.RequireFromString("0.15")},
	DepartmentIT:    {label: "IT", taxRate: decimal.RequireFromString("0.15")},
	DepartmentHR:    {label: "RRHH", taxRate: decimal.RequireFromString("0.16")},
}

// Departments devuelve los departamentos en el orden del menú.
func Departments() []Department {
	return []Department{DepartmentSales, DepartmentIT, DepartmentHR}
}

// Valid indica si d pertenece al conjunto fijo.
func (d Department) Valid() bool {
	_, ok := rateTable[d]
	return ok
}

// TaxRate devuelve la tasa de impuesto como fracción (0.15 = 15%).
// ok es false para un departamento fuera de la tabla.
func (d Department) TaxRate() (rate decimal.Decimal, ok bool) {
	info, ok := rateTable[d]
	if !ok {
		return decimal.Zero, false
	}
	return info.taxRate, true
}

// Label etiqueta usada en el menú, el reporte y el PDF.
func (d Department) Label() string {
	if info, ok := rateTable[d]; ok {
		return info.label
	}
	return "desconocido"
}

func (d Department) String() string { return d.Label() }
