package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nomina-cli/internal/domain"
	"github.com/jhoicas/nomina-cli/internal/domain/entity"
	"github.com/jhoicas/nomina-cli/internal/domain/payroll"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNetSalary_ValoresConocidos(t *testing.T) {
	cases := []struct {
		name  string
		gross string
		dept  entity.Department
		want  string
	}{
		{"ventas 1000", "1000", entity.DepartmentSales, "800"},
		{"rrhh 1000", "1000", entity.DepartmentHR, "790"},
		{"it 1000", "1000", entity.DepartmentIT, "800"},
		{"it cero", "0", entity.DepartmentIT, "0"},
		{"bajo el descuento", "40", entity.DepartmentSales, "0"},
		{"justo en el umbral", "58.8235294", entity.DepartmentSales, "0"},
		{"con decimales", "2500.50", entity.DepartmentHR, "2050.42"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, err := payroll.NetSalary(dec(tc.gross), tc.dept)
			require.NoError(t, err)
			assert.True(t, dec(tc.want).Equal(net), "esperado %s, obtenido %s", tc.want, net)
		})
	}
}

func TestNetSalary_NegativoEsInvalido(t *testing.T) {
	for _, d := range entity.Departments() {
		_, err := payroll.NetSalary(dec("-1"), d)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestNetSalary_DepartamentoDesconocido(t *testing.T) {
	_, err := payroll.NetSalary(dec("1000"), entity.Department(99))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La fórmula se cumple y el neto nunca es negativo para brutos >= 0.
func TestNetSalary_Propiedad(t *testing.T) {
	for _, d := range entity.Departments() {
		rate, ok := d.TaxRate()
		require.True(t, ok)
		for i := int64(0); i <= 5000; i += 7 {
			gross := decimal.NewFromInt(i)
			net, err := payroll.NetSalary(gross, d)
			require.NoError(t, err)

			want := gross.Sub(gross.Mul(rate)).Sub(payroll.CafeteriaDeduction())
			if want.IsNegative() {
				want = decimal.Zero
			}
			assert.True(t, want.Equal(net), "bruto=%s depto=%s", gross, d)
			assert.False(t, net.IsNegative())
		}
	}
}

func TestBreakdown_Desglose(t *testing.T) {
	b, err := payroll.Breakdown(dec("1000"), entity.DepartmentHR)
	require.NoError(t, err)
	assert.True(t, dec("0.16").Equal(b.TaxRate))
	assert.True(t, dec("160").Equal(b.Tax))
	assert.True(t, dec("50").Equal(b.Cafeteria))
	assert.True(t, dec("790").Equal(b.Net))
}

func TestCafeteriaDeduction_Fijo(t *testing.T) {
	assert.True(t, dec("50").Equal(payroll.CafeteriaDeduction()))

	// Operar sobre el valor devuelto no altera el cálculo.
	_ = payroll.CafeteriaDeduction().Add(dec("1000"))
	net, err := payroll.NetSalary(dec("1000"), entity.DepartmentSales)
	require.NoError(t, err)
	assert.True(t, dec("800").Equal(net))
}
