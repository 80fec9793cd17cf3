package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/nomina-cli/internal/application/dto"
	"github.com/jhoicas/nomina-cli/internal/domain"
	"github.com/jhoicas/nomina-cli/internal/domain/entity"
	domainpayroll "github.com/jhoicas/nomina-cli/internal/domain/payroll"
	"github.com/jhoicas/nomina-cli/internal/domain/repository"
	"github.com/jhoicas/nomina-cli/pkg/logger"
)

// Registry caso de uso del registro de nómina: alta y consulta de empleados.
type Registry struct {
	repo repository.EmployeeRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewRegistry construye el caso de uso.
func NewRegistry(repo repository.EmployeeRepository, log *logger.Logger) *Registry {
	return &Registry{repo: repo, log: log, now: time.Now}
}

// Add crea el registro, calcula el neto una sola vez y lo agrega al final.
// Devuelve domain.ErrInvalidInput (envuelto) si el nombre queda vacío o el bruto es negativo.
func (r *Registry) Add(name string, department entity.Department, gross decimal.Decimal) (*entity.Employee, error) {
	name = normalizeName(name)
	if name == "" {
		r.log.Debug().Str("department", department.Label()).Msg("alta rechazada: nombre vacío")
		return nil, fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	}

	net, err := domainpayroll.NetSalary(gross, department)
	if err != nil {
		r.log.Debug().Err(err).
			Str("name", name).
			Str("gross", gross.String()).
			Msg("alta rechazada")
		return nil, err
	}

	employee := &entity.Employee{
		ID:          uuid.New().String(),
		Name:        name,
		Department:  department,
		GrossSalary: gross,
		NetSalary:   net,
		CreatedAt:   r.now(),
	}
	if err := r.repo.Append(employee); err != nil {
		return nil, fmt.Errorf("registrar empleado: %w", err)
	}

	r.log.Debug().
		Str("id", employee.ID).
		Str("department", department.Label()).
		Str("gross", gross.String()).
		Str("net", net.String()).
		Msg("empleado registrado")
	return employee, nil
}

// List registros en orden de inserción (copia de solo lectura).
func (r *Registry) List() []*entity.Employee {
	return r.repo.List()
}

// IsEmpty indica si aún no hay empleados registrados.
func (r *Registry) IsEmpty() bool {
	return r.repo.Len() == 0
}

// Report arma el reporte con desglose por empleado y totales.
func (r *Registry) Report(title, currency string) (*dto.PayrollReport, error) {
	employees := r.repo.List()
	report := &dto.PayrollReport{
		Title:       title,
		GeneratedAt: r.now(),
		Currency:    currency,
		Rows:        make([]dto.PayrollReportRow, 0, len(employees)),
		TotalGross:  decimal.Zero,
		TotalNet:    decimal.Zero,
		Count:       len(employees),
	}
	for _, e := range employees {
		b, err := domainpayroll.Breakdown(e.GrossSalary, e.Department)
		if err != nil {
			return nil, fmt.Errorf("reporte: empleado %s: %w", e.ID, err)
		}
		report.Rows = append(report.Rows, dto.PayrollReportRow{
			ID:         e.ID,
			Name:       e.Name,
			Department: e.Department.Label(),
			Gross:      e.GrossSalary,
			Tax:        b.Tax,
			Cafeteria:  b.Cafeteria,
			Net:        e.NetSalary,
		})
		report.TotalGross = report.TotalGross.Add(e.GrossSalary)
		report.TotalNet = report.TotalNet.Add(e.NetSalary)
	}
	return report, nil
}

// normalizeName recorta espacios y lleva el nombre a NFC.
func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
