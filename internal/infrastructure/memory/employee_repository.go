// Package memory implementa los puertos de persistencia en memoria del proceso.
// Los datos viven lo que dura la sesión.
package memory

import (
	"fmt"

	"github.com/jhoicas/nomina-cli/internal/domain/entity"
	"github.com/jhoicas/nomina-cli/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo registro ordenado de empleados. No es seguro para uso concurrente.
type EmployeeRepo struct {
	items []*entity.Employee
}

// NewEmployeeRepository construye el adaptador en memoria.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{}
}

// Append agrega un registro al final. No deduplica.
func (r *EmployeeRepo) Append(employee *entity.Employee) error {
	if employee == nil {
		return fmt.Errorf("append employee: registro nil")
	}
	r.items = append(r.items, employee)
	return nil
}

// List devuelve una copia del slice; agregar o reordenar sobre ella no altera el registro.
func (r *EmployeeRepo) List() []*entity.Employee {
	out := make([]*entity.Employee, len(r.items))
	copy(out, r.items)
	return out
}

// Len cantidad de registros.
func (r *EmployeeRepo) Len() int {
	return len(r.items)
}
