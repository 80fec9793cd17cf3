package repository

import "github.com/jhoicas/nomina-cli/internal/domain/entity"

// EmployeeRepository define el puerto de almacenamiento del registro de nómina (DIP).
// Solo agrega: los registros no se modifican ni se eliminan.
type EmployeeRepository interface {
	Append(employee *entity.Employee) error
	// List devuelve los registros en orden de inserción.
	List() []*entity.Employee
	Len() int
}
