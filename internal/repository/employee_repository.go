package repository

import (
	"fmt"

	"github.com/locvowork/employee_registry/internal/domain"
)

// EmployeeRegistry is an in-memory, insertion-ordered store of employees.
// It is not safe for concurrent use; wrap it (see service.EmployeeService)
// when it is shared between goroutines.
type EmployeeRegistry struct {
	employees map[int]domain.Employee
	// order holds ids in insertion order. Removal deletes from it in place.
	order []int
}

// NewEmployeeRepository creates an empty registry.
func NewEmployeeRepository() *EmployeeRegistry {
	return &EmployeeRegistry{
		employees: make(map[int]domain.Employee),
	}
}

var _ domain.EmployeeRepository = (*EmployeeRegistry)(nil)

// Add stores e under its id, after every record already present.
func (r *EmployeeRegistry) Add(e domain.Employee) error {
	if _, ok := r.employees[e.ID]; ok {
		return fmt.Errorf("add employee %d: %w", e.ID, domain.ErrDuplicateID)
	}
	r.employees[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

// Remove deletes the employee with the given id.
func (r *EmployeeRegistry) Remove(id int) error {
	if _, ok := r.employees[id]; !ok {
		return fmt.Errorf("remove employee %d: %w", id, domain.ErrEmployeeNotFound)
	}
	delete(r.employees, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a copy of the employee with the given id.
func (r *EmployeeRegistry) Get(id int) (domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return domain.Employee{}, fmt.Errorf("get employee %d: %w", id, domain.ErrEmployeeNotFound)
	}
	return e, nil
}

// List returns every employee in insertion order.
func (r *EmployeeRegistry) List() []domain.Employee {
	return r.collect(r.order)
}

// Payroll sums salaries. Average is 0 for an empty registry.
func (r *EmployeeRegistry) Payroll() domain.Payroll {
	p := domain.Payroll{Headcount: len(r.order)}
	for _, id := range r.order {
		p.Total += r.employees[id].Salary
	}
	if p.Headcount > 0 {
		p.Average = p.Total / float64(p.Headcount)
	}
	return p
}

// Recent returns the last count employees added, oldest first. A count
// larger than the registry returns everything; count <= 0 returns none.
func (r *EmployeeRegistry) Recent(count int) []domain.Employee {
	if count <= 0 {
		return []domain.Employee{}
	}
	if count > len(r.order) {
		count = len(r.order)
	}
	return r.collect(r.order[len(r.order)-count:])
}

func (r *EmployeeRegistry) Len() int {
	return len(r.order)
}

func (r *EmployeeRegistry) collect(ids []int) []domain.Employee {
	out := make([]domain.Employee, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.employees[id])
	}
	return out
}
