package domain

// EmployeeRepository defines the operations of the employee registry.
// Implementations keep records in insertion order.
type EmployeeRepository interface {
	Add(e Employee) error
	Remove(id int) error
	Get(id int) (Employee, error)
	List() []Employee
	Payroll() Payroll
	// Recent returns the last count records added, oldest first.
	Recent(count int) []Employee
	Len() int
}
