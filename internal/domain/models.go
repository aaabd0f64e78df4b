package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of employee categories. The zero value is the
// generic employee role, which is a valid role on its own.
type Role int

const (
	RoleEmployee Role = iota
	RoleManager
	RoleEngineer
	RoleIntern
)

// InternBonus is the flat bonus paid to interns regardless of salary.
const InternBonus = 500.0

var roleLabels = map[Role]string{
	RoleEmployee: "Employee",
	RoleManager:  "Manager",
	RoleEngineer: "Engineer",
	RoleIntern:   "Intern",
}

// bonusRule describes how a role turns a salary into a bonus.
// Exactly one of rate or flat is meaningful.
type bonusRule struct {
	rate float64
	flat float64
}

var bonusRules = map[Role]bonusRule{
	RoleEmployee: {rate: 0.10},
	RoleManager:  {rate: 0.20},
	RoleEngineer: {rate: 0.15},
	RoleIntern:   {flat: InternBonus},
}

// ParseRole maps a role label to a Role. Matching ignores case and
// surrounding whitespace.
func ParseRole(label string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "employee":
		return RoleEmployee, nil
	case "manager":
		return RoleManager, nil
	case "engineer":
		return RoleEngineer, nil
	case "intern":
		return RoleIntern, nil
	}
	return RoleEmployee, fmt.Errorf("%w: %q", ErrInvalidRole, label)
}

func (r Role) String() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Bonus computes the bonus this role earns on the given salary.
// Unknown roles fall back to the generic employee rule.
func (r Role) Bonus(salary float64) float64 {
	rule, ok := bonusRules[r]
	if !ok {
		rule = bonusRules[RoleEmployee]
	}
	if rule.flat != 0 {
		return rule.flat
	}
	return salary * rule.rate
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Employee is a hired person held by the registry.
type Employee struct {
	ID     int     `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Age    int     `json:"age" yaml:"age"`
	Role   Role    `json:"role" yaml:"role"`
	Salary float64 `json:"salary" yaml:"salary"`
}

// NewEmployee creates an employee record. The caller supplies the id.
func NewEmployee(id int, name string, age int, role Role, salary float64) *Employee {
	return &Employee{
		ID:     id,
		Name:   name,
		Age:    age,
		Role:   role,
		Salary: salary,
	}
}

// NewEmployeeFromLabel creates an employee record from a textual role label.
func NewEmployeeFromLabel(id int, name string, age int, roleLabel string, salary float64) (*Employee, error) {
	role, err := ParseRole(roleLabel)
	if err != nil {
		return nil, err
	}
	return NewEmployee(id, name, age, role, salary), nil
}

// Bonus returns the bonus owed to the employee under their role's rule.
func (e *Employee) Bonus() float64 {
	return e.Role.Bonus(e.Salary)
}

// Describe returns a one-line human readable summary of the employee.
func (e *Employee) Describe() string {
	return fmt.Sprintf("ID: %d, Name: %s, Role: %s, Salary: %.2f", e.ID, e.Name, e.Role, e.Salary)
}

// Payroll aggregates salaries across the registry.
type Payroll struct {
	Headcount int     `json:"headcount"`
	Total     float64 `json:"total"`
	Average   float64 `json:"average"`
}

// EmployeeView is an employee together with its computed bonus, used by
// read-only surfaces.
type EmployeeView struct {
	Employee
	Bonus float64 `json:"bonus"`
}

// NewEmployeeView wraps e with its bonus.
func NewEmployeeView(e Employee) EmployeeView {
	return EmployeeView{Employee: e, Bonus: e.Bonus()}
}
