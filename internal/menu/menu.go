// Package menu implements the interactive text front end of the registry.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/locvowork/employee_registry/internal/domain"
	"github.com/locvowork/employee_registry/internal/export"
	"github.com/locvowork/employee_registry/internal/logger"
	"github.com/locvowork/employee_registry/internal/service"
)

const (
	optionAdd = iota + 1
	optionRemove
	optionList
	optionPayroll
	optionRecent
	optionExit
	optionExport
)

// errInputClosed ends the loop when the input runs out mid-prompt.
var errInputClosed = errors.New("input closed")

// Menu drives the registry from line-oriented text input.
type Menu struct {
	svc        *service.EmployeeService
	in         *bufio.Scanner
	out        io.Writer
	exportPath string
}

// New creates a menu reading from in and writing to out. When exportPath is
// not empty an extra option saves the roster as a spreadsheet there.
func New(svc *service.EmployeeService, in io.Reader, out io.Writer, exportPath string) *Menu {
	return &Menu{
		svc:        svc,
		in:         bufio.NewScanner(in),
		out:        out,
		exportPath: exportPath,
	}
}

// Run loops until the user exits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printOptions()
		line, err := m.prompt("Choose an option: ")
		if err != nil {
			return m.inputErr(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(m.out, "Value Error: invalid option %q\n", line)
			continue
		}
		if choice == optionExit {
			fmt.Fprintln(m.out, "Exiting the system. Goodbye!")
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			m.report(err)
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "1. Add Employee")
	fmt.Fprintln(m.out, "2. Remove Employee")
	fmt.Fprintln(m.out, "3. View All Employees")
	fmt.Fprintln(m.out, "4. Calculate Payroll")
	fmt.Fprintln(m.out, "5. View Recent Employees")
	fmt.Fprintln(m.out, "6. Exit")
	if m.exportPath != "" {
		fmt.Fprintln(m.out, "7. Export to Excel")
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case optionAdd:
		return m.add(ctx)
	case optionRemove:
		return m.remove(ctx)
	case optionList:
		m.list(ctx)
	case optionPayroll:
		p := m.svc.Payroll(ctx)
		fmt.Fprintf(m.out, "Total Payroll: %.2f, Average Salary: %.2f\n", p.Total, p.Average)
	case optionRecent:
		return m.recent(ctx)
	case optionExport:
		if m.exportPath == "" {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			return nil
		}
		return m.export(ctx)
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please try again.")
	}
	return nil
}

func (m *Menu) add(ctx context.Context) error {
	id, err := m.promptInt("Enter ID: ")
	if err != nil {
		return err
	}
	name, err := m.prompt("Enter name: ")
	if err != nil {
		return err
	}
	age, err := m.promptInt("Enter age: ")
	if err != nil {
		return err
	}
	role, err := m.prompt("Enter position (Manager/Engineer/Intern/Employee): ")
	if err != nil {
		return err
	}
	salary, err := m.promptFloat("Enter salary: ")
	if err != nil {
		return err
	}

	req := service.HireRequest{ID: id, Name: name, Age: age, Role: role, Salary: salary}
	if _, err := m.svc.Hire(ctx, req); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Employee added successfully.")
	return nil
}

func (m *Menu) remove(ctx context.Context) error {
	id, err := m.promptInt("Enter employee ID to remove: ")
	if err != nil {
		return err
	}
	if err := m.svc.Dismiss(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Employee removed successfully.")
	return nil
}

func (m *Menu) list(ctx context.Context) {
	fmt.Fprintln(m.out, "All Employees:")
	employees := m.svc.List(ctx)
	if len(employees) == 0 {
		fmt.Fprintln(m.out, "No employees found.")
		return
	}
	m.printEmployees(employees)
}

func (m *Menu) recent(ctx context.Context) error {
	count, err := m.promptInt("Enter number of recent employees to view: ")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Recent Employees:")
	m.printEmployees(m.svc.Recent(ctx, count))
	return nil
}

func (m *Menu) export(ctx context.Context) error {
	exporter := export.NewRosterExporter(m.svc.List(ctx), m.svc.Payroll(ctx))
	if err := exporter.ToFile(m.exportPath); err != nil {
		return err
	}
	logger.InfoLog(ctx, "Exported roster to %s", m.exportPath)
	fmt.Fprintf(m.out, "Employees exported to %s.\n", m.exportPath)
	return nil
}

func (m *Menu) printEmployees(employees []domain.Employee) {
	for i := range employees {
		fmt.Fprintln(m.out, employees[i].Describe())
	}
}

// report prints a recoverable error the way the loop's caller expects:
// bad input and duplicates are value errors, missing ids are key errors.
func (m *Menu) report(err error) {
	var numErr *strconv.NumError
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		fmt.Fprintf(m.out, "Key Error: %v\n", err)
	case errors.Is(err, domain.ErrDuplicateID),
		errors.Is(err, domain.ErrInvalidRole),
		errors.As(err, &numErr):
		fmt.Fprintf(m.out, "Value Error: %v\n", err)
	default:
		fmt.Fprintf(m.out, "An unexpected error occurred: %v\n", err)
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptInt(label string) (int, error) {
	line, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

func (m *Menu) promptFloat(label string) (float64, error) {
	line, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(line, 64)
}

func (m *Menu) inputErr(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}
