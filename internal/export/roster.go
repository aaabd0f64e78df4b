package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/locvowork/employee_registry/internal/domain"
)

const (
	EmployeesSheet = "Employees"
	PayrollSheet   = "Payroll"

	// ContentType is the MIME type of the generated workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var rosterHeader = []interface{}{"ID", "Name", "Age", "Role", "Salary", "Bonus"}

// RosterExporter renders the registry into an xlsx workbook: one row per
// employee in registry order, plus a payroll summary sheet.
type RosterExporter struct {
	employees []domain.Employee
	payroll   domain.Payroll
}

func NewRosterExporter(employees []domain.Employee, payroll domain.Payroll) *RosterExporter {
	return &RosterExporter{employees: employees, payroll: payroll}
}

// BuildExcel creates the workbook in memory. The caller must Close it.
func (r *RosterExporter) BuildExcel() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", EmployeesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := r.writeRoster(f); err != nil {
		f.Close()
		return nil, err
	}
	if err := r.writePayroll(f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (r *RosterExporter) writeRoster(f *excelize.File) error {
	if err := f.SetSheetRow(EmployeesSheet, "A1", &rosterHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(EmployeesSheet, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	if err := f.SetColWidth(EmployeesSheet, "B", "B", 24); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	for i, e := range r.employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.ID, e.Name, e.Age, e.Role.String(), e.Salary, e.Bonus()}
		if err := f.SetSheetRow(EmployeesSheet, cell, &row); err != nil {
			return fmt.Errorf("write employee %d: %w", e.ID, err)
		}
	}
	return nil
}

func (r *RosterExporter) writePayroll(f *excelize.File) error {
	if _, err := f.NewSheet(PayrollSheet); err != nil {
		return fmt.Errorf("create payroll sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Headcount", r.payroll.Headcount},
		{"Total", r.payroll.Total},
		{"Average", r.payroll.Average},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(PayrollSheet, cell, &row); err != nil {
			return fmt.Errorf("write payroll: %w", err)
		}
	}
	return nil
}

// ToBytes renders the workbook to a byte slice.
func (r *RosterExporter) ToBytes() ([]byte, error) {
	f, err := r.BuildExcel()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ToFile saves the workbook at path.
func (r *RosterExporter) ToFile(path string) error {
	f, err := r.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}
