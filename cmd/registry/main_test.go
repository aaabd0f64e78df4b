package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/employee_registry/internal/export"
)

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := "employees:\n" +
		"  - {id: 1, name: Alice, age: 40, role: manager, salary: 1000}\n" +
		"  - {id: 2, name: Bob, age: 30, role: engineer, salary: 2000}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCmd_Menu(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	seed := writeSeed(t)

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader("4\n6\n"), &out)
	cmd.SetArgs([]string{"--seed", seed})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "Total Payroll: 3000.00, Average Salary: 1500.00")
}

func TestRootCmd_Export(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	seed := writeSeed(t)
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out)
	cmd.SetArgs([]string{"export", "--seed", seed, "-o", path})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Employees exported to "+path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.EmployeesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestRootCmd_BadSeed(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("employees:\n  - {id: 1, name: A, role: pilot}\n"), 0o600))

	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{})
	cmd.SetArgs([]string{"--seed", path})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
