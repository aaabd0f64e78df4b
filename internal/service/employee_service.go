package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/locvowork/employee_registry/internal/domain"
	"github.com/locvowork/employee_registry/internal/logger"
	"github.com/locvowork/employee_registry/pkg/dataflow"
)

// HireRequest carries the raw fields needed to create an employee.
type HireRequest struct {
	ID     int     `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Age    int     `json:"age" yaml:"age"`
	Role   string  `json:"role" yaml:"role"`
	Salary float64 `json:"salary" yaml:"salary"`
}

// EmployeeService serializes access to an EmployeeRepository so it can be
// shared by the menu and the HTTP server.
type EmployeeService struct {
	mu   sync.RWMutex
	repo domain.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(repo domain.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Hire builds an employee from req and registers it.
func (s *EmployeeService) Hire(ctx context.Context, req HireRequest) (domain.Employee, error) {
	e, err := toEmployee(req)
	if err != nil {
		return domain.Employee{}, err
	}
	if err := s.add(ctx, e); err != nil {
		return domain.Employee{}, err
	}
	return e, nil
}

func toEmployee(req HireRequest) (domain.Employee, error) {
	e, err := domain.NewEmployeeFromLabel(req.ID, req.Name, req.Age, req.Role, req.Salary)
	if err != nil {
		return domain.Employee{}, err
	}
	return *e, nil
}

func (s *EmployeeService) add(ctx context.Context, e domain.Employee) error {
	ctx = logger.WithLogger(ctx, map[string]interface{}{"employee_id": e.ID})
	s.mu.Lock()
	err := s.repo.Add(e)
	s.mu.Unlock()
	if err != nil {
		logger.WarnLog(ctx, "Failed to hire employee %d: %v", e.ID, err)
		return err
	}
	logger.InfoLog(ctx, "Hired employee %d (%s)", e.ID, e.Role)
	return nil
}

// Dismiss removes the employee with the given id.
func (s *EmployeeService) Dismiss(ctx context.Context, id int) error {
	ctx = logger.WithLogger(ctx, map[string]interface{}{"employee_id": id})
	s.mu.Lock()
	err := s.repo.Remove(id)
	s.mu.Unlock()
	if err != nil {
		logger.WarnLog(ctx, "Failed to dismiss employee %d: %v", id, err)
		return err
	}
	logger.InfoLog(ctx, "Dismissed employee %d", id)
	return nil
}

func (s *EmployeeService) Get(ctx context.Context, id int) (domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.Get(id)
}

func (s *EmployeeService) List(ctx context.Context) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.List()
}

func (s *EmployeeService) Payroll(ctx context.Context) domain.Payroll {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.Payroll()
}

func (s *EmployeeService) Recent(ctx context.Context, count int) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repo.Recent(count)
}

// Import hires every request in order and stops at the first request that
// cannot be turned into an employee or added. It returns how many
// employees were added before that point.
func (s *EmployeeService) Import(ctx context.Context, reqs []HireRequest) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var buildErr error
	employees := dataflow.Map(ctx, dataflow.From(ctx, reqs...), toEmployee,
		dataflow.WithErrorHandler(func(err error) bool {
			buildErr = err
			cancel()
			return false
		}))

	added := 0
	err := dataflow.ForEach(ctx, employees, func(e domain.Employee) error {
		logger.DebugLog(ctx, "Importing employee %d", e.ID)
		if err := s.add(ctx, e); err != nil {
			return fmt.Errorf("import employee %d: %w", e.ID, err)
		}
		added++
		return nil
	})
	// Map may be one item ahead of ForEach; wait for it to stop before
	// reading buildErr.
	cancel()
	for range employees {
	}
	if buildErr != nil && (err == nil || errors.Is(err, context.Canceled)) {
		err = fmt.Errorf("import: %w", buildErr)
	}
	if err != nil {
		logger.ErrorLog(ctx, "Import stopped after %d employees: %v", added, err)
		return added, err
	}
	logger.InfoLog(ctx, "Imported %d employees", added)
	return added, nil
}
