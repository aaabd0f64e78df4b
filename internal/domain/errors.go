package domain

import "errors"

var (
	// ErrDuplicateID is returned when an employee id is already registered.
	ErrDuplicateID = errors.New("employee ID already exists")
	// ErrEmployeeNotFound is returned when no employee has the requested id.
	ErrEmployeeNotFound = errors.New("employee ID not found")
	// ErrInvalidRole is returned for role labels outside the known set.
	ErrInvalidRole = errors.New("invalid role")
)
