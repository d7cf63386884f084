package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrIqamaNumberExists   = errors.New("iqama number already registered")
	ErrInvalidIqamaNumber  = errors.New("iqama number must be 10 digits starting with 2")
	ErrEmployeeNotActive   = errors.New("employee is not active")
	ErrNoEmployeesForClient = errors.New("no employees found for client")
)
