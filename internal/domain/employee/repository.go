package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByIqamaNumber(ctx context.Context, iqamaNumber string) (Employee, error)
	GetActiveByClientNumber(ctx context.Context, clientNumber string) ([]Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, int64, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	SoftDelete(ctx context.Context, id string) error
}
