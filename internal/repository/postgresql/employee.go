package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sanadhr/backoffice-go/internal/domain/employee"
	"github.com/sanadhr/backoffice-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, full_name, iqama_number, passport_number, client_number, client_name,
		basic_salary, hra, hra_mode, transport_allowance, transport_allowance_mode,
		food_allowance, food_allowance_mode, other_allowance, other_allowance_mode,
		total_salary, employment_status, contract_start_date, contract_end_date,
		created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.FullName,
		&emp.IqamaNumber,
		&emp.PassportNumber,
		&emp.ClientNumber,
		&emp.ClientName,
		&emp.BasicSalary,
		&emp.HRA,
		&emp.HRAMode,
		&emp.TransportAllow,
		&emp.TransportMode,
		&emp.FoodAllowance,
		&emp.FoodMode,
		&emp.OtherAllowance,
		&emp.OtherMode,
		&emp.TotalSalary,
		&emp.EmploymentStatus,
		&emp.ContractStartDate,
		&emp.ContractEndDate,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.DeletedAt,
	)
	return emp, err
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByIqamaNumber(ctx context.Context, iqamaNumber string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE iqama_number = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, iqamaNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetActiveByClientNumber(ctx context.Context, clientNumber string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE client_number = $1 AND employment_status = 'active' AND deleted_at IS NULL
		ORDER BY full_name`

	rows, err := q.Query(ctx, query, clientNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE deleted_at IS NULL`
	args := []interface{}{}
	argPos := 1

	if filter.ClientNumber != nil {
		where += fmt.Sprintf(" AND client_number = $%d", argPos)
		args = append(args, *filter.ClientNumber)
		argPos++
	}
	if filter.Search != nil {
		where += fmt.Sprintf(" AND (full_name ILIKE $%d OR iqama_number ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + employeeColumns + ` FROM employees` + where +
		fmt.Sprintf(" ORDER BY full_name LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	return employees, total, rows.Err()
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, full_name, iqama_number, passport_number, client_number, client_name,
			basic_salary, hra, hra_mode, transport_allowance, transport_allowance_mode,
			food_allowance, food_allowance_mode, other_allowance, other_allowance_mode,
			total_salary, employment_status, contract_start_date, contract_end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.FullName,
		newEmployee.IqamaNumber,
		newEmployee.PassportNumber,
		newEmployee.ClientNumber,
		newEmployee.ClientName,
		newEmployee.BasicSalary,
		newEmployee.HRA,
		newEmployee.HRAMode,
		newEmployee.TransportAllow,
		newEmployee.TransportMode,
		newEmployee.FoodAllowance,
		newEmployee.FoodMode,
		newEmployee.OtherAllowance,
		newEmployee.OtherMode,
		newEmployee.TotalSalary,
		newEmployee.EmploymentStatus,
		newEmployee.ContractStartDate,
		newEmployee.ContractEndDate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return employee.Employee{}, employee.ErrIqamaNumberExists
		}
		return employee.Employee{}, err
	}
	return created, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, passport_number = $2, client_name = $3,
			basic_salary = $4, hra = $5, hra_mode = $6,
			transport_allowance = $7, transport_allowance_mode = $8,
			food_allowance = $9, food_allowance_mode = $10,
			other_allowance = $11, other_allowance_mode = $12,
			total_salary = $13, employment_status = $14,
			contract_start_date = $15, contract_end_date = $16,
			updated_at = NOW()
		WHERE id = $17 AND deleted_at IS NULL`

	tag, err := q.Exec(ctx, query,
		emp.FullName,
		emp.PassportNumber,
		emp.ClientName,
		emp.BasicSalary,
		emp.HRA,
		emp.HRAMode,
		emp.TransportAllow,
		emp.TransportMode,
		emp.FoodAllowance,
		emp.FoodMode,
		emp.OtherAllowance,
		emp.OtherMode,
		emp.TotalSalary,
		emp.EmploymentStatus,
		emp.ContractStartDate,
		emp.ContractEndDate,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
