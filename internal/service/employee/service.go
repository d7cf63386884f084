package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sanadhr/backoffice-go/internal/domain/employee"
	"github.com/sanadhr/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	_, err := s.employeeRepo.GetByIqamaNumber(ctx, req.IqamaNumber)
	if err == nil {
		return employee.EmployeeResponse{}, employee.ErrIqamaNumberExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check iqama number: %w", err)
	}

	emp := employee.Employee{
		ID:               uuid.NewString(),
		FullName:         req.FullName,
		IqamaNumber:      req.IqamaNumber,
		PassportNumber:   req.PassportNumber,
		ClientNumber:     req.ClientNumber,
		ClientName:       req.ClientName,
		BasicSalary:      req.BasicSalary,
		HRA:              valueOrZero(req.HRA),
		HRAMode:          modeOrDefault(req.HRAMode),
		TransportAllow:   valueOrZero(req.TransportAllow),
		TransportMode:    modeOrDefault(req.TransportMode),
		FoodAllowance:    valueOrZero(req.FoodAllowance),
		FoodMode:         modeOrDefault(req.FoodMode),
		OtherAllowance:   valueOrZero(req.OtherAllowance),
		OtherMode:        modeOrDefault(req.OtherMode),
		EmploymentStatus: employee.EmploymentStatusActive,
	}
	if req.ContractStartDate != nil {
		if date, ok := validator.IsValidDate(*req.ContractStartDate); ok {
			emp.ContractStartDate = &date
		}
	}
	if req.ContractEndDate != nil {
		if date, ok := validator.IsValidDate(*req.ContractEndDate); ok {
			emp.ContractEndDate = &date
		}
	}
	emp.RecalculateSalary()

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, mapToEmployeeResponse(emp))
	}
	return employee.ListEmployeesResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.PassportNumber != nil {
		emp.PassportNumber = req.PassportNumber
	}
	if req.ClientName != nil {
		emp.ClientName = *req.ClientName
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}
	if req.HRA != nil {
		emp.HRA = *req.HRA
	}
	if req.HRAMode != nil {
		emp.HRAMode = employee.AllowanceMode(*req.HRAMode)
	}
	if req.TransportAllow != nil {
		emp.TransportAllow = *req.TransportAllow
	}
	if req.TransportMode != nil {
		emp.TransportMode = employee.AllowanceMode(*req.TransportMode)
	}
	if req.FoodAllowance != nil {
		emp.FoodAllowance = *req.FoodAllowance
	}
	if req.FoodMode != nil {
		emp.FoodMode = employee.AllowanceMode(*req.FoodMode)
	}
	if req.OtherAllowance != nil {
		emp.OtherAllowance = *req.OtherAllowance
	}
	if req.OtherMode != nil {
		emp.OtherMode = employee.AllowanceMode(*req.OtherMode)
	}
	if req.EmploymentStatus != nil {
		emp.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}
	if req.ContractStartDate != nil {
		if date, ok := validator.IsValidDate(*req.ContractStartDate); ok {
			emp.ContractStartDate = &date
		}
	}
	if req.ContractEndDate != nil {
		if date, ok := validator.IsValidDate(*req.ContractEndDate); ok {
			emp.ContractEndDate = &date
		}
	}
	emp.RecalculateSalary()

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.SoftDelete(ctx, id)
}

func valueOrZero(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return *value
}

func modeOrDefault(mode string) employee.AllowanceMode {
	if mode == "" {
		return employee.AllowanceModeProvided
	}
	return employee.AllowanceMode(mode)
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               emp.ID,
		FullName:         emp.FullName,
		IqamaNumber:      emp.IqamaNumber,
		PassportNumber:   emp.PassportNumber,
		ClientNumber:     emp.ClientNumber,
		ClientName:       emp.ClientName,
		BasicSalary:      emp.BasicSalary,
		HRA:              emp.HRA,
		HRAMode:          string(emp.HRAMode),
		TransportAllow:   emp.TransportAllow,
		TransportMode:    string(emp.TransportMode),
		FoodAllowance:    emp.FoodAllowance,
		FoodMode:         string(emp.FoodMode),
		OtherAllowance:   emp.OtherAllowance,
		OtherMode:        string(emp.OtherMode),
		TotalSalary:      emp.TotalSalary,
		EmploymentStatus: string(emp.EmploymentStatus),
	}
	if emp.ContractStartDate != nil {
		start := emp.ContractStartDate.Format("2006-01-02")
		resp.ContractStartDate = &start
	}
	if emp.ContractEndDate != nil {
		end := emp.ContractEndDate.Format("2006-01-02")
		resp.ContractEndDate = &end
	}
	return resp
}
