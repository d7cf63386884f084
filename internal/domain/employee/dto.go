package employee

import (
	"github.com/sanadhr/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName          string           `json:"full_name"`
	IqamaNumber       string           `json:"iqama_number"`
	PassportNumber    *string          `json:"passport_number,omitempty"`
	ClientNumber      string           `json:"client_number"`
	ClientName        string           `json:"client_name"`
	BasicSalary       decimal.Decimal  `json:"basic_salary"`
	HRA               *decimal.Decimal `json:"hra,omitempty"`
	HRAMode           string           `json:"hra_mode"`
	TransportAllow    *decimal.Decimal `json:"transport_allowance,omitempty"`
	TransportMode     string           `json:"transport_allowance_mode"`
	FoodAllowance     *decimal.Decimal `json:"food_allowance,omitempty"`
	FoodMode          string           `json:"food_allowance_mode"`
	OtherAllowance    *decimal.Decimal `json:"other_allowance,omitempty"`
	OtherMode         string           `json:"other_allowance_mode"`
	ContractStartDate *string          `json:"contract_start_date,omitempty"`
	ContractEndDate   *string          `json:"contract_end_date,omitempty"`
}

var allowanceModes = []string{
	string(AllowanceModeProvided),
	string(AllowanceModePercentage),
	string(AllowanceModeManual),
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidIqamaNumber(r.IqamaNumber) {
		errs = append(errs, validator.ValidationError{Field: "iqama_number", Message: "must be 10 digits starting with 2"})
	}
	if validator.IsEmpty(r.ClientNumber) {
		errs = append(errs, validator.ValidationError{Field: "client_number", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	for field, mode := range map[string]string{
		"hra_mode":                 r.HRAMode,
		"transport_allowance_mode": r.TransportMode,
		"food_allowance_mode":      r.FoodMode,
		"other_allowance_mode":     r.OtherMode,
	} {
		if mode != "" && !validator.IsInSlice(mode, allowanceModes) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be provided, percentage or manual"})
		}
	}
	if r.ContractStartDate != nil {
		if _, ok := validator.IsValidDate(*r.ContractStartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "contract_start_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.ContractEndDate != nil {
		if _, ok := validator.IsValidDate(*r.ContractEndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "contract_end_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FullName          *string          `json:"full_name,omitempty"`
	PassportNumber    *string          `json:"passport_number,omitempty"`
	ClientName        *string          `json:"client_name,omitempty"`
	BasicSalary       *decimal.Decimal `json:"basic_salary,omitempty"`
	HRA               *decimal.Decimal `json:"hra,omitempty"`
	HRAMode           *string          `json:"hra_mode,omitempty"`
	TransportAllow    *decimal.Decimal `json:"transport_allowance,omitempty"`
	TransportMode     *string          `json:"transport_allowance_mode,omitempty"`
	FoodAllowance     *decimal.Decimal `json:"food_allowance,omitempty"`
	FoodMode          *string          `json:"food_allowance_mode,omitempty"`
	OtherAllowance    *decimal.Decimal `json:"other_allowance,omitempty"`
	OtherMode         *string          `json:"other_allowance_mode,omitempty"`
	EmploymentStatus  *string          `json:"employment_status,omitempty"`
	ContractStartDate *string          `json:"contract_start_date,omitempty"`
	ContractEndDate   *string          `json:"contract_end_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be blank"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.EmploymentStatus != nil &&
		*r.EmploymentStatus != string(EmploymentStatusActive) &&
		*r.EmploymentStatus != string(EmploymentStatusExited) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be active or exited"})
	}
	for field, mode := range map[string]*string{
		"hra_mode":                 r.HRAMode,
		"transport_allowance_mode": r.TransportMode,
		"food_allowance_mode":      r.FoodMode,
		"other_allowance_mode":     r.OtherMode,
	} {
		if mode != nil && !validator.IsInSlice(*mode, allowanceModes) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be provided, percentage or manual"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	FullName          string          `json:"full_name"`
	IqamaNumber       string          `json:"iqama_number"`
	PassportNumber    *string         `json:"passport_number,omitempty"`
	ClientNumber      string          `json:"client_number"`
	ClientName        string          `json:"client_name"`
	BasicSalary       decimal.Decimal `json:"basic_salary"`
	HRA               decimal.Decimal `json:"hra"`
	HRAMode           string          `json:"hra_mode"`
	TransportAllow    decimal.Decimal `json:"transport_allowance"`
	TransportMode     string          `json:"transport_allowance_mode"`
	FoodAllowance     decimal.Decimal `json:"food_allowance"`
	FoodMode          string          `json:"food_allowance_mode"`
	OtherAllowance    decimal.Decimal `json:"other_allowance"`
	OtherMode         string          `json:"other_allowance_mode"`
	TotalSalary       decimal.Decimal `json:"total_salary"`
	EmploymentStatus  string          `json:"employment_status"`
	ContractStartDate *string         `json:"contract_start_date,omitempty"`
	ContractEndDate   *string         `json:"contract_end_date,omitempty"`
}

type ListEmployeesFilter struct {
	ClientNumber *string
	Search       *string
	Page         int
	Limit        int
}

type ListEmployeesResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
