package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	FullName          string
	IqamaNumber       string
	PassportNumber    *string
	ClientNumber      string
	ClientName        string
	BasicSalary       decimal.Decimal
	HRA               decimal.Decimal
	HRAMode           AllowanceMode
	TransportAllow    decimal.Decimal
	TransportMode     AllowanceMode
	FoodAllowance     decimal.Decimal
	FoodMode          AllowanceMode
	OtherAllowance    decimal.Decimal
	OtherMode         AllowanceMode
	TotalSalary       decimal.Decimal
	EmploymentStatus  EmploymentStatus
	ContractStartDate *time.Time
	ContractEndDate   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// AllowanceMode controls how an allowance figure is sourced: carried over
// from the contract ("provided"), derived as a fixed share of basic salary
// ("percentage"), or keyed in by HR ("manual").
type AllowanceMode string

const (
	AllowanceModeProvided   AllowanceMode = "provided"
	AllowanceModePercentage AllowanceMode = "percentage"
	AllowanceModeManual     AllowanceMode = "manual"
)

type EmploymentStatus string

const (
	EmploymentStatusActive EmploymentStatus = "active"
	EmploymentStatusExited EmploymentStatus = "exited"
)

// Percentage-mode shares of basic salary.
var (
	hraShareOfBasic       = decimal.NewFromFloat(0.25)
	transportShareOfBasic = decimal.NewFromFloat(0.10)
)

// RecalculateSalary re-derives percentage-mode allowances from basic salary
// and restores the total-salary invariant:
// total = basic + HRA + transport + food + other.
func (e *Employee) RecalculateSalary() {
	if e.HRAMode == AllowanceModePercentage {
		e.HRA = e.BasicSalary.Mul(hraShareOfBasic).Round(2)
	}
	if e.TransportMode == AllowanceModePercentage {
		e.TransportAllow = e.BasicSalary.Mul(transportShareOfBasic).Round(2)
	}

	e.TotalSalary = e.BasicSalary.
		Add(e.HRA).
		Add(e.TransportAllow).
		Add(e.FoodAllowance).
		Add(e.OtherAllowance).
		Round(2)
}
