package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one employee's timesheet for one month under one client.
// Raw adjustment fields are entered by Operations/Finance; derived fields are
// recomputed from them on every write.
type Line struct {
	ID             string
	EmployeeID     string
	ClientNumber   string
	ClientName     string
	TimesheetMonth time.Time // first of month

	// Salary snapshot at generation time
	BasicSalary decimal.Decimal
	TotalSalary decimal.Decimal

	// Raw monthly inputs
	WorkingDays   decimal.Decimal
	OvertimeHours decimal.Decimal
	AbsentHours   decimal.Decimal
	Incentive     decimal.Decimal
	Penalty       decimal.Decimal
	EtmamCost     decimal.Decimal

	// Derived
	OvertimePay    decimal.Decimal
	Deductions     decimal.Decimal
	AdjustedSalary decimal.Decimal
	TotalCost      decimal.Decimal

	GeneratedBy string
	EditedBy    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	IqamaNumber  *string
}

// Status is the summary's approval state.
type Status string

const (
	StatusDraft            Status = "draft"
	StatusPending          Status = "pending"
	StatusApproved         Status = "approved"
	StatusRevisionRequired Status = "revision_required"
)

// Summary is the per-client monthly rollup of timesheet lines.
type Summary struct {
	ID                  string
	ClientNumber        string
	ClientName          string
	TimesheetMonth      time.Time
	EmployeeCount       int
	TotalBaseSalary     decimal.Decimal
	TotalAdjustedSalary decimal.Decimal
	TotalCost           decimal.Decimal
	VATAmount           decimal.Decimal
	GrandTotal          decimal.Decimal
	Status              Status
	RevisionReason      *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// MonthDate builds the first-of-month date identifying a timesheet period.
func MonthDate(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}
