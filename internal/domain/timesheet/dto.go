package timesheet

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/sanadhr/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	Month        string `json:"month"` // two-digit "01".."12"
	Year         int    `json:"year"`
	ClientNumber string `json:"client_number"`
	GeneratedBy  string `json:"-"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a two-digit month between 01 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if validator.IsEmpty(r.ClientNumber) {
		errs = append(errs, validator.ValidationError{Field: "client_number", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MonthInt returns the numeric month. Call Validate first.
func (r *GenerateRequest) MonthInt() int {
	m, _ := strconv.Atoi(r.Month)
	return m
}

// UpdateLineRequest is the allow-listed patch applied to one line.
type UpdateLineRequest struct {
	ID            string           `json:"-"`
	WorkingDays   *decimal.Decimal `json:"working_days,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	AbsentHours   *decimal.Decimal `json:"absent_hours,omitempty"`
	Incentive     *decimal.Decimal `json:"incentive,omitempty"`
	EtmamCost     *decimal.Decimal `json:"etmam_cost,omitempty"`
	Penalty       *decimal.Decimal `json:"penalty,omitempty"`
	EditedBy      *string          `json:"edited_by,omitempty"`
}

var editableLineFields = map[string]struct{}{
	"working_days":   {},
	"overtime_hours": {},
	"absent_hours":   {},
	"incentive":      {},
	"etmam_cost":     {},
	"penalty":        {},
	"edited_by":      {},
}

// ParseLineUpdate decodes a patch body, refusing any key outside the editable
// allow-list. The whole patch is rejected when one key is disallowed.
func ParseLineUpdate(data []byte) (UpdateLineRequest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return UpdateLineRequest{}, validator.ValidationErrors{
			{Field: "updates", Message: "must be a JSON object"},
		}
	}

	var disallowed []string
	for key := range raw {
		if _, ok := editableLineFields[key]; !ok {
			disallowed = append(disallowed, key)
		}
	}
	if len(disallowed) > 0 {
		sort.Strings(disallowed)
		var errs validator.ValidationErrors
		for _, key := range disallowed {
			errs = append(errs, validator.ValidationError{Field: key, Message: "is not an editable timesheet field"})
		}
		return UpdateLineRequest{}, errs
	}

	if len(raw) == 0 {
		return UpdateLineRequest{}, validator.ValidationErrors{
			{Field: "updates", Message: "at least one editable field is required"},
		}
	}

	var req UpdateLineRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return UpdateLineRequest{}, validator.ValidationErrors{
			{Field: "updates", Message: "contains a malformed value"},
		}
	}
	return req, nil
}

func (r *UpdateLineRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*decimal.Decimal{
		"working_days":   r.WorkingDays,
		"overtime_hours": r.OvertimeHours,
		"absent_hours":   r.AbsentHours,
		"incentive":      r.Incentive,
		"etmam_cost":     r.EtmamCost,
		"penalty":        r.Penalty,
	} {
		if value != nil && value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.WorkingDays != nil && r.WorkingDays.GreaterThan(decimal.NewFromInt(30)) {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be between 0 and 30"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveRequest struct {
	ClientNumber string `json:"client_number"`
	Month        string `json:"month"`
	Year         int    `json:"year"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientNumber) {
		errs = append(errs, validator.ValidationError{Field: "client_number", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a two-digit month between 01 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *ApproveRequest) MonthInt() int {
	m, _ := strconv.Atoi(r.Month)
	return m
}

type RequestRevisionRequest struct {
	ClientNumber   string `json:"client_number"`
	Month          string `json:"month"`
	Year           int    `json:"year"`
	RevisionReason string `json:"revision_reason"`
}

func (r *RequestRevisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientNumber) {
		errs = append(errs, validator.ValidationError{Field: "client_number", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a two-digit month between 01 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *RequestRevisionRequest) MonthInt() int {
	m, _ := strconv.Atoi(r.Month)
	return m
}

type LineResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	IqamaNumber    string          `json:"iqama_number,omitempty"`
	ClientNumber   string          `json:"client_number"`
	ClientName     string          `json:"client_name"`
	TimesheetMonth string          `json:"timesheet_month"`
	BasicSalary    decimal.Decimal `json:"basic_salary"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
	WorkingDays    decimal.Decimal `json:"working_days"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	AbsentHours    decimal.Decimal `json:"absent_hours"`
	Incentive      decimal.Decimal `json:"incentive"`
	Penalty        decimal.Decimal `json:"penalty"`
	EtmamCost      decimal.Decimal `json:"etmam_cost"`
	OvertimePay    decimal.Decimal `json:"overtime_pay"`
	Deductions     decimal.Decimal `json:"deductions"`
	AdjustedSalary decimal.Decimal `json:"adjusted_salary"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	GeneratedBy    string          `json:"generated_by"`
	EditedBy       *string         `json:"edited_by,omitempty"`
}

type SummaryResponse struct {
	ID                  string          `json:"id"`
	ClientNumber        string          `json:"client_number"`
	ClientName          string          `json:"client_name"`
	TimesheetMonth      string          `json:"timesheet_month"`
	EmployeeCount       int             `json:"employee_count"`
	TotalBaseSalary     decimal.Decimal `json:"total_base_salary"`
	TotalAdjustedSalary decimal.Decimal `json:"total_adjusted_salary"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	VATAmount           decimal.Decimal `json:"vat_amount"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
	Status              string          `json:"status"`
	RevisionReason      *string         `json:"revision_reason,omitempty"`
}
