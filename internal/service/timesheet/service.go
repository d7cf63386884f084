package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sanadhr/backoffice-go/internal/domain/employee"
	"github.com/sanadhr/backoffice-go/internal/domain/timesheet"
	"github.com/sanadhr/backoffice-go/internal/pkg/database"
	"github.com/sanadhr/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Generation defaults: a full month of working days, a flat onboarding
// incentive and the flat agency (etmam) cost per employee.
var (
	defaultWorkingDays = decimal.NewFromInt(30)
	defaultIncentive   = decimal.NewFromInt(100)
	defaultEtmamCost   = decimal.NewFromInt(1000)
)

type TimesheetServiceImpl struct {
	tx           database.TxRunner
	lineRepo     timesheet.LineRepository
	summaryRepo  timesheet.SummaryRepository
	employeeRepo employee.EmployeeRepository
}

func NewTimesheetService(
	tx database.TxRunner,
	lineRepo timesheet.LineRepository,
	summaryRepo timesheet.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		tx:           tx,
		lineRepo:     lineRepo,
		summaryRepo:  summaryRepo,
		employeeRepo: employeeRepo,
	}
}

// Generate materializes one timesheet line per active employee of the client
// for the target month, exactly once. The duplicate pre-check is an
// optimization; the unique constraint on (employee_id, timesheet_month) is
// the authoritative guard under concurrent calls.
func (s *TimesheetServiceImpl) Generate(ctx context.Context, req timesheet.GenerateRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	month := timesheet.MonthDate(req.MonthInt(), req.Year)

	exists, err := s.lineRepo.ExistsForClientMonth(ctx, req.ClientNumber, month)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing timesheet: %w", err)
	}
	if exists {
		return 0, timesheet.ErrAlreadyGenerated
	}

	employees, err := s.employeeRepo.GetActiveByClientNumber(ctx, req.ClientNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to get employees for client %s: %w", req.ClientNumber, err)
	}
	if len(employees) == 0 {
		return 0, employee.ErrNoEmployeesForClient
	}

	lines := make([]timesheet.Line, 0, len(employees))
	for _, emp := range employees {
		line := timesheet.Line{
			ID:             uuid.NewString(),
			EmployeeID:     emp.ID,
			ClientNumber:   req.ClientNumber,
			ClientName:     emp.ClientName,
			TimesheetMonth: month,
			BasicSalary:    emp.BasicSalary,
			TotalSalary:    emp.TotalSalary,
			WorkingDays:    defaultWorkingDays,
			OvertimeHours:  decimal.Zero,
			AbsentHours:    decimal.Zero,
			Incentive:      defaultIncentive,
			Penalty:        decimal.Zero,
			EtmamCost:      defaultEtmamCost,
			GeneratedBy:    req.GeneratedBy,
		}
		applyDerived(&line)
		lines = append(lines, line)
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.lineRepo.CreateBatch(txCtx, lines); err != nil {
			return err
		}
		return s.recomputeSummary(txCtx, req.ClientNumber, lines[0].ClientName, month)
	})
	if err != nil {
		return 0, err
	}

	return len(lines), nil
}

func (s *TimesheetServiceImpl) ListLines(ctx context.Context, clientNumber string, month, year int) ([]timesheet.LineResponse, error) {
	lines, err := s.lineRepo.ListByClientMonth(ctx, clientNumber, timesheet.MonthDate(month, year))
	if err != nil {
		return nil, err
	}

	result := make([]timesheet.LineResponse, 0, len(lines))
	for _, line := range lines {
		result = append(result, mapToLineResponse(line))
	}
	return result, nil
}

// UpdateLine applies an allow-listed patch to one line, recomputes its
// derived fields and re-aggregates the summary in the same transaction so the
// stored totals are never stale relative to the raw inputs.
func (s *TimesheetServiceImpl) UpdateLine(ctx context.Context, req timesheet.UpdateLineRequest) (timesheet.LineResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.LineResponse{}, err
	}

	line, err := s.lineRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.LineResponse{}, err
	}

	if req.WorkingDays != nil {
		line.WorkingDays = *req.WorkingDays
	}
	if req.OvertimeHours != nil {
		line.OvertimeHours = *req.OvertimeHours
	}
	if req.AbsentHours != nil {
		line.AbsentHours = *req.AbsentHours
	}
	if req.Incentive != nil {
		line.Incentive = *req.Incentive
	}
	if req.EtmamCost != nil {
		line.EtmamCost = *req.EtmamCost
	}
	if req.Penalty != nil {
		line.Penalty = *req.Penalty
	}
	if req.EditedBy != nil {
		line.EditedBy = req.EditedBy
	}
	applyDerived(&line)

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.lineRepo.Update(txCtx, line); err != nil {
			return err
		}
		if err := s.recomputeSummary(txCtx, line.ClientNumber, line.ClientName, line.TimesheetMonth); err != nil {
			return err
		}

		// A resubmitted line set moves the summary out of revision_required.
		current, err := s.summaryRepo.GetByClientMonth(txCtx, line.ClientNumber, line.TimesheetMonth)
		if err != nil {
			return err
		}
		if current.Status == timesheet.StatusRevisionRequired {
			return s.summaryRepo.UpdateStatus(txCtx, line.ClientNumber, line.TimesheetMonth, timesheet.StatusPending, nil)
		}
		return nil
	})
	if err != nil {
		return timesheet.LineResponse{}, err
	}

	return mapToLineResponse(line), nil
}

func (s *TimesheetServiceImpl) GetSummary(ctx context.Context, clientNumber string, month, year int) (timesheet.SummaryResponse, error) {
	summary, err := s.summaryRepo.GetByClientMonth(ctx, clientNumber, timesheet.MonthDate(month, year))
	if err != nil {
		return timesheet.SummaryResponse{}, err
	}
	return mapToSummaryResponse(summary), nil
}

// Approve closes the summary. Approving an already-approved summary is a
// no-op success; there is no transition out of approved.
func (s *TimesheetServiceImpl) Approve(ctx context.Context, req timesheet.ApproveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	month := timesheet.MonthDate(req.MonthInt(), req.Year)
	summary, err := s.summaryRepo.GetByClientMonth(ctx, req.ClientNumber, month)
	if err != nil {
		return err
	}

	if summary.Status == timesheet.StatusApproved {
		return nil
	}
	return s.summaryRepo.UpdateStatus(ctx, req.ClientNumber, month, timesheet.StatusApproved, nil)
}

// RequestRevision sends the summary back to Operations with a reason.
func (s *TimesheetServiceImpl) RequestRevision(ctx context.Context, req timesheet.RequestRevisionRequest) error {
	if validator.IsEmpty(req.RevisionReason) {
		return timesheet.ErrRevisionReasonRequired
	}
	if err := req.Validate(); err != nil {
		return err
	}

	month := timesheet.MonthDate(req.MonthInt(), req.Year)
	summary, err := s.summaryRepo.GetByClientMonth(ctx, req.ClientNumber, month)
	if err != nil {
		return err
	}

	if summary.Status == timesheet.StatusApproved {
		return timesheet.ErrSummaryAlreadyApproved
	}

	reason := req.RevisionReason
	return s.summaryRepo.UpdateStatus(ctx, req.ClientNumber, month, timesheet.StatusRevisionRequired, &reason)
}

// recomputeSummary runs the full-recompute aggregation for (client, month)
// and upserts the totals. Idempotent: safe to call repeatedly.
func (s *TimesheetServiceImpl) recomputeSummary(ctx context.Context, clientNumber, clientName string, month time.Time) error {
	lines, err := s.lineRepo.ListByClientMonth(ctx, clientNumber, month)
	if err != nil {
		return fmt.Errorf("failed to load lines for aggregation: %w", err)
	}

	totals := SummarizeLines(lines)
	_, err = s.summaryRepo.Upsert(ctx, timesheet.Summary{
		ClientNumber:        clientNumber,
		ClientName:          clientName,
		TimesheetMonth:      month,
		EmployeeCount:       totals.EmployeeCount,
		TotalBaseSalary:     totals.TotalBaseSalary,
		TotalAdjustedSalary: totals.TotalAdjustedSalary,
		TotalCost:           totals.TotalCost,
		VATAmount:           totals.VATAmount,
		GrandTotal:          totals.GrandTotal,
		Status:              timesheet.StatusPending,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert summary: %w", err)
	}
	return nil
}

// applyDerived recomputes a line's derived pay fields from its raw inputs.
func applyDerived(line *timesheet.Line) {
	derived := ComputeLine(LineInputs{
		BasicSalary:   line.BasicSalary,
		TotalSalary:   line.TotalSalary,
		WorkingDays:   line.WorkingDays,
		OvertimeHours: line.OvertimeHours,
		AbsentHours:   line.AbsentHours,
		Incentive:     line.Incentive,
		Penalty:       line.Penalty,
		EtmamCost:     line.EtmamCost,
	})
	line.OvertimePay = derived.OvertimePay
	line.Deductions = derived.Deductions
	line.AdjustedSalary = derived.AdjustedSalary
	line.TotalCost = derived.TotalCost
}

func mapToLineResponse(line timesheet.Line) timesheet.LineResponse {
	resp := timesheet.LineResponse{
		ID:             line.ID,
		EmployeeID:     line.EmployeeID,
		ClientNumber:   line.ClientNumber,
		ClientName:     line.ClientName,
		TimesheetMonth: line.TimesheetMonth.Format("2006-01-02"),
		BasicSalary:    line.BasicSalary,
		TotalSalary:    line.TotalSalary,
		WorkingDays:    line.WorkingDays,
		OvertimeHours:  line.OvertimeHours,
		AbsentHours:    line.AbsentHours,
		Incentive:      line.Incentive,
		Penalty:        line.Penalty,
		EtmamCost:      line.EtmamCost,
		OvertimePay:    line.OvertimePay,
		Deductions:     line.Deductions,
		AdjustedSalary: line.AdjustedSalary,
		TotalCost:      line.TotalCost,
		GeneratedBy:    line.GeneratedBy,
		EditedBy:       line.EditedBy,
	}
	if line.EmployeeName != nil {
		resp.EmployeeName = *line.EmployeeName
	}
	if line.IqamaNumber != nil {
		resp.IqamaNumber = *line.IqamaNumber
	}
	return resp
}

func mapToSummaryResponse(summary timesheet.Summary) timesheet.SummaryResponse {
	return timesheet.SummaryResponse{
		ID:                  summary.ID,
		ClientNumber:        summary.ClientNumber,
		ClientName:          summary.ClientName,
		TimesheetMonth:      summary.TimesheetMonth.Format("2006-01-02"),
		EmployeeCount:       summary.EmployeeCount,
		TotalBaseSalary:     summary.TotalBaseSalary,
		TotalAdjustedSalary: summary.TotalAdjustedSalary,
		TotalCost:           summary.TotalCost,
		VATAmount:           summary.VATAmount,
		GrandTotal:          summary.GrandTotal,
		Status:              string(summary.Status),
		RevisionReason:      summary.RevisionReason,
	}
}
