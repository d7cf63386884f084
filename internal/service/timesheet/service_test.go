package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/sanadhr/backoffice-go/internal/domain/employee"
	"github.com/sanadhr/backoffice-go/internal/domain/timesheet"
	"github.com/sanadhr/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== in-memory fakes =====

type fakeTxRunner struct{}

func (fakeTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLineRepo struct {
	lines map[string]timesheet.Line
}

func newFakeLineRepo() *fakeLineRepo {
	return &fakeLineRepo{lines: make(map[string]timesheet.Line)}
}

func (r *fakeLineRepo) ExistsForClientMonth(_ context.Context, clientNumber string, month time.Time) (bool, error) {
	for _, line := range r.lines {
		if line.ClientNumber == clientNumber && line.TimesheetMonth.Equal(month) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLineRepo) CreateBatch(_ context.Context, lines []timesheet.Line) error {
	// Mirrors the unique constraint on (employee_id, timesheet_month).
	for _, line := range lines {
		for _, existing := range r.lines {
			if existing.EmployeeID == line.EmployeeID && existing.TimesheetMonth.Equal(line.TimesheetMonth) {
				return timesheet.ErrAlreadyGenerated
			}
		}
	}
	for _, line := range lines {
		r.lines[line.ID] = line
	}
	return nil
}

func (r *fakeLineRepo) GetByID(_ context.Context, id string) (timesheet.Line, error) {
	line, ok := r.lines[id]
	if !ok {
		return timesheet.Line{}, timesheet.ErrLineNotFound
	}
	return line, nil
}

func (r *fakeLineRepo) ListByClientMonth(_ context.Context, clientNumber string, month time.Time) ([]timesheet.Line, error) {
	var result []timesheet.Line
	for _, line := range r.lines {
		if line.ClientNumber == clientNumber && line.TimesheetMonth.Equal(month) {
			result = append(result, line)
		}
	}
	return result, nil
}

func (r *fakeLineRepo) Update(_ context.Context, line timesheet.Line) error {
	if _, ok := r.lines[line.ID]; !ok {
		return timesheet.ErrLineNotFound
	}
	r.lines[line.ID] = line
	return nil
}

type fakeSummaryRepo struct {
	summaries map[string]timesheet.Summary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{summaries: make(map[string]timesheet.Summary)}
}

func summaryKey(clientNumber string, month time.Time) string {
	return clientNumber + "|" + month.Format("2006-01")
}

func (r *fakeSummaryRepo) GetByClientMonth(_ context.Context, clientNumber string, month time.Time) (timesheet.Summary, error) {
	summary, ok := r.summaries[summaryKey(clientNumber, month)]
	if !ok {
		return timesheet.Summary{}, timesheet.ErrSummaryNotFound
	}
	return summary, nil
}

func (r *fakeSummaryRepo) Upsert(_ context.Context, summary timesheet.Summary) (timesheet.Summary, error) {
	key := summaryKey(summary.ClientNumber, summary.TimesheetMonth)
	if existing, ok := r.summaries[key]; ok {
		summary.ID = existing.ID
		summary.Status = existing.Status
		summary.RevisionReason = existing.RevisionReason
	} else {
		summary.ID = key
	}
	r.summaries[key] = summary
	return summary, nil
}

func (r *fakeSummaryRepo) UpdateStatus(_ context.Context, clientNumber string, month time.Time, status timesheet.Status, revisionReason *string) error {
	key := summaryKey(clientNumber, month)
	summary, ok := r.summaries[key]
	if !ok {
		return timesheet.ErrSummaryNotFound
	}
	summary.Status = status
	summary.RevisionReason = revisionReason
	r.summaries[key] = summary
	return nil
}

type fakeEmployeeRepo struct {
	byClient map[string][]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByIqamaNumber(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetActiveByClientNumber(_ context.Context, clientNumber string) ([]employee.Employee, error) {
	return r.byClient[clientNumber], nil
}

func (r *fakeEmployeeRepo) List(context.Context, employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) Update(context.Context, employee.Employee) error { return nil }
func (r *fakeEmployeeRepo) SoftDelete(context.Context, string) error        { return nil }

// ===== fixtures =====

func testEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:           "emp-1",
			FullName:     "Ahmed Hassan",
			ClientNumber: "CL-100",
			ClientName:   "Al Noor Trading",
			BasicSalary:  dec("3000"),
			TotalSalary:  dec("3600"),
		},
		{
			ID:           "emp-2",
			FullName:     "Ravi Kumar",
			ClientNumber: "CL-100",
			ClientName:   "Al Noor Trading",
			BasicSalary:  dec("2500"),
			TotalSalary:  dec("3000"),
		},
	}
}

func newTestService(employees []employee.Employee) (timesheet.TimesheetService, *fakeLineRepo, *fakeSummaryRepo) {
	lineRepo := newFakeLineRepo()
	summaryRepo := newFakeSummaryRepo()
	employeeRepo := &fakeEmployeeRepo{byClient: map[string][]employee.Employee{}}
	for _, emp := range employees {
		employeeRepo.byClient[emp.ClientNumber] = append(employeeRepo.byClient[emp.ClientNumber], emp)
	}
	svc := NewTimesheetService(fakeTxRunner{}, lineRepo, summaryRepo, employeeRepo)
	return svc, lineRepo, summaryRepo
}

func generateReq() timesheet.GenerateRequest {
	return timesheet.GenerateRequest{Month: "08", Year: 2026, ClientNumber: "CL-100", GeneratedBy: "user-ops"}
}

// ===== generation =====

func TestGenerate_CreatesLinePerEmployeeWithDefaults(t *testing.T) {
	svc, lineRepo, summaryRepo := newTestService(testEmployees())
	ctx := context.Background()

	count, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, lineRepo.lines, 2)

	month := timesheet.MonthDate(8, 2026)
	lines, err := lineRepo.ListByClientMonth(ctx, "CL-100", month)
	require.NoError(t, err)

	for _, line := range lines {
		assertDecimal(t, "30", line.WorkingDays, "working days")
		assertDecimal(t, "0", line.OvertimeHours, "overtime hours")
		assertDecimal(t, "0", line.AbsentHours, "absent hours")
		assertDecimal(t, "100", line.Incentive, "incentive")
		assertDecimal(t, "1000", line.EtmamCost, "etmam cost")
		assertDecimal(t, "0", line.Penalty, "penalty")
		assert.Equal(t, "user-ops", line.GeneratedBy)
		// defaults: full month, no overtime/absence => adjusted = total + incentive
		assert.True(t, line.AdjustedSalary.Equal(line.TotalSalary.Add(dec("100"))))
		assert.True(t, line.TotalCost.Equal(line.AdjustedSalary.Add(dec("1000"))))
	}

	summary, err := summaryRepo.GetByClientMonth(ctx, "CL-100", month)
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPending, summary.Status)
	assert.Equal(t, 2, summary.EmployeeCount)
	// base 3600+3000; adjusted 3700+3100; cost 4700+4100
	assertDecimal(t, "6600", summary.TotalBaseSalary, "total base salary")
	assertDecimal(t, "6800", summary.TotalAdjustedSalary, "total adjusted salary")
	assertDecimal(t, "8800", summary.TotalCost, "total cost")
	assertDecimal(t, "1320", summary.VATAmount, "vat amount")
	assertDecimal(t, "10120", summary.GrandTotal, "grand total")
}

func TestGenerate_RejectsDuplicateMonth(t *testing.T) {
	svc, lineRepo, _ := newTestService(testEmployees())
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)

	_, err = svc.Generate(ctx, generateReq())
	assert.ErrorIs(t, err, timesheet.ErrAlreadyGenerated)
	assert.Len(t, lineRepo.lines, 2, "line count must stay equal to employee count")
}

func TestGenerate_NoEmployees(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.Generate(context.Background(), generateReq())
	assert.ErrorIs(t, err, employee.ErrNoEmployeesForClient)
}

func TestGenerate_ValidatesPeriod(t *testing.T) {
	svc, _, _ := newTestService(testEmployees())

	tests := []struct {
		name string
		req  timesheet.GenerateRequest
	}{
		{"bad month", timesheet.GenerateRequest{Month: "13", Year: 2026, ClientNumber: "CL-100"}},
		{"one-digit month", timesheet.GenerateRequest{Month: "8", Year: 2026, ClientNumber: "CL-100"}},
		{"year too small", timesheet.GenerateRequest{Month: "08", Year: 1999, ClientNumber: "CL-100"}},
		{"blank client", timesheet.GenerateRequest{Month: "08", Year: 2026, ClientNumber: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}
}

// ===== line edit =====

func TestUpdateLine_RecomputesDerivedFieldsAndSummary(t *testing.T) {
	svc, lineRepo, summaryRepo := newTestService(testEmployees())
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)

	var target timesheet.Line
	for _, line := range lineRepo.lines {
		if line.EmployeeID == "emp-1" {
			target = line
		}
	}
	require.NotEmpty(t, target.ID)

	editor := "user-fin"
	patch := timesheet.UpdateLineRequest{
		ID:            target.ID,
		WorkingDays:   decPtr("30"),
		OvertimeHours: decPtr("10"),
		AbsentHours:   decPtr("0"),
		Incentive:     decPtr("100"),
		EtmamCost:     decPtr("1000"),
		Penalty:       decPtr("0"),
		EditedBy:      &editor,
	}

	resp, err := svc.UpdateLine(ctx, patch)
	require.NoError(t, err)

	// basic 3000 / total 3600 with 10 overtime hours
	assertDecimal(t, "187.50", resp.OvertimePay, "overtime pay")
	assertDecimal(t, "3887.50", resp.AdjustedSalary, "adjusted salary")
	assertDecimal(t, "4887.50", resp.TotalCost, "total cost")
	require.NotNil(t, resp.EditedBy)
	assert.Equal(t, "user-fin", *resp.EditedBy)

	stored, err := lineRepo.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assertDecimal(t, "10", stored.OvertimeHours, "stored overtime hours")
	assertDecimal(t, "3887.50", stored.AdjustedSalary, "stored adjusted salary")

	summary, err := summaryRepo.GetByClientMonth(ctx, "CL-100", timesheet.MonthDate(8, 2026))
	require.NoError(t, err)
	// emp-1 cost 4887.50 + emp-2 cost 4100
	assertDecimal(t, "8987.50", summary.TotalCost, "summary total cost")
	assertDecimal(t, "1348.13", summary.VATAmount, "summary vat")
}

func TestUpdateLine_NotFound(t *testing.T) {
	svc, _, _ := newTestService(testEmployees())

	_, err := svc.UpdateLine(context.Background(), timesheet.UpdateLineRequest{
		ID:          "missing",
		WorkingDays: decPtr("20"),
	})
	assert.ErrorIs(t, err, timesheet.ErrLineNotFound)
}

func TestUpdateLine_RejectsNegativeValues(t *testing.T) {
	svc, lineRepo, _ := newTestService(testEmployees())
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)

	var target timesheet.Line
	for _, line := range lineRepo.lines {
		target = line
		break
	}

	_, err = svc.UpdateLine(ctx, timesheet.UpdateLineRequest{ID: target.ID, Penalty: decPtr("-5")})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)

	stored, _ := lineRepo.GetByID(ctx, target.ID)
	assertDecimal(t, "0", stored.Penalty, "penalty must be unchanged")
}

func TestUpdateLine_ResubmitsRevisionRequiredSummary(t *testing.T) {
	svc, lineRepo, summaryRepo := newTestService(testEmployees())
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)

	err = svc.RequestRevision(ctx, timesheet.RequestRevisionRequest{
		ClientNumber: "CL-100", Month: "08", Year: 2026, RevisionReason: "overtime hours look wrong",
	})
	require.NoError(t, err)

	var target timesheet.Line
	for _, line := range lineRepo.lines {
		target = line
		break
	}
	_, err = svc.UpdateLine(ctx, timesheet.UpdateLineRequest{ID: target.ID, OvertimeHours: decPtr("2")})
	require.NoError(t, err)

	summary, err := summaryRepo.GetByClientMonth(ctx, "CL-100", timesheet.MonthDate(8, 2026))
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPending, summary.Status)
	assert.Nil(t, summary.RevisionReason)
}

// ===== approval workflow =====

func TestApprove(t *testing.T) {
	svc, _, summaryRepo := newTestService(testEmployees())
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)

	approveReq := timesheet.ApproveRequest{ClientNumber: "CL-100", Month: "08", Year: 2026}
	require.NoError(t, svc.Approve(ctx, approveReq))

	summary, err := summaryRepo.GetByClientMonth(ctx, "CL-100", timesheet.MonthDate(8, 2026))
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusApproved, summary.Status)

	// Approving an approved summary is a no-op success.
	assert.NoError(t, svc.Approve(ctx, approveReq))
}

func TestApprove_SummaryNotFound(t *testing.T) {
	svc, _, _ := newTestService(testEmployees())

	err := svc.Approve(context.Background(), timesheet.ApproveRequest{ClientNumber: "CL-999", Month: "08", Year: 2026})
	assert.ErrorIs(t, err, timesheet.ErrSummaryNotFound)
}

func TestRequestRevision(t *testing.T) {
	svc, _, summaryRepo := newTestService(testEmployees())
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)

	err = svc.RequestRevision(ctx, timesheet.RequestRevisionRequest{
		ClientNumber: "CL-100", Month: "08", Year: 2026, RevisionReason: "absent hours missing for two employees",
	})
	require.NoError(t, err)

	summary, err := summaryRepo.GetByClientMonth(ctx, "CL-100", timesheet.MonthDate(8, 2026))
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusRevisionRequired, summary.Status)
	require.NotNil(t, summary.RevisionReason)
	assert.Equal(t, "absent hours missing for two employees", *summary.RevisionReason)
}

func TestRequestRevision_BlankReason(t *testing.T) {
	svc, _, summaryRepo := newTestService(testEmployees())
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)

	for _, reason := range []string{"", "   ", "\t"} {
		err := svc.RequestRevision(ctx, timesheet.RequestRevisionRequest{
			ClientNumber: "CL-100", Month: "08", Year: 2026, RevisionReason: reason,
		})
		assert.ErrorIs(t, err, timesheet.ErrRevisionReasonRequired)
	}

	summary, err := summaryRepo.GetByClientMonth(ctx, "CL-100", timesheet.MonthDate(8, 2026))
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusPending, summary.Status, "status must not change on a refused revision")
}

func TestRequestRevision_ApprovedSummaryIsClosed(t *testing.T) {
	svc, _, _ := newTestService(testEmployees())
	ctx := context.Background()

	_, err := svc.Generate(ctx, generateReq())
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, timesheet.ApproveRequest{ClientNumber: "CL-100", Month: "08", Year: 2026}))

	err = svc.RequestRevision(ctx, timesheet.RequestRevisionRequest{
		ClientNumber: "CL-100", Month: "08", Year: 2026, RevisionReason: "late correction",
	})
	assert.ErrorIs(t, err, timesheet.ErrSummaryAlreadyApproved)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
