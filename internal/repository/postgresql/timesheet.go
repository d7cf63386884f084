package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sanadhr/backoffice-go/internal/domain/timesheet"
	"github.com/sanadhr/backoffice-go/internal/pkg/database"
)

type lineRepositoryImpl struct {
	db *database.DB
}

func NewLineRepository(db *database.DB) timesheet.LineRepository {
	return &lineRepositoryImpl{db: db}
}

const lineColumns = `l.id, l.employee_id, l.client_number, l.client_name, l.timesheet_month,
		l.basic_salary, l.total_salary,
		l.working_days, l.overtime_hours, l.absent_hours, l.incentive, l.penalty, l.etmam_cost,
		l.overtime_pay, l.deductions, l.adjusted_salary, l.total_cost,
		l.generated_by, l.edited_by, l.created_at, l.updated_at,
		e.full_name, e.iqama_number`

func scanLine(row pgx.Row) (timesheet.Line, error) {
	var line timesheet.Line
	err := row.Scan(
		&line.ID,
		&line.EmployeeID,
		&line.ClientNumber,
		&line.ClientName,
		&line.TimesheetMonth,
		&line.BasicSalary,
		&line.TotalSalary,
		&line.WorkingDays,
		&line.OvertimeHours,
		&line.AbsentHours,
		&line.Incentive,
		&line.Penalty,
		&line.EtmamCost,
		&line.OvertimePay,
		&line.Deductions,
		&line.AdjustedSalary,
		&line.TotalCost,
		&line.GeneratedBy,
		&line.EditedBy,
		&line.CreatedAt,
		&line.UpdatedAt,
		&line.EmployeeName,
		&line.IqamaNumber,
	)
	return line, err
}

func (r *lineRepositoryImpl) ExistsForClientMonth(ctx context.Context, clientNumber string, month time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM timesheet_lines WHERE client_number = $1 AND timesheet_month = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, clientNumber, month).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *lineRepositoryImpl) CreateBatch(ctx context.Context, lines []timesheet.Line) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_lines (
			id, employee_id, client_number, client_name, timesheet_month,
			basic_salary, total_salary,
			working_days, overtime_hours, absent_hours, incentive, penalty, etmam_cost,
			overtime_pay, deductions, adjusted_salary, total_cost,
			generated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	for _, line := range lines {
		_, err := q.Exec(ctx, query,
			line.ID,
			line.EmployeeID,
			line.ClientNumber,
			line.ClientName,
			line.TimesheetMonth,
			line.BasicSalary,
			line.TotalSalary,
			line.WorkingDays,
			line.OvertimeHours,
			line.AbsentHours,
			line.Incentive,
			line.Penalty,
			line.EtmamCost,
			line.OvertimePay,
			line.Deductions,
			line.AdjustedSalary,
			line.TotalCost,
			line.GeneratedBy,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			// Unique constraint on (employee_id, timesheet_month) is the
			// authoritative duplicate guard under concurrent generation.
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return timesheet.ErrAlreadyGenerated
			}
			return err
		}
	}
	return nil
}

func (r *lineRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineColumns + `
		FROM timesheet_lines l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1`

	line, err := scanLine(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Line{}, timesheet.ErrLineNotFound
		}
		return timesheet.Line{}, err
	}
	return line, nil
}

func (r *lineRepositoryImpl) ListByClientMonth(ctx context.Context, clientNumber string, month time.Time) ([]timesheet.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + lineColumns + `
		FROM timesheet_lines l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.client_number = $1 AND l.timesheet_month = $2
		ORDER BY e.full_name`

	rows, err := q.Query(ctx, query, clientNumber, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []timesheet.Line
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *lineRepositoryImpl) Update(ctx context.Context, line timesheet.Line) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheet_lines
		SET working_days = $1, overtime_hours = $2, absent_hours = $3,
			incentive = $4, penalty = $5, etmam_cost = $6,
			overtime_pay = $7, deductions = $8, adjusted_salary = $9, total_cost = $10,
			edited_by = $11, updated_at = NOW()
		WHERE id = $12`

	tag, err := q.Exec(ctx, query,
		line.WorkingDays,
		line.OvertimeHours,
		line.AbsentHours,
		line.Incentive,
		line.Penalty,
		line.EtmamCost,
		line.OvertimePay,
		line.Deductions,
		line.AdjustedSalary,
		line.TotalCost,
		line.EditedBy,
		line.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrLineNotFound
	}
	return nil
}

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) timesheet.SummaryRepository {
	return &summaryRepositoryImpl{db: db}
}

const summaryColumns = `id, client_number, client_name, timesheet_month, employee_count,
		total_base_salary, total_adjusted_salary, total_cost, vat_amount, grand_total,
		status, revision_reason, created_at, updated_at`

func scanSummary(row pgx.Row) (timesheet.Summary, error) {
	var summary timesheet.Summary
	err := row.Scan(
		&summary.ID,
		&summary.ClientNumber,
		&summary.ClientName,
		&summary.TimesheetMonth,
		&summary.EmployeeCount,
		&summary.TotalBaseSalary,
		&summary.TotalAdjustedSalary,
		&summary.TotalCost,
		&summary.VATAmount,
		&summary.GrandTotal,
		&summary.Status,
		&summary.RevisionReason,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	return summary, err
}

func (r *summaryRepositoryImpl) GetByClientMonth(ctx context.Context, clientNumber string, month time.Time) (timesheet.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + summaryColumns + ` FROM timesheet_summaries WHERE client_number = $1 AND timesheet_month = $2`

	summary, err := scanSummary(q.QueryRow(ctx, query, clientNumber, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Summary{}, timesheet.ErrSummaryNotFound
		}
		return timesheet.Summary{}, err
	}
	return summary, nil
}

// Upsert writes recomputed totals for (client, month). On conflict the
// existing approval status and revision reason are preserved; only the
// aggregates change.
func (r *summaryRepositoryImpl) Upsert(ctx context.Context, summary timesheet.Summary) (timesheet.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_summaries (
			id, client_number, client_name, timesheet_month, employee_count,
			total_base_salary, total_adjusted_salary, total_cost, vat_amount, grand_total,
			status, revision_reason
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (client_number, timesheet_month) DO UPDATE
		SET client_name = EXCLUDED.client_name,
			employee_count = EXCLUDED.employee_count,
			total_base_salary = EXCLUDED.total_base_salary,
			total_adjusted_salary = EXCLUDED.total_adjusted_salary,
			total_cost = EXCLUDED.total_cost,
			vat_amount = EXCLUDED.vat_amount,
			grand_total = EXCLUDED.grand_total,
			updated_at = NOW()
		RETURNING ` + summaryColumns

	stored, err := scanSummary(q.QueryRow(ctx, query,
		summary.ClientNumber,
		summary.ClientName,
		summary.TimesheetMonth,
		summary.EmployeeCount,
		summary.TotalBaseSalary,
		summary.TotalAdjustedSalary,
		summary.TotalCost,
		summary.VATAmount,
		summary.GrandTotal,
		summary.Status,
		summary.RevisionReason,
	))
	if err != nil {
		return timesheet.Summary{}, err
	}
	return stored, nil
}

func (r *summaryRepositoryImpl) UpdateStatus(ctx context.Context, clientNumber string, month time.Time, status timesheet.Status, revisionReason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheet_summaries
		SET status = $1, revision_reason = $2, updated_at = NOW()
		WHERE client_number = $3 AND timesheet_month = $4`

	tag, err := q.Exec(ctx, query, status, revisionReason, clientNumber, month)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrSummaryNotFound
	}
	return nil
}
