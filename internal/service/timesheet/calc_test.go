package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func TestComputeLine_ReferenceMonth(t *testing.T) {
	derived := ComputeLine(LineInputs{
		BasicSalary:   dec("3000"),
		TotalSalary:   dec("3600"),
		WorkingDays:   dec("30"),
		OvertimeHours: dec("10"),
		AbsentHours:   dec("0"),
		Incentive:     dec("100"),
		Penalty:       dec("0"),
		EtmamCost:     dec("1000"),
	})

	assertDecimal(t, "120", derived.DailyRate, "daily rate")
	assertDecimal(t, "15", derived.HourlyRate, "hourly rate")
	assertDecimal(t, "18.75", derived.OvertimeHourlyRate, "overtime hourly rate")
	assertDecimal(t, "187.50", derived.OvertimePay, "overtime pay")
	assertDecimal(t, "0", derived.Deductions, "deductions")
	assertDecimal(t, "3887.50", derived.AdjustedSalary, "adjusted salary")
	assertDecimal(t, "4887.50", derived.TotalCost, "total cost")
}

func TestComputeLine_ZeroWorkingDays(t *testing.T) {
	// With no working days only overtime, incentive, deductions and penalty remain.
	derived := ComputeLine(LineInputs{
		BasicSalary:   dec("3000"),
		TotalSalary:   dec("3600"),
		WorkingDays:   dec("0"),
		OvertimeHours: dec("4"),
		AbsentHours:   dec("2"),
		Incentive:     dec("100"),
		Penalty:       dec("50"),
		EtmamCost:     dec("1000"),
	})

	// 18.75*4 + 100 - 15*2 - 50 = 75 + 100 - 30 - 50
	assertDecimal(t, "75", derived.OvertimePay, "overtime pay")
	assertDecimal(t, "30", derived.Deductions, "deductions")
	assertDecimal(t, "95", derived.AdjustedSalary, "adjusted salary")
	assertDecimal(t, "1095", derived.TotalCost, "total cost")
}

func TestComputeLine_ZeroSalaries(t *testing.T) {
	derived := ComputeLine(LineInputs{
		TotalSalary: dec("0"),
		BasicSalary: dec("0"),
		WorkingDays: dec("30"),
	})

	assertDecimal(t, "0", derived.DailyRate, "daily rate")
	assertDecimal(t, "0", derived.HourlyRate, "hourly rate")
	assertDecimal(t, "0", derived.AdjustedSalary, "adjusted salary")
	assertDecimal(t, "0", derived.TotalCost, "total cost")
}

func TestComputeLine_NegativeResultNotClamped(t *testing.T) {
	derived := ComputeLine(LineInputs{
		BasicSalary: dec("3000"),
		TotalSalary: dec("3600"),
		WorkingDays: dec("0"),
		AbsentHours: dec("100"),
		Penalty:     dec("500"),
	})

	// 0 + 0 + 0 - 1500 - 500
	assertDecimal(t, "-2000", derived.AdjustedSalary, "adjusted salary")
	assertDecimal(t, "-2000", derived.TotalCost, "total cost")
}

func TestComputeLine_RoundsToTwoDecimals(t *testing.T) {
	derived := ComputeLine(LineInputs{
		BasicSalary:   dec("1000"),
		TotalSalary:   dec("1000"),
		WorkingDays:   dec("30"),
		OvertimeHours: dec("1"),
	})

	assertDecimal(t, "33.33", derived.DailyRate, "daily rate")
	assertDecimal(t, "4.17", derived.HourlyRate, "hourly rate")
	// 1000/240*1.5 = 6.25
	assertDecimal(t, "6.25", derived.OvertimeHourlyRate, "overtime hourly rate")
	// 1000/30*30 + 6.25 = 1006.25
	assertDecimal(t, "1006.25", derived.AdjustedSalary, "adjusted salary")
}

func TestComputeLine_Deterministic(t *testing.T) {
	in := LineInputs{
		BasicSalary:   dec("2750"),
		TotalSalary:   dec("3437.50"),
		WorkingDays:   dec("28"),
		OvertimeHours: dec("7.5"),
		AbsentHours:   dec("3"),
		Incentive:     dec("100"),
		Penalty:       dec("25"),
		EtmamCost:     dec("1000"),
	}

	first := ComputeLine(in)
	second := ComputeLine(in)
	assert.Equal(t, first, second)
}

func TestReportingPeriod(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantMonth int
		wantYear  int
	}{
		{"mid-month reports previous", time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), 7, 2026},
		{"after cutoff reports current", time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC), 8, 2026},
		{"january rolls into previous year", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 12, 2025},
		{"first of month", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 2, 2026},
		{"end of month", time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), 12, 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := ReportingPeriod(tt.today)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantYear, year)
		})
	}
}
