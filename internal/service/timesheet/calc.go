package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pay formula constants: a 30-day payroll month, 8-hour working day, and a
// 1.5x overtime multiplier applied to basic salary.
var (
	daysPerMonth       = decimal.NewFromInt(30)
	hoursPerMonth      = decimal.NewFromInt(240) // 30 days * 8 hours
	overtimeMultiplier = decimal.NewFromFloat(1.5)
)

// LineInputs is one employee's salary snapshot plus the monthly adjustments.
// All fields are expected pre-validated and non-negative.
type LineInputs struct {
	BasicSalary   decimal.Decimal
	TotalSalary   decimal.Decimal
	WorkingDays   decimal.Decimal
	OvertimeHours decimal.Decimal
	AbsentHours   decimal.Decimal
	Incentive     decimal.Decimal
	Penalty       decimal.Decimal
	EtmamCost     decimal.Decimal
}

// DerivedPay carries the computed pay fields, rounded to 2 decimal places.
type DerivedPay struct {
	DailyRate          decimal.Decimal
	HourlyRate         decimal.Decimal
	OvertimeHourlyRate decimal.Decimal
	OvertimePay        decimal.Decimal
	Deductions         decimal.Decimal
	AdjustedSalary     decimal.Decimal
	TotalCost          decimal.Decimal
}

// ComputeLine derives the pay fields for one employee for one month:
//
//	dailyRate          = totalSalary / 30
//	hourlyRate         = totalSalary / 240
//	overtimeHourlyRate = (basicSalary / 240) * 1.5
//	overtimePay        = overtimeHourlyRate * overtimeHours
//	deductions         = hourlyRate * absentHours
//	adjustedSalary     = dailyRate*workingDays + overtimePay + incentive - deductions - penalty
//	totalCost          = adjustedSalary + etmamCost
//
// Pure and deterministic. Negative adjusted salaries are possible with large
// penalties or absences and are deliberately not clamped; whether they should
// floor at zero is pending product sign-off.
func ComputeLine(in LineInputs) DerivedPay {
	dailyRate := in.TotalSalary.Div(daysPerMonth)
	hourlyRate := in.TotalSalary.Div(hoursPerMonth)
	overtimeHourlyRate := in.BasicSalary.Div(hoursPerMonth).Mul(overtimeMultiplier)

	overtimePay := overtimeHourlyRate.Mul(in.OvertimeHours)
	deductions := hourlyRate.Mul(in.AbsentHours)
	adjustedSalary := dailyRate.Mul(in.WorkingDays).
		Add(overtimePay).
		Add(in.Incentive).
		Sub(deductions).
		Sub(in.Penalty)
	totalCost := adjustedSalary.Add(in.EtmamCost)

	return DerivedPay{
		DailyRate:          dailyRate.Round(2),
		HourlyRate:         hourlyRate.Round(2),
		OvertimeHourlyRate: overtimeHourlyRate.Round(2),
		OvertimePay:        overtimePay.Round(2),
		Deductions:         deductions.Round(2),
		AdjustedSalary:     adjustedSalary.Round(2),
		TotalCost:          totalCost.Round(2),
	}
}

// ReportingPeriod derives the payroll month for a given date. Timesheets
// submitted on or before the 15th report the previous month; later in the
// month the current one.
func ReportingPeriod(today time.Time) (month, year int) {
	if today.Day() <= 15 {
		prev := today.AddDate(0, 0, -today.Day())
		return int(prev.Month()), prev.Year()
	}
	return int(today.Month()), today.Year()
}
