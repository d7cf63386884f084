package timesheet

import (
	"github.com/sanadhr/backoffice-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// VAT applied on the monthly cost total.
var vatRate = decimal.NewFromFloat(0.15)

// SummaryTotals are the derived figures of a client's monthly summary.
type SummaryTotals struct {
	EmployeeCount       int
	TotalBaseSalary     decimal.Decimal
	TotalAdjustedSalary decimal.Decimal
	TotalCost           decimal.Decimal
	VATAmount           decimal.Decimal
	GrandTotal          decimal.Decimal
}

// SummarizeLines recomputes summary totals from the full line set. The
// recompute is total, not incremental, so repeated calls over an unchanged
// line set always produce identical results.
func SummarizeLines(lines []timesheet.Line) SummaryTotals {
	totals := SummaryTotals{
		EmployeeCount:       len(lines),
		TotalBaseSalary:     decimal.Zero,
		TotalAdjustedSalary: decimal.Zero,
		TotalCost:           decimal.Zero,
	}

	for _, line := range lines {
		totals.TotalBaseSalary = totals.TotalBaseSalary.Add(line.TotalSalary)
		totals.TotalAdjustedSalary = totals.TotalAdjustedSalary.Add(line.AdjustedSalary)
		totals.TotalCost = totals.TotalCost.Add(line.TotalCost)
	}

	totals.TotalBaseSalary = totals.TotalBaseSalary.Round(2)
	totals.TotalAdjustedSalary = totals.TotalAdjustedSalary.Round(2)
	totals.TotalCost = totals.TotalCost.Round(2)
	totals.VATAmount = totals.TotalCost.Mul(vatRate).Round(2)
	totals.GrandTotal = totals.TotalCost.Add(totals.VATAmount).Round(2)

	return totals
}
