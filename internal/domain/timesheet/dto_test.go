package timesheet

import (
	"testing"

	"github.com/sanadhr/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineUpdate_AcceptsEditableFields(t *testing.T) {
	body := []byte(`{
		"working_days": "28",
		"overtime_hours": "12.5",
		"absent_hours": "4",
		"incentive": "150",
		"etmam_cost": "1000",
		"penalty": "25",
		"edited_by": "user-fin"
	}`)

	req, err := ParseLineUpdate(body)
	require.NoError(t, err)

	require.NotNil(t, req.WorkingDays)
	assert.True(t, req.WorkingDays.Equal(decimal.NewFromInt(28)))
	require.NotNil(t, req.OvertimeHours)
	assert.True(t, req.OvertimeHours.Equal(decimal.RequireFromString("12.5")))
	require.NotNil(t, req.EditedBy)
	assert.Equal(t, "user-fin", *req.EditedBy)
}

func TestParseLineUpdate_RejectsDisallowedFields(t *testing.T) {
	body := []byte(`{
		"overtime_hours": "5",
		"basic_salary": "9999",
		"total_cost": "1"
	}`)

	_, err := ParseLineUpdate(body)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 2)
	// disallowed keys are reported sorted
	assert.Equal(t, "basic_salary", errs[0].Field)
	assert.Equal(t, "total_cost", errs[1].Field)
}

func TestParseLineUpdate_RejectsEmptyPatch(t *testing.T) {
	_, err := ParseLineUpdate([]byte(`{}`))
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "updates", errs[0].Field)
}

func TestParseLineUpdate_RejectsNonObjectBody(t *testing.T) {
	for _, body := range []string{`[]`, `"overtime"`, `not json`} {
		_, err := ParseLineUpdate([]byte(body))
		var errs validator.ValidationErrors
		assert.ErrorAs(t, err, &errs, "body %q", body)
	}
}

func TestUpdateLineRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       UpdateLineRequest
		wantField string
	}{
		{"negative penalty", UpdateLineRequest{Penalty: decRef("-1")}, "penalty"},
		{"negative overtime", UpdateLineRequest{OvertimeHours: decRef("-0.5")}, "overtime_hours"},
		{"working days above month", UpdateLineRequest{WorkingDays: decRef("31")}, "working_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}

	valid := UpdateLineRequest{WorkingDays: decRef("30"), Incentive: decRef("0")}
	assert.NoError(t, valid.Validate())
}

func TestGenerateRequestValidate(t *testing.T) {
	valid := GenerateRequest{Month: "02", Year: 2026, ClientNumber: "CL-100"}
	require.NoError(t, valid.Validate())
	assert.Equal(t, 2, valid.MonthInt())

	invalid := GenerateRequest{Month: "0", Year: 3000, ClientNumber: ""}
	err := invalid.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func decRef(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
