package timesheet

import "errors"

var (
	ErrAlreadyGenerated       = errors.New("timesheet already generated for this client and month")
	ErrLineNotFound           = errors.New("timesheet line not found")
	ErrSummaryNotFound        = errors.New("timesheet summary not found")
	ErrSummaryAlreadyApproved = errors.New("timesheet summary already approved")
	ErrRevisionReasonRequired = errors.New("revision reason is required")
)
