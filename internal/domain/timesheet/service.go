package timesheet

import "context"

type TimesheetService interface {
	Generate(ctx context.Context, req GenerateRequest) (int, error)
	ListLines(ctx context.Context, clientNumber string, month, year int) ([]LineResponse, error)
	UpdateLine(ctx context.Context, req UpdateLineRequest) (LineResponse, error)
	GetSummary(ctx context.Context, clientNumber string, month, year int) (SummaryResponse, error)
	Approve(ctx context.Context, req ApproveRequest) error
	RequestRevision(ctx context.Context, req RequestRevisionRequest) error
}
