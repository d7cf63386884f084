package timesheet

import (
	"context"
	"time"
)

type LineRepository interface {
	ExistsForClientMonth(ctx context.Context, clientNumber string, month time.Time) (bool, error)
	CreateBatch(ctx context.Context, lines []Line) error
	GetByID(ctx context.Context, id string) (Line, error)
	ListByClientMonth(ctx context.Context, clientNumber string, month time.Time) ([]Line, error)
	Update(ctx context.Context, line Line) error
}

type SummaryRepository interface {
	GetByClientMonth(ctx context.Context, clientNumber string, month time.Time) (Summary, error)
	// Upsert writes recomputed totals; an existing row keeps its status and
	// revision reason.
	Upsert(ctx context.Context, summary Summary) (Summary, error)
	UpdateStatus(ctx context.Context, clientNumber string, month time.Time, status Status, revisionReason *string) error
}
