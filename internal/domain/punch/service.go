package punch

import (
	"context"
)

// PunchService defines business logic for punch operations
type PunchService interface {
	// RecordStage records one stage for the authenticated employee on the
	// current date, enforcing the stage progression invariant
	RecordStage(ctx context.Context, req RecordStageRequest) (PunchResponse, error)

	// GetToday retrieves the authenticated employee's row for today, nil if absent
	GetToday(ctx context.Context) (*PunchResponse, error)

	// ListMyMonth retrieves the authenticated employee's rows for a month
	ListMyMonth(ctx context.Context, month string) (ListPunchResponse, error)

	// ListMonth retrieves all rows for a month, optionally filtered by employee name (admin)
	ListMonth(ctx context.Context, month string, employeeFilter string) (ListPunchResponse, error)

	// Update replaces the editable fields of a row by id (admin)
	Update(ctx context.Context, req UpdatePunchRequest) (PunchResponse, error)

	// Delete removes a row by id (admin)
	Delete(ctx context.Context, id string) error

	// MyAvailableMonths lists distinct months with rows for the caller
	MyAvailableMonths(ctx context.Context) (MonthsResponse, error)

	// AvailableMonths lists distinct months with any rows (admin)
	AvailableMonths(ctx context.Context) (MonthsResponse, error)
}
