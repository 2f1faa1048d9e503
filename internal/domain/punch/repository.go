package punch

import (
	"context"
)

// PunchRepository defines data access methods for punch rows.
type PunchRepository interface {
	// Create inserts a new row for (UserID, Date)
	Create(ctx context.Context, newPunch Punch) (Punch, error)

	// GetByID retrieves a row by its storage identifier
	GetByID(ctx context.Context, id string) (Punch, error)

	// GetByUserAndDate retrieves the row for a user on a specific date
	// Used to enforce upsert-by-date semantics
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Punch, error)

	// UpdateStage sets a single stage field on an existing row
	UpdateStage(ctx context.Context, id string, stage Stage, value string) error

	// Update replaces the editable fields of a row (admin repair)
	Update(ctx context.Context, req UpdatePunchRequest) error

	// Delete removes a row by its storage identifier
	Delete(ctx context.Context, id string) error

	// ListByUserAndRange retrieves a user's rows with date in [start, end], ascending
	ListByUserAndRange(ctx context.Context, userID string, start, end string) ([]Punch, error)

	// ListByEmployeeAndRange retrieves rows by employee display name with date in [start, end], ascending
	ListByEmployeeAndRange(ctx context.Context, employeeName string, start, end string) ([]Punch, error)

	// ListByRange retrieves all rows with date in [start, end], ascending by
	// date then employee name; employeeFilter narrows by name substring
	ListByRange(ctx context.Context, start, end string, employeeFilter string) ([]Punch, error)

	// ListMonths returns the distinct YYYY-MM keys present, ascending
	ListMonths(ctx context.Context) ([]string, error)

	// ListMonthsByUser returns the distinct YYYY-MM keys for one user, ascending
	ListMonthsByUser(ctx context.Context, userID string) ([]string, error)
}
