package report

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMonth     = errors.New("invalid month key, expected YYYY-MM")
	ErrEmployeeRequired = errors.New("employee is required")
)

// PendingDaysError blocks report export while business days lack either
// complete punches or an explicit justification. It carries the full list
// so the admin can correct every date at once.
type PendingDaysError struct {
	Dates []string
}

func (e *PendingDaysError) Error() string {
	return fmt.Sprintf("report has %d pending days: %s", len(e.Dates), strings.Join(e.Dates, ", "))
}
