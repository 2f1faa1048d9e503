package punch

import "time"

// Stage is one of the four daily punch stages, recorded in order.
type Stage string

const (
	StageEntry     Stage = "entry"
	StageLunchOut  Stage = "lunch_out"
	StageLunchIn   Stage = "lunch_in"
	StageFinalExit Stage = "final_exit"
)

// Stages lists the four stages in recording order.
var Stages = []Stage{StageEntry, StageLunchOut, StageLunchIn, StageFinalExit}

// Punch is one raw record per employee per calendar date.
// At most one row exists per (UserID, Date) pair; punch recording uses
// insert-if-absent-else-update semantics keyed on that pair.
type Punch struct {
	ID     string
	UserID string
	// Date is the zero-padded calendar date key, YYYY-MM-DD.
	Date         string
	EmployeeName string
	Entry        *string
	LunchOut     *string
	LunchIn      *string
	FinalExit    *string
	// Note is free text; "feriado", "dispensa justificada" and "falta"
	// (after normalization) classify the day in the monthly report.
	Note       *string
	InsertedAt time.Time
}

// StageValue returns the recorded time for the given stage, nil when the
// stage has not been recorded yet.
func (p *Punch) StageValue(s Stage) *string {
	switch s {
	case StageEntry:
		return p.Entry
	case StageLunchOut:
		return p.LunchOut
	case StageLunchIn:
		return p.LunchIn
	case StageFinalExit:
		return p.FinalExit
	}
	return nil
}

// PreviousStage returns the stage that must be recorded before s.
// ok is false for the first stage.
func PreviousStage(s Stage) (prev Stage, ok bool) {
	switch s {
	case StageLunchOut:
		return StageEntry, true
	case StageLunchIn:
		return StageLunchOut, true
	case StageFinalExit:
		return StageLunchIn, true
	}
	return "", false
}

// IsValidStage reports whether s names one of the four punch stages.
func IsValidStage(s Stage) bool {
	switch s {
	case StageEntry, StageLunchOut, StageLunchIn, StageFinalExit:
		return true
	}
	return false
}
