package punch

import "errors"

// Punch domain errors
var (
	// Recording errors
	ErrInvalidStage         = errors.New("invalid punch stage")
	ErrStageAlreadyRecorded = errors.New("stage already recorded for today")
	ErrPreviousStageMissing = errors.New("previous stage has not been recorded yet")

	// General errors
	ErrPunchNotFound = errors.New("punch record not found")
	ErrInvalidMonth  = errors.New("invalid month key")
)
