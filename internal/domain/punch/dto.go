package punch

import (
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/validator"
)

type RecordStageRequest struct {
	Stage Stage `json:"stage"`
}

func (r *RecordStageRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidStage(r.Stage) {
		errs = append(errs, validator.ValidationError{
			Field:   "stage",
			Message: "stage must be one of entry, lunch_out, lunch_in, final_exit",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePunchRequest replaces the editable fields of a row wholesale.
// A nil field clears the stored value; this is the admin repair surface,
// so the stage-progression guard does not apply here.
type UpdatePunchRequest struct {
	ID        string  `json:"-"`
	Entry     *string `json:"entry"`
	LunchOut  *string `json:"lunch_out"`
	LunchIn   *string `json:"lunch_in"`
	FinalExit *string `json:"final_exit"`
	Note      *string `json:"note"`
}

func (r *UpdatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	} else if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	stageFields := []struct {
		name  string
		value *string
	}{
		{"entry", r.Entry},
		{"lunch_out", r.LunchOut},
		{"lunch_in", r.LunchIn},
		{"final_exit", r.FinalExit},
	}
	for _, f := range stageFields {
		if f.value != nil && !validator.IsValidClockTime(*f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " must be a valid time in HH:MM format",
			})
		}
	}

	if r.Note != nil && len(*r.Note) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	EmployeeName string  `json:"employee_name"`
	Entry        *string `json:"entry"`
	LunchOut     *string `json:"lunch_out"`
	LunchIn      *string `json:"lunch_in"`
	FinalExit    *string `json:"final_exit"`
	Note         *string `json:"note"`
	InsertedAt   string  `json:"inserted_at"`
}

type ListPunchResponse struct {
	Punches []PunchResponse `json:"punches"`
}

type MonthsResponse struct {
	Months []string `json:"months"`
}

// ToResponse converts an entity to its API shape.
func ToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:           p.ID,
		Date:         p.Date,
		EmployeeName: p.EmployeeName,
		Entry:        p.Entry,
		LunchOut:     p.LunchOut,
		LunchIn:      p.LunchIn,
		FinalExit:    p.FinalExit,
		Note:         p.Note,
		InsertedAt:   p.InsertedAt.Format("2006-01-02 15:04:05"),
	}
}
