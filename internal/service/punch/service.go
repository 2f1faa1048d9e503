package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/punch"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type PunchServiceImpl struct {
	punchRepo punch.PunchRepository
	location  *time.Location
}

func NewPunchService(punchRepo punch.PunchRepository, location *time.Location) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo: punchRepo,
		location:  location,
	}
}

// RecordStage implements punch.PunchService.
func (s *PunchServiceImpl) RecordStage(ctx context.Context, req punch.RecordStageRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	userID, name, err := callerIdentity(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	nowLocal := time.Now().In(s.location)
	dateLocal := nowLocal.Format("2006-01-02")
	clockLocal := nowLocal.Format("15:04")

	existing, err := s.punchRepo.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch by user and date: %w", err)
	}

	if existing == nil {
		if req.Stage != punch.StageEntry {
			return punch.PunchResponse{}, punch.ErrPreviousStageMissing
		}

		created, err := s.punchRepo.Create(ctx, punch.Punch{
			ID:           uuid.NewString(),
			UserID:       userID,
			Date:         dateLocal,
			EmployeeName: name,
			Entry:        &clockLocal,
		})
		if err != nil {
			return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
		}
		return punch.ToResponse(created), nil
	}

	if existing.StageValue(req.Stage) != nil {
		return punch.PunchResponse{}, punch.ErrStageAlreadyRecorded
	}

	if prev, ok := punch.PreviousStage(req.Stage); ok {
		if existing.StageValue(prev) == nil {
			return punch.PunchResponse{}, punch.ErrPreviousStageMissing
		}
	}

	if err := s.punchRepo.UpdateStage(ctx, existing.ID, req.Stage, clockLocal); err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to update punch stage: %w", err)
	}

	updated, err := s.punchRepo.GetByID(ctx, existing.ID)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch by id: %w", err)
	}

	return punch.ToResponse(updated), nil
}

// GetToday implements punch.PunchService.
func (s *PunchServiceImpl) GetToday(ctx context.Context) (*punch.PunchResponse, error) {
	userID, _, err := callerIdentity(ctx)
	if err != nil {
		return nil, err
	}

	dateLocal := time.Now().In(s.location).Format("2006-01-02")

	existing, err := s.punchRepo.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return nil, fmt.Errorf("failed to get punch by user and date: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	resp := punch.ToResponse(*existing)
	return &resp, nil
}

// ListMyMonth implements punch.PunchService.
func (s *PunchServiceImpl) ListMyMonth(ctx context.Context, month string) (punch.ListPunchResponse, error) {
	userID, _, err := callerIdentity(ctx)
	if err != nil {
		return punch.ListPunchResponse{}, err
	}

	start, end, err := monthRange(month)
	if err != nil {
		return punch.ListPunchResponse{}, err
	}

	rows, err := s.punchRepo.ListByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	return toListResponse(rows), nil
}

// ListMonth implements punch.PunchService.
func (s *PunchServiceImpl) ListMonth(ctx context.Context, month string, employeeFilter string) (punch.ListPunchResponse, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return punch.ListPunchResponse{}, err
	}

	rows, err := s.punchRepo.ListByRange(ctx, start, end, employeeFilter)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	return toListResponse(rows), nil
}

// Update implements punch.PunchService.
func (s *PunchServiceImpl) Update(ctx context.Context, req punch.UpdatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	if _, err := s.punchRepo.GetByID(ctx, req.ID); err != nil {
		return punch.PunchResponse{}, err
	}

	if err := s.punchRepo.Update(ctx, req); err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to update punch: %w", err)
	}

	updated, err := s.punchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch by id: %w", err)
	}

	return punch.ToResponse(updated), nil
}

// Delete implements punch.PunchService.
func (s *PunchServiceImpl) Delete(ctx context.Context, id string) error {
	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}

	if err := s.punchRepo.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}

// MyAvailableMonths implements punch.PunchService.
func (s *PunchServiceImpl) MyAvailableMonths(ctx context.Context) (punch.MonthsResponse, error) {
	userID, _, err := callerIdentity(ctx)
	if err != nil {
		return punch.MonthsResponse{}, err
	}

	months, err := s.punchRepo.ListMonthsByUser(ctx, userID)
	if err != nil {
		return punch.MonthsResponse{}, fmt.Errorf("failed to list months: %w", err)
	}

	return punch.MonthsResponse{Months: months}, nil
}

// AvailableMonths implements punch.PunchService.
func (s *PunchServiceImpl) AvailableMonths(ctx context.Context) (punch.MonthsResponse, error) {
	months, err := s.punchRepo.ListMonths(ctx)
	if err != nil {
		return punch.MonthsResponse{}, fmt.Errorf("failed to list months: %w", err)
	}

	return punch.MonthsResponse{Months: months}, nil
}

// callerIdentity extracts the authenticated user's id and display name
// from the JWT claims carried in ctx.
func callerIdentity(ctx context.Context) (userID string, name string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	name, ok = claims["name"].(string)
	if !ok || name == "" {
		return "", "", fmt.Errorf("name claim is missing or invalid")
	}

	return userID, name, nil
}

// monthRange resolves a month key to its first and last date keys.
func monthRange(month string) (start, end string, err error) {
	parsed, ok := validator.IsValidMonth(month)
	if !ok {
		return "", "", punch.ErrInvalidMonth
	}

	lastDay := time.Date(parsed.Year(), parsed.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	start = fmt.Sprintf("%s-01", month)
	end = fmt.Sprintf("%s-%02d", month, lastDay)
	return start, end, nil
}

func toListResponse(rows []punch.Punch) punch.ListPunchResponse {
	responses := make([]punch.PunchResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, punch.ToResponse(row))
	}
	return punch.ListPunchResponse{Punches: responses}
}
