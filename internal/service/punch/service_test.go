package punch

import (
	"context"
	"testing"
	"time"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/punch"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepository struct {
	rows map[string]*punch.Punch
}

func newFakePunchRepository() *fakePunchRepository {
	return &fakePunchRepository{rows: make(map[string]*punch.Punch)}
}

func (f *fakePunchRepository) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	newPunch.InsertedAt = time.Now()
	stored := newPunch
	f.rows[newPunch.ID] = &stored
	return newPunch, nil
}

func (f *fakePunchRepository) GetByID(ctx context.Context, id string) (punch.Punch, error) {
	row, ok := f.rows[id]
	if !ok {
		return punch.Punch{}, punch.ErrPunchNotFound
	}
	return *row, nil
}

func (f *fakePunchRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*punch.Punch, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.Date == date {
			clone := *row
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakePunchRepository) UpdateStage(ctx context.Context, id string, stage punch.Stage, value string) error {
	row, ok := f.rows[id]
	if !ok {
		return punch.ErrPunchNotFound
	}
	switch stage {
	case punch.StageEntry:
		row.Entry = &value
	case punch.StageLunchOut:
		row.LunchOut = &value
	case punch.StageLunchIn:
		row.LunchIn = &value
	case punch.StageFinalExit:
		row.FinalExit = &value
	}
	return nil
}

func (f *fakePunchRepository) Update(ctx context.Context, req punch.UpdatePunchRequest) error {
	row, ok := f.rows[req.ID]
	if !ok {
		return punch.ErrPunchNotFound
	}
	row.Entry = req.Entry
	row.LunchOut = req.LunchOut
	row.LunchIn = req.LunchIn
	row.FinalExit = req.FinalExit
	row.Note = req.Note
	return nil
}

func (f *fakePunchRepository) Delete(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return punch.ErrPunchNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakePunchRepository) ListByUserAndRange(ctx context.Context, userID string, start, end string) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, row := range f.rows {
		if row.UserID == userID && row.Date >= start && row.Date <= end {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakePunchRepository) ListByEmployeeAndRange(ctx context.Context, employeeName string, start, end string) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, row := range f.rows {
		if row.EmployeeName == employeeName && row.Date >= start && row.Date <= end {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakePunchRepository) ListByRange(ctx context.Context, start, end string, employeeFilter string) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, row := range f.rows {
		if row.Date >= start && row.Date <= end {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakePunchRepository) ListMonths(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, row := range f.rows {
		month := row.Date[:7]
		if !seen[month] {
			seen[month] = true
			out = append(out, month)
		}
	}
	return out, nil
}

func (f *fakePunchRepository) ListMonthsByUser(ctx context.Context, userID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		month := row.Date[:7]
		if !seen[month] {
			seen[month] = true
			out = append(out, month)
		}
	}
	return out, nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func authedContext(t *testing.T, userID string, name string) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"name":    name,
		"role":    "employee",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo punch.PunchRepository) punch.PunchService {
	return NewPunchService(repo, time.UTC)
}

func TestRecordStageFirstPunchCreatesRow(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	resp, err := svc.RecordStage(ctx, punch.RecordStageRequest{Stage: punch.StageEntry})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Maria da Silva", resp.EmployeeName)
	require.NotNil(t, resp.Entry)
	assert.Nil(t, resp.LunchOut)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.Date)
}

func TestRecordStageProgression(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	var last punch.PunchResponse
	for _, stage := range punch.Stages {
		resp, err := svc.RecordStage(ctx, punch.RecordStageRequest{Stage: stage})
		require.NoError(t, err, "stage %s", stage)
		last = resp
	}

	assert.NotNil(t, last.Entry)
	assert.NotNil(t, last.LunchOut)
	assert.NotNil(t, last.LunchIn)
	assert.NotNil(t, last.FinalExit)
}

func TestRecordStageRejectsSkippedStage(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	// No row yet: only entry is allowed.
	_, err := svc.RecordStage(ctx, punch.RecordStageRequest{Stage: punch.StageLunchOut})
	assert.ErrorIs(t, err, punch.ErrPreviousStageMissing)

	_, err = svc.RecordStage(ctx, punch.RecordStageRequest{Stage: punch.StageEntry})
	require.NoError(t, err)

	// Entry recorded, lunch_out missing: lunch_in must be refused.
	_, err = svc.RecordStage(ctx, punch.RecordStageRequest{Stage: punch.StageLunchIn})
	assert.ErrorIs(t, err, punch.ErrPreviousStageMissing)

	_, err = svc.RecordStage(ctx, punch.RecordStageRequest{Stage: punch.StageFinalExit})
	assert.ErrorIs(t, err, punch.ErrPreviousStageMissing)
}

func TestRecordStageRejectsDuplicateStage(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	_, err := svc.RecordStage(ctx, punch.RecordStageRequest{Stage: punch.StageEntry})
	require.NoError(t, err)

	_, err = svc.RecordStage(ctx, punch.RecordStageRequest{Stage: punch.StageEntry})
	assert.ErrorIs(t, err, punch.ErrStageAlreadyRecorded)
}

func TestRecordStageRejectsInvalidStage(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	_, err := svc.RecordStage(ctx, punch.RecordStageRequest{Stage: "lunch"})
	assert.Error(t, err)
}

func TestGetToday(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	resp, err := svc.GetToday(ctx)
	require.NoError(t, err)
	assert.Nil(t, resp)

	_, err = svc.RecordStage(ctx, punch.RecordStageRequest{Stage: punch.StageEntry})
	require.NoError(t, err)

	resp, err = svc.GetToday(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotNil(t, resp.Entry)
}

func TestListMyMonthRejectsInvalidMonth(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	_, err := svc.ListMyMonth(ctx, "06/2024")
	assert.ErrorIs(t, err, punch.ErrInvalidMonth)
}

func TestMonthRange(t *testing.T) {
	start, end, err := monthRange("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)

	for _, month := range []string{"2024-13", "06/2024", "2024-6", ""} {
		_, _, err := monthRange(month)
		assert.ErrorIs(t, err, punch.ErrInvalidMonth, month)
	}
}

func TestListMyMonthFiltersByUser(t *testing.T) {
	repo := newFakePunchRepository()
	entry := "08:00"
	repo.rows["a"] = &punch.Punch{ID: "a", UserID: "user-1", Date: "2024-06-03", EmployeeName: "Maria da Silva", Entry: &entry}
	repo.rows["b"] = &punch.Punch{ID: "b", UserID: "user-2", Date: "2024-06-03", EmployeeName: "Outra Pessoa", Entry: &entry}
	repo.rows["c"] = &punch.Punch{ID: "c", UserID: "user-1", Date: "2024-07-01", EmployeeName: "Maria da Silva", Entry: &entry}

	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	list, err := svc.ListMyMonth(ctx, "2024-06")
	require.NoError(t, err)
	require.Len(t, list.Punches, 1)
	assert.Equal(t, "a", list.Punches[0].ID)
}

func TestUpdateValidatesAndApplies(t *testing.T) {
	id := uuid.NewString()
	repo := newFakePunchRepository()
	repo.rows[id] = &punch.Punch{ID: id, UserID: "user-1", Date: "2024-06-03", EmployeeName: "Maria da Silva"}
	svc := newTestService(repo)
	ctx := authedContext(t, "admin-1", "Empregadora")

	entry := "08:00"
	bad := "8h00"
	_, err := svc.Update(ctx, punch.UpdatePunchRequest{ID: id, Entry: &bad})
	assert.Error(t, err)

	_, err = svc.Update(ctx, punch.UpdatePunchRequest{ID: "not-a-uuid", Entry: &entry})
	assert.Error(t, err)

	resp, err := svc.Update(ctx, punch.UpdatePunchRequest{ID: id, Entry: &entry})
	require.NoError(t, err)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, "08:00", *resp.Entry)
	assert.Nil(t, resp.LunchOut)
}

func TestUpdateMissingRow(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)
	ctx := authedContext(t, "admin-1", "Empregadora")

	_, err := svc.Update(ctx, punch.UpdatePunchRequest{ID: uuid.NewString()})
	assert.ErrorIs(t, err, punch.ErrPunchNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakePunchRepository()
	repo.rows["a"] = &punch.Punch{ID: "a", UserID: "user-1", Date: "2024-06-03"}
	svc := newTestService(repo)
	ctx := authedContext(t, "admin-1", "Empregadora")

	require.NoError(t, svc.Delete(ctx, "a"))
	assert.ErrorIs(t, svc.Delete(ctx, "a"), punch.ErrPunchNotFound)
}

func TestMyAvailableMonths(t *testing.T) {
	repo := newFakePunchRepository()
	repo.rows["a"] = &punch.Punch{ID: "a", UserID: "user-1", Date: "2024-06-03"}
	repo.rows["b"] = &punch.Punch{ID: "b", UserID: "user-2", Date: "2024-05-02"}
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1", "Maria da Silva")

	months, err := svc.MyAvailableMonths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06"}, months.Months)
}

func TestRecordStageRequiresClaims(t *testing.T) {
	repo := newFakePunchRepository()
	svc := newTestService(repo)

	_, err := svc.RecordStage(context.Background(), punch.RecordStageRequest{Stage: punch.StageEntry})
	assert.Error(t, err)
}
