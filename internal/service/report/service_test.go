package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/punch"
	"github.com/RomanBrocki/ponto-online-go/internal/domain/report"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPunchRepository struct {
	punch.PunchRepository
	rows []punch.Punch
}

func (s *stubPunchRepository) ListByEmployeeAndRange(ctx context.Context, employeeName string, start, end string) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, row := range s.rows {
		if row.EmployeeName == employeeName && row.Date >= start && row.Date <= end {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubPunchRepository) ListByUserAndRange(ctx context.Context, userID string, start, end string) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, row := range s.rows {
		if row.UserID == userID && row.Date >= start && row.Date <= end {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubRenderer struct {
	calls int
}

func (s *stubRenderer) MonthlyReport(rep report.MonthlyReport, month string, employeeName string, generatedAt time.Time) ([]byte, error) {
	s.calls++
	return []byte("%PDF-stub"), nil
}

var serviceTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func serviceAuthedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	token, _, err := serviceTokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"name":    "Maria da Silva",
		"role":    "employee",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// completeJuneRows covers every business day of June 2024 for one employee.
func completeJuneRows() []punch.Punch {
	rep, err := BuildMonthlyReportValidation(nil, "2024-06")
	if err != nil {
		panic(err)
	}

	var rows []punch.Punch
	for _, date := range rep.PendingDates {
		rows = append(rows, workedRow(date, "08:00", "12:00", "13:00", "17:00"))
	}
	return rows
}

func TestMonthlyReportRequiresEmployee(t *testing.T) {
	svc := NewReportService(&stubPunchRepository{}, &stubRenderer{})

	_, err := svc.MonthlyReport(context.Background(), "", "2024-06")
	assert.ErrorIs(t, err, report.ErrEmployeeRequired)

	_, err = svc.MonthlyReport(context.Background(), "   ", "2024-06")
	assert.ErrorIs(t, err, report.ErrEmployeeRequired)
}

func TestMonthlyReportInvalidMonth(t *testing.T) {
	svc := NewReportService(&stubPunchRepository{}, &stubRenderer{})

	_, err := svc.MonthlyReport(context.Background(), "Maria da Silva", "junho")
	assert.ErrorIs(t, err, report.ErrInvalidMonth)
}

func TestMonthlyReportFiltersByEmployee(t *testing.T) {
	repo := &stubPunchRepository{rows: []punch.Punch{
		workedRow("2024-06-03", "08:00", "12:00", "13:00", "17:00"),
		{ID: "x", UserID: "user-2", Date: "2024-06-03", EmployeeName: "Outra Pessoa"},
	}}
	svc := NewReportService(repo, &stubRenderer{})

	rep, err := svc.MonthlyReport(context.Background(), "Maria da Silva", "2024-06")
	require.NoError(t, err)

	day := dayByDate(t, rep, "2024-06-03")
	assert.Equal(t, report.StatusWorked, day.Status)
}

func TestMyMonthlyReportUsesCallerClaims(t *testing.T) {
	repo := &stubPunchRepository{rows: []punch.Punch{
		workedRow("2024-06-03", "08:00", "12:00", "13:00", "17:00"),
	}}
	svc := NewReportService(repo, &stubRenderer{})

	rep, err := svc.MyMonthlyReport(serviceAuthedContext(t, "user-1"), "2024-06")
	require.NoError(t, err)
	assert.Equal(t, report.StatusWorked, dayByDate(t, rep, "2024-06-03").Status)

	rep, err = svc.MyMonthlyReport(serviceAuthedContext(t, "user-9"), "2024-06")
	require.NoError(t, err)
	assert.Equal(t, report.StatusPending, dayByDate(t, rep, "2024-06-03").Status)
}

func TestMyMonthlyReportRequiresClaims(t *testing.T) {
	svc := NewReportService(&stubPunchRepository{}, &stubRenderer{})

	_, err := svc.MyMonthlyReport(context.Background(), "2024-06")
	assert.Error(t, err)
}

func TestMonthlyReportPDFBlockedByPendingDays(t *testing.T) {
	repo := &stubPunchRepository{rows: []punch.Punch{
		workedRow("2024-06-03", "08:00", "12:00", "13:00", "17:00"),
	}}
	renderer := &stubRenderer{}
	svc := NewReportService(repo, renderer)

	_, err := svc.MonthlyReportPDF(context.Background(), "Maria da Silva", "2024-06")

	var pendingErr *report.PendingDaysError
	require.True(t, errors.As(err, &pendingErr))
	assert.NotEmpty(t, pendingErr.Dates)
	assert.NotContains(t, pendingErr.Dates, "2024-06-03")
	assert.Zero(t, renderer.calls)
}

func TestMonthlyReportPDFRendersCompleteMonth(t *testing.T) {
	repo := &stubPunchRepository{rows: completeJuneRows()}
	renderer := &stubRenderer{}
	svc := NewReportService(repo, renderer)

	resp, err := svc.MonthlyReportPDF(context.Background(), "Maria da Silva", "2024-06")
	require.NoError(t, err)

	assert.Equal(t, "relatorio-ponto-maria-da-silva-2024-06.pdf", resp.Filename)
	assert.Equal(t, []byte("%PDF-stub"), resp.Content)
	assert.Equal(t, 1, renderer.calls)
}
