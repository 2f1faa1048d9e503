package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/punch"
	"github.com/RomanBrocki/ponto-online-go/internal/domain/report"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/text/transform"
)

type ReportServiceImpl struct {
	punchRepo punch.PunchRepository
	renderer  report.Renderer
}

func NewReportService(punchRepo punch.PunchRepository, renderer report.Renderer) report.ReportService {
	return &ReportServiceImpl{
		punchRepo: punchRepo,
		renderer:  renderer,
	}
}

// MonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, employeeName string, month string) (report.MonthlyReport, error) {
	if validator.IsEmpty(employeeName) {
		return report.MonthlyReport{}, report.ErrEmployeeRequired
	}

	start, end, err := monthRange(month)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	rows, err := s.punchRepo.ListByEmployeeAndRange(ctx, employeeName, start, end)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list punches for report: %w", err)
	}

	return BuildMonthlyReportValidation(rows, month)
}

// MyMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) MyMonthlyReport(ctx context.Context, month string) (report.MonthlyReport, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return report.MonthlyReport{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	start, end, err := monthRange(month)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	rows, err := s.punchRepo.ListByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list punches for report: %w", err)
	}

	return BuildMonthlyReportValidation(rows, month)
}

// MonthlyReportPDF implements report.ReportService.
// Export is refused while any business day is pending; the error carries
// the full date list so the admin can fill punches or assign a
// justification for each one.
func (s *ReportServiceImpl) MonthlyReportPDF(ctx context.Context, employeeName string, month string) (report.PDFResponse, error) {
	rep, err := s.MonthlyReport(ctx, employeeName, month)
	if err != nil {
		return report.PDFResponse{}, err
	}

	if len(rep.PendingDates) > 0 {
		return report.PDFResponse{}, &report.PendingDaysError{Dates: rep.PendingDates}
	}

	content, err := s.renderer.MonthlyReport(rep, month, employeeName, time.Now())
	if err != nil {
		return report.PDFResponse{}, fmt.Errorf("failed to render report: %w", err)
	}

	return report.PDFResponse{
		Filename: ExportFilename(employeeName, month),
		Content:  content,
	}, nil
}

// ExportFilename builds the export file name:
// relatorio-ponto-<employee-slug>-<month>.pdf
func ExportFilename(employeeName string, month string) string {
	return fmt.Sprintf("relatorio-ponto-%s-%s.pdf", slugify(employeeName), month)
}

func slugify(value string) string {
	folded := strings.ToLower(value)
	if stripped, _, err := transform.String(stripMarks, folded); err == nil {
		folded = stripped
	}

	var b strings.Builder
	lastDash := true
	for _, r := range folded {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// monthRange resolves a month key to its first and last date keys.
func monthRange(month string) (start, end string, err error) {
	year, monthIndex, err := parseMonthKey(month)
	if err != nil {
		return "", "", err
	}

	start = fmt.Sprintf("%04d-%02d-01", year, monthIndex)
	end = fmt.Sprintf("%04d-%02d-%02d", year, monthIndex, daysInMonth(year, monthIndex))
	return start, end, nil
}
