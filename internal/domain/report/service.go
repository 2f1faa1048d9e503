package report

import (
	"context"
	"time"
)

// Renderer is the PDF-layout collaborator. It receives an already
// validated report; layout is its responsibility alone.
type Renderer interface {
	MonthlyReport(rep MonthlyReport, month string, employeeName string, generatedAt time.Time) ([]byte, error)
}

// ReportService defines report building and export operations
type ReportService interface {
	// MonthlyReport builds the validated report for an employee's month (admin preview)
	MonthlyReport(ctx context.Context, employeeName string, month string) (MonthlyReport, error)

	// MyMonthlyReport builds the report over the caller's own rows
	MyMonthlyReport(ctx context.Context, month string) (MonthlyReport, error)

	// MonthlyReportPDF renders the report as a printable PDF.
	// Fails with *PendingDaysError while any business day is pending.
	MonthlyReportPDF(ctx context.Context, employeeName string, month string) (PDFResponse, error)
}
