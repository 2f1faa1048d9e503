package http

import (
	"log/slog"
	"net/http"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/report"
	"github.com/RomanBrocki/ponto-online-go/internal/handler/http/response"
)

type ReportHandler interface {
	MyMonthlyReport(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	MonthlyReportPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// MyMonthlyReport implements ReportHandler.
func (h *ReportHandlerImpl) MyMonthlyReport(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	monthlyReport, err := h.reportService.MyMonthlyReport(r.Context(), month)
	if err != nil {
		slog.Error("MyMonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthlyReport)
}

// MonthlyReport implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	employeeName := r.URL.Query().Get("employee")

	monthlyReport, err := h.reportService.MonthlyReport(r.Context(), employeeName, month)
	if err != nil {
		slog.Error("MonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthlyReport)
}

// MonthlyReportPDF implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyReportPDF(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	employeeName := r.URL.Query().Get("employee")

	pdfResponse, err := h.reportService.MonthlyReportPDF(r.Context(), employeeName, month)
	if err != nil {
		slog.Error("MonthlyReportPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Report PDF exported", "employee", employeeName, "month", month)
	response.FileDownload(w, pdfResponse.Filename, "application/pdf", pdfResponse.Content)
}
