package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/report"
	reportRules "github.com/RomanBrocki/ponto-online-go/internal/service/report"
	"github.com/jung-kurt/gofpdf"
)

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var tableHeader = []string{
	"Data", "Dia", "Entrada", "Saída Almoço", "Retorno Almoço", "Saída", "Observação", "Horas", "Saldo",
}

var columnWidths = []float64{13, 10, 15, 20, 20, 14, 32, 18, 18}

// Renderer lays out a validated monthly report as a printable A4 document.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// MonthlyReport renders the report for one employee and month. The
// generation timestamp is stamped here, never inside the report itself.
func (r *Renderer) MonthlyReport(rep report.MonthlyReport, month string, employeeName string, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	tableWidth := 0.0
	for _, w := range columnWidths {
		tableWidth += w
	}
	marginLeft := (pageWidth - tableWidth) / 2

	// Header
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Relatório Mensal de Ponto"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 4, tr(fmt.Sprintf("Empregada: %s", employeeName)), "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 4, tr(fmt.Sprintf("Período: %s", monthLabel(month))), "", 1, "L", false, 0, "")
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 4, tr(fmt.Sprintf("Gerado em: %s", generatedAt.Format("02/01/2006 15:04:05"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Day table
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(20, 25, 35)
	pdf.SetTextColor(229, 231, 235)
	pdf.SetX(marginLeft)
	for i, header := range tableHeader {
		pdf.CellFormat(columnWidths[i], 5, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(248, 250, 252)
	for i, day := range rep.Days {
		observation := "-"
		switch day.Status {
		case report.StatusWeekend:
			observation = reportRules.WeekendDayLabel(day.Date)
		case report.StatusHoliday, report.StatusJustifiedLeave, report.StatusAbsence:
			observation = reportRules.StatusLabel(day.Status)
		default:
			if day.Observation != nil {
				observation = *day.Observation
			}
		}

		worked := "-"
		if day.WorkedMinutes != nil {
			worked = reportRules.FormatMinutes(*day.WorkedMinutes)
		}

		cells := []string{
			formatDateShort(day.Date),
			day.Weekday,
			orDash(day.Entry),
			orDash(day.LunchOut),
			orDash(day.LunchIn),
			orDash(day.FinalExit),
			observation,
			worked,
			reportRules.FormatSignedMinutes(day.BalanceMinutes),
		}

		pdf.SetX(marginLeft)
		fill := i%2 == 1
		for j, cell := range cells {
			align := "C"
			if j >= 7 {
				align = "R"
			}
			pdf.CellFormat(columnWidths[j], 4.5, tr(cell), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	// Summary block
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr("Resumo mensal"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	summaryLines := [][2]string{
		{"Dias trabalhados", fmt.Sprintf("%d", rep.Summary.WorkedDays)},
		{"Faltas", fmt.Sprintf("%d", rep.Summary.Absences)},
		{"Feriados", fmt.Sprintf("%d", rep.Summary.Holidays)},
		{"Dispensas justificadas", fmt.Sprintf("%d", rep.Summary.JustifiedLeaves)},
		{"Horas extras", reportRules.FormatMinutes(rep.Summary.OvertimeMinutes)},
		{"Horas negativas", reportRules.FormatMinutes(rep.Summary.DeficitMinutes)},
		{"Balanço final", reportRules.FormatSignedMinutes(rep.Summary.NetBalanceMinutes)},
	}
	for _, line := range summaryLines {
		pdf.SetX(marginLeft)
		pdf.CellFormat(80, 5, tr(line[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(tableWidth-80, 5, tr(line[1]), "1", 1, "R", false, 0, "")
	}

	// Signature block
	pdf.Ln(14)
	lineWidth := 46.0
	gap := 10.0
	startX := (pageWidth - lineWidth*2 - gap) / 2
	y := pdf.GetY()
	pdf.Line(startX, y, startX+lineWidth, y)
	pdf.Line(startX+lineWidth+gap, y, startX+lineWidth*2+gap, y)
	pdf.SetXY(startX, y+1)
	pdf.CellFormat(lineWidth, 4, tr("Data"), "", 0, "C", false, 0, "")
	pdf.SetX(startX + lineWidth + gap)
	pdf.CellFormat(lineWidth, 4, tr("Assinatura da empregada"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func monthLabel(month string) string {
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return fmt.Sprintf("%s/%d", monthNames[int(parsed.Month())-1], parsed.Year())
}

func formatDateShort(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01")
}

func orDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}
