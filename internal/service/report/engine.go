package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/RomanBrocki/ponto-online-go/internal/domain/punch"
	"github.com/RomanBrocki/ponto-online-go/internal/domain/report"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// weekdayLabels holds the pt-BR short weekday names, indexed by time.Weekday.
var weekdayLabels = [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."}

// BuildMonthlyReportValidation classifies every calendar day of the target
// month, computes worked minutes and signed balances against the fixed
// daily target, and aggregates the monthly summary. Pure function of its
// inputs; rows must already be filtered to a single employee.
func BuildMonthlyReportValidation(rows []punch.Punch, month string) (report.MonthlyReport, error) {
	year, monthIndex, err := parseMonthKey(month)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	rowByDate := make(map[string]punch.Punch, len(rows))
	for _, row := range rows {
		rowByDate[row.Date] = row
	}

	totalDays := daysInMonth(year, monthIndex)
	days := make([]report.DayReport, 0, totalDays)
	var pendingDates []string

	for dayNumber := 1; dayNumber <= totalDays; dayNumber++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, monthIndex, dayNumber)
		weekday := time.Date(year, time.Month(monthIndex), dayNumber, 0, 0, 0, 0, time.UTC).Weekday()

		day := report.DayReport{
			Date:    date,
			Weekday: weekdayLabels[weekday],
			Status:  report.StatusPending,
		}

		row, hasRow := rowByDate[date]
		if hasRow {
			day.Entry = row.Entry
			day.LunchOut = row.LunchOut
			day.LunchIn = row.LunchIn
			day.FinalExit = row.FinalExit
			day.Observation = row.Note
		}

		if weekday == time.Saturday || weekday == time.Sunday {
			// Weekend punches are recorded but never penalized or credited.
			day.Status = report.StatusWeekend
			days = append(days, day)
			continue
		}

		if !hasRow {
			pendingDates = append(pendingDates, date)
			days = append(days, day)
			continue
		}

		if worked, ok := calculateWorkedMinutes(row); ok {
			day.Status = report.StatusWorked
			day.WorkedMinutes = &worked
			day.BalanceMinutes = worked - report.DailyTargetMinutes
			days = append(days, day)
			continue
		}

		switch classifyNote(row.Note) {
		case report.StatusHoliday:
			day.Status = report.StatusHoliday
		case report.StatusJustifiedLeave:
			day.Status = report.StatusJustifiedLeave
		case report.StatusAbsence:
			day.Status = report.StatusAbsence
			day.BalanceMinutes = -report.DailyTargetMinutes
		default:
			pendingDates = append(pendingDates, date)
		}

		days = append(days, day)
	}

	return report.MonthlyReport{
		Days:         days,
		PendingDates: pendingDates,
		Summary:      buildSummary(days),
	}, nil
}

func buildSummary(days []report.DayReport) report.Summary {
	var summary report.Summary

	for _, day := range days {
		switch day.Status {
		case report.StatusWorked:
			summary.WorkedDays++
		case report.StatusAbsence:
			summary.Absences++
		case report.StatusHoliday:
			summary.Holidays++
		case report.StatusJustifiedLeave:
			summary.JustifiedLeaves++
		}

		if day.BalanceMinutes > 0 {
			summary.OvertimeMinutes += day.BalanceMinutes
		}
		if day.BalanceMinutes < 0 {
			summary.DeficitMinutes += -day.BalanceMinutes
		}
		summary.NetBalanceMinutes += day.BalanceMinutes
	}

	return summary
}

// calculateWorkedMinutes returns the worked minutes for a row whose four
// punches are present, parseable and chronologically consistent. Lunch
// duration is excluded from the total.
func calculateWorkedMinutes(row punch.Punch) (int, bool) {
	entry, ok := parseClockMinutes(row.Entry)
	if !ok {
		return 0, false
	}
	lunchOut, ok := parseClockMinutes(row.LunchOut)
	if !ok {
		return 0, false
	}
	lunchIn, ok := parseClockMinutes(row.LunchIn)
	if !ok {
		return 0, false
	}
	finalExit, ok := parseClockMinutes(row.FinalExit)
	if !ok {
		return 0, false
	}

	if lunchOut < entry || lunchIn < lunchOut || finalExit < lunchIn {
		return 0, false
	}

	return (lunchOut - entry) + (finalExit - lunchIn), true
}

// parseClockMinutes parses "HH:MM" or "HH:MM:SS" into minutes since
// midnight. A non-numeric value counts as absent, which degrades the day
// to pending instead of failing the whole month. Out-of-range components
// such as "08:75" still resolve arithmetically; validation of stored
// values happens at write time, not here.
func parseClockMinutes(value *string) (int, bool) {
	if value == nil {
		return 0, false
	}

	parts := strings.Split(*value, ":")
	if len(parts) < 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	return hour*60 + minute, true
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// classifyNote maps a free-text note to a justification status after
// normalization: trim, lowercase, strip diacritics, collapse whitespace.
// Unrecognized notes return StatusPending.
func classifyNote(note *string) report.DayStatus {
	if note == nil {
		return report.StatusPending
	}

	normalized := strings.ToLower(strings.TrimSpace(*note))
	if stripped, _, err := transform.String(stripMarks, normalized); err == nil {
		normalized = stripped
	}
	normalized = strings.Join(strings.Fields(normalized), " ")

	switch normalized {
	case "feriado":
		return report.StatusHoliday
	case "dispensa justificada":
		return report.StatusJustifiedLeave
	case "falta":
		return report.StatusAbsence
	}
	return report.StatusPending
}

func parseMonthKey(month string) (year int, monthIndex int, err error) {
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, report.ErrInvalidMonth
	}
	return parsed.Year(), int(parsed.Month()), nil
}

func daysInMonth(year int, monthIndex int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(monthIndex)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatMinutes renders integer minutes as zero-padded "HH:MM", magnitude
// only.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatSignedMinutes renders integer minutes as "±HH:MM"; zero and
// positive values carry the plus sign.
func FormatSignedMinutes(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
	}
	return sign + FormatMinutes(minutes)
}

// StatusLabel maps a day status to its pt-BR display text. The mapping is
// total over the enumeration; exhaustiveness is asserted in tests so a new
// status can never silently render as the pending label.
func StatusLabel(status report.DayStatus) string {
	switch status {
	case report.StatusWeekend:
		return "Fim de Semana"
	case report.StatusWorked:
		return "Jornada"
	case report.StatusHoliday:
		return "Feriado"
	case report.StatusJustifiedLeave:
		return "Dispensa Justificada"
	case report.StatusAbsence:
		return "Falta"
	case report.StatusPending:
		return "Pendente"
	}
	return "Pendente"
}

// WeekendDayLabel names a weekend date for the observation column.
// Returns empty for business days.
func WeekendDayLabel(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	switch parsed.Weekday() {
	case time.Saturday:
		return "Sábado"
	case time.Sunday:
		return "Domingo"
	}
	return ""
}
