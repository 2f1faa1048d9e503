package report

// DailyTargetMinutes is the fixed daily working target: 8 hours.
const DailyTargetMinutes = 8 * 60

// DayStatus classifies a calendar day in the monthly report.
// The enumeration is closed; StatusLabel must stay total over it.
type DayStatus string

const (
	StatusWeekend        DayStatus = "weekend"
	StatusPending        DayStatus = "pending"
	StatusWorked         DayStatus = "worked"
	StatusHoliday        DayStatus = "holiday"
	StatusJustifiedLeave DayStatus = "justified_leave"
	StatusAbsence        DayStatus = "absence"
)

// AllStatuses lists every DayStatus value.
var AllStatuses = []DayStatus{
	StatusWeekend,
	StatusPending,
	StatusWorked,
	StatusHoliday,
	StatusJustifiedLeave,
	StatusAbsence,
}

// DayReport is the classified view of one calendar day. Every day of the
// target month gets exactly one entry, weekends included.
type DayReport struct {
	Date    string    `json:"date"`
	Weekday string    `json:"weekday"`
	Status  DayStatus `json:"status"`

	Entry       *string `json:"entry"`
	LunchOut    *string `json:"lunch_out"`
	LunchIn     *string `json:"lunch_in"`
	FinalExit   *string `json:"final_exit"`
	Observation *string `json:"observation"`

	// WorkedMinutes is nil unless the day classified as worked.
	WorkedMinutes *int `json:"worked_minutes"`
	// BalanceMinutes is worked minus target for worked days, minus the
	// full target for absences and 0 otherwise.
	BalanceMinutes int `json:"balance_minutes"`
}

// Summary aggregates one month of DayReports.
type Summary struct {
	WorkedDays      int `json:"worked_days"`
	Absences        int `json:"absences"`
	Holidays        int `json:"holidays"`
	JustifiedLeaves int `json:"justified_leaves"`

	OvertimeMinutes   int `json:"overtime_minutes"`
	DeficitMinutes    int `json:"deficit_minutes"`
	NetBalanceMinutes int `json:"net_balance_minutes"`
}

// MonthlyReport is the validated report structure. A non-empty
// PendingDates list blocks PDF export until every business day has
// complete punches or an explicit justification.
type MonthlyReport struct {
	Days         []DayReport `json:"days"`
	PendingDates []string    `json:"pending_dates"`
	Summary      Summary     `json:"summary"`
}

type PDFResponse struct {
	Filename string
	Content  []byte
}
