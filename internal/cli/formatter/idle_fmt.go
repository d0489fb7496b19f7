package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/idlewage/internal/domain"
	"github.com/alexanderramin/idlewage/internal/duration"
	"github.com/alexanderramin/idlewage/internal/wage"
)

// ActivityRow is one line of the activity table.
type ActivityRow struct {
	Activity domain.Activity
	Earnings float64
}

// FormatRates renders the per-hour, per-minute and per-second rates.
func FormatRates(currency string, r wage.Rates) string {
	return KeyValue([][2]string{
		{"Per hour", Money(currency, r.PerHour, AmountPlaces)},
		{"Per minute", Money(currency, r.PerMinute, AmountPlaces)},
		{"Per second", Money(currency, r.PerSecond, RatePlaces)},
	})
}

// FormatSchedule renders the salary and schedule entered during setup.
func FormatSchedule(currency string, cfg domain.ScheduleConfig) string {
	return KeyValue([][2]string{
		{"Monthly salary", Money(currency, cfg.MonthlySalary, AmountPlaces)},
		{"Working days", strconv.Itoa(cfg.WorkingDaysPerMonth) + " / month"},
		{"Working hours", strconv.FormatFloat(cfg.WorkingHoursPerDay, 'f', -1, 64) + " / day"},
	})
}

// FormatActivities renders the activity table, numbered from 1. The row at
// selected (if any) is marked with a cursor.
func FormatActivities(currency string, rows []ActivityRow, selected int) string {
	if len(rows) == 0 {
		return Dim("No activities yet.")
	}

	headers := []string{" ", "#", "DESCRIPTION", "DURATION", "EARNED"}
	cells := make([][]string, 0, len(rows))
	for i, r := range rows {
		cursor := " "
		if i == selected {
			cursor = StyleHeader.Render("›")
		}
		cells = append(cells, []string{
			cursor,
			Dim(strconv.Itoa(i + 1)),
			Truncate(r.Activity.Description, 40),
			StyleBlue.Render(duration.Format(r.Activity.Seconds)),
			StyleGreen.Render(Money(currency, r.Earnings, AmountPlaces)),
		})
	}
	return RenderTable(headers, cells, AlignLeft, AlignRight, AlignLeft, AlignRight, AlignRight)
}

// IdleTotals is the aggregate shown under the activity table.
type IdleTotals struct {
	Seconds     int64
	Earnings    float64
	Summary     string
	WorkdayFrac float64
}

// FormatTotals renders the idle earnings highlight and the summary sentence.
func FormatTotals(currency string, t IdleTotals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n",
		Dim("Idle earnings"),
		StyleMoney.Render(Money(currency, t.Earnings, AmountPlaces)),
		Dim("("+duration.Format(t.Seconds)+")"))
	fmt.Fprintf(&b, "%s  %s", Dim("Share of a workday"), RenderShare(t.WorkdayFrac, 20))
	if t.Summary != "" {
		b.WriteString("\n\n" + t.Summary)
	}
	return b.String()
}
