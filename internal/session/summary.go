package session

import "fmt"

// MoneyFormatter renders an amount for display; currency is the caller's concern.
type MoneyFormatter func(amount float64) string

// Summary describes what the logged activities earned. One activity is
// named, two are named together, more are counted. With no activities the
// summary is empty.
func (s *State) Summary(money MoneyFormatter) string {
	items := s.ledger.Activities()
	earned := money(s.TotalEarnings())
	total := Humanize(s.TotalSeconds())

	switch len(items) {
	case 0:
		return ""
	case 1:
		if total == "" {
			return fmt.Sprintf("Today you have earned %s with %s.", earned, items[0].Description)
		}
		return fmt.Sprintf("Today you have earned %s with %s %s.", earned, items[0].Description, total)
	case 2:
		return fmt.Sprintf("Today you have earned %s with %s and %s (total %s).",
			earned, items[0].Description, items[1].Description, total)
	default:
		return fmt.Sprintf("Today you have earned %s across %d activities (total %s).", earned, len(items), total)
	}
}
