package domain

import "math"

// Defaults applied to a fresh session and to setup fields that fail to parse.
const (
	DefaultMonthlySalary       = 0.0
	DefaultWorkingDaysPerMonth = 26
	DefaultWorkingHoursPerDay  = 8.0
)

// ScheduleConfig is the salary and working schedule entered during setup.
type ScheduleConfig struct {
	MonthlySalary       float64
	WorkingDaysPerMonth int
	WorkingHoursPerDay  float64
}

// DefaultSchedule returns the schedule a new session starts from.
func DefaultSchedule() ScheduleConfig {
	return ScheduleConfig{
		MonthlySalary:       DefaultMonthlySalary,
		WorkingDaysPerMonth: DefaultWorkingDaysPerMonth,
		WorkingHoursPerDay:  DefaultWorkingHoursPerDay,
	}
}

// ClampSalary returns a non-negative salary. Non-finite input falls back to the default.
func ClampSalary(v float64) float64 {
	if !isFinite(v) {
		return DefaultMonthlySalary
	}
	return math.Max(0, v)
}

// ClampWorkingDays floors v and raises it to at least one day.
// Non-finite input falls back to the default.
func ClampWorkingDays(v float64) int {
	if !isFinite(v) {
		return DefaultWorkingDaysPerMonth
	}
	return int(math.Max(1, math.Floor(v)))
}

// ClampWorkingHours raises v to at least one hour.
// Non-finite input falls back to the default.
func ClampWorkingHours(v float64) float64 {
	if !isFinite(v) {
		return DefaultWorkingHoursPerDay
	}
	return math.Max(1, v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
