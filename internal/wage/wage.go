// Package wage derives per-second earnings from a monthly salary and schedule.
package wage

import (
	"math"

	"github.com/alexanderramin/idlewage/internal/domain"
)

const secondsPerHour = 3600

// Rates is the earnings rate at the granularities shown to the user.
type Rates struct {
	PerSecond float64
	PerMinute float64
	PerHour   float64
}

// TotalWorkingSeconds returns the contracted working seconds in a month.
func TotalWorkingSeconds(cfg domain.ScheduleConfig) float64 {
	return float64(cfg.WorkingDaysPerMonth) * cfg.WorkingHoursPerDay * secondsPerHour
}

// EarningsPerSecond divides the monthly salary by the working seconds in a
// month. A schedule with no working time earns nothing.
func EarningsPerSecond(cfg domain.ScheduleConfig) float64 {
	total := TotalWorkingSeconds(cfg)
	if !(total > 0) || math.IsInf(total, 0) {
		return 0
	}
	salary := cfg.MonthlySalary
	if !(salary > 0) || math.IsInf(salary, 0) {
		return 0
	}
	return salary / total
}

// CanContinue reports whether cfg is complete enough to finish setup.
func CanContinue(cfg domain.ScheduleConfig) bool {
	return cfg.MonthlySalary > 0 && cfg.WorkingDaysPerMonth >= 1 && cfg.WorkingHoursPerDay >= 1
}

// RatesFor returns the per-second, per-minute and per-hour rates for cfg.
func RatesFor(cfg domain.ScheduleConfig) Rates {
	perSecond := EarningsPerSecond(cfg)
	return Rates{
		PerSecond: perSecond,
		PerMinute: perSecond * 60,
		PerHour:   perSecond * secondsPerHour,
	}
}

// Earnings values a duration at the given per-second rate.
func Earnings(perSecond float64, seconds int64) float64 {
	if seconds <= 0 {
		return 0
	}
	return perSecond * float64(seconds)
}
