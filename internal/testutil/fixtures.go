package testutil

import (
	"github.com/alexanderramin/idlewage/internal/domain"
)

// ScheduleOption adjusts a test schedule.
type ScheduleOption func(*domain.ScheduleConfig)

func WithSalary(v float64) ScheduleOption {
	return func(c *domain.ScheduleConfig) {
		c.MonthlySalary = v
	}
}

func WithWorkingDays(v int) ScheduleOption {
	return func(c *domain.ScheduleConfig) {
		c.WorkingDaysPerMonth = v
	}
}

func WithWorkingHours(v float64) ScheduleOption {
	return func(c *domain.ScheduleConfig) {
		c.WorkingHoursPerDay = v
	}
}

// NewTestSchedule returns the reference schedule: 2600 a month over
// 26 days of 8 hours, i.e. 12.50 an hour.
func NewTestSchedule(opts ...ScheduleOption) domain.ScheduleConfig {
	c := domain.ScheduleConfig{
		MonthlySalary:       2600,
		WorkingDaysPerMonth: 26,
		WorkingHoursPerDay:  8,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestActivity builds an activity without the description defaulting
// that domain.NewActivity applies.
func NewTestActivity(description string, seconds int64) domain.Activity {
	return domain.Activity{Description: description, Seconds: seconds}
}
