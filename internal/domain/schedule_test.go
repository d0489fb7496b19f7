package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSchedule(t *testing.T) {
	cfg := DefaultSchedule()
	assert.Equal(t, 0.0, cfg.MonthlySalary)
	assert.Equal(t, 26, cfg.WorkingDaysPerMonth)
	assert.Equal(t, 8.0, cfg.WorkingHoursPerDay)
}

func TestClampSalary(t *testing.T) {
	assert.Equal(t, 2600.0, ClampSalary(2600))
	assert.Equal(t, 0.0, ClampSalary(-5))
	assert.Equal(t, 0.0, ClampSalary(math.NaN()))
	assert.Equal(t, 0.0, ClampSalary(math.Inf(1)))
}

func TestClampWorkingDays(t *testing.T) {
	assert.Equal(t, 22, ClampWorkingDays(22.9))
	assert.Equal(t, 1, ClampWorkingDays(0))
	assert.Equal(t, 1, ClampWorkingDays(-3))
	assert.Equal(t, 26, ClampWorkingDays(math.NaN()))
}

func TestClampWorkingHours(t *testing.T) {
	assert.Equal(t, 7.5, ClampWorkingHours(7.5))
	assert.Equal(t, 1.0, ClampWorkingHours(0.5))
	assert.Equal(t, 8.0, ClampWorkingHours(math.Inf(-1)))
}

func TestNewActivity(t *testing.T) {
	a := NewActivity("  Coffee ", 1800)
	assert.Equal(t, "Coffee", a.Description)
	assert.Equal(t, int64(1800), a.Seconds)

	blank := NewActivity("   ", 60)
	assert.Equal(t, DefaultDescription, blank.Description)

	neg := NewActivity("x", -10)
	assert.Equal(t, int64(0), neg.Seconds)
}
