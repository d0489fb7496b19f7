package session

import (
	"fmt"

	"github.com/alexanderramin/idlewage/internal/domain"
	"github.com/goccy/go-json"
)

// setupRecord is the persisted shape of the schedule.
type setupRecord struct {
	Salary float64 `json:"salary"`
	Days   int     `json:"days"`
	Hours  float64 `json:"hours"`
}

func encodeSetup(cfg domain.ScheduleConfig) (string, error) {
	b, err := json.Marshal(setupRecord{
		Salary: cfg.MonthlySalary,
		Days:   cfg.WorkingDaysPerMonth,
		Hours:  cfg.WorkingHoursPerDay,
	})
	if err != nil {
		return "", fmt.Errorf("encoding setup: %w", err)
	}
	return string(b), nil
}

// decodeSetup applies each numeric field of blob on top of base, clamped to
// its valid range. Fields that are missing or not numbers keep base's value.
// The blob must be a JSON object.
func decodeSetup(blob string, base domain.ScheduleConfig) (domain.ScheduleConfig, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &fields); err != nil {
		return base, fmt.Errorf("decoding setup: %w", err)
	}
	if fields == nil {
		return base, fmt.Errorf("decoding setup: not an object")
	}

	cfg := base
	if v, ok := numberField(fields, "salary"); ok {
		cfg.MonthlySalary = domain.ClampSalary(v)
	}
	if v, ok := numberField(fields, "days"); ok {
		cfg.WorkingDaysPerMonth = domain.ClampWorkingDays(v)
	}
	if v, ok := numberField(fields, "hours"); ok {
		cfg.WorkingHoursPerDay = domain.ClampWorkingHours(v)
	}
	return cfg, nil
}

func numberField(fields map[string]json.RawMessage, name string) (float64, bool) {
	raw, ok := fields[name]
	if !ok {
		return 0, false
	}
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return 0, false
	}
	return *v, true
}
