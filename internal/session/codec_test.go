package session

import (
	"testing"

	"github.com/alexanderramin/idlewage/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSetup(t *testing.T) {
	blob, err := encodeSetup(domain.ScheduleConfig{MonthlySalary: 2600, WorkingDaysPerMonth: 26, WorkingHoursPerDay: 7.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"salary":2600,"days":26,"hours":7.5}`, blob)
}

func TestDecodeSetup_ClampsFields(t *testing.T) {
	cfg, err := decodeSetup(`{"salary":-10,"days":3.7,"hours":0.25}`, domain.DefaultSchedule())
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.MonthlySalary)
	assert.Equal(t, 3, cfg.WorkingDaysPerMonth)
	assert.Equal(t, 1.0, cfg.WorkingHoursPerDay)
}

func TestDecodeSetup_MistypedFieldsKeepBase(t *testing.T) {
	cfg, err := decodeSetup(`{"salary":"3000","days":null,"extra":true}`, domain.DefaultSchedule())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSchedule(), cfg)
}

func TestDecodeSetup_RejectsNonObjects(t *testing.T) {
	for _, blob := range []string{`null`, `[1,2]`, `"setup"`, `{`} {
		_, err := decodeSetup(blob, domain.DefaultSchedule())
		assert.Error(t, err, "blob %q", blob)
	}
}
