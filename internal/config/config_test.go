package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningService/pkg/types"
)

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "cleaning",
		Password: "secret",
		DBName:   "cleaning_service",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=cleaning password=secret dbname=cleaning_service sslmode=disable",
		cfg.DSN())
}

func TestDomainSchedule_Defaults(t *testing.T) {
	cfg := &Config{}

	schedule, err := cfg.DomainSchedule()
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("08:00"), schedule.ShiftStart)
	assert.Equal(t, types.TimeString("22:00"), schedule.ShiftEnd)
	assert.Equal(t, 30, schedule.BreakMinutes)
	assert.Equal(t, time.Friday, schedule.NonWorkingDay)
}

func TestDomainSchedule_Overrides(t *testing.T) {
	cfg := &Config{
		Schedule: ScheduleConfig{
			ShiftStart:    "09:00",
			ShiftEnd:      "18:00",
			BreakMinutes:  15,
			NonWorkingDay: "sunday",
		},
	}

	schedule, err := cfg.DomainSchedule()
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:00"), schedule.ShiftStart)
	assert.Equal(t, types.TimeString("18:00"), schedule.ShiftEnd)
	assert.Equal(t, 15, schedule.BreakMinutes)
	assert.Equal(t, time.Sunday, schedule.NonWorkingDay)
}

func TestDomainSchedule_Invalid(t *testing.T) {
	_, err := (&Config{Schedule: ScheduleConfig{ShiftStart: "bogus"}}).DomainSchedule()
	assert.Error(t, err)

	_, err = (&Config{Schedule: ScheduleConfig{NonWorkingDay: "Someday"}}).DomainSchedule()
	assert.Error(t, err)

	// Начало смены позже конца
	_, err = (&Config{Schedule: ScheduleConfig{ShiftStart: "22:00", ShiftEnd: "08:00"}}).DomainSchedule()
	assert.Error(t, err)
}
