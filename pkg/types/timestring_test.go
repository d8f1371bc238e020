package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparison(t *testing.T) {
	early := TimeString("08:00")
	late := TimeString("21:59")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	result, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)

	result, err = ts.AddMinutes(-90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), result)

	// Выход за пределы суток
	_, err = TimeString("23:00").AddMinutes(90)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_AddHours(t *testing.T) {
	result, err := TimeString("10:00").AddHours(4)
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:00"), result)

	_, err = TimeString("21:00").AddHours(4)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	at := TimeString("09:30").OnDate(date)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), at)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("15:30")))
	assert.Equal(t, TimeString("15:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 2, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:45"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("bogus").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
