package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", input: "14:00", want: "14:00"},
		{name: "single digit hour is normalized", input: "9:30", want: "09:30"},
		{name: "surrounding spaces", input: " 06:00 ", want: "06:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:61", wantErr: true},
		{name: "seconds are not accepted", input: "10:00:00", wantErr: true},
		{name: "garbage", input: "two pm", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Parts(t *testing.T) {
	ts := TimeString("14:30")
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 30, ts.Minute())
	assert.Equal(t, 14*60+30, ts.Minutes())

	bad := TimeString("nope")
	assert.Equal(t, -1, bad.Hour())
	assert.Equal(t, -1, bad.Minute())
	assert.Equal(t, -1, bad.Minutes())
	assert.Error(t, bad.Validate())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("14:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("15:30"), got)

	_, err = TimeString("23:00").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("bad").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutesWrapped(t *testing.T) {
	got, err := TimeString("23:00").AddMinutesWrapped(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("01:00"), got)

	got, err = TimeString("01:00").AddMinutesWrapped(-120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:00"), got)
}

func TestTimeString_Compare(t *testing.T) {
	early := TimeString("06:00")
	late := TimeString("22:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 1, 2, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}
