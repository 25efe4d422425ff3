package facilities

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceBooking/internal/domain"
	"github.com/m04kA/SMC-VoiceBooking/pkg/logger"
)

const facilitiesTOML = `
[[facilities]]
facility_id = "PBC001"
facility_name = "Play Badminton Center"
phone_number = "+918012345678"
number_of_courts = 4
open_time = "6:00"
close_time = "22:00"

  [facilities.booking_rules]
  minimum_duration = 60
  duration_multiples = 60
  fixed_slots = true

  [facilities.pricing]
  weekday_per_hour = 400
  weekend_per_hour = 500

  [facilities.coaching]
  available = true
  fee = 3000
  timings = ["06:00-07:00", "17:00-18:00"]
  age_below = 16

[[facilities]]
facility_id = "SMASH02"
facility_name = "Smash Arena"
phone_number = "+918087654321"
number_of_courts = 2
open_time = "07:00"
close_time = "23:00"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facilities.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	dir, err := LoadFile(writeFile(t, facilitiesTOML), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, dir.Len())
	assert.Equal(t, []string{"PBC001", "SMASH02"}, dir.IDs())

	f, err := dir.GetByID("PBC001")
	require.NoError(t, err)
	assert.Equal(t, "Play Badminton Center", f.Name)
	assert.Equal(t, 4, f.NumberOfCourts)
	assert.Equal(t, "06:00", f.OpenTime.String(), "open time is normalized")
	assert.Equal(t, 60, f.BookingRules.MinDuration())
	assert.True(t, f.BookingRules.FixedSlotsOnly())
	assert.Equal(t, 400, f.Pricing.WeekdayPerHour)
	assert.Equal(t, []string{"06:00-07:00", "17:00-18:00"}, f.Coaching.Timings)

	byPhone, err := dir.GetByPhone("+918087654321")
	require.NoError(t, err)
	assert.Equal(t, "SMASH02", byPhone.ID)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"), nil)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestDirectory_NotFound(t *testing.T) {
	dir, err := NewDirectory(nil, nil)
	require.NoError(t, err)

	_, err = dir.GetByID("UNKNOWN")
	assert.ErrorIs(t, err, ErrFacilityNotFound)
	assert.True(t, IsNotFound(err))

	_, err = dir.GetByPhone("+100")
	assert.ErrorIs(t, err, ErrFacilityNotFound)
	assert.Empty(t, dir.All())
}

func TestNewDirectory_Validation(t *testing.T) {
	valid := domain.Facility{ID: "A", PhoneNumber: "+1", NumberOfCourts: 2, OpenTime: "06:00", CloseTime: "22:00"}

	tests := []struct {
		name   string
		mutate func(f *domain.Facility)
		second *domain.Facility
		want   error
	}{
		{name: "missing id", mutate: func(f *domain.Facility) { f.ID = " " }, want: ErrInvalidFacility},
		{name: "no courts", mutate: func(f *domain.Facility) { f.NumberOfCourts = 0 }, want: ErrInvalidFacility},
		{name: "bad open time", mutate: func(f *domain.Facility) { f.OpenTime = "six" }, want: ErrInvalidFacility},
		{name: "close before open", mutate: func(f *domain.Facility) { f.CloseTime = "05:00" }, want: ErrInvalidFacility},
		{name: "negative rule", mutate: func(f *domain.Facility) { f.BookingRules.MinimumDuration = -1 }, want: ErrInvalidFacility},
		{
			name:   "duplicate id",
			second: &domain.Facility{ID: "A", PhoneNumber: "+2", NumberOfCourts: 1, OpenTime: "06:00", CloseTime: "22:00"},
			want:   ErrDuplicateFacility,
		},
		{
			name:   "duplicate phone",
			second: &domain.Facility{ID: "B", PhoneNumber: "+1", NumberOfCourts: 1, OpenTime: "06:00", CloseTime: "22:00"},
			want:   ErrDuplicateFacility,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			if tt.mutate != nil {
				tt.mutate(&f)
			}
			list := []domain.Facility{f}
			if tt.second != nil {
				list = append(list, *tt.second)
			}

			_, err := NewDirectory(list, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDirectory_AllReturnsCopy(t *testing.T) {
	dir, err := NewDirectory([]domain.Facility{
		{ID: "B", NumberOfCourts: 1, OpenTime: "06:00", CloseTime: "22:00"},
		{ID: "A", NumberOfCourts: 1, OpenTime: "06:00", CloseTime: "22:00"},
	}, nil)
	require.NoError(t, err)

	all := dir.All()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].ID)

	all[0] = nil
	assert.NotNil(t, dir.All()[0])
}
