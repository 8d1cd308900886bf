package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var wita = time.FixedZone("WITA", 8*3600)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name        string
		hour, min   int
		wantStatus  Status
		wantMinutes int
	}{
		{"early morning", 7, 30, StatusPresent, 0},
		{"just before cutoff", 8, 59, StatusPresent, 0},
		{"exactly at cutoff", 9, 0, StatusPresent, 0},
		{"one minute late", 9, 1, StatusLate, 1},
		{"half hour late", 9, 30, StatusLate, 30},
		{"afternoon check-in", 13, 15, StatusLate, 255},
		{"midnight", 0, 0, StatusPresent, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkIn := time.Date(2024, time.March, 4, c.hour, c.min, 0, 0, wita)
			status, lateMinutes := DeriveStatus(checkIn)
			assert.Equal(t, c.wantStatus, status)
			assert.Equal(t, c.wantMinutes, lateMinutes)
		})
	}
}

func TestDeriveStatus_SecondsDoNotCount(t *testing.T) {
	// 09:00:59 is still within the 09:00 minute, so on time.
	checkIn := time.Date(2024, time.March, 4, 9, 0, 59, 0, wita)
	status, lateMinutes := DeriveStatus(checkIn)
	assert.Equal(t, StatusPresent, status)
	assert.Equal(t, 0, lateMinutes)
}

func TestDeriveWorkMinutes(t *testing.T) {
	cases := []struct {
		name     string
		in, out  string
		expected int
	}{
		{"full day", "08:00:00", "17:30:00", 570},
		{"short shift", "09:00:00", "09:01:00", 1},
		{"partial minute rounds down", "08:00:00", "16:59:59", 539},
		{"zero duration", "08:00:00", "08:00:00", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			day := "2024-03-04T"
			checkIn, err := time.ParseInLocation("2006-01-02T15:04:05", day+c.in, wita)
			assert.NoError(t, err)
			checkOut, err := time.ParseInLocation("2006-01-02T15:04:05", day+c.out, wita)
			assert.NoError(t, err)
			assert.Equal(t, c.expected, DeriveWorkMinutes(checkIn, checkOut))
		})
	}
}

func TestAppendNotes(t *testing.T) {
	assert.Equal(t, "morning standup | left early", AppendNotes("morning standup", "left early"))
	assert.Equal(t, "left early", AppendNotes("", "left early"))
	assert.Equal(t, "morning standup", AppendNotes("morning standup", ""))
	assert.Equal(t, "", AppendNotes("", ""))
}
