package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var wita = time.FixedZone("WITA", 8*3600)

func TestSameCalendarDay(t *testing.T) {
	h := Holiday{
		Name: "Hari Kemerdekaan",
		Date: time.Date(2024, time.August, 17, 0, 0, 0, 0, time.UTC),
	}

	// Any wall-clock time on the same WITA calendar day matches.
	assert.True(t, h.SameCalendarDay(time.Date(2024, time.August, 17, 0, 0, 1, 0, wita)))
	assert.True(t, h.SameCalendarDay(time.Date(2024, time.August, 17, 23, 59, 59, 0, wita)))

	// Neighbouring days do not, even though the instants may be close.
	assert.False(t, h.SameCalendarDay(time.Date(2024, time.August, 16, 23, 59, 59, 0, wita)))
	assert.False(t, h.SameCalendarDay(time.Date(2024, time.August, 18, 0, 0, 0, 0, wita)))
}

func TestClassifyType(t *testing.T) {
	cases := []struct {
		name string
		want HolidayType
	}{
		{"Hari Raya Idul Fitri", TypeReligious},
		{"Hari Raya Idul Adha", TypeReligious},
		{"Hari Natal", TypeReligious},
		{"Hari Raya Nyepi", TypeReligious},
		{"Hari Raya Waisak", TypeReligious},
		{"Tahun Baru Imlek", TypeReligious},
		{"Kenaikan Isa Almasih", TypeReligious},
		{"Maulid Nabi Muhammad", TypeReligious},
		{"Isra Mi'raj Nabi Muhammad", TypeReligious},
		{"Hari Kemerdekaan", TypeNational},
		{"Tahun Baru Masehi", TypeNational},
		{"Hari Buruh Internasional", TypeNational},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ClassifyType(c.name))
		})
	}
}
