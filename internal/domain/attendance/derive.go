package attendance

import "time"

// LateCutoffMinutes is the lateness boundary: 09:00 business-local time
// expressed as minutes since midnight.
const LateCutoffMinutes = 9 * 60

// DeriveStatus computes the record status and late duration from the check-in
// instant. checkIn must already be in the business timezone; the comparison is
// wall-clock minutes since midnight against the 09:00 cutoff. Arriving at
// exactly 09:00 is on time, the boundary is strictly greater-than.
func DeriveStatus(checkIn time.Time) (Status, int) {
	minutes := checkIn.Hour()*60 + checkIn.Minute()
	if minutes > LateCutoffMinutes {
		return StatusLate, minutes - LateCutoffMinutes
	}
	return StatusPresent, 0
}

// DeriveWorkMinutes computes the work duration in whole minutes between
// check-in and check-out, rounding down.
func DeriveWorkMinutes(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Minutes())
}
