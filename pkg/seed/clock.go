package seed

import "time"

// defaultTimeNowUnixNano is the real wall-clock source used by the
// opt-in observability timestamp path; kept in its own tiny function so
// tests can substitute a fixed clock via timeNowUnixNano.
func defaultTimeNowUnixNano() uint64 {
	return uint64(time.Now().UnixNano())
}
