// internal/daily/daily.go
//
// Deterministic daily target selection. All players get the same city on
// the same day; the day rolls over at midnight US Central. The zone is a
// fixed UTC-6 year-round (no DST) so the reset time never shifts.

package daily

import (
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// central is US Central Standard Time, fixed at UTC-6.
var central = time.FixedZone("CST", -6*60*60)

// Now returns the current time; a variable so tests can pin the clock.
var Now = time.Now

// DateKey returns YYYY-MM-DD for t in the fixed Central zone.
func DateKey(t time.Time) string {
	return t.In(central).Format("2006-01-02")
}

// Today returns the current date key in the fixed Central zone.
func Today() string {
	return DateKey(Now())
}

// TargetIndex returns a deterministic index for a date key using
// SHA-256(YYYY-MM-DD) % n. The first 8 bytes of the digest are taken as a
// big-endian uint64 for the modulus.
func TargetIndex(dateKey string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := sha256.Sum256([]byte(dateKey))
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// NextReset returns the time remaining until the next midnight in the
// fixed Central zone (when a new target city becomes active).
func NextReset(t time.Time) time.Duration {
	ct := t.In(central)
	midnight := time.Date(ct.Year(), ct.Month(), ct.Day(), 0, 0, 0, 0, central).AddDate(0, 0, 1)
	return midnight.Sub(ct)
}
