package timer

// ShouldFire reports whether an interval alert is due after elapsed seconds.
// Alerts land on every exact multiple of period and never at the start
// instant. It does not care whether a sound is attached.
func ShouldFire(elapsed, period int) bool {
	return period > 0 && elapsed > 0 && elapsed%period == 0
}
