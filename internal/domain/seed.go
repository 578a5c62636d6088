package domain

import "math"

// Per-field offsets added to the combined seed. Changing them changes every
// fortune ever read, so they are fixed.
const (
	offsetSuitable = iota
	offsetUnsuitable
	offsetCodeQuality
	offsetBTC
	offsetMystic
	offsetHue
	offsetLanguage
)

// BirthSeed folds a birth date into an integer: day + zero-based month*31 + year.
// It is a checksum, not a day count; distinct dates may collide.
func BirthSeed(d Date) int {
	return d.Day + int(d.Month-1)*31 + d.Year
}

// DaySeed is BirthSeed applied to the evaluation date.
func DaySeed(d Date) int {
	return BirthSeed(d)
}

// CombinedSeed is the root of every draw for a (birth, day) pair.
func CombinedSeed(birth, day Date) int {
	return BirthSeed(birth) + DaySeed(day)
}

// SeededRandom maps seed to [0, 1) via the fractional part of sin(seed)*10000.
// Reproducible and bounded, not statistically strong.
func SeededRandom(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	v := x - math.Floor(x)
	// A tiny negative x rounds x-floor(x) up to exactly 1.
	if v >= 1 {
		return 0
	}
	return v
}

// pickIndex draws an index in [0, n) from seed.
func pickIndex(seed, n int) int {
	return int(math.Floor(SeededRandom(seed) * float64(n)))
}
