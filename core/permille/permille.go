// Package permille implements a simple and straightforward type for
// permille values, as used for split ratios.
package permille

import (
	"math"
	"strconv"
	"strings"
)

// Permille is a value in the range 0…1000.
type Permille int

// Full is 1000‰.
const Full Permille = 1000

// Unset marks a permille value which has not been computed yet.
const Unset Permille = -1

// FromInt clamps n to 0…1000.
func FromInt(n int) Permille {
	switch {
	case n <= 0:
		return Permille(0)
	case n >= 1000:
		return Full
	}
	return Permille(n)
}

// FromFloat converts a fraction 0.0…1.0 to permille.
func FromFloat(f float64) Permille {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Permille(0)
	case f >= 1 || math.IsInf(f, 1):
		return Full
	}
	return Permille(math.Round(f * 1000))
}

// FromRatio returns ⌊part·1000/whole⌋, or def if whole is 0.
func FromRatio(part, whole int, def Permille) Permille {
	if whole <= 0 {
		return def
	}
	return FromInt(part * 1000 / whole)
}

// FromString parses a permille value, with optional suffix "‰".
// A value with a decimal point is read as a fraction, i.e. "0.3" is 300‰.
func FromString(s string) (Permille, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "‰")
	if strings.ContainsRune(s, '.') {
		f, err := strconv.ParseFloat(s, 64)
		return FromFloat(f), err
	}
	n, err := strconv.Atoi(s)
	return FromInt(n), err
}

// Of returns ⌈total·p/1000⌉, i.e. the share of total for this value.
func (p Permille) Of(total int) int {
	if total <= 0 || p <= 0 {
		return 0
	}
	return (total*int(p) + 999) / 1000
}

// Clamp restricts p to [lo,hi].
func (p Permille) Clamp(lo, hi Permille) Permille {
	if p > hi {
		p = hi
	}
	if p < lo {
		p = lo
	}
	return p
}

func (p Permille) String() string {
	return strconv.Itoa(int(p))
}
