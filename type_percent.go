package stocksim

import "fmt"

type Percent float64

// Equal compares two percentages with a relative epsilon, so that values
// derived from the same prices through different float paths compare equal.
func (p Percent) Equal(q Percent) bool {
	const epsilon = 1e-9
	diff := float64(p - q)
	if diff < 0 {
		diff = -diff
	}
	scale := 1.0
	if a := abs(float64(p)); a > scale {
		scale = a
	}
	if b := abs(float64(q)); b > scale {
		scale = b
	}
	return diff <= epsilon*scale
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
