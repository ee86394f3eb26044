package dashboard

import "math"

// Ring describes the stroke of the circular progress indicator.
type Ring struct {
	Radius        float64
	Circumference float64
	Offset        float64
}

// Circumference returns the stroke length of a ring with the given radius.
func Circumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// Progress returns consumed/goal clamped to [0, 1]. With no positive goal
// any consumption counts as a full ring.
func Progress(consumed, goal int) float64 {
	if goal <= 0 {
		if consumed > 0 {
			return 1
		}
		return 0
	}
	return math.Max(0, math.Min(float64(consumed)/float64(goal), 1))
}

// ProgressOffset returns the stroke dash offset: circumference minus the
// filled arc length.
func ProgressOffset(consumed, goal int, circumference float64) float64 {
	return circumference - Progress(consumed, goal)*circumference
}

// NewRing computes the ring for the given state values.
func NewRing(consumed, goal int, radius float64) Ring {
	c := Circumference(radius)
	return Ring{
		Radius:        radius,
		Circumference: c,
		Offset:        ProgressOffset(consumed, goal, c),
	}
}

// Percent is the filled share of the ring as a whole percentage.
func (r Ring) Percent() int {
	if r.Circumference == 0 {
		return 0
	}
	return int(math.Round((r.Circumference - r.Offset) / r.Circumference * 100))
}
