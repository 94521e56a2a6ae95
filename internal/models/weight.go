package models

import "fmt"

// PoundsPerHundredweight converts between the two units ringers quote
// tenor weights in.
const PoundsPerHundredweight = 112.0

// Weight is the weight of the heaviest bell in a ring. Dove's Guide
// records it in pounds; it is never negative.
type Weight struct {
	lbs float64
}

// NewWeight builds a Weight from a value in pounds.
func NewWeight(lbs float64) Weight {
	return Weight{lbs: lbs}
}

// Pounds returns the weight in pounds.
func (w Weight) Pounds() float64 { return w.lbs }

// Hundredweight returns the weight in long hundredweight (cwt).
func (w Weight) Hundredweight() float64 { return w.lbs / PoundsPerHundredweight }

func (w Weight) String() string {
	return fmt.Sprintf("%g lbs", w.lbs)
}
