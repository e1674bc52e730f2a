package types

import (
	"math"
	"strconv"
)

// Degrees is a temperature in the forecast's units
type Degrees float64

// Round rounds to the nearest whole degree, halves toward positive infinity
func (d Degrees) Round() int {
	return int(math.Floor(float64(d) + 0.5))
}

// String renders the rounded temperature with a degree sign, e.g. "70°"
func (d Degrees) String() string {
	return strconv.Itoa(d.Round()) + "°"
}
