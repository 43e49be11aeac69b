package fontreg

import (
	"math"
	"strconv"
)

// Weight is a font weight on the 100..900 scale, where 400 is regular and
// 700 is bold. Values are not validated; zero means "unspecified" and is
// treated as WeightNormal wherever a request is resolved.
type Weight int

// Common weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// BoldThreshold is the lowest weight considered bold.
const BoldThreshold = WeightBold

// IsBold reports whether w falls in the bold class.
func (w Weight) IsBold() bool {
	return w >= BoldThreshold
}

// orNormal returns w, or WeightNormal when w is unspecified.
func (w Weight) orNormal() Weight {
	if w == 0 {
		return WeightNormal
	}
	return w
}

// distance returns |w - o|.
func (w Weight) distance(o Weight) int {
	d := int(w - o)
	if d < 0 {
		return -d
	}
	return d
}

// String returns the weight as a decimal number.
func (w Weight) String() string {
	return strconv.Itoa(int(w))
}

// AppleWeight converts w to the normalized weight used by Core Text and
// similar APIs, where -1 is thinnest, 0 regular and 1 heaviest.
// 100 maps to -1, 400 to 0 and 900 to 1; the two halves are linear.
func AppleWeight(w Weight) float64 {
	n := float64(w - WeightNormal)
	if n < 0 {
		return n / 300
	}
	return n / 500
}

// WeightFromApple is the inverse of AppleWeight, rounded to the nearest
// hundred and clamped to 100..900.
func WeightFromApple(f float64) Weight {
	scale := 5.0
	if f < 0 {
		scale = 3.0
	}
	w := Weight(math.Round(f*scale))*100 + WeightNormal
	return min(max(w, WeightThin), WeightBlack)
}
