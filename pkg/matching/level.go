package matching

import (
	"errors"
	"fmt"
	"math"
)

// MatchLevel is a qualitative label for a match percentage.
type MatchLevel string

const (
	MatchExcellent MatchLevel = "excellent"
	MatchGood      MatchLevel = "good"
	MatchFair      MatchLevel = "fair"
	MatchPoor      MatchLevel = "poor"
)

var ErrInvalidPercentage = errors.New("invalid match percentage")

// Classify maps a percentage to a MatchLevel using the thresholds 80, 60
// and 40 (inclusive lower bounds).
func Classify(percentage float64) (MatchLevel, error) {
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) || percentage < 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidPercentage, percentage)
	}
	switch {
	case percentage >= 80:
		return MatchExcellent, nil
	case percentage >= 60:
		return MatchGood, nil
	case percentage >= 40:
		return MatchFair, nil
	default:
		return MatchPoor, nil
	}
}
