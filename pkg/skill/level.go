package skill

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a proficiency level. Levels are ordered by weight only.
type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
	LevelExpert       Level = "EXPERT"
)

var ErrInvalidLevel = errors.New("invalid skill level")

// levelWeights is read-only after package init.
var levelWeights = map[Level]int{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
	LevelExpert:       4,
}

// Levels returns all levels from lowest to highest.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
}

// ParseLevel accepts a level name in any case and rejects unknown values.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := levelWeights[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// Weight returns the rank of l (1 for BEGINNER .. 4 for EXPERT).
func (l Level) Weight() (int, bool) {
	w, ok := levelWeights[l]
	return w, ok
}

func (l Level) Valid() bool {
	_, ok := levelWeights[l]
	return ok
}

func (l Level) String() string { return string(l) }
