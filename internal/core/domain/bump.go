package domain

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"go.trai.ch/zerr"
)

// BumpLevel selects which version field a bump increments.
type BumpLevel int

const (
	// BumpPatch increments the patch number.
	BumpPatch BumpLevel = iota
	// BumpMinor increments the minor number.
	BumpMinor
	// BumpMajor increments the major number.
	BumpMajor
)

var bumpLevelNames = map[BumpLevel]string{
	BumpPatch: "patch",
	BumpMinor: "minor",
	BumpMajor: "major",
}

// String returns the level name as accepted by ParseBumpLevel.
func (l BumpLevel) String() string {
	return bumpLevelNames[l]
}

// maxSuggestionDistance bounds how far a typo may be from a level name to be suggested.
const maxSuggestionDistance = 2

// ParseBumpLevel parses "major", "minor" or "patch". An empty string means patch.
func ParseBumpLevel(s string) (BumpLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return BumpPatch, nil
	}

	best, bestDist := "", maxSuggestionDistance+1
	for _, level := range []BumpLevel{BumpMajor, BumpMinor, BumpPatch} {
		candidate := level.String()
		if candidate == name {
			return level, nil
		}
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}

	err := zerr.With(zerr.Wrap(ErrInvalidBumpLevel, "unknown bump level"), "level", s)
	if best != "" {
		err = zerr.With(err, "did_you_mean", best)
	}
	return BumpPatch, err
}

// Bump increments only the field selected by level. The other fields are kept as they are,
// so a development version stays in the development channel after a minor or major bump.
func Bump(v SemanticVersion, level BumpLevel) SemanticVersion {
	switch level {
	case BumpMajor:
		v.Major++
	case BumpMinor:
		v.Minor++
	default:
		v.Patch++
	}
	return v
}
