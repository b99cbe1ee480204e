package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOrientation is returned for an unknown orientation name
var ErrInvalidOrientation = errors.New("invalid orientation")

// Orientation describes how word/article data is laid out in a sheet
type Orientation string

const (
	// OrientationAuto picks whichever layout yields more pairs
	OrientationAuto Orientation = "auto"
	// OrientationVertical means column A holds words and column B holds articles
	OrientationVertical Orientation = "vertical"
	// OrientationHorizontal means row 1 holds words and row 2 holds articles
	OrientationHorizontal Orientation = "horizontal"
)

// ParseOrientation parses an orientation name. Empty input means auto.
func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return OrientationAuto, nil
	case OrientationAuto, OrientationVertical, OrientationHorizontal:
		return o, nil
	default:
		return "", fmt.Errorf("%w %q (expected auto|vertical|horizontal)", ErrInvalidOrientation, s)
	}
}
