// Package fault: compass octants and sense-of-movement labels.

package fault

import (
	"math"
	"strings"
)

// Octant is a compass octant used to disambiguate directions that a strike
// or azimuth alone leaves two-valued: which way a plane dips, and which end
// of the strike line a rake is measured from.
type Octant int

const (
	// OctantUndefined means no octant was recorded.
	OctantUndefined Octant = iota
	OctantN
	OctantNE
	OctantE
	OctantSE
	OctantS
	OctantSW
	OctantW
	OctantNW
)

var octantNames = map[Octant]string{
	OctantUndefined: "",
	OctantN:         "N",
	OctantNE:        "NE",
	OctantE:         "E",
	OctantSE:        "SE",
	OctantS:         "S",
	OctantSW:        "SW",
	OctantW:         "W",
	OctantNW:        "NW",
}

// String returns the compass abbreviation, or "" for OctantUndefined.
func (o Octant) String() string {
	if s, ok := octantNames[o]; ok {
		return s
	}
	return "invalid"
}

// azimuth returns the octant's center azimuth in radians clockwise from
// North. Call only on defined octants.
func (o Octant) azimuth() float64 {
	return float64(o-OctantN) * math.Pi / 4
}

// ParseOctant reads a compass abbreviation, case-insensitively. The empty
// string (and "-") parse to OctantUndefined, matching blank table cells.
func ParseOctant(s string) (Octant, error) {
	var key = strings.ToUpper(strings.TrimSpace(s))
	if key == "" || key == "-" {
		return OctantUndefined, nil
	}
	for o, name := range octantNames {
		if name != "" && name == key {
			return o, nil
		}
	}
	return OctantUndefined, ErrBadMeasurement
}

// Movement is the sense of movement of the hanging wall relative to the
// footwall, as recorded in the field. Single senses constrain one slip
// component; combined senses constrain both.
type Movement int

const (
	// MovementUndefined leaves the striation unoriented (a line, not an
	// arrow). Kinds that need an arrow reject it with ErrMovementRequired.
	MovementUndefined Movement = iota
	MovementNormal
	MovementInverse
	MovementRightLateral
	MovementLeftLateral
	MovementNormalRightLateral
	MovementNormalLeftLateral
	MovementInverseRightLateral
	MovementInverseLeftLateral
)

var movementNames = map[Movement]string{
	MovementUndefined:           "Undefined",
	MovementNormal:              "Normal",
	MovementInverse:             "Inverse",
	MovementRightLateral:        "Right Lateral",
	MovementLeftLateral:         "Left Lateral",
	MovementNormalRightLateral:  "Normal Right Lateral",
	MovementNormalLeftLateral:   "Normal Left Lateral",
	MovementInverseRightLateral: "Inverse Right Lateral",
	MovementInverseLeftLateral:  "Inverse Left Lateral",
}

// String returns the conventional field label.
func (m Movement) String() string {
	if s, ok := movementNames[m]; ok {
		return s
	}
	return "invalid"
}

// movementAliases maps normalized spellings (lowercase, separators
// stripped) to movements. Short field-book forms are included.
var movementAliases = map[string]Movement{
	"":                    MovementUndefined,
	"undefined":           MovementUndefined,
	"normal":              MovementNormal,
	"n":                   MovementNormal,
	"inverse":             MovementInverse,
	"reverse":             MovementInverse,
	"i":                   MovementInverse,
	"rightlateral":        MovementRightLateral,
	"dextral":             MovementRightLateral,
	"rl":                  MovementRightLateral,
	"leftlateral":         MovementLeftLateral,
	"sinistral":           MovementLeftLateral,
	"ll":                  MovementLeftLateral,
	"normalrightlateral":  MovementNormalRightLateral,
	"nrl":                 MovementNormalRightLateral,
	"normalleftlateral":   MovementNormalLeftLateral,
	"nll":                 MovementNormalLeftLateral,
	"inverserightlateral": MovementInverseRightLateral,
	"irl":                 MovementInverseRightLateral,
	"inverseleftlateral":  MovementInverseLeftLateral,
	"ill":                 MovementInverseLeftLateral,
}

// ParseMovement reads a sense-of-movement label. Case, spaces, hyphens and
// underscores are ignored, so "Normal - Right Lateral" and "normal_right_
// lateral" both parse. "-" and the empty string mean MovementUndefined.
func ParseMovement(s string) (Movement, error) {
	var key = strings.ToLower(s)
	key = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, key)

	if m, ok := movementAliases[key]; ok {
		return m, nil
	}
	return MovementUndefined, ErrBadMeasurement
}

// vertical returns the required sign of the striation's Z component:
// −1 for a normal component, +1 for an inverse one, 0 unconstrained.
func (m Movement) vertical() int {
	switch m {
	case MovementNormal, MovementNormalRightLateral, MovementNormalLeftLateral:
		return -1
	case MovementInverse, MovementInverseRightLateral, MovementInverseLeftLateral:
		return +1
	default:
		return 0
	}
}

// lateral returns the required sign of the striation's along-strike
// component (positive = right-lateral), 0 unconstrained.
func (m Movement) lateral() int {
	switch m {
	case MovementRightLateral, MovementNormalRightLateral, MovementInverseRightLateral:
		return +1
	case MovementLeftLateral, MovementNormalLeftLateral, MovementInverseLeftLateral:
		return -1
	default:
		return 0
	}
}
