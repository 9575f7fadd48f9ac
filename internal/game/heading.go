package game

import "math"

// Heading is one of the four cardinal facings. Movement is stepped and
// turns are 90 degrees, so a compass direction is the whole orientation
// state.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Angle returns the facing angle in radians, with east at 0 and y
// growing downward (so north is -pi/2).
func (h Heading) Angle() float64 {
	switch h {
	case North:
		return -math.Pi / 2
	case East:
		return 0
	case South:
		return math.Pi / 2
	default:
		return math.Pi
	}
}

// Delta returns the tile step for one move in this heading.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Left returns the heading after a 90 degree left turn.
func (h Heading) Left() Heading {
	return (h + 3) % 4
}

// Right returns the heading after a 90 degree right turn.
func (h Heading) Right() Heading {
	return (h + 1) % 4
}

// Arrow returns a glyph pointing along the heading, used on the map
// overlay.
func (h Heading) Arrow() rune {
	switch h {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	default:
		return '<'
	}
}

// String returns the compass letter for the heading.
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}
