package core

// Color is a semantic display color for editor indicators.
// The platform layer maps each value to a concrete terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlayActive // RGB(78, 201, 176)
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPlayActive:
		return "play-active"
	default:
		return "unknown"
	}
}
