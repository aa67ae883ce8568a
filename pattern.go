package sharpmem

// Color selects what a drawing operation writes into the pixel buffer.
//
// Black and White write solid bits. The remaining values are procedural
// dither textures approximating gray levels on the 1-bit panel. A texture is
// a pure function of the raw (unrotated) pixel position, so redrawing the
// same region always produces the same bits and partial refreshes never
// flicker.
type Color uint8

// Supported colors, ordered by wire value.
const (
	Black          Color = iota // solid black
	White                       // solid white
	Gray                        // 50% checkerboard
	DarkGray                    // ~25% white
	LightGray                   // ~75% white
	Dotted                      // fine dot pattern
	Striped                     // diagonal stripes
	StripedReverse              // diagonal stripes, mirrored
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case Gray:
		return "Gray"
	case DarkGray:
		return "DarkGray"
	case LightGray:
		return "LightGray"
	case Dotted:
		return "Dotted"
	case Striped:
		return "Striped"
	case StripedReverse:
		return "StripedReverse"
	}
	return "Unknown"
}

// bitAt is the dither pattern table: it reports whether the pixel at raw
// position (x, y) is white for this color. Both the per-pixel and the
// block-fill drawing paths resolve dithered colors through this single
// function, so the two paths can never disagree.
//
// x and y must be raw (rotation 0) coordinates and non-negative.
func (c Color) bitAt(x, y int) bool {
	switch c {
	case White:
		return true
	case Gray:
		return (x+y)%2 == 0
	case DarkGray:
		if y%2 != 0 {
			return false
		}
		return (x+2*((y/2)%2))%4 == 0
	case LightGray:
		if y%2 != 0 {
			return true
		}
		return (x+2*((y/2)%2))%4 != 0
	case Dotted:
		if (y%4 == 0 && x%4 == 2) ||
			(x%2 == 1 && y%2 == 1) ||
			(y%4 == 2 && x%4 == 0) {
			return false
		}
		return true
	case Striped:
		return y%3 != x%3
	case StripedReverse:
		return y%3 != 2-x%3
	}
	// Black, and anything out of range
	return false
}

// rowByte returns the full fill byte for byte column bx on raw row y: bit i
// corresponds to the pixel at x = bx*8+i. Derived from bitAt, never authored
// separately. The diagonal stripe patterns repeat every 3 pixels, so their
// fill byte depends on bx as well as y.
func (c Color) rowByte(bx, y int) byte {
	switch c {
	case Black:
		return 0x00
	case White:
		return 0xFF
	}
	var b byte
	for i := 0; i < 8; i++ {
		if c.bitAt(bx*8+i, y) {
			b |= 1 << uint(i)
		}
	}
	return b
}
