package sharpmem

import "testing"

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Black, "Black"},
		{White, "White"},
		{Gray, "Gray"},
		{DarkGray, "DarkGray"},
		{LightGray, "LightGray"},
		{Dotted, "Dotted"},
		{Striped, "Striped"},
		{StripedReverse, "StripedReverse"},
		{Color(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Color(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestPatternBits(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		x, y int
		want bool
	}{
		{"black is never white", Black, 0, 0, false},
		{"white is always white", White, 3, 7, true},

		// 50% checkerboard: white iff x+y is even
		{"gray even sum", Gray, 0, 0, true},
		{"gray odd sum", Gray, 1, 0, false},
		{"gray odd sum vertical", Gray, 0, 1, false},
		{"gray even sum diagonal", Gray, 1, 1, true},

		// Dark gray: odd rows black, even rows 1 white pixel in 4
		{"dark gray odd row", DarkGray, 0, 1, false},
		{"dark gray row 0 origin", DarkGray, 0, 0, true},
		{"dark gray row 0 offset", DarkGray, 1, 0, false},
		{"dark gray row 2 shifted", DarkGray, 2, 2, true},
		{"dark gray row 2 origin", DarkGray, 0, 2, false},

		// Light gray: odd rows white, even rows 1 black pixel in 4
		{"light gray odd row", LightGray, 3, 3, true},
		{"light gray row 0 origin", LightGray, 0, 0, false},
		{"light gray row 0 offset", LightGray, 1, 0, true},
		{"light gray row 2 shifted", LightGray, 2, 2, false},

		// Fine dot pattern
		{"dotted row 0 dot", Dotted, 2, 0, false},
		{"dotted row 0 blank", Dotted, 0, 0, true},
		{"dotted odd cell", Dotted, 1, 1, false},
		{"dotted row 2 dot", Dotted, 0, 2, false},
		{"dotted row 2 blank", Dotted, 2, 2, true},

		// Diagonal stripes: black iff y%3 == x%3
		{"striped diagonal", Striped, 0, 0, false},
		{"striped diagonal repeat", Striped, 4, 1, false},
		{"striped off diagonal", Striped, 1, 0, true},

		// Mirrored diagonal: black iff y%3 == 2-x%3
		{"striped reverse diagonal", StripedReverse, 2, 0, false},
		{"striped reverse repeat", StripedReverse, 0, 2, false},
		{"striped reverse off diagonal", StripedReverse, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.bitAt(tt.x, tt.y); got != tt.want {
				t.Errorf("%v.bitAt(%d, %d) = %v, want %v", tt.c, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestLightGrayComplementsDarkGray pins the intended symmetry between the two
// gray levels: every pixel is white in exactly one of them.
func TestLightGrayComplementsDarkGray(t *testing.T) {
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if LightGray.bitAt(x, y) == DarkGray.bitAt(x, y) {
				t.Errorf("LightGray and DarkGray agree at (%d, %d)", x, y)
			}
		}
	}
}

// TestRowByteMatchesBitAt verifies that the fill bytes used by the block
// drawing path reproduce the per-pixel pattern table exactly, for every code,
// across full pattern periods in both axes.
func TestRowByteMatchesBitAt(t *testing.T) {
	colors := []Color{Black, White, Gray, DarkGray, LightGray, Dotted, Striped, StripedReverse}

	for _, c := range colors {
		for y := 0; y < 12; y++ {
			for bx := 0; bx < 3; bx++ {
				b := c.rowByte(bx, y)
				for i := 0; i < 8; i++ {
					want := c.bitAt(bx*8+i, y)
					if got := b&(1<<i) != 0; got != want {
						t.Fatalf("%v.rowByte(%d, %d) bit %d = %v, want %v", c, bx, y, i, got, want)
					}
				}
			}
		}
	}
}

func TestRowByteWireConstants(t *testing.T) {
	// Spot-check the byte values the interior fill writes for the simple
	// codes; these are the values visible in a raw buffer dump.
	tests := []struct {
		c     Color
		bx, y int
		want  byte
	}{
		{Black, 0, 0, 0x00},
		{White, 0, 0, 0xFF},
		{Gray, 0, 0, 0x55},
		{Gray, 0, 1, 0xAA},
		{Gray, 1, 0, 0x55}, // period 2 tiles across bytes
		{DarkGray, 0, 0, 0x11},
		{DarkGray, 0, 1, 0x00},
		{DarkGray, 0, 2, 0x44},
		{LightGray, 0, 0, 0xEE},
		{LightGray, 0, 1, 0xFF},
		{LightGray, 0, 2, 0xBB},
	}

	for _, tt := range tests {
		if got := tt.c.rowByte(tt.bx, tt.y); got != tt.want {
			t.Errorf("%v.rowByte(%d, %d) = 0x%02X, want 0x%02X", tt.c, tt.bx, tt.y, got, tt.want)
		}
	}
}

// TestStripedBytesVaryAcrossRow pins the reason the diagonal patterns cannot
// use a single per-row constant: their period is 3 pixels, which does not
// divide the byte width.
func TestStripedBytesVaryAcrossRow(t *testing.T) {
	if Striped.rowByte(0, 0) == Striped.rowByte(1, 0) {
		t.Error("Striped fill bytes repeat every byte; expected a 3-byte period")
	}
	if Striped.rowByte(0, 0) != Striped.rowByte(3, 0) {
		t.Error("Striped fill bytes do not repeat with a 3-byte period")
	}
}
