package sharpmem

import (
	"math"

	"periph.io/x/devices/v3/sharpmem/image1bit"
)

// toRaw converts logical coordinates to raw (rotation 0) buffer coordinates.
// The caller must have bounds-checked (x, y) against the logical extents.
func (d *Dev) toRaw(x, y int) (int, int) {
	switch d.rotation {
	case 1:
		return d.rawW - 1 - y, x
	case 2:
		return d.rawW - 1 - x, d.rawH - 1 - y
	case 3:
		return y, d.rawH - 1 - x
	}
	return x, y
}

// SetRotation sets the drawing rotation in quarter turns clockwise (0-3).
// Rotations 1 and 3 swap the logical width and height. The rotation applies
// to subsequent draw calls only; bits already in the buffer are unchanged.
func (d *Dev) SetRotation(rotation int) {
	d.rotation = rotation & 3
	switch d.rotation {
	case 1, 3:
		d.width = d.rawH
		d.height = d.rawW
	default:
		d.width = d.rawW
		d.height = d.rawH
	}
}

// Rotation returns the current drawing rotation (0-3).
func (d *Dev) Rotation() int {
	return d.rotation
}

// SetPixel draws a single pixel at logical position (x, y).
// Out of range coordinates are silently dropped.
func (d *Dev) SetPixel(x, y int, c Color) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	x, y = d.toRaw(x, y)
	idx := x/8 + y*d.rowBytes
	mask := byte(1) << uint(x&7)
	if c.bitAt(x, y) {
		d.bp.Pix[idx] |= mask
	} else {
		d.bp.Pix[idx] &^= mask
	}
}

// Pixel returns the stored bit at logical position (x, y): On for white, Off
// for black. Dithered colors are resolved at draw time, only the resulting
// bit is stored. Out of range coordinates return Off.
func (d *Dev) Pixel(x, y int) image1bit.Bit {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return image1bit.Off
	}
	x, y = d.toRaw(x, y)
	return image1bit.Bit(d.bp.Pix[x/8+y*d.rowBytes]&(1<<uint(x&7)) != 0)
}

// FillRect fills a w x h rectangle with top-left corner at (x, y).
func (d *Dev) FillRect(x, y, w, h int, c Color) {
	for i := y; i < y+h; i++ {
		d.DrawFastHLine(x, i, w, c)
	}
}

// DrawFastHLine draws a horizontal run of w pixels starting at logical
// (x, y). A negative w mirrors the run to the left of x. Runs fully off the
// canvas are no-ops, partial runs are clipped.
func (d *Dev) DrawFastHLine(x, y, w int, c Color) {
	if w < 0 { // Convert negative widths to positive equivalent
		w *= -1
		x -= w - 1
		if x < 0 {
			w += x
			x = 0
		}
	}

	// Edge rejection (no-draw if totally off canvas)
	if y < 0 || y >= d.height || x >= d.width || x+w-1 < 0 {
		return
	}

	if x < 0 { // Clip left
		w += x
		x = 0
	}
	if x+w >= d.width { // Clip right
		w = d.width - x
	}

	// Under rotations 1 and 3 a logical horizontal run is a vertical run in
	// the raw buffer.
	switch d.rotation {
	case 0:
		d.drawFastRawHLine(x, y, w, c)
	case 1:
		d.drawFastRawVLine(d.rawW-1-y, x, w, c)
	case 2:
		d.drawFastRawHLine(d.rawW-1-x-(w-1), d.rawH-1-y, w, c)
	case 3:
		d.drawFastRawVLine(y, d.rawH-1-x-(w-1), w, c)
	}
}

// drawFastRawHLine writes a horizontal run of w pixels at raw (x, y).
// The run splits into a partial leading byte, whole interior bytes and a
// partial trailing byte. Partial bytes are edited under a bit mask so
// neighboring pixels are untouched; every byte value comes from the pattern
// table via Color.rowByte.
func (d *Dev) drawFastRawHLine(x, y, w int, c Color) {
	idx := x/8 + y*d.rowBytes
	bx := x / 8
	remaining := w

	if x&7 != 0 {
		// Partial leading byte
		var mask byte
		for i := x & 7; i < 8 && remaining > 0; i++ {
			mask |= 1 << uint(i)
			remaining--
		}
		d.bp.Pix[idx] = d.bp.Pix[idx]&^mask | c.rowByte(bx, y)&mask
		idx++
		bx++
	}

	whole := remaining / 8
	for i := 0; i < whole; i++ {
		d.bp.Pix[idx] = c.rowByte(bx, y)
		idx++
		bx++
	}

	if last := remaining % 8; last > 0 {
		// Partial trailing byte
		mask := byte(1)<<uint(last) - 1
		d.bp.Pix[idx] = d.bp.Pix[idx]&^mask | c.rowByte(bx, y)&mask
	}
}

// drawFastRawVLine writes a vertical run of h pixels at raw (x, y), one
// masked single-bit write per row.
func (d *Dev) drawFastRawVLine(x, y, h int, c Color) {
	idx := x/8 + y*d.rowBytes
	mask := byte(1) << uint(x&7)
	for i := 0; i < h; i++ {
		if c.bitAt(x, y+i) {
			d.bp.Pix[idx] |= mask
		} else {
			d.bp.Pix[idx] &^= mask
		}
		idx += d.rowBytes
	}
}

// DrawFatLine draws the segment (x0, y0)-(x1, y1) with the given stroke
// width, rendered as two filled triangles spanning the stroke. Strokes
// thinner than one pixel or segments shorter than one unit are no-ops.
func (d *Dev) DrawFatLine(x0, y0, x1, y1, strokeWidth int, c Color) {
	if strokeWidth < 1 {
		return
	}
	// Perpendicular to the segment, scaled to the stroke width.
	px := float64(y1 - y0)
	py := float64(-(x1 - x0))
	l := math.Sqrt(px*px + py*py)
	if l < 1 {
		// Too short, and do not divide by zero
		return
	}
	px = float64(strokeWidth) * px / l
	py = float64(strokeWidth) * py / l

	ix, iy := int(px), int(py)
	d.fillTriangle(x0+ix, y0+iy, x1+ix, y1+iy, x1-ix, y1-iy, c)
	d.fillTriangle(x0+ix, y0+iy, x1-ix, y1-iy, x0-ix, y0-iy, c)
}

// fillTriangle fills the triangle (x0, y0), (x1, y1), (x2, y2) one scanline
// at a time using DrawFastHLine.
func (d *Dev) fillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	// Sort by y
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 { // All on the same line
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		d.DrawFastHLine(a, y0, b-a+1, c)
		return
	}

	dx01 := x1 - x0
	dy01 := y1 - y0
	dx02 := x2 - x0
	dy02 := y2 - y0
	dx12 := x2 - x1
	dy12 := y2 - y1

	// Upper part, from y0 to y1. If y1 == y2 the scanline at y1 belongs
	// here, otherwise it is handled by the lower part.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	sa, sb := 0, 0
	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		d.DrawFastHLine(a, y, b-a+1, c)
	}

	// Lower part, from y to y2.
	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		d.DrawFastHLine(a, y, b-a+1, c)
	}
}
