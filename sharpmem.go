// Package sharpmem controls a Sharp Memory Display via SPI.
//
// Sharp Memory Displays are 1-bit reflective LCDs with a built-in pixel
// memory, addressed one scan line at a time. Common resolutions are 96x96,
// 144x168 and 400x240.
//
// See the examples for how to use this package.
package sharpmem

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/sharpmem/image1bit"
)

// Command bits of the first frame byte. The panel reads them LSB-first, so
// these values are already in wire order.
const (
	bitWriteCmd = 0x01 // write one or more lines
	bitVCOM     = 0x02 // current VCOM bias state
	bitClear    = 0x04 // clear all pixel memory
)

// Opts is the configuration for the Sharp Memory Display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 144)
	H int // Height (default: 168, must be ≤255)

	// Initial drawing rotation in quarter turns clockwise (0-3)
	Rotation int

	// SPI clock frequency (default: 2MHz, the panel maximum)
	Frequency physic.Frequency

	// Optional display enable pin (DISP), pulled high on init
	DISP gpio.PinIO
}

// Dev is the device handle for the Sharp Memory Display.
type Dev struct {
	// Communication
	c    conn.Conn   // SPI connection
	cs   gpio.PinOut // Chip select pin, active HIGH on this device family
	disp gpio.PinIO  // Display enable pin (optional)

	// Display geometry
	rawW, rawH    int // physical, rotation 0
	width, height int // logical, post-rotation
	rowBytes      int // bytes per raw scan line
	rotation      int

	// Pixel buffer, raw (rotation 0) orientation
	bp *image1bit.HorizontalLSB

	// Protocol state
	vcom  byte   // current VCOM bit, toggled once per transmitted frame
	frame []byte // scratch buffer for the encoded refresh frame

	// State
	halted bool
}

// NewSPI creates a new Sharp Memory Display device connected via SPI.
//
// The SPI port is configured for Mode0, LSB-first, 8-bit transfers with the
// port's chip select disabled: cs must be a GPIO pin and is driven by this
// driver because the display's chip select is active HIGH, the inverse of
// typical SPI peripherals.
//
// opts can be nil to use defaults (144x168 display).
func NewSPI(p spi.Port, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 144, H: 168}
	}

	if opts.W <= 0 {
		return nil, errors.New("sharpmem: width must be positive")
	}
	if opts.H <= 0 || opts.H > 255 {
		return nil, errors.New("sharpmem: height must be between 1 and 255")
	}
	if cs == nil {
		return nil, errors.New("sharpmem: chip select pin is required")
	}

	freq := opts.Frequency
	if freq == 0 {
		freq = 2 * physic.MegaHertz
	}

	// Establish SPI connection. The port chip select is not used, see above.
	c, err := p.Connect(freq, spi.Mode0|spi.NoCS|spi.LSBFirst, 8)
	if err != nil {
		return nil, err
	}

	// Create device
	bp := image1bit.NewHorizontalLSB(image.Rect(0, 0, opts.W, opts.H))
	bp.Fill(image1bit.On)
	d := &Dev{
		c:        c,
		cs:       cs,
		disp:     opts.DISP,
		rawW:     opts.W,
		rawH:     opts.H,
		rowBytes: bp.Stride,
		bp:       bp,
		vcom:     bitVCOM,
		frame:    make([]byte, 2+opts.H*(bp.Stride+2)),
	}
	d.SetRotation(opts.Rotation)

	// Initialize the display
	if err := d.init(); err != nil {
		return nil, err
	}

	return d, nil
}

// init parks the chip select line and enables the panel.
func (d *Dev) init() error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("sharpmem: failed to pull CS low: %w", err)
	}
	if d.disp != nil {
		if err := d.disp.Out(gpio.High); err != nil {
			return fmt.Errorf("sharpmem: failed to pull DISP high: %w", err)
		}
	}
	return nil
}

// txFrame sends one frame with the chip select asserted around it.
// The select line is active HIGH on this device family.
func (d *Dev) txFrame(frame []byte) error {
	if err := d.cs.Out(gpio.High); err != nil {
		return err
	}
	err := d.c.Tx(frame, nil)
	if csErr := d.cs.Out(gpio.Low); err == nil {
		err = csErr
	}
	return err
}

// toggleVCOM flips the VCOM bias bit. The panel requires the bias to
// alternate regularly to avoid DC damage; the driver toggles it exactly once
// per transmitted frame.
func (d *Dev) toggleVCOM() {
	if d.vcom != 0 {
		d.vcom = 0
	} else {
		d.vcom = bitVCOM
	}
}

// encodeFrame serializes the pixel buffer into d.frame in wire order:
// a command byte carrying the VCOM bit, then for every raw scan line a
// 1-based line address, rowBytes of pixel data and a zero trailer, then one
// final zero terminator.
func (d *Dev) encodeFrame() []byte {
	f := d.frame
	f[0] = d.vcom | bitWriteCmd
	o := 1
	for line := 0; line < d.rawH; line++ {
		f[o] = byte(line + 1)
		copy(f[o+1:], d.bp.Pix[line*d.rowBytes:(line+1)*d.rowBytes])
		f[o+1+d.rowBytes] = 0x00
		o += d.rowBytes + 2
	}
	f[o] = 0x00
	return f
}

// Refresh transmits the entire pixel buffer to the display.
func (d *Dev) Refresh() error {
	if d.halted {
		return errors.New("sharpmem: halted")
	}
	if err := d.txFrame(d.encodeFrame()); err != nil {
		return fmt.Errorf("sharpmem: refresh: %w", err)
	}
	d.toggleVCOM()
	return nil
}

// Clear blanks the display using the panel's clear command and resets the
// pixel buffer to all white. The 2-byte clear frame is much cheaper than a
// full Refresh of an all-white buffer.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("sharpmem: halted")
	}
	d.ClearBuffer()
	if err := d.txFrame([]byte{d.vcom | bitClear, 0x00}); err != nil {
		return fmt.Errorf("sharpmem: clear: %w", err)
	}
	d.toggleVCOM()
	return nil
}

// ClearBuffer resets the pixel buffer to all white without transmitting
// anything to the display.
func (d *Dev) ClearBuffer() {
	d.bp.Fill(image1bit.On)
}

// Snapshot copies the raw pixel buffer into dst, which must be exactly
// rowBytes*H bytes. The data is in rotation 0 orientation.
func (d *Dev) Snapshot(dst []byte) error {
	if len(dst) != len(d.bp.Pix) {
		return errors.New("sharpmem: invalid buffer size")
	}
	copy(dst, d.bp.Pix)
	return nil
}

// Restore overwrites the raw pixel buffer with src, which must be exactly
// rowBytes*H bytes in rotation 0 orientation. Nothing is transmitted; call
// Refresh to display the restored buffer.
func (d *Dev) Restore(src []byte) error {
	if len(src) != len(d.bp.Pix) {
		return errors.New("sharpmem: invalid buffer size")
	}
	copy(d.bp.Pix, src)
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display under the current rotation.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Write writes raw pixel data to the display in HorizontalLSB format and
// refreshes. The data must be exactly rowBytes*H bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("sharpmem: halted")
	}
	if len(pixels) != len(d.bp.Pix) {
		return 0, errors.New("sharpmem: invalid buffer size")
	}
	copy(d.bp.Pix, pixels)
	if err := d.Refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display and refreshes.
// The dst rectangle specifies the destination region on the display in
// logical coordinates; sp is the top-left point of the source image.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("sharpmem: halted")
	}

	// Clip to display bounds
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}

	if d.rotation == 0 {
		// Fast path: logical and raw orientation coincide
		draw.Draw(d.bp, dst, src, sp, draw.Src)
	} else {
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			for x := dst.Min.X; x < dst.Max.X; x++ {
				c := src.At(sp.X+x-dst.Min.X, sp.Y+y-dst.Min.Y)
				if image1bit.BitModel.Convert(c).(image1bit.Bit) {
					d.SetPixel(x, y, White)
				} else {
					d.SetPixel(x, y, Black)
				}
			}
		}
	}

	return d.Refresh()
}

// Halt turns the panel off via the DISP pin, when wired, and stops accepting
// commands. The device must be re-created to be used again.
func (d *Dev) Halt() error {
	d.halted = true
	if d.disp != nil {
		if err := d.disp.Out(gpio.Low); err != nil {
			return fmt.Errorf("sharpmem: failed to pull DISP low: %w", err)
		}
	}
	return nil
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("sharpmem.Dev{%dx%d}", d.rawW, d.rawH)
}
