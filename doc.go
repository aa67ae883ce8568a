// Package sharpmem controls Sharp Memory Display panels via SPI.
//
// Sharp Memory Displays (LS013B7DH03, LS013B7DH05, LS027B7DH01 and friends)
// are 1-bit reflective LCDs with one bit of memory per pixel. The host keeps
// a full frame in RAM and transmits it one scan line at a time; the panel
// holds the image with almost no power draw.
//
// # Display Characteristics
//
// - 1 bit per pixel: a set bit is white (erased), a clear bit is black (drawn)
// - Line-addressed writes: every transmitted line carries its own address
// - Chip select is active HIGH, the inverse of typical SPI peripherals
// - Data is clocked LSB-first
// - A VCOM bias bit must alternate regularly to avoid DC damage to the panel
//
// # Hardware Connection
//
// Connect the display via SPI:
//
//	Display Pin → System Pin
//	VIN         → 3.3-5.0V
//	GND         → GND
//	SCLK        → SPI Clock (SCLK)
//	MOSI        → SPI Data (MOSI)
//	CS          → GPIO (any available pin, driven active HIGH by the driver)
//	EXTMODE     → GND (software VCOM toggling, see below)
//	EXTCOMIN    → unconnected
//	DISP        → Optional: GPIO to switch the panel on/off
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/sharpmem"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get chip select GPIO pin
//		csPin := gpioreg.ByName("GPIO25")
//
//		// Create device
//		dev, _ := sharpmem.NewSPI(spiBus, csPin, &sharpmem.Opts{
//			W: 144,
//			H: 168,
//		})
//		defer dev.Halt()
//
//		// Draw into the buffer, then transmit
//		dev.FillRect(10, 10, 60, 40, sharpmem.Black)
//		dev.DrawFatLine(0, 0, 143, 167, 3, sharpmem.Gray)
//		dev.Refresh()
//	}
//
// # Colors and Dither Patterns
//
// Drawing operations take a sharpmem.Color. Besides solid Black and White,
// six procedural dither textures approximate gray levels on the 1-bit panel:
//
//	sharpmem.Gray            50% checkerboard
//	sharpmem.DarkGray        ~25% white
//	sharpmem.LightGray       ~75% white
//	sharpmem.Dotted          fine dot pattern
//	sharpmem.Striped         diagonal stripes
//	sharpmem.StripedReverse  diagonal stripes, mirrored
//
// A texture is a pure function of the physical pixel position, so redrawing a
// region always reproduces the same bits and partial redraws never shimmer.
//
// # Rotation
//
// SetRotation(0-3) rotates all subsequent drawing in quarter turns clockwise.
// Rotations 1 and 3 swap the logical width and height reported by Bounds.
// The pixel buffer itself always stays in rotation 0 orientation; Snapshot
// and Restore expose that raw layout.
//
// # Refreshing
//
// Drawing operations only mutate the in-memory buffer. Refresh transmits the
// whole buffer; Clear uses the panel's dedicated 2-byte clear command, which
// is much cheaper than refreshing an all-white frame. Both alternate the VCOM
// bias bit exactly once per transmitted frame.
//
// With EXTMODE tied low the panel expects this software VCOM toggling, so
// call Refresh (or Clear) at least once per second even for a static image.
//
// # Drawing with the image Packages
//
// Dev implements the periph.io display.Drawer surface. Any image.Image can be
// rendered with Draw, and image1bit.HorizontalLSB is a draw.Image, so text
// and shapes from golang.org/x/image compose directly:
//
//	img := image1bit.NewHorizontalLSB(dev.Bounds())
//	drawer := font.Drawer{
//		Dst:  img,
//		Src:  image.NewUniform(image1bit.Off),
//		Face: basicfont.Face7x13,
//		Dot:  fixed.P(4, 16),
//	}
//	drawer.DrawString("Hello!")
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Datasheet
//
// https://www.sharpsde.com/fileadmin/products/Displays/2016_SDE_App_Note_for_Memory_LCD_programming_V1.3.pdf
package sharpmem
