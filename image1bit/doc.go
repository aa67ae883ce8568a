// Package image1bit provides a 1-bit monochrome image format for Sharp Memory Displays.
//
// Sharp Memory Display panels store one bit per pixel, transmitted LSB-first.
// Pixels are packed 8 per byte where the least significant bit is the leftmost
// pixel of the group.
//
// Memory layout example for an 8-pixel row with pixels 0, 3 and 7 white:
//
//	Pixels: 0  1  2  3  4  5  6  7
//	Values: 1  0  0  1  0  0  0  1
//	Byte:   0x89
//	        (bit 0 = pixel 0, bit 3 = pixel 3, bit 7 = pixel 7)
//
// A set bit is a white (erased) pixel and a clear bit is a black (drawn)
// pixel; this matches the panel polarity, so the buffer can be copied to the
// wire verbatim.
//
// This package provides:
//
// - Bit: A color type representing a single monochrome pixel (On/Off)
// - BitModel: A color model for converting standard Go colors to Bit
// - HorizontalLSB: An image.Image implementation matching the panel layout
//
// Example usage:
//
//	// Create a 144x168 image
//	img := image1bit.NewHorizontalLSB(image.Rect(0, 0, 144, 168))
//
//	// Set a pixel to white
//	img.SetBit(10, 20, image1bit.On)
//
//	// Get a pixel
//	b := img.BitAt(10, 20)
//	println(b.String())  // Output: On
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
