// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package video converts the video memory of the Space Invaders cabinet into
// images that can be displayed by the GUI drivers.
//
// The monitor in the cabinet is mounted on its side. In memory the display is
// 256 pixels wide and 224 pixels high, one bit per pixel with the least
// significant bit being the leftmost pixel. Rotated into the upright
// position seen by the player, each group of 32 bytes is a column of the
// screen, starting at the bottom.
//
// The cabinet's monitor is black and white. Colour was added with strips of
// coloured film in front of the screen. The Overlay() function returns the
// colour of the film for a pixel.
package video

import (
	"image"
	"image/color"
)

// Dimensions of the upright screen.
const (
	Width  = 224
	Height = 256

	// number of bytes in a framebuffer
	FramebufferLen = Width * Height / 8

	// number of bytes in an unpacked image
	PixelsLen = Width * Height
)

// Luminance values of unpacked pixels.
const (
	Off uint8 = 0x00
	On  uint8 = 0xff
)

// Unpack the framebuffer into one byte per pixel, stored in rows starting at
// the top of the upright screen. The dst slice must be at least PixelsLen
// bytes long and fb should be FramebufferLen bytes long.
func Unpack(fb []uint8, dst []uint8) {
	if len(fb) > FramebufferLen {
		fb = fb[:FramebufferLen]
	}

	for i, b := range fb {
		x := i / 32
		y := Height - 1 - (i%32)*8

		for bit := 0; bit < 8; bit++ {
			p := Off
			if b&(1<<bit) != 0 {
				p = On
			}
			dst[(y-bit)*Width+x] = p
		}
	}
}

// Gray returns the unpacked pixels as an image. The pixels are not copied.
func Gray(pixels []uint8) *image.Gray {
	return &image.Gray{
		Pix:    pixels,
		Stride: Width,
		Rect:   image.Rect(0, 0, Width, Height),
	}
}

// the bands of coloured film in the upright screen coordinates
var (
	red   = color.RGBA{R: 0xff, G: 0x20, B: 0x20, A: 0xff}
	green = color.RGBA{R: 0x20, G: 0xff, B: 0x20, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Overlay returns the colour of the film in front of the pixel at x and y.
// The UFO band is red. The shields and the player's base are green, as are
// the reserve bases at the bottom left of the screen.
func Overlay(x, y int) color.RGBA {
	switch {
	case y >= 32 && y < 64:
		return red
	case y >= 184 && y < 240:
		return green
	case y >= 240 && x >= 16 && x < 134:
		return green
	}
	return white
}

// RGBA converts the unpacked pixels to an RGBA image. If overlay is true the
// colours of the film overlay are applied. The dst image must be at least
// Width by Height.
func RGBA(pixels []uint8, dst *image.RGBA, overlay bool) {
	for y := 0; y < Height; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < Width; x++ {
			c := white
			if overlay {
				c = Overlay(x, y)
			}

			p := pixels[y*Width+x]
			i := x * 4
			row[i] = uint8(uint16(c.R) * uint16(p) / 0xff)
			row[i+1] = uint8(uint16(c.G) * uint16(p) / 0xff)
			row[i+2] = uint8(uint16(c.B) * uint16(p) / 0xff)
			row[i+3] = 0xff
		}
	}
}
