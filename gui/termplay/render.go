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

package termplay

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/gopher8080/video"
)

// the upper half block. the foreground colour is the top pixel and the
// background colour is the bottom pixel
const halfBlock = "▀"

// fit returns the largest image that can be drawn in a terminal of the given
// size while keeping the shape of the cabinet's screen. one line of the
// terminal is kept free for the status line
func fit(cols, rows int) (int, int) {
	maxW := cols
	maxH := (rows - 1) * 2
	if maxW <= 0 || maxH <= 0 {
		return 0, 0
	}

	var w, h int
	if maxW*video.Height <= maxH*video.Width {
		w = maxW
		h = maxW * video.Height / video.Width
	} else {
		h = maxH
		w = maxH * video.Width / video.Height
	}

	// whole character cells only
	h &^= 1

	return w, h
}

// render the image to the buffer with 24 bit colour escape sequences. colour
// changes are only written when the colour differs from the previous cell
func render(buf *bytes.Buffer, img *image.RGBA) {
	b := img.Bounds()

	buf.WriteString("\x1b[H")

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			buf.WriteString("\r\n")
		}

		var fg, bg color.RGBA
		first := true

		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bot := color.RGBA{A: 0xff}
			if y+1 < b.Max.Y {
				bot = img.RGBAAt(x, y+1)
			}

			if first || top != fg {
				fmt.Fprintf(buf, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
				fg = top
			}
			if first || bot != bg {
				fmt.Fprintf(buf, "\x1b[48;2;%d;%d;%dm", bot.R, bot.G, bot.B)
				bg = bot
			}
			first = false

			buf.WriteString(halfBlock)
		}

		buf.WriteString("\x1b[0m")
	}
}

// source returns the image to be scaled for the terminal. without the overlay
// the unpacked pixels are used directly and img is left untouched
func source(pixels []uint8, img *image.RGBA, overlay bool) image.Image {
	if !overlay {
		return video.Gray(pixels)
	}
	video.RGBA(pixels, img, true)
	return img
}

// scale the source image to fill dst
func scale(dst *image.RGBA, src image.Image) {
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}
