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
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/gopher8080/test"
	"github.com/jetsetilly/gopher8080/video"
)

func TestFit(t *testing.T) {
	// limited by height. 51 rows leaves 100 pixels
	w, h := fit(200, 51)
	test.ExpectEquality(t, h, 100)
	test.ExpectEquality(t, w, 100*video.Width/video.Height)

	// limited by width
	w, h = fit(56, 100)
	test.ExpectEquality(t, w, 56)
	test.ExpectEquality(t, h, 64)

	// height is always even
	_, h = fit(57, 100)
	test.ExpectEquality(t, h%2, 0)

	w, h = fit(80, 1)
	test.ExpectEquality(t, w, 0)
	test.ExpectEquality(t, h, 0)
}

func TestRender(t *testing.T) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.SetRGBA(0, 0, white)
	img.SetRGBA(1, 0, white)
	img.SetRGBA(0, 1, black)
	img.SetRGBA(1, 1, black)
	img.SetRGBA(0, 2, white)
	img.SetRGBA(1, 2, black)

	var buf bytes.Buffer
	render(&buf, img)

	expected := "\x1b[H" +
		"\x1b[38;2;255;255;255m\x1b[48;2;0;0;0m▀▀\x1b[0m" +
		"\r\n" +
		"\x1b[38;2;255;255;255m\x1b[48;2;0;0;0m▀\x1b[38;2;0;0;0m▀\x1b[0m"

	test.ExpectEquality(t, buf.String(), expected)
}

func TestScaleSource(t *testing.T) {
	pixels := make([]uint8, video.PixelsLen)
	pixels[10*video.Width+5] = video.On
	pixels[40*video.Width+100] = video.On

	img := image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))
	dst := image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))

	// without the overlay the unpacked pixels are scaled directly
	src := source(pixels, img, false)
	_, ok := src.(*image.Gray)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, img.RGBAAt(5, 10), color.RGBA{})

	scale(dst, src)
	test.ExpectEquality(t, dst.RGBAAt(5, 10), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	test.ExpectEquality(t, dst.RGBAAt(100, 40), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	test.ExpectEquality(t, dst.RGBAAt(6, 10), color.RGBA{A: 0xff})

	// the UFO band is coloured by the overlay
	src = source(pixels, img, true)
	test.ExpectSuccess(t, src == image.Image(img))

	scale(dst, src)
	test.ExpectEquality(t, dst.RGBAAt(100, 40), video.Overlay(100, 40))
	test.ExpectEquality(t, dst.RGBAAt(5, 10), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	// scaling down to half size
	half := image.NewRGBA(image.Rect(0, 0, video.Width/2, video.Height/2))
	scale(half, video.Gray(make([]uint8, video.PixelsLen)))
	test.ExpectEquality(t, half.RGBAAt(0, 0), color.RGBA{A: 0xff})
}
