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

package sdlplay

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/video"
)

type renderer struct {
	program uint32
	vao     uint32

	screen  uint32
	overlay uint32

	// uniforms
	screenLoc  int32
	overlayLoc int32

	// overlay images. plain is all white and is used when the overlay is
	// turned off
	film  *image.RGBA
	plain *image.RGBA
}

func newRenderer() (*renderer, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("gl: %w", err)
	}

	logger.Logf(logger.Allow, "sdlplay", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "sdlplay", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "sdlplay", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rnd := &renderer{}

	rnd.program, err = createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	rnd.screenLoc = gl.GetUniformLocation(rnd.program, gl.Str("Screen\x00"))
	rnd.overlayLoc = gl.GetUniformLocation(rnd.program, gl.Str("Overlay\x00"))

	// a vertex array object must be bound in a core profile even though there
	// are no vertex attributes
	gl.GenVertexArrays(1, &rnd.vao)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.GenTextures(1, &rnd.screen)
	gl.BindTexture(gl.TEXTURE_2D, rnd.screen)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, video.Width, video.Height, 0,
		gl.RED, gl.UNSIGNED_BYTE, nil)

	// the overlay images are created once
	rnd.film = image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))
	rnd.plain = image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))
	lit := make([]uint8, video.PixelsLen)
	for i := range lit {
		lit[i] = video.On
	}
	video.RGBA(lit, rnd.film, true)
	video.RGBA(lit, rnd.plain, false)

	gl.GenTextures(1, &rnd.overlay)
	gl.BindTexture(gl.TEXTURE_2D, rnd.overlay)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	rnd.setOverlay(false)

	return rnd, nil
}

func (rnd *renderer) destroy() {
	gl.DeleteTextures(1, &rnd.screen)
	gl.DeleteTextures(1, &rnd.overlay)
	gl.DeleteVertexArrays(1, &rnd.vao)
	gl.DeleteProgram(rnd.program)
}

func (rnd *renderer) setOverlay(on bool) {
	img := rnd.plain
	if on {
		img = rnd.film
	}
	gl.BindTexture(gl.TEXTURE_2D, rnd.overlay)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, video.Width, video.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// viewport fits the screen into the drawable area, preserving the aspect
// ratio of the screen.
func (rnd *renderer) viewport(w, h int32) {
	vw := w
	vh := w * video.Height / video.Width
	if vh > h {
		vh = h
		vw = h * video.Width / video.Height
	}
	gl.Viewport((w-vw)/2, (h-vh)/2, vw, vh)
}

func (rnd *renderer) render(pixels []uint8) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(rnd.program)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.screen)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, video.Width, video.Height,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.Uniform1i(rnd.screenLoc, 0)

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, rnd.overlay)
	gl.Uniform1i(rnd.overlayLoc, 1)

	gl.BindVertexArray(rnd.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// compile and link shader programs.
func createProgram(vertProgram string, fragProgram string) (uint32, error) {
	vertHandle, err := compileShader(gl.VERTEX_SHADER, vertProgram)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, fragProgram)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragHandle)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertHandle)
	gl.AttachShader(handle, fragHandle)
	gl.BindFragDataLocation(handle, 0, gl.Str("Out_Color\x00"))
	gl.LinkProgram(handle)

	var linked int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		gl.DeleteProgram(handle)
		return 0, fmt.Errorf("gl: shader program did not link")
	}

	return handle, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	handle := gl.CreateShader(kind)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		// the length includes the NULL character
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)

		return 0, fmt.Errorf("gl: %s", strings.TrimRight(log, "\x00"))
	}

	return handle, nil
}
