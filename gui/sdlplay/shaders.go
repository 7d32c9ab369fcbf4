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

// the quad covering the viewport is generated from the vertex ID so there is
// no vertex buffer
const vertexShader = `
#version 150 core

out vec2 Frag_UV;

void main()
{
	vec2 pos = vec2(float(gl_VertexID & 1), float((gl_VertexID >> 1) & 1));
	Frag_UV = vec2(pos.x, 1.0 - pos.y);
	gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

// the screen texture is a single channel of luminance. the overlay texture is
// the colour of the film in front of each pixel
const fragmentShader = `
#version 150 core

uniform sampler2D Screen;
uniform sampler2D Overlay;

in vec2 Frag_UV;
out vec4 Out_Color;

void main()
{
	float lum = texture(Screen, Frag_UV).r;
	Out_Color = vec4(texture(Overlay, Frag_UV).rgb * lum, 1.0);
}
`
