// Package billboard draws points as camera facing quads, expanded in a
// geometry shader and shaded with a soft radial falloff.
package billboard

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glexamples/internal/glutil"
)

// Style describes how a point is expanded and shaded.
type Style struct {
	// Version is the GLSL version line, without the #version prefix.
	Version string
	// Size is half the edge length of the quad in view space.
	Size float32
	// Intensity scales the falloff before the color is applied.
	Intensity float32
	Color     mgl32.Vec4
	// Locations declares View and Projection at explicit uniform
	// locations 0 and 1, which needs GLSL 4.30.
	Locations bool
}

// Galaxy is the style of the star field.
func Galaxy() Style {
	return Style{Version: "410 core", Size: 1, Intensity: 0.2, Color: mgl32.Vec4{1, 0.9, 0.6, 1}}
}

// Particles is the style of the falling particles.
func Particles() Style {
	return Style{Version: "410 core", Size: 0.2, Intensity: 0.2, Color: mgl32.Vec4{0.3, 0.3, 1, 1}}
}

// Program compiles the billboard shaders. Positions are read from
// attribute location 0 and the program expects the uniforms View and
// Projection.
func Program(style Style) (*glutil.Program, error) {
	return glutil.NewProgram(
		glutil.Vertex(fmt.Sprintf(vertexShader, style.Version)),
		glutil.Geometry(fmt.Sprintf(geometryShader, style.Version, style.uniforms(), style.Size)),
		glutil.Fragment(fmt.Sprintf(fragmentShader, style.Version,
			style.Intensity, style.Color[0], style.Color[1], style.Color[2], style.Color[3])),
	)
}

func (style Style) uniforms() string {
	if style.Locations {
		return "layout(location = 0) uniform mat4 View;\nlayout(location = 1) uniform mat4 Projection;"
	}
	return "uniform mat4 View;\nuniform mat4 Projection;"
}

var vertexShader = `
#version %s
layout(location = 0) in vec4 vposition;

void main() {
	gl_Position = vposition;
}
`

var geometryShader = `
#version %s
%s

layout(points) in;
layout(triangle_strip, max_vertices = 4) out;

out vec2 txcoord;

const float size = %g;

void corner(vec4 pos, vec2 c) {
	txcoord = c;
	gl_Position = Projection * (pos + size * vec4(c, 0, 0));
	EmitVertex();
}

void main() {
	vec4 pos = View * gl_in[0].gl_Position;
	corner(pos, vec2(-1, -1));
	corner(pos, vec2( 1, -1));
	corner(pos, vec2(-1,  1));
	corner(pos, vec2( 1,  1));
	EndPrimitive();
}
`

var fragmentShader = `
#version %s
in vec2 txcoord;

layout(location = 0) out vec4 FragColor;

void main() {
	float s = %g * (1 / (1 + 15. * dot(txcoord, txcoord)) - 1 / 16.);
	FragColor = s * vec4(%g, %g, %g, %g);
}
`
