// Command tessellation renders a displacement mapped terrain whose
// triangles are subdivided more finely the closer they are to the camera.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/loov/hrtime"

	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/frame"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/noise"
	"github.com/adinfit/glexamples/internal/terrain"
	"github.com/adinfit/glexamples/internal/window"
)

const (
	displacementSize = 1024
	// grid is the number of base quads along each side before tessellation.
	grid = 64
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Load(config.Default("tessellation"), os.Args[1:])
	if err != nil {
		return err
	}

	stop, err := cfg.StartProfile()
	if err != nil {
		return err
	}
	defer stop()

	win, err := window.Open(cfg)
	if err != nil {
		return err
	}
	defer win.Close()

	program, err := glutil.NewProgram(
		glutil.Vertex(vertexShader),
		glutil.TessControl(tessControlShader),
		glutil.TessEvaluation(tessEvaluationShader),
		glutil.Fragment(fragmentShader),
	)
	if err != nil {
		return err
	}
	defer program.Delete()

	start := hrtime.Now()
	data := terrain.Displacement(noise.New(cfg.Seed), displacementSize, displacementSize)
	log.Printf("generated displacement map in %v", hrtime.Since(start))

	displacement := glutil.NewFloatTexture(displacementSize, displacementSize, gl.RGB32F, gl.RGB, data)
	defer displacement.Delete()

	// the positions come from gl_InstanceID and gl_VertexID, but core
	// profile still requires a vertex array to draw
	vao := glutil.NewVertexArray()
	defer glutil.DeleteVertexArrays(vao)

	gl.PatchParameteri(gl.PATCH_VERTICES, 3)
	gl.Enable(gl.DEPTH_TEST)

	cam := camera.NewFly(0.1)
	cam.Position = mgl32.Vec3{0.5, 0.5, 0.5}
	win.CaptureCursor()

	tessellate := frame.Toggle{On: true}

	for win.Running() {
		win.NextFrame()

		cam.Update(win.FlyInput(), win.Frame.DeltaTime)
		tessellate.Update(win.Down(glfw.KeySpace))

		if win.Down(glfw.KeyLeftShift) {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		projection := camera.Perspective(60, win.Frame.Aspect(), 0.001, 10)

		displacement.Bind(0)
		program.Use()
		program.SetUint("width", grid)
		program.SetUint("height", grid)
		program.SetMat4("ViewProjection", projection.Mul4(cam.View()))
		program.SetVec3("ViewPosition", cam.Position)
		program.SetInt("displacement", 0)
		if tessellate.On {
			program.SetFloat("tess_scale", 1)
		} else {
			program.SetFloat("tess_scale", 0)
		}

		gl.BindVertexArray(vao)
		gl.DrawArraysInstanced(gl.PATCHES, 0, 6, grid*grid)

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
	}

	return nil
}

var vertexShader = `
#version 410 core
uniform uint width;
uniform uint height;

out vec4 tposition;

const vec2 quad_offsets[6] = vec2[](
	vec2(0, 0), vec2(1, 0), vec2(1, 1),
	vec2(0, 0), vec2(1, 1), vec2(0, 1)
);

void main() {
	vec2 base = vec2(uint(gl_InstanceID) / width, uint(gl_InstanceID) % width);
	vec2 offset = quad_offsets[gl_VertexID];
	vec2 pos = (base + offset) / vec2(width + 1u, height + 1u);
	tposition = vec4(pos, 0, 1);
}
`

var tessControlShader = `
#version 410 core
uniform vec3 ViewPosition;
uniform float tess_scale;

layout(vertices = 3) out;

in vec4 tposition[];
out vec4 tcposition[];

float level(vec4 center, float scale, float limit, vec3 eye) {
	return min(limit, 1 + tess_scale * scale / distance(center.xyz, eye));
}

void main() {
	tcposition[gl_InvocationID] = tposition[gl_InvocationID];
	if (gl_InvocationID == 0) {
		vec3 eye = ViewPosition;
		eye.z -= clamp(eye.z, -0.1, 0.1);

		gl_TessLevelOuter[0] = level((tposition[1] + tposition[2]) / 2.0, 0.5, 6.0, eye);
		gl_TessLevelOuter[1] = level((tposition[2] + tposition[0]) / 2.0, 0.5, 6.0, eye);
		gl_TessLevelOuter[2] = level((tposition[0] + tposition[1]) / 2.0, 0.5, 6.0, eye);
		gl_TessLevelInner[0] = level((tposition[0] + tposition[1] + tposition[2]) / 3.0, 0.7, 7.0, eye);
	}
}
`

var tessEvaluationShader = `
#version 410 core
uniform mat4 ViewProjection;
uniform sampler2D displacement;

layout(triangles, equal_spacing, cw) in;

in vec4 tcposition[];
out vec2 tecoord;
out vec4 teposition;

void main() {
	teposition = gl_TessCoord.x * tcposition[0];
	teposition += gl_TessCoord.y * tcposition[1];
	teposition += gl_TessCoord.z * tcposition[2];
	tecoord = teposition.xy;
	teposition.xyz = texture(displacement, tecoord).xyz;
	gl_Position = ViewProjection * teposition;
}
`

var fragmentShader = `
#version 410 core
uniform vec3 ViewPosition;
uniform sampler2D displacement;

in vec4 teposition;
in vec2 tecoord;

layout(location = 0) out vec4 FragColor;

void main() {
	vec3 x = textureOffset(displacement, tecoord, ivec2(0, 0)).xyz;
	vec3 t0 = x - textureOffset(displacement, tecoord, ivec2(1, 0)).xyz;
	vec3 t1 = x - textureOffset(displacement, tecoord, ivec2(0, 1)).xyz;
	vec3 normal = (gl_FrontFacing ? 1 : -1) * normalize(cross(t0, t1));

	vec3 light = normalize(vec3(2, -1, 3));
	vec3 reflected = reflect(normalize(ViewPosition - teposition.xyz), normal);

	float ambient = 0.1;
	float diffuse = max(0, dot(normal, light));
	float specular = pow(max(0, dot(reflected, light)), 64);

	FragColor = vec4(vec3(ambient + 0.5 * diffuse + 0.4 * specular), 1);
}
`
