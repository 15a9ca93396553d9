// Command imageloadstore simulates a two dimensional electromagnetic wave
// with a finite difference time domain scheme. The fields live in a float
// image that the fragment shaders read and update in place.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	gl43 "github.com/go-gl/gl/v4.3-core/gl"

	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/fdtd"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/mesh"
	"github.com/adinfit/glexamples/internal/noise"
	"github.com/adinfit/glexamples/internal/window"
)

const (
	gridSize = 512
	timestep = 1.0 / 60.0
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	defaults := config.Default("image load store")
	defaults.Width, defaults.Height = gridSize, gridSize
	defaults.GLMajor, defaults.GLMinor = 4, 3

	cfg, err := config.Load(defaults, os.Args[1:])
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

	if err := gl43.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL 4.3: %w", err)
	}

	magnetic, err := glutil.NewProgram(
		glutil.Vertex(vertexShader),
		glutil.Fragment(magneticShader),
	)
	if err != nil {
		return err
	}
	defer magnetic.Delete()

	electric, err := glutil.NewProgram(
		glutil.Vertex(vertexShader),
		glutil.Fragment(electricShader+fdtd.SourceGLSL()+electricMain),
	)
	if err != nil {
		return err
	}
	defer electric.Delete()

	quad := mesh.Upload(mesh.Quad(),
		mesh.Attribute{Location: 0, Components: 3},
		mesh.Attribute{Location: 1, Components: 2},
	)
	defer quad.Delete()

	field := glutil.NewFloatTexture(gridSize, gridSize, gl.RGBA32F, gl.RGBA,
		fdtd.Grid(noise.New(cfg.Seed), gridSize, gridSize))
	defer field.Delete()

	for _, program := range []*glutil.Program{magnetic, electric} {
		program.Use()
		gl.Uniform2i(program.Uniform("image_size"), gridSize, gridSize)
		program.SetInt("image", 0)
		program.SetFloat("dt", fdtd.Substep(timestep))
	}

	var clock fdtd.Clock
	for win.Running() {
		win.NextFrame()
		clock.Advance(timestep)

		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl43.BindImageTexture(0, field.ID, 0, false, 0, gl43.READ_WRITE, gl43.RGBA32F)

		for i := 0; i < fdtd.Substeps; i++ {
			last := i == fdtd.Substeps-1

			gl.ColorMask(false, false, false, false)
			magnetic.Use()
			quad.Draw()
			gl43.MemoryBarrier(gl43.SHADER_IMAGE_ACCESS_BARRIER_BIT)

			if last {
				gl.ColorMask(true, true, true, true)
			}
			electric.Use()
			electric.SetFloat("t", clock.SubstepTime(timestep, i))
			quad.Draw()
			gl43.MemoryBarrier(gl43.SHADER_IMAGE_ACCESS_BARRIER_BIT)
		}

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
	}

	return nil
}

var vertexShader = `
#version 430 core
layout(location = 0) in vec4 vposition;
layout(location = 1) in vec2 vtexcoord;

out vec2 ftexcoord;

void main() {
	ftexcoord = vtexcoord;
	gl_Position = vposition;
}
`

// magneticShader updates H from the curl of E.
var magneticShader = `
#version 430 core
uniform float dt;
uniform ivec2 image_size;
uniform layout(rgba32f) coherent image2D image;

in vec2 ftexcoord;

layout(location = 0) out vec4 FragColor;

void main() {
	ivec2 coords = ivec2(ftexcoord * image_size);
	vec4 HE = imageLoad(image, coords);
	float Ezdx = HE.z - imageLoad(image, coords - ivec2(1, 0)).z;
	float Ezdy = HE.z - imageLoad(image, coords - ivec2(0, 1)).z;
	HE.xy += dt * vec2(-Ezdy, Ezdx);
	imageStore(image, coords, HE);
	FragColor = HE;
}
`

// electricShader updates E from the curl of H with loss and injects the
// source at the grid center.
var electricShader = `
#version 430 core
uniform float t;
uniform float dt;
uniform ivec2 image_size;
uniform layout(rgba32f) coherent image2D image;

in vec2 ftexcoord;

layout(location = 0) out vec4 FragColor;
`

var electricMain = `
void main() {
	ivec2 coords = ivec2(ftexcoord * image_size);
	float e = 1;
	vec4 HE = imageLoad(image, coords);
	float r = HE.w;
	float Hydx = imageLoad(image, coords + ivec2(1, 0)).y - HE.y;
	float Hxdy = imageLoad(image, coords + ivec2(0, 1)).x - HE.x;
	HE.z = HE.z * (1 - dt * r / e) + dt * (Hydx - Hxdy) / e;

	if (coords == image_size / 2) {
		HE.z += source(t);
	}

	imageStore(image, coords, HE);
	FragColor = vec4(HE.z, HE.w, -HE.z, 1);
}
`
