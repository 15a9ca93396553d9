// Command queries flies through a voxel cave drawn in chunks. Chunks are
// drawn front to back in shells, and every shell first tests the chunks'
// bounding boxes with occlusion queries whose results gate the real draw
// through conditional rendering.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/loov/hrtime"

	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/frame"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/mesh"
	"github.com/adinfit/glexamples/internal/noise"
	"github.com/adinfit/glexamples/internal/voxel"
	"github.com/adinfit/glexamples/internal/window"
)

const chunksize = 32

// chunk is the GPU side of a voxel chunk.
type chunk struct {
	surface *mesh.Mesh
	bounds  *mesh.Mesh
	query   uint32
}

func (c *chunk) Delete() {
	c.surface.Delete()
	c.bounds.Delete()
	gl.DeleteQueries(1, &c.query)
}

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	extent := 4
	cfg, err := config.Load(config.Default("occlusion queries"), os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&extent, "chunks", extent, "chunks in each direction from the origin")
	})
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

	draw, err := glutil.NewProgram(
		glutil.Vertex(vertexShader),
		glutil.Fragment(fragmentShader),
	)
	if err != nil {
		return err
	}
	defer draw.Delete()

	query, err := glutil.NewProgram(
		glutil.Vertex(queryVertexShader),
		glutil.Fragment(queryFragmentShader),
	)
	if err != nil {
		return err
	}
	defer query.Delete()

	log.Println("generating chunks, this may take a while")
	start := hrtime.Now()
	world := voxel.Cave(noise.New(cfg.Seed))
	extracted := voxel.Grid(world, extent, chunksize)
	log.Printf("generated %d chunks in %v", len(extracted), hrtime.Since(start))

	chunks := make([]*voxel.Chunk, 0, len(extracted))
	gpu := make(map[*voxel.Chunk]*chunk, len(extracted))
	for _, c := range extracted {
		if c.QuadCount() == 0 {
			continue
		}
		g := &chunk{
			surface: mesh.Upload(c.Surface,
				mesh.Attribute{Location: 0, Components: 3},
				mesh.Attribute{Location: 1, Components: 3},
			),
			bounds: mesh.Upload(c.Bounds(),
				mesh.Attribute{Location: 0, Components: 3},
			),
		}
		gl.GenQueries(1, &g.query)

		chunks = append(chunks, c)
		gpu[c] = g
	}
	defer func() {
		for _, g := range gpu {
			g.Delete()
		}
	}()

	timer := glutil.NewTimerRing(5)
	defer timer.Delete()

	cam := camera.NewFly(10)
	win.CaptureCursor()

	occlusion := frame.Toggle{On: true}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.5, 0.8, 1.0, 1.0)

	for win.Running() {
		win.NextFrame()

		cam.Update(win.FlyInput(), win.Frame.DeltaTime)
		if occlusion.Update(win.Down(glfw.KeySpace)) {
			log.Println("occlusion culling", occlusion.On)
		}

		viewProjection := camera.Perspective(60, win.Frame.Aspect(), 0.1, 200).Mul4(cam.View())
		query.Use()
		query.SetMat4("ViewProjection", viewProjection)
		draw.Use()
		draw.SetMat4("ViewProjection", viewProjection)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		timer.Begin()

		voxel.SortByDistance(chunks, cam.Position)
		for _, shell := range voxel.Shells(chunks, cam.Position, chunksize) {
			var visible []*voxel.Chunk
			for _, c := range shell {
				if voxel.Visible(c.Center(), cam.Position, viewProjection, chunksize) {
					visible = append(visible, c)
				}
			}

			if occlusion.On {
				gl.Disable(gl.CULL_FACE)
				gl.DepthMask(false)
				gl.ColorMask(false, false, false, false)

				query.Use()
				for _, c := range visible {
					g := gpu[c]
					gl.BeginQuery(gl.ANY_SAMPLES_PASSED, g.query)
					g.bounds.Draw()
					gl.EndQuery(gl.ANY_SAMPLES_PASSED)
				}
			}

			gl.Enable(gl.CULL_FACE)
			gl.DepthMask(true)
			gl.ColorMask(true, true, true, true)

			draw.Use()
			for _, c := range visible {
				g := gpu[c]
				if occlusion.On {
					gl.BeginConditionalRender(g.query, gl.QUERY_BY_REGION_WAIT)
				}
				g.surface.Draw()
				if occlusion.On {
					gl.EndConditionalRender()
				}
			}
		}

		timer.End()

		if elapsed, ok := timer.Oldest(); ok {
			ms := float64(elapsed.Microseconds()) / 1000
			win.SetTitle(fmt.Sprintf("%s: %.2f ms/frame", cfg.Title, ms))
			if cfg.Stats {
				fmt.Printf("%.3f ms/frame\n", ms)
			}
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
#version 410 core
uniform mat4 ViewProjection;

layout(location = 0) in vec4 vposition;
layout(location = 1) in vec3 normal;

out vec4 fcolor;

void main() {
	float brightness = dot(normal, normalize(vec3(1, 2, 3)));
	brightness = 0.3 + ((brightness > 0) ? 0.7 * brightness : 0.3 * brightness);
	fcolor = vec4(brightness, brightness, brightness, 1);
	gl_Position = ViewProjection * vposition;
}
`

var fragmentShader = `
#version 410 core
in vec4 fcolor;

layout(location = 0) out vec4 FragColor;

void main() {
	FragColor = abs(fcolor);
}
`

var queryVertexShader = `
#version 410 core
uniform mat4 ViewProjection;

layout(location = 0) in vec4 vposition;

void main() {
	gl_Position = ViewProjection * vposition;
}
`

var queryFragmentShader = `
#version 410 core
void main() {
}
`
