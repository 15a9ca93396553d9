// Command geometryshader renders a spiral galaxy of points, expanding each
// point into a blended quad in a geometry shader.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfit/glexamples/internal/billboard"
	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/particles"
	"github.com/adinfit/glexamples/internal/window"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	stars := 128 * 1024
	cfg, err := config.Load(config.Default("geometry shader"), os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&stars, "stars", stars, "number of stars")
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

	program, err := billboard.Program(billboard.Galaxy())
	if err != nil {
		return err
	}
	defer program.Delete()

	positions := particles.Flatten(particles.Galaxy(stars, rand.New(rand.NewSource(cfg.Seed))))

	vao := glutil.NewVertexArray()
	defer glutil.DeleteVertexArrays(vao)
	vbo := glutil.NewBuffer(gl.ARRAY_BUFFER, 4*len(positions), gl.Ptr(positions), gl.STATIC_DRAW)
	defer glutil.DeleteBuffers(vbo)
	glutil.Attrib(0, 3, 3*4, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	for win.Running() {
		win.NextFrame()

		gl.Clear(gl.COLOR_BUFFER_BIT)

		t := float32(win.Frame.Time)
		program.Use()
		program.SetMat4("View", camera.Orbit(50, 30*math32.Sin(0.1*t), -22.5*t))
		program.SetMat4("Projection", camera.Perspective(90, win.Frame.Aspect(), 0.1, 100))

		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.POINTS, 0, int32(stars))

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
	}

	return nil
}
