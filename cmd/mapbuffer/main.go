// Command mapbuffer animates particles on the CPU and streams them to the
// GPU every frame through mapped buffers, rotating between three buffers so
// the upload never waits for a draw still in flight.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/loov/hrtime"

	"github.com/adinfit/glexamples/internal/billboard"
	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/particles"
	"github.com/adinfit/glexamples/internal/window"
)

const buffercount = 3

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	count := 128 * 1024
	cfg, err := config.Load(config.Default("map buffer"), os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&count, "particles", count, "number of particles")
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

	program, err := billboard.Program(billboard.Particles())
	if err != nil {
		return err
	}
	defer program.Delete()

	sys := particles.NewSystem(count, int32(cfg.Seed))
	size := int(unsafe.Sizeof(g.Vec3{})) * count

	var vaos, vbos [buffercount]uint32
	for i := range vaos {
		vaos[i] = glutil.NewVertexArray()
		vbos[i] = glutil.NewBuffer(gl.ARRAY_BUFFER, size, gl.Ptr(sys.Position), gl.DYNAMIC_DRAW)
		glutil.Attrib(0, 3, 3*4, 0)
	}
	defer glutil.DeleteVertexArrays(vaos[:]...)
	defer glutil.DeleteBuffers(vbos[:]...)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)

	var simulated time.Duration
	current := 0
	for win.Running() {
		win.NextFrame()

		start := hrtime.Now()
		sys.Step(particles.StepSeed(cfg.Seed, win.Frame.Count))
		simulated += hrtime.Since(start)

		// the buffer two steps ahead was drawn two frames ago
		gl.BindBuffer(gl.ARRAY_BUFFER, vbos[(current+2)%buffercount])
		gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
		mapped := gl.MapBufferRange(gl.ARRAY_BUFFER, 0, size, gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_BUFFER_BIT)
		if mapped == nil {
			return errors.New("failed to map particle buffer")
		}
		copy(unsafe.Slice((*g.Vec3)(mapped), count), sys.Position)
		gl.UnmapBuffer(gl.ARRAY_BUFFER)

		gl.Clear(gl.COLOR_BUFFER_BIT)

		t := float32(win.Frame.Time)
		program.Use()
		program.SetMat4("View", camera.Orbit(30, 30, -22.5*t))
		program.SetMat4("Projection", camera.Perspective(90, win.Frame.Aspect(), 0.1, 100))

		gl.BindVertexArray(vaos[current])
		gl.DrawArrays(gl.POINTS, 0, int32(count))

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		if win.Frame.Count%60 == 0 {
			perFrame := simulated / 60
			win.SetTitle(fmt.Sprintf("%s: simulation %v", cfg.Title, perFrame))
			if cfg.Stats {
				log.Printf("simulation %v per frame", perFrame)
			}
			simulated = 0
		}

		win.Present()
		current = (current + 1) % buffercount
	}

	return nil
}
