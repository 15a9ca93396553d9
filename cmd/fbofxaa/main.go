// Command fbofxaa renders a spinning cube into a framebuffer object and
// smooths its edges with FXAA in a fullscreen pass. Space toggles FXAA.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/frame"
	"github.com/adinfit/glexamples/internal/glutil"
	"github.com/adinfit/glexamples/internal/mesh"
	"github.com/adinfit/glexamples/internal/window"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := run(); err != nil && !config.IsHelp(err) {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Load(config.Default("fbofxaa"), os.Args[1:])
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

	scene, err := glutil.NewProgram(
		glutil.Vertex(sceneVertexShader),
		glutil.Fragment(sceneFragmentShader),
	)
	if err != nil {
		return err
	}
	defer scene.Delete()

	fxaa, err := glutil.NewProgram(
		glutil.Vertex(fxaaVertexShader),
		glutil.Fragment(fxaaFragmentShader),
	)
	if err != nil {
		return err
	}
	defer fxaa.Delete()

	cube := mesh.Upload(mesh.Cube(),
		mesh.Attribute{Location: 0, Components: 3},
		mesh.Attribute{Location: 1, Components: 3},
	)
	defer cube.Delete()

	quad := mesh.Upload(mesh.Quad(),
		mesh.Attribute{Location: 0, Components: 3},
		mesh.Attribute{Location: 1, Components: 2},
	)
	defer quad.Delete()

	width, height := win.Size()
	target, err := glutil.NewFramebuffer(width, height)
	if err != nil {
		return err
	}
	defer target.Delete()

	antialias := frame.Toggle{On: true}
	for win.Running() {
		resized := win.NextFrame()
		if win.Frame.Minimized() {
			win.Present()
			continue
		}
		if resized {
			width, height := win.Size()
			if err := target.Resize(width, height); err != nil {
				return err
			}
		}
		antialias.Update(win.Down(glfw.KeySpace))

		gl.Enable(gl.DEPTH_TEST)
		if antialias.On {
			target.Bind()
		} else {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		}
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		t := float32(win.Frame.Time)
		projection := camera.Perspective(90, win.Frame.Aspect(), 0.1, 100)
		view := camera.Spin(5, 90*t, mgl32.Vec3{1, 1, 1})

		scene.Use()
		scene.SetMat4("ViewProjection", projection.Mul4(view))
		cube.Draw()

		if antialias.On {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			gl.Disable(gl.DEPTH_TEST)

			fxaa.Use()
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, target.Color)
			fxaa.SetInt("intexture", 0)
			quad.Draw()
		}

		if err := glutil.CheckError(); err != nil {
			log.Println(err)
			break
		}

		win.Present()
	}

	return nil
}
