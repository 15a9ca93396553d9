// Package window opens the GLFW window and GL context of an example and
// drives its frame loop.
package window

import (
	"fmt"
	"log"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/adinfit/glexamples/internal/camera"
	"github.com/adinfit/glexamples/internal/config"
	"github.com/adinfit/glexamples/internal/frame"
)

type Window struct {
	*glfw.Window
	Frame frame.Frame

	cursor frame.Cursor
}

// Open creates a window with a core profile context and makes it current.
// The caller must call Close, also when a later step fails.
func Open(cfg config.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)

	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize glow: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	glfw.SwapInterval(cfg.SwapInterval)

	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	window := &Window{Window: win}
	window.NextFrame()
	return window, nil
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// Close destroys the window and terminates GLFW.
func (window *Window) Close() {
	window.Destroy()
	glfw.Terminate()
}

func (window *Window) Running() bool { return !window.ShouldClose() }

// NextFrame advances the frame clock and updates the viewport when the
// framebuffer was resized.
func (window *Window) NextFrame() (resized bool) {
	width, height := window.GetFramebufferSize()
	resized = window.Frame.Next(g.V2(float32(width), float32(height)), glfw.GetTime())
	if resized {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
	return resized
}

// Present swaps the buffers and processes pending events.
func (window *Window) Present() {
	window.SwapBuffers()
	glfw.PollEvents()
}

// Size returns the framebuffer size in pixels.
func (window *Window) Size() (width, height int32) {
	return int32(window.Frame.ScreenSize.X), int32(window.Frame.ScreenSize.Y)
}

func (window *Window) Down(key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

// CaptureCursor hides the cursor and reports unbounded movement.
func (window *Window) CaptureCursor() {
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.cursor.Delta(window.GetCursorPos())
}

// FlyInput reads mouse movement and the WASD, Q and E keys.
func (window *Window) FlyInput() camera.Input {
	return camera.Input{
		Mouse:     window.cursor.Delta(window.GetCursorPos()),
		Forward:   window.Down(glfw.KeyW),
		Back:      window.Down(glfw.KeyS),
		Left:      window.Down(glfw.KeyA),
		Right:     window.Down(glfw.KeyD),
		RollLeft:  window.Down(glfw.KeyQ),
		RollRight: window.Down(glfw.KeyE),
	}
}
