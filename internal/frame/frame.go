// Package frame tracks per frame time, screen size and input edges.
package frame

import (
	"github.com/adinfinit/g"
)

type Frame struct {
	ScreenSize g.Vec2

	Time      float64
	DeltaTime float32
	Count     int
}

// Next advances to a frame at time now, reporting whether the screen
// size changed since the previous frame.
func (frame *Frame) Next(screenSize g.Vec2, now float64) (resized bool) {
	resized = frame.ScreenSize != screenSize
	frame.ScreenSize = screenSize

	if frame.Count > 0 {
		frame.DeltaTime = float32(now - frame.Time)
	}
	frame.Time = now
	frame.Count++
	return resized
}

// Minimized reports whether the screen has no area, as happens while the
// window is iconified on some platforms.
func (frame *Frame) Minimized() bool {
	return frame.ScreenSize.X <= 0 || frame.ScreenSize.Y <= 0
}

func (frame *Frame) Aspect() float32 {
	if frame.ScreenSize.Y == 0 {
		return 1
	}
	return frame.ScreenSize.X / frame.ScreenSize.Y
}

// Toggle flips its state on every press edge of a key.
type Toggle struct {
	On   bool
	down bool
}

// Update feeds the current key state and reports whether the toggle flipped.
func (toggle *Toggle) Update(down bool) bool {
	pressed := down && !toggle.down
	toggle.down = down
	if pressed {
		toggle.On = !toggle.On
	}
	return pressed
}

// Cursor converts absolute cursor positions into per frame deltas.
type Cursor struct {
	last  g.Vec2
	valid bool
}

// Delta returns the movement since the previous call, zero on the first.
func (cursor *Cursor) Delta(x, y float64) g.Vec2 {
	p := g.V2(float32(x), float32(y))
	if !cursor.valid {
		cursor.last, cursor.valid = p, true
		return g.Vec2{}
	}
	delta := g.V2(p.X-cursor.last.X, p.Y-cursor.last.Y)
	cursor.last = p
	return delta
}
