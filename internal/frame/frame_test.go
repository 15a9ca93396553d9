package frame

import (
	"testing"

	"github.com/adinfinit/g"
	"github.com/stretchr/testify/assert"
)

func TestFrameNext(t *testing.T) {
	var frame Frame

	assert.True(t, frame.Next(g.V2(640, 480), 1.0))
	assert.Equal(t, float32(0), frame.DeltaTime, "first frame has no delta")

	assert.False(t, frame.Next(g.V2(640, 480), 1.5))
	assert.InDelta(t, 0.5, frame.DeltaTime, 1e-6)
	assert.InDelta(t, 4.0/3.0, frame.Aspect(), 1e-6)

	assert.True(t, frame.Next(g.V2(800, 800), 1.75))
	assert.InDelta(t, 1.0, frame.Aspect(), 1e-6)
	assert.Equal(t, 3, frame.Count)
}

func TestFrameAspectEmpty(t *testing.T) {
	var frame Frame
	assert.Equal(t, float32(1), frame.Aspect())
}

func TestToggle(t *testing.T) {
	var toggle Toggle

	assert.True(t, toggle.Update(true))
	assert.True(t, toggle.On)

	assert.False(t, toggle.Update(true), "holding does not flip")
	assert.True(t, toggle.On)

	assert.False(t, toggle.Update(false))
	assert.True(t, toggle.Update(true))
	assert.False(t, toggle.On)
}

func TestCursor(t *testing.T) {
	var cursor Cursor
	assert.Equal(t, g.Vec2{}, cursor.Delta(100, 100))
	assert.Equal(t, g.V2(5, -3), cursor.Delta(105, 97))
	assert.Equal(t, g.Vec2{}, cursor.Delta(105, 97))
}

func TestFrameMinimized(t *testing.T) {
	var frame Frame
	frame.Next(g.V2(640, 480), 1.0)
	assert.False(t, frame.Minimized())

	assert.True(t, frame.Next(g.V2(0, 0), 1.1), "shrinking to nothing is a resize")
	assert.True(t, frame.Minimized())

	assert.True(t, frame.Next(g.V2(640, 480), 1.2))
	assert.False(t, frame.Minimized())
}
