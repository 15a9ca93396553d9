package camera

import (
	"testing"

	"github.com/adinfinit/g"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-4, "component %d of %v", i, actual)
	}
}

func TestFlyMovesForward(t *testing.T) {
	cam := NewFly(10)
	cam.Update(Input{Forward: true}, 1)
	assertVec3(t, mgl32.Vec3{0, 0, -10}, cam.Position)

	cam.Update(Input{Right: true}, 0.5)
	assertVec3(t, mgl32.Vec3{5, 0, -10}, cam.Position)
}

func TestFlyTurnsWithMouse(t *testing.T) {
	cam := NewFly(10)
	// 450 pixels at 0.2 degrees per pixel is a quarter turn
	cam.Update(Input{Mouse: g.V2(450, 0)}, 0)

	_, right, forward := cam.Axes()
	assertVec3(t, mgl32.Vec3{1, 0, 0}, forward)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, right)

	cam.Update(Input{Forward: true}, 1)
	assertVec3(t, mgl32.Vec3{10, 0, 0}, cam.Position)
}

func TestFlyRoll(t *testing.T) {
	cam := NewFly(1)
	cam.Update(Input{RollLeft: true}, 0.5)

	up, _, forward := cam.Axes()
	assertVec3(t, mgl32.Vec3{0, 0, -1}, forward)
	assert.InDelta(t, 0, up[1], 1e-4)
}

func TestFlyView(t *testing.T) {
	cam := NewFly(1)
	cam.Position = mgl32.Vec3{1, 2, 3}

	p := cam.View().Mul4x1(mgl32.Vec4{1, 2, 3, 1})
	assertVec3(t, mgl32.Vec3{0, 0, 0}, p.Vec3())
}

func TestOrbit(t *testing.T) {
	p := Orbit(30, 0, 0).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertVec3(t, mgl32.Vec3{0, 0, -30}, p.Vec3())

	p = Orbit(0, 0, 90).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assertVec3(t, mgl32.Vec3{0, 0, -1}, p.Vec3())
}

func TestSpin(t *testing.T) {
	p := Spin(5, 0, mgl32.Vec3{1, 1, 1}).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assertVec3(t, mgl32.Vec3{1, 0, -5}, p.Vec3())
}
