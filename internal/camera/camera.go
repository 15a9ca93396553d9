// Package camera implements the free flying camera and the fixed views
// used by the examples.
package camera

import (
	"github.com/adinfinit/g"
	"github.com/go-gl/mathgl/mgl32"
)

// Input is the state of the controls for a single frame.
type Input struct {
	// Mouse is the cursor movement in pixels since the previous frame.
	Mouse g.Vec2

	Forward, Back       bool
	Left, Right         bool
	RollLeft, RollRight bool
}

// Fly is a camera that turns with the mouse, rolls with Q and E and
// moves with WASD relative to its own orientation.
type Fly struct {
	Position mgl32.Vec3
	Rotation mgl32.Mat4

	// Speed is the movement speed in units per second.
	Speed float32
	// Turn is the rotation in degrees per pixel of mouse movement.
	Turn float32
	// Roll is the roll speed in degrees per second.
	Roll float32
}

func NewFly(speed float32) *Fly {
	return &Fly{
		Rotation: mgl32.Ident4(),
		Speed:    speed,
		Turn:     0.2,
		Roll:     180,
	}
}

// Axes returns the world space up, right and forward directions.
func (cam *Fly) Axes() (up, right, forward mgl32.Vec3) {
	inverse := cam.Rotation.Mat3().Transpose()
	up = inverse.Mul3x1(mgl32.Vec3{0, 1, 0})
	right = inverse.Mul3x1(mgl32.Vec3{1, 0, 0})
	forward = inverse.Mul3x1(mgl32.Vec3{0, 0, -1})
	return up, right, forward
}

// Update applies one frame of input. Movement uses the orientation from
// before this frame's rotation.
func (cam *Fly) Update(in Input, dt float32) {
	up, right, forward := cam.Axes()

	cam.rotate(cam.Turn*in.Mouse.X, up)
	cam.rotate(cam.Turn*in.Mouse.Y, right)

	if in.RollLeft {
		cam.rotate(cam.Roll*dt, forward)
	}
	if in.RollRight {
		cam.rotate(-cam.Roll*dt, forward)
	}

	step := cam.Speed * dt
	if in.Forward {
		cam.Position = cam.Position.Add(forward.Mul(step))
	}
	if in.Back {
		cam.Position = cam.Position.Sub(forward.Mul(step))
	}
	if in.Right {
		cam.Position = cam.Position.Add(right.Mul(step))
	}
	if in.Left {
		cam.Position = cam.Position.Sub(right.Mul(step))
	}
}

func (cam *Fly) rotate(degrees float32, axis mgl32.Vec3) {
	if degrees == 0 {
		return
	}
	cam.Rotation = cam.Rotation.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis))
}

// View returns the world to camera transform.
func (cam *Fly) View() mgl32.Mat4 {
	return cam.Rotation.Mul4(mgl32.Translate3D(-cam.Position[0], -cam.Position[1], -cam.Position[2]))
}

// Perspective returns a projection for a vertical field of view in degrees.
func Perspective(fovy, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovy), aspect, near, far)
}

// Orbit returns Translate(0, 0, -distance) · Rotate(tilt, X) · Rotate(yaw, Y)
// with angles in degrees.
func Orbit(distance, tilt, yaw float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -distance).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(tilt))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(yaw)))
}

// Spin returns Translate(0, 0, -distance) · Rotate(degrees, axis).
func Spin(distance, degrees float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -distance).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis.Normalize()))
}
