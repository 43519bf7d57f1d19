package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Angular velocities at or below this are treated as stopped.
const spinEpsilon = 1e-4

// RotationAxis is one viewer angle plus an angular velocity that a
// critically damped spring pulls back to zero.
type RotationAxis struct {
	Angle    float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64
}

func newRotationAxis(fps int, angle float64) RotationAxis {
	return RotationAxis{
		Angle:  angle,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Advance moves the angle by one frame of velocity, then damps the velocity.
func (a *RotationAxis) Advance() {
	a.Angle += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

func (a *RotationAxis) moving() bool {
	return math.Abs(a.Velocity) > spinEpsilon
}

// RotationState is the viewer orientation. Reset returns pitch and yaw to
// the resting tilt the state was created with.
type RotationState struct {
	Pitch, Yaw, Roll RotationAxis
	fps              int
	tilt             float64
}

func NewRotationState(fps int, tilt float64) *RotationState {
	r := &RotationState{fps: fps, tilt: tilt}
	r.Reset()
	return r
}

func (r *RotationState) axes() [3]*RotationAxis {
	return [3]*RotationAxis{&r.Pitch, &r.Yaw, &r.Roll}
}

// Advance steps every axis by one frame.
func (r *RotationState) Advance() {
	for _, a := range r.axes() {
		a.Advance()
	}
}

// Push adds angular velocity to each axis.
func (r *RotationState) Push(pitch, yaw, roll float64) {
	for i, dv := range [3]float64{pitch, yaw, roll} {
		r.axes()[i].Velocity += dv
	}
}

func (r *RotationState) Reset() {
	r.Pitch = newRotationAxis(r.fps, r.tilt)
	r.Yaw = newRotationAxis(r.fps, r.tilt)
	r.Roll = newRotationAxis(r.fps, 0)
}

// Spinning reports whether any axis is still moving.
func (r *RotationState) Spinning() bool {
	for _, a := range r.axes() {
		if a.moving() {
			return true
		}
	}
	return false
}
