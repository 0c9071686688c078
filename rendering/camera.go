package rendering

import (
	"github.com/go-gl/mathgl/mgl32"

	"terrainwalker/physics"
)

// Camera is a first-person eye derived each frame from the capsule's
// position plus an externally tracked view direction. It holds no game
// state of its own.
type Camera struct {
	Position mgl32.Vec3
	ViewDir  mgl32.Vec3
}

func NewCamera(position mgl32.Vec3) *Camera {
	return &Camera{
		Position: position,
		ViewDir:  mgl32.Vec3{0, 0, -1},
	}
}

// ViewMatrix looks from the eye along the current view direction with a
// fixed world up.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.ViewDir), mgl32.Vec3{0, 1, 0})
}

// FollowCapsule places the eye above the capsule center: the top sphere
// plus an eye offset.
func (c *Camera) FollowCapsule(capsule *physics.CapsuleCollider, eyeOffset float32) {
	c.Position = mgl32.Vec3{
		float32(capsule.X),
		float32(capsule.Y) + float32(capsule.Radius) + eyeOffset,
		float32(capsule.Z),
	}
}
