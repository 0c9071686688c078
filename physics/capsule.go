package physics

// HeightSource returns terrain height at a world (x, z). The collider only
// ever sees this function, so tests drive it with flat, stepped or ramped
// sources without any grid machinery behind them.
type HeightSource func(x, z float64) float64

// DefaultGravity is the vertical acceleration in world units per second
// squared.
const DefaultGravity = -9.8

// CapsuleCollider is a vertically constrained rigid body: gravity pulls it
// down each tick and the terrain clamps it from below. Horizontal motion is
// applied directly and is never blocked by terrain slope — a deliberate
// simplification of this model, not an oversight.
type CapsuleCollider struct {
	X, Y, Z   float64
	VelocityY float64
	Height    float64
	Radius    float64
	Gravity   float64

	// OnGround and Clamped reflect the outcome of the last Update. They
	// are recomputed fresh every tick from the clamp check, never latched.
	OnGround bool
	Clamped  bool
}

func NewCapsuleCollider(x, y, z, height, radius float64) *CapsuleCollider {
	return &CapsuleCollider{
		X: x, Y: y, Z: z,
		Height:  height,
		Radius:  radius,
		Gravity: DefaultGravity,
	}
}

// Update advances the vertical state by dt seconds: integrate velocity,
// predict the new Y, and snap to the surface if the capsule bottom would
// end up at or below the terrain. The position check is dt-stepped, not a
// continuous sweep, so callers must bound dt (see StepLimiter) or a fast
// fall can tunnel through a terrain feature within one tick.
func (c *CapsuleCollider) Update(dt float64, heightAt HeightSource) {
	c.VelocityY += c.Gravity * dt
	candidate := c.Y + c.VelocityY*dt

	terrain := heightAt(c.X, c.Z)
	bottom := candidate - c.Height/2

	if bottom <= terrain {
		candidate = terrain + c.Height/2
		c.VelocityY = 0
		c.OnGround = true
		c.Clamped = true
	} else {
		c.OnGround = false
		c.Clamped = false
	}
	c.Y = candidate
}

// MoveHorizontal shifts the capsule on the ground plane. Purely additive;
// independent of Update, so the order within a tick does not change the
// resulting (x, z).
func (c *CapsuleCollider) MoveHorizontal(dx, dz float64) {
	c.X += dx
	c.Z += dz
}
