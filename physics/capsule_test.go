package physics

import (
	"math"
	"testing"
)

func flatSource(elevation float64) HeightSource {
	return func(x, z float64) float64 { return elevation }
}

// stepSource drops from upper to 0 once x passes the edge.
func stepSource(edge, upper float64) HeightSource {
	return func(x, z float64) float64 {
		if x < edge {
			return upper
		}
		return 0
	}
}

func rampSource(slope float64) HeightSource {
	return func(x, z float64) float64 { return slope * x }
}

func TestCapsuleSettlesOnFlatTerrain(t *testing.T) {
	const (
		elevation = 3.0
		height    = 4.0
		dt        = 0.016
	)
	c := NewCapsuleCollider(0, 20, 0, height, 1)
	source := flatSource(elevation)

	for i := 0; i < 1000; i++ {
		c.Update(dt, source)

		bottom := c.Y - height/2
		if bottom < elevation-1e-9 {
			t.Fatalf("tick %d: capsule bottom %v penetrated terrain %v", i, bottom, elevation)
		}
	}

	if want := elevation + height/2; c.Y != want {
		t.Errorf("settled Y = %v, want %v", c.Y, want)
	}
	if c.VelocityY != 0 {
		t.Errorf("settled VelocityY = %v, want 0", c.VelocityY)
	}
	if !c.OnGround || !c.Clamped {
		t.Errorf("settled OnGround/Clamped = %v/%v, want true/true", c.OnGround, c.Clamped)
	}
}

func TestCapsuleAirborneWhileFalling(t *testing.T) {
	c := NewCapsuleCollider(0, 100, 0, 4, 1)

	c.Update(0.016, flatSource(0))

	if c.OnGround || c.Clamped {
		t.Errorf("high capsule reports OnGround/Clamped = %v/%v after one tick", c.OnGround, c.Clamped)
	}
	if c.VelocityY >= 0 {
		t.Errorf("VelocityY = %v after gravity tick, want negative", c.VelocityY)
	}
	if c.Y >= 100 {
		t.Errorf("Y = %v after falling tick, want below 100", c.Y)
	}
}

func TestCapsuleFallsOffLedge(t *testing.T) {
	const dt = 0.016
	source := stepSource(10, 5)

	// Settle on the upper level first.
	c := NewCapsuleCollider(5, 10, 0, 4, 1)
	for i := 0; i < 200; i++ {
		c.Update(dt, source)
	}
	if c.Y != 5+2 {
		t.Fatalf("not settled on upper level: Y = %v", c.Y)
	}

	// Walk past the edge; terrain never blocks horizontal motion.
	c.MoveHorizontal(10, 0)
	c.Update(dt, source)
	if c.OnGround {
		t.Error("still grounded immediately after walking off the ledge")
	}

	for i := 0; i < 1000; i++ {
		c.Update(dt, source)
	}
	if c.Y != 0+2 {
		t.Errorf("after the drop Y = %v, want %v", c.Y, 2.0)
	}
}

func TestCapsuleClampsUphill(t *testing.T) {
	const dt = 0.016
	source := rampSource(0.1)

	c := NewCapsuleCollider(0, 2, 0, 4, 1)
	for i := 0; i < 200; i++ {
		c.Update(dt, source)
	}
	startY := c.Y

	// Each uphill step re-clamps to the higher surface.
	for i := 0; i < 50; i++ {
		c.MoveHorizontal(1, 0)
		c.Update(dt, source)
		if !c.OnGround {
			t.Fatalf("step %d: lost ground contact walking uphill", i)
		}
	}
	if c.Y <= startY {
		t.Errorf("Y = %v after walking uphill, want above start %v", c.Y, startY)
	}
	if want := 0.1*c.X + 2; math.Abs(c.Y-want) > 1e-9 {
		t.Errorf("Y = %v at x=%v, want surface+half-height %v", c.Y, c.X, want)
	}
}

func TestMoveHorizontalOrderIndependent(t *testing.T) {
	const dt = 0.016
	source := rampSource(0.05)

	a := NewCapsuleCollider(3, 10, 7, 4, 1)
	b := NewCapsuleCollider(3, 10, 7, 4, 1)

	a.MoveHorizontal(2, -1)
	a.Update(dt, source)

	b.Update(dt, source)
	b.MoveHorizontal(2, -1)

	if a.X != b.X || a.Z != b.Z {
		t.Errorf("(x,z) differs by ordering: (%v,%v) vs (%v,%v)", a.X, a.Z, b.X, b.Z)
	}
}

func TestMoveHorizontalAdditive(t *testing.T) {
	c := NewCapsuleCollider(1, 0, 2, 4, 1)
	c.MoveHorizontal(3, -4)
	c.MoveHorizontal(-1, 1)

	if c.X != 3 || c.Z != -1 {
		t.Errorf("position (%v, %v), want (3, -1)", c.X, c.Z)
	}
}
