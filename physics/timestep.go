package physics

// StepLimiter bounds the frame delta the frame loop feeds into the physics
// update. CapsuleCollider.Update steps position by dt in one jump, so a
// stall (window drag, debugger pause) that produces a huge dt would carry
// the capsule far below the surface before the clamp check sees it.
type StepLimiter struct {
	MaxStep float64
}

func NewStepLimiter(maxStep float64) StepLimiter {
	return StepLimiter{MaxStep: maxStep}
}

// Clamp bounds dt to [0, MaxStep].
func (l StepLimiter) Clamp(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > l.MaxStep {
		return l.MaxStep
	}
	return dt
}
