package sim

import "math"

// groundEpsilon is the tolerance for the at-rest test. The clamp writes
// exact zeros, but the tolerance guards against drift if the constants ever
// produce a near-zero landing.
const groundEpsilon = 1e-6

// integrate advances the character by one tick of constant-gravity
// kinematics. Semi-implicit Euler with the position update using the
// pre-update velocity; the order must not change or trajectories stop being
// reproducible:
//
//	y' = y + v
//	v' = v + g
//
// The ground is a hard floor: a tick that ends at or below 0 lands the
// character with zero velocity, which is what re-arms the jump.
func integrate(y, v, gravity float64) (float64, float64) {
	ny := y + v
	nv := v + gravity
	if ny <= 0 {
		return 0, 0
	}
	return ny, nv
}

// grounded reports whether the character is at rest on the ground.
func grounded(y, v float64) bool {
	return math.Abs(y) <= groundEpsilon && v == 0
}

// applyJump returns the velocity after a jump command. The impulse applies
// only when the character is at rest on the ground; airborne jumps are
// no-ops, so there are no double jumps.
func applyJump(y, v, impulse float64) float64 {
	if grounded(y, v) {
		return impulse
	}
	return v
}
