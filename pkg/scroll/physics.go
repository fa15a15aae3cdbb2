package scroll

// Physics determines how user drags move a View.
type Physics interface {
	// ApplyPhysicsToUserOffset adjusts a scroll delta (positive moves the
	// content up) before it is applied.
	ApplyPhysicsToUserOffset(view *View, delta float64) float64
}

// ClampingPhysics stops at the edges (Android default).
type ClampingPhysics struct{}

// ApplyPhysicsToUserOffset returns the raw delta; the view clamps the result.
func (ClampingPhysics) ApplyPhysicsToUserOffset(_ *View, delta float64) float64 {
	return delta
}

// BouncingPhysics lets drags overscroll with increasing resistance.
type BouncingPhysics struct{}

// ApplyPhysicsToUserOffset reduces the delta when overscrolling further.
func (BouncingPhysics) ApplyPhysicsToUserOffset(view *View, delta float64) float64 {
	min, max := view.MinScrollOffset(), view.MaxScrollOffset()
	offset := view.offset.Y
	if (offset <= min && delta < 0) || (offset >= max && delta > 0) {
		overscroll := 0.0
		if offset < min {
			overscroll = min - offset
		} else if offset > max {
			overscroll = offset - max
		}
		fraction := overscroll / view.viewportExtent()
		// Progressive resistance near edges to match the iOS rubber band.
		resistance := 1.0 / (1.0 + 2.4*fraction)
		if resistance < 0.12 {
			resistance = 0.12
		}
		return delta * resistance
	}
	return delta
}

func isBouncing(physics Physics) bool {
	_, ok := physics.(BouncingPhysics)
	return ok
}
