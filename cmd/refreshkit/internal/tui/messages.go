package tui

// Message types for the Bubble Tea update loop.

// settleMsg bounces an overscrolled list back after the finger lifts.
type settleMsg struct{}

// hideDoneMsg ends the header hide animation.
type hideDoneMsg struct{}

// refreshDoneMsg completes the simulated refresh request.
type refreshDoneMsg struct{}

// loadDoneMsg completes the simulated page load.
type loadDoneMsg struct{}
