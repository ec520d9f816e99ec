package dynamo

import "errors"

// Construction and run errors. The per-tick physics passes have no error
// path; a headless run reports a blown-up state after the fact.
var (
	// ErrInvalidBody indicates a non-positive or non-finite mass or radius.
	ErrInvalidBody = errors.New("dynamo: invalid body (mass and radius must be positive)")

	// ErrInvalidTrail indicates a trail bound below one point.
	ErrInvalidTrail = errors.New("dynamo: trail length must be positive")

	// ErrEmptyRoster indicates a world built without bodies.
	ErrEmptyRoster = errors.New("dynamo: world has no bodies")

	// ErrInvalidStep indicates a non-positive or non-finite timestep or
	// duration, or a run too long to count in steps.
	ErrInvalidStep = errors.New("dynamo: timestep and duration must be positive")

	// ErrInvalidState indicates a position or velocity went NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")
)
