// Package soft: sentinel error set. Drivers MUST return these sentinels
// on user-triggered conditions, before mutating any output; tests match
// them via errors.Is.

package soft

import "errors"

var (
	// ErrGridShape is returned when the sample/synthesis grid axes are not
	// all equal.
	ErrGridShape = errors.New("soft: grid dimensions must be equal")

	// ErrGridParity is returned when the grid axes are not even; the grid
	// side must be 2B.
	ErrGridParity = errors.New("soft: grid dimensions must be even")

	// ErrBandwidthMismatch is returned when the coefficient container
	// bandwidth does not match the grid bandwidth.
	ErrBandwidthMismatch = errors.New("soft: coefficient bandwidth does not match grid bandwidth")

	// ErrBadBandwidth is returned when a container is requested for a
	// non-positive bandwidth.
	ErrBadBandwidth = errors.New("soft: bandwidth must be > 0")

	// ErrCoeffIndex indicates coefficient access with l outside [0, B) or
	// |M| > l or |M′| > l — a programmer bug per the container contract.
	ErrCoeffIndex = errors.New("soft: coefficient index out of range")

	// ErrUnknownEngine is returned by ParseEngine for a name outside the
	// supported engine list.
	ErrUnknownEngine = errors.New("soft: unknown random engine")
)
