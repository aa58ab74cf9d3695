// Package games defines the mini-game win-signal contract and the five games
// the valentine site ships with. Each game checks a claimed final board state
// against its own win condition; validation is pure and holds no state, the
// one-shot latch and reset-epoch lifecycle belong to the client playthrough.
package games

import "encoding/json"

// Game is the capability every mini-game exposes: identity plus a win-payload
// check. A payload that fails the win condition is a validation error, never a
// server fault.
type Game interface {
	// ID returns the stable game identifier (e.g. "match_pairs").
	ID() string

	// Name returns the display name (e.g. "Love Match").
	Name() string

	// Target returns a short human description of the win condition.
	Target() string

	// ValidateWin checks the claimed final game state. Returns nil when the
	// state satisfies the win condition, an error describing the failure
	// otherwise.
	ValidateWin(payload json.RawMessage) error
}
