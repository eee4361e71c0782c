// Package errors provides the error handling used across the manor-hunt engine.
//
// Errors carry a code, a message, an optional cause and metadata. The world
// simulation only ever produces two kinds of caller-facing failures:
//   - InvalidArgument: a caller supplied value is out of domain (bad index,
//     empty name, malformed specification)
//   - FailedPrecondition: the call is well formed but illegal in the current
//     game state (game not started, game over, wrong seat's turn). The game
//     rules call this an invalid state, hence the InvalidState helpers.
//
// Both are detected before any mutation, so a rejected action never leaves
// a half-applied world behind.
//
// # Basic Usage
//
//	err := errors.InvalidArgumentf("room %d does not exist", roomID)
//	err := errors.InvalidState("game has not started")
//
// Adding metadata:
//
//	err := errors.InvalidState("not your turn").
//	    WithMeta("player", name).
//	    WithMeta("turn", turn)
//
// Wrapping errors keeps the code of the wrapped error:
//
//	if err := loader.Load(path); err != nil {
//	    return errors.Wrap(err, "failed to load world")
//	}
//
// # Error Checking
//
//	if errors.IsInvalidState(err) {
//	    // show the message and keep playing
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", spec.Name, vb)
//	errors.ValidateRange("max_turns", cfg.MaxTurns, 1, 50, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
