/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import "errors"

var (
	// ErrResultMismatch indicates recorded results do not correspond 1:1
	// with the round's pairings. Always a caller bug; nothing is applied.
	ErrResultMismatch = errors.New("results do not match round pairings")

	// ErrUnknownFederation indicates a federation code lookup failed.
	ErrUnknownFederation = errors.New("unknown federation code")

	// ErrDuplicateFederation indicates a federation code was registered twice.
	ErrDuplicateFederation = errors.New("federation code already registered")

	// ErrDuplicatePlayer indicates a player id was added to a registry twice.
	ErrDuplicatePlayer = errors.New("player already registered")

	// ErrPlayerNotFound indicates a referenced player id is not in the registry.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrNoRounds indicates an undo was requested with no applied rounds.
	ErrNoRounds = errors.New("no rounds have been applied")
)
