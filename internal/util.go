/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"math"
	"time"

	"github.com/araddon/dateparse"
)

// ScoreToString formats a chess score using the conventional half-point
// glyph, e.g. 0.5 -> "½", 1.5 -> "1½", 2.0 -> "2".
func ScoreToString(score float64) string {
	whole := math.Floor(score)
	frac := score - whole

	if frac >= 0.25 && frac < 0.75 {
		if whole == 0 {
			return "½"
		}
		return fmt.Sprintf("%d½", int(whole))
	}

	return fmt.Sprintf("%d", int(math.Round(score)))
}

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}
