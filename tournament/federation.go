/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tournament

import (
	"fmt"
	"sort"
	"strings"
)

// Federation is an immutable federation descriptor.
type Federation struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

func (f Federation) String() string {
	return f.Code
}

// FederationDirectory maps canonicalized federation codes to descriptors.
// It is explicit process-scoped state: construct one with
// NewFederationDirectory (or DefaultFederationDirectory), pass it to
// whatever needs lookups, and drop it when done. Codes are case-insensitive
// and unique for the lifetime of the directory.
//
// The directory is not safe for concurrent registration; register all
// federations at startup.
type FederationDirectory struct {
	byCode map[string]Federation
}

// NewFederationDirectory returns an empty directory.
func NewFederationDirectory() *FederationDirectory {
	return &FederationDirectory{byCode: make(map[string]Federation)}
}

// DefaultFederationDirectory returns a directory preloaded with the
// federations the application ships with.
func DefaultFederationDirectory() *FederationDirectory {
	dir := NewFederationDirectory()
	for _, fed := range []Federation{
		{Code: "FIDE", Name: "International Chess Federation"},
		{Code: "USCF", Name: "United States Chess Federation"},
		{Code: "CFC", Name: "Chess Federation of Canada"},
	} {
		// codes above are distinct; Register cannot fail here
		dir.Register(fed.Code, fed.Name)
	}
	return dir
}

// Register adds a federation. Registering an already-present code fails
// with ErrDuplicateFederation; this is a configuration-time error, not a
// runtime condition to recover from.
func (d *FederationDirectory) Register(code, name string) (Federation, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	if canonical == "" {
		return Federation{}, fmt.Errorf("empty federation code")
	}
	if _, ok := d.byCode[canonical]; ok {
		return Federation{}, fmt.Errorf("federation %q: %w", canonical,
			ErrDuplicateFederation)
	}

	fed := Federation{Code: canonical, Name: name}
	d.byCode[canonical] = fed

	return fed, nil
}

// Lookup resolves a federation code. Unknown codes fail with
// ErrUnknownFederation and are never defaulted.
func (d *FederationDirectory) Lookup(code string) (Federation, error) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	fed, ok := d.byCode[canonical]
	if !ok {
		return Federation{}, fmt.Errorf("federation %q: %w", canonical,
			ErrUnknownFederation)
	}
	return fed, nil
}

// Codes returns all registered codes in sorted order.
func (d *FederationDirectory) Codes() []string {
	codes := make([]string, 0, len(d.byCode))
	for code := range d.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
