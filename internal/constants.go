/* Copyright © 2025-2026 Gambit Pairing developers. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	ProjectName = "gambitpairing"
	Version     = "0.4.0"

	// Default S3 bucket used by the comparison CLI for archived reports.
	ReportArchiveBucket = "gambit-devs-gambitpairing-comparison-reports"
)
