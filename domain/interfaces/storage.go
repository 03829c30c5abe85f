package interfaces

import "uitestframework/domain/entities"

// ArtifactStore keeps diagnostics of failed test cases
type ArtifactStore interface {
	// SaveScreenshot stores a PNG screenshot for the test and returns its path
	SaveScreenshot(test string, png []byte) (string, error)

	// SaveReport stores a JSON report for the test and returns its path
	SaveReport(report entities.Report) (string, error)
}
