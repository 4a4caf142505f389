package interfaces

import "login_challenges/domain/entities"

// ReportStore persists suite run reports.
type ReportStore interface {
	// SaveReport writes the report for the latest run
	SaveReport(report *entities.RunReport) error

	// LoadReport reads the most recently saved report, or nil if none exists
	LoadReport() (*entities.RunReport, error)
}
