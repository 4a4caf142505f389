package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"login_challenges/domain/entities"
	"login_challenges/domain/interfaces"
)

type reportStore struct {
	reportPath string
}

// NewReportStore - creates a run report store writing to path. An empty
// path falls back to report.json in the working directory.
func NewReportStore(path string) interfaces.ReportStore {
	if path == "" {
		path = "report.json"
	}
	return &reportStore{reportPath: path}
}

// SaveReport - writes the run report to file.
func (s *reportStore) SaveReport(report *entities.RunReport) error {
	if dir := filepath.Dir(s.reportPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.reportPath, data, 0644)
}

// LoadReport - reads the last saved run report, nil when none exists yet.
func (s *reportStore) LoadReport() (*entities.RunReport, error) {
	data, err := os.ReadFile(s.reportPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var report entities.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}

	return &report, nil
}
