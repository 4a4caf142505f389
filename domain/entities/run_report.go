package entities

import "time"

// ScenarioResult records the outcome of one scenario run.
type ScenarioResult struct {
	Name        string        `json:"name"`
	Passed      bool          `json:"passed"`
	FailureKind string        `json:"failure_kind,omitempty"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
}

// RunReport collects the results of one full suite run.
type RunReport struct {
	StartedAt time.Time        `json:"started_at"`
	Results   []ScenarioResult `json:"results"`
}

// Passed - reports whether every scenario in the run succeeded.
func (r *RunReport) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failures - returns the names of scenarios that did not pass.
func (r *RunReport) Failures() []string {
	var names []string
	for _, res := range r.Results {
		if !res.Passed {
			names = append(names, res.Name)
		}
	}
	return names
}
