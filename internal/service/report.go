package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"example/room-image-gen/internal/model"
)

// Report tallies a finished run. Skipped entries are counted on their own,
// not as successes.
type Report struct {
	RunID     string         `yaml:"run_id"`
	Started   time.Time      `yaml:"started"`
	Elapsed   time.Duration  `yaml:"elapsed"`
	Succeeded int            `yaml:"succeeded"`
	Failed    int            `yaml:"failed"`
	Skipped   int            `yaml:"skipped"`
	Results   []model.Result `yaml:"results"`
}

func NewReport(runID string, results []model.Result) *Report {
	r := &Report{RunID: runID, Results: results}
	for _, res := range results {
		switch res.Outcome {
		case model.OutcomeSuccess:
			r.Succeeded++
		case model.OutcomeSkipped:
			r.Skipped++
		case model.OutcomeFailed:
			r.Failed++
		}
	}
	return r
}

func (r *Report) Failures() []model.Result {
	var out []model.Result
	for _, res := range r.Results {
		if res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// ExitCode is 1 when any entry failed.
func (r *Report) ExitCode() int {
	if r.Failed > 0 {
		return 1
	}
	return 0
}

func (r *Report) Print(w io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "  RESULTS: %d OK, %d FAILED, %d SKIPPED\n", r.Succeeded, r.Failed, r.Skipped)
	fmt.Fprintf(w, "%s\n", rule)

	failures := r.Failures()
	if len(failures) == 0 {
		return
	}
	fmt.Fprintln(w, "\n  Failed images:")
	for _, res := range failures {
		fmt.Fprintf(w, "    - %s: %s\n", res.ID, res.Err)
	}
}

// Save writes the report as YAML, creating parent directories.
func (r *Report) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
