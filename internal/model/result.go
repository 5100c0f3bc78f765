package model

import "time"

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Result is the final outcome of a single catalog entry. Bytes holds the
// artifact size for success and skipped, Err the last error for failed.
type Result struct {
	ID       string        `yaml:"id"`
	Outcome  Outcome       `yaml:"outcome"`
	Bytes    int64         `yaml:"bytes,omitempty"`
	Err      string        `yaml:"error,omitempty"`
	Attempts int           `yaml:"attempts"`
	Elapsed  time.Duration `yaml:"elapsed"`
}

func (r Result) Failed() bool {
	return r.Outcome == OutcomeFailed
}
