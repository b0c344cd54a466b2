package domain

import "time"

// RunRecord describes one executed dispatch.
type RunRecord struct {
	Target     string        `json:"target" yaml:"target"`
	BinPath    string        `json:"bin_path" yaml:"bin_path"`
	Command    string        `json:"command" yaml:"command"`
	TestBinary bool          `json:"test_binary" yaml:"test_binary"`
	BinDigest  string        `json:"bin_digest,omitempty" yaml:"bin_digest,omitempty"`
	ExitCode   int           `json:"exit_code" yaml:"exit_code"`
	StartedAt  time.Time     `json:"started_at" yaml:"started_at"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Succeeded reports whether make exited with status zero.
func (r RunRecord) Succeeded() bool {
	return r.ExitCode == 0
}
