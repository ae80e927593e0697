package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// runReport summarizes one watch session; rewritten after every poll
// cycle so the last state survives a crash.
type runReport struct {
	RunID     string   `json:"run_id"`
	StartedAt string   `json:"started_at"`
	UpdatedAt string   `json:"updated_at"`
	Cycles    int      `json:"cycles"`
	Bars      int      `json:"bars"`
	Failures  int      `json:"failures"`
	LastError string   `json:"last_error,omitempty"`
	Log       []string `json:"log,omitempty"`
}

const reportLogLines = 50

func (r *runReport) appendLog(line string) {
	r.Log = append(r.Log, line)
	if len(r.Log) > reportLogLines {
		r.Log = r.Log[len(r.Log)-reportLogLines:]
	}
}

func writeRunReport(dir string, rep *runReport) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	rep.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ".lastrun.json"), data, 0644)
}
