package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OutputKind identifies the kind of a generated file.
type OutputKind string

const (
	KindIndex OutputKind = "index"
	KindFull  OutputKind = "full"
	KindPage  OutputKind = "page"
)

// Output describes one written file.
type Output struct {
	Kind   OutputKind `json:"kind"`
	Path   string     `json:"path"`
	Bytes  int64      `json:"bytes"`
	Tokens int        `json:"tokens"`
}

// Failure records a single item that could not be processed.
type Failure struct {
	Item  string `json:"item"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// Report summarizes a build. It is safe for concurrent use.
type Report struct {
	mu sync.Mutex

	BuildID    string    `json:"build_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	DocsDir    string    `json:"docs_dir"`
	OutDir     string    `json:"out_dir"`
	Documents  int       `json:"documents"`
	Chunks     int       `json:"chunks"`
	Outputs    []Output  `json:"outputs"`
	Failures   []Failure `json:"failures"`
}

// NewReport starts a report for a build of docsDir into outDir.
func NewReport(docsDir, outDir string) *Report {
	return &Report{
		BuildID:   uuid.New().String(),
		StartedAt: time.Now(),
		DocsDir:   docsDir,
		OutDir:    outDir,
		Outputs:   []Output{},
		Failures:  []Failure{},
	}
}

// AddOutput records a written file.
func (r *Report) AddOutput(o Output) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Outputs = append(r.Outputs, o)
}

// AddFailure records that item failed at stage.
func (r *Report) AddFailure(item, stage string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, Failure{Item: item, Stage: stage, Error: err.Error()})
}

// Finish stamps the end time and orders outputs and failures by path so the
// report does not depend on scheduling.
func (r *Report) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FinishedAt = time.Now()
	sort.Slice(r.Outputs, func(i, j int) bool { return r.Outputs[i].Path < r.Outputs[j].Path })
	sort.Slice(r.Failures, func(i, j int) bool {
		if r.Failures[i].Item != r.Failures[j].Item {
			return r.Failures[i].Item < r.Failures[j].Item
		}
		return r.Failures[i].Stage < r.Failures[j].Stage
	})
}

// Duration is the wall time of the build, or the time elapsed so far.
func (r *Report) Duration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FinishedAt.IsZero() {
		return time.Since(r.StartedAt)
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Output returns the recorded output at path.
func (r *Report) Output(path string) (Output, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.Outputs {
		if o.Path == path {
			return o, true
		}
	}
	return Output{}, false
}

// Count returns the number of outputs of kind.
func (r *Report) Count(kind OutputKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, o := range r.Outputs {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// FailureCount returns the number of recorded failures.
func (r *Report) FailureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Failures)
}

// Save writes the report as indented JSON.
func (r *Report) Save(path string) error {
	r.mu.Lock()
	data, err := json.MarshalIndent(r, "", "  ")
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to marshal build report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write build report: %w", err)
	}
	return nil
}
