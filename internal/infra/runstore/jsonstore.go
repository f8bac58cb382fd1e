package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
)

const defaultRunsDir = "runs"

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

// SaveRun writes runs/<UTC start>_<workbook slug>.json and returns its stem as the id.
func (s *JSONStore) SaveRun(run domain.RunResult) (string, error) {
	dir := filepath.Join(s.rootDir, s.runsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", storeErr("runstore.mkdir", dir, err)
	}

	if run.StartedAt.IsZero() {
		run.StartedAt = s.now()
	}
	ts := run.StartedAt.UTC()

	name := run.WorkbookName
	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(filepath.Base(run.WorkbookPath), filepath.Ext(run.WorkbookPath))
	}
	slug := slugify(name)
	if slug == "" {
		slug = "run"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", storeErr("runstore.marshal", path, err)
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", storeErr("runstore.write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", storeErr("runstore.rename", path, err)
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, run)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, run domain.RunResult) error {
	type idx struct {
		ID        string    `json:"id"`
		RunID     string    `json:"run_id"`
		File      string    `json:"file"`
		Workbook  string    `json:"workbook"`
		Failures  int       `json:"failures"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		RunID:     run.ID,
		File:      filename,
		Workbook:  run.WorkbookName,
		Failures:  run.Failures(),
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

func storeErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

// slugify produces a safe filename component: lowercase ASCII letters and
// digits, with any other run of characters collapsed into one dash.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
