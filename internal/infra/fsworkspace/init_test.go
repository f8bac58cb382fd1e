package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/config"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "kata.yaml"))
	assertFileExists(t, filepath.Join(tmp, "workbooks", "basics.yaml"))
	assertFileExists(t, filepath.Join(tmp, "runs"))
	assertFileExists(t, filepath.Join(tmp, ".kata", "logs"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_Init_TemplateWorkbookLoads(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	wb, err := config.LoadWorkbook(filepath.Join(tmp, "workbooks", "basics.yaml"))
	if err != nil {
		t.Fatalf("template workbook does not load: %v", err)
	}
	kinds := map[domain.CaseKind]bool{}
	for _, c := range wb.Cases {
		kinds[c.Kind] = true
	}
	for _, k := range domain.CaseKinds {
		if !kinds[k] {
			t.Errorf("template workbook has no %s case", k)
		}
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	kataYAML := filepath.Join(tmp, "kata.yaml")
	if err := os.WriteFile(kataYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing kata.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(kataYAML)
	if err != nil {
		t.Fatalf("read kata.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected kata.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(kataYAML)
	if err != nil {
		t.Fatalf("read kata.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "kata:") {
		t.Fatalf("expected kata.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
