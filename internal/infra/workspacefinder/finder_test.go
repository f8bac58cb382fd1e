package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/kata/internal/domain"
)

// layout builds a temp tree: ws/kata.yaml, ws/a/b/c/, ws/notes.txt and
// an unrelated sibling/ dir, and returns the temp dir.
func layout(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	ws := filepath.Join(tmp, "ws")
	for _, d := range []string{filepath.Join(ws, "a", "b", "c"), filepath.Join(tmp, "sibling")} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	files := map[string]string{
		filepath.Join(ws, ConfigFileName): "kata:\n  defaults:\n    workbook: basics\n",
		filepath.Join(ws, "notes.txt"):    "x",
	}
	for p, content := range files {
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	return tmp
}

func TestFindRoot(t *testing.T) {
	tmp := layout(t)
	ws := filepath.Join(tmp, "ws")

	tests := []struct {
		name     string
		start    string
		wantRoot string
		wantKind domain.ErrorKind
	}{
		{name: "root itself", start: ws, wantRoot: ws},
		{name: "nested dir", start: filepath.Join(ws, "a", "b", "c"), wantRoot: ws},
		{name: "file inside workspace", start: filepath.Join(ws, "notes.txt"), wantRoot: ws},
		{name: "outside any workspace", start: filepath.Join(tmp, "sibling"), wantKind: domain.KindNotFound},
		{name: "empty start", start: "", wantKind: domain.KindInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFinder().FindRoot(tt.start)
			if tt.wantKind != "" {
				if !domain.IsKind(err, tt.wantKind) {
					t.Fatalf("expected %s error, got root=%q err=%v", tt.wantKind, got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindRoot returned error: %v", err)
			}
			if got != tt.wantRoot {
				t.Fatalf("expected root=%s, got=%s", tt.wantRoot, got)
			}
		})
	}
}

func TestFindRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmp, ConfigFileName), 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFinder().FindRoot(tmp); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestFindRoot_CustomConfigFile(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "drills.yaml"), []byte("kata: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := (&Finder{ConfigFile: "drills.yaml"}).FindRoot(tmp)
	if err != nil || got != tmp {
		t.Fatalf("expected %s, got %q err=%v", tmp, got, err)
	}
}
