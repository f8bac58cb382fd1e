package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init scaffolds a workspace at spec.Root. Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)
	cfg := domain.DefaultConfig()

	dirs := []string{
		filepath.Join(root, cfg.Paths.WorkbooksDir),
		filepath.Join(root, cfg.Paths.RunsDir),
		filepath.Join(root, ".kata", "logs"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return initErr(d, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return initErr(filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return initErr(dst, err)
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return initErr(dst, err)
		}
		return nil
	})
}

func initErr(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

const gitignoreHeader = "# kata"

var gitignoreEntries = []string{"runs/", ".kata/"}

// ensureGitignore appends whichever kata entries are missing, under a single header.
func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	existing := string(b)

	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, e := range gitignoreEntries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	if !present[gitignoreHeader] {
		out.WriteString(gitignoreHeader + "\n")
	}
	out.WriteString(strings.Join(missing, "\n") + "\n")

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
