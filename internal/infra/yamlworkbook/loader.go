package yamlworkbook

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/config"
	"github.com/aalvaropc/kata/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	workbooksDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{workbooksDir: "workbooks"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithWorkbooksDir(dir string) Option {
	return func(l *Loader) { l.workbooksDir = dir }
}

var _ ports.WorkbookLoader = (*Loader)(nil)

func (l *Loader) LoadWorkbook(path string) (domain.Workbook, error) {
	return config.LoadWorkbook(path)
}

func (l *Loader) ListWorkbooks(root string) ([]domain.WorkbookRef, error) {
	dir := filepath.Join(root, l.workbooksDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlworkbook.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.WorkbookRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readWorkbookName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.WorkbookRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// readWorkbookName reads only the top-level name, so a broken case
// does not hide the workbook from listings.
func readWorkbookName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
