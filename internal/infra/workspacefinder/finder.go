package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
)

// ConfigFileName marks a workspace root.
const ConfigFileName = "kata.yaml"

// Finder locates a kata workspace root by searching for kata.yaml upward.
type Finder struct {
	ConfigFile string // defaults to ConfigFileName
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot walks up from startDir (or the directory of a file path) and returns
// the first directory holding the config file.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", findErr(domain.KindInvalidConfig, errors.New("startDir is empty"))
	}

	cur, err := filepath.Abs(startDir)
	if err != nil {
		return "", findErr(domain.KindExecution, err)
	}
	if info, statErr := os.Stat(cur); statErr == nil && !info.IsDir() {
		cur = filepath.Dir(cur)
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFileName
	}

	for dir := filepath.Clean(cur); ; dir = filepath.Dir(dir) {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			return "", findErr(domain.KindNotFound, domain.ErrNotFound)
		}
	}
}

func findErr(kind domain.ErrorKind, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.findroot",
		Kind: kind,
		Err:  err,
	}
}
