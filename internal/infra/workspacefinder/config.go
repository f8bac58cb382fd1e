package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/kata/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads kata.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Kata.Defaults.Workbook != "" {
		cfg.Defaults.Workbook = y.Kata.Defaults.Workbook
	}
	if c := y.Kata.Defaults.Concurrency; c != nil {
		if *c < 1 {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("defaults.concurrency must be >= 1, got %d: %w", *c, domain.ErrInvalidConfig),
			}
		}
		cfg.Defaults.Concurrency = *c
	}
	if y.Kata.Paths.WorkbooksDir != "" {
		cfg.Paths.WorkbooksDir = y.Kata.Paths.WorkbooksDir
	}
	if y.Kata.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Kata.Paths.RunsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Kata struct {
		Defaults struct {
			Workbook    string `yaml:"workbook"`
			Concurrency *int   `yaml:"concurrency"`
		} `yaml:"defaults"`

		Paths struct {
			WorkbooksDir string `yaml:"workbooks_dir"`
			RunsDir      string `yaml:"runs_dir"`
		} `yaml:"paths"`
	} `yaml:"kata"`
}
