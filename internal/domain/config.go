package domain

// Config represents the minimal kata configuration loaded from kata.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	Workbook string
	// Concurrency bounds how many workbook cases run at once.
	Concurrency int
}

type PathsConfig struct {
	WorkbooksDir string
	RunsDir      string
}

// DefaultConfig provides sane defaults if kata.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Workbook:    "basics",
			Concurrency: 4,
		},
		Paths: PathsConfig{
			WorkbooksDir: "workbooks",
			RunsDir:      "runs",
		},
	}
}

// WorkspaceSpec describes where a workspace should be scaffolded.
type WorkspaceSpec struct {
	Root string
}
