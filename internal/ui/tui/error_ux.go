package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/kata/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line toast. Details go to the log.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.Contains(oe.Op, "workspacefinder.findroot"):
				return "Workspace not found"
			case strings.Contains(oe.Op, "workspacefinder.loadconfig"):
				return "kata.yaml not found"
			case strings.Contains(oe.Op, "yamlworkbook"), strings.Contains(oe.Op, "config.load"):
				return "Workbook not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid workbook " + base

		case domain.KindInvalidInput:
			return "Invalid input: " + domainMessage(err)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if domain.IsKind(err, domain.KindInvalidInput) {
		return "Invalid input: " + domainMessage(err)
	}

	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func domainMessage(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de.Msg
	}
	return err.Error()
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
