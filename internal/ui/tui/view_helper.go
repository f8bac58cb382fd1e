package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aalvaropc/kata/internal/domain"
)

const maxPreviewLine = 72

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func prettyOutput(out []byte) string {
	if len(out) == 0 {
		return "(empty)"
	}
	var js any
	if err := json.Unmarshal(out, &js); err == nil {
		b, _ := json.MarshalIndent(js, "", "  ")
		return string(b)
	}
	return string(bytes.TrimSpace(out))
}

func renderRunSummary(run domain.RunResult, artifactID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Workbook: %s\n", run.WorkbookName)
	fmt.Fprintf(&b, "Cases: %d, failed: %d\n", len(run.Results), run.Failures())
	if !run.StartedAt.IsZero() && !run.EndedAt.IsZero() {
		fmt.Fprintf(&b, "Duration: %s\n", run.EndedAt.Sub(run.StartedAt).Round(time.Millisecond))
	}
	if artifactID != "" {
		fmt.Fprintf(&b, "Saved: %s\n", artifactID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCaseDetails(t Theme, cr domain.CaseResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s), %dms\n\n", cr.Name, cr.Kind, cr.LatencyMS)

	if cr.Error != nil {
		b.WriteString("Error:\n")
		b.WriteString("  - kind: ")
		b.WriteString(string(cr.Error.Kind))
		b.WriteString("\n  - msg: ")
		b.WriteString(cr.Error.Message)
		b.WriteString("\n\n")
	}

	b.WriteString("Output:\n")
	b.WriteString(prettyOutput(cr.Output))
	b.WriteString("\n\n")

	if len(cr.Assertions) > 0 {
		b.WriteString("Expectations:\n")
		for _, a := range cr.Assertions {
			status := t.Pass.Render("PASS")
			if !a.Passed {
				status = t.Fail.Render("FAIL")
			}
			b.WriteString("  - ")
			b.WriteString(a.Name)
			b.WriteString(" [")
			b.WriteString(status)
			b.WriteString("] ")
			b.WriteString(a.Message)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderPreview lists a workbook's cases with a short view of their inputs.
func renderPreview(wb domain.Workbook) string {
	var b strings.Builder
	b.WriteString("Workbook: ")
	b.WriteString(wb.Name)
	b.WriteString("\n\nCases:\n")

	for _, c := range wb.Cases {
		fmt.Fprintf(&b, "  - %-14s %s\n", c.Kind, c.Name)
		if in := caseInput(c); in != "" {
			b.WriteString("    ")
			b.WriteString(clampString(in, maxPreviewLine))
			b.WriteString("\n")
		}
		if n := len(c.Expect); n > 0 {
			fmt.Fprintf(&b, "    %d expectation(s)\n", n)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func caseInput(c domain.Case) string {
	switch c.Kind {
	case domain.CaseFormat:
		return fmt.Sprintf("%q → %s", c.Text, c.LetterCase)
	case domain.CaseFilterRating:
		return fmt.Sprintf("%d item(s)", len(c.Items))
	case domain.CaseConcat:
		return fmt.Sprintf("%d sequence(s)", len(c.Sequences))
	case domain.CaseVehicle:
		if c.Car.Model != "" {
			return c.Car.Info() + ", " + c.Car.ModelInfo()
		}
		return c.Car.Info()
	case domain.CaseProcessValue:
		return c.Value.String()
	case domain.CaseMostExpensive:
		return fmt.Sprintf("%d product(s)", len(c.Products))
	case domain.CaseDayType:
		return c.Day.String()
	case domain.CaseSquare:
		return fmt.Sprintf("n = %g", c.Number)
	default:
		return ""
	}
}
