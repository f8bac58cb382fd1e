package assert

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/kata/internal/domain"
)

func MaxLatency(maxMs int, latencyMs int64) domain.AssertionResult {
	if latencyMs <= int64(maxMs) {
		return domain.AssertionResult{
			Name:    "max_ms",
			Passed:  true,
			Message: fmt.Sprintf("latency %dms <= %dms", latencyMs, maxMs),
		}
	}

	return domain.AssertionResult{
		Name:    "max_ms",
		Passed:  false,
		Message: fmt.Sprintf("expected latency <= %dms, got %dms", maxMs, latencyMs),
	}
}

// Evaluate applies a case's expectations to its output document.
// Expressions are evaluated in sorted order so results are stable.
func Evaluate(expect domain.Expectations, maxMS *int, latencyMs int64, output []byte) []domain.AssertionResult {
	var out []domain.AssertionResult

	if maxMS != nil {
		out = append(out, MaxLatency(*maxMS, latencyMs))
	}

	if len(expect) == 0 {
		return out
	}

	exprs := make([]string, 0, len(expect))
	for expr := range expect {
		exprs = append(exprs, expr)
	}
	sort.Strings(exprs)

	doc, err := parseJSON(output)
	if err != nil {
		for _, expr := range exprs {
			out = append(out, jsonPathChecks(expr, expect[expr], nil,
				fmt.Errorf("case output is not valid JSON"))...)
		}
		return out
	}

	for _, expr := range exprs {
		val, getErr := jsonpath.Get(expr, doc)
		out = append(out, jsonPathChecks(expr, expect[expr], val, getErr)...)
	}

	return out
}

// Compile reports whether expr is a usable JSONPath expression.
func Compile(expr string) error {
	_, err := jsonpath.New(expr)
	return err
}

func jsonPathChecks(expr string, e domain.Expectation, val any, getErr error) []domain.AssertionResult {
	var out []domain.AssertionResult
	if e.Exists {
		out = append(out, checkExists(expr, val, getErr))
	}
	if e.Eq != nil {
		want := *e.Eq
		out = append(out, checkString("jsonpath.eq", expr, val, getErr, func(s string) (bool, string) {
			if s == want {
				return true, fmt.Sprintf("jsonpath %q eq %q", expr, want)
			}
			return false, fmt.Sprintf("jsonpath %q: expected %q, got %q", expr, want, s)
		}))
	}
	if e.Contains != nil {
		sub := *e.Contains
		out = append(out, checkString("jsonpath.contains", expr, val, getErr, func(s string) (bool, string) {
			if strings.Contains(s, sub) {
				return true, fmt.Sprintf("jsonpath %q contains %q", expr, sub)
			}
			return false, fmt.Sprintf("jsonpath %q: %q does not contain %q", expr, s, sub)
		}))
	}
	if e.Matches != nil {
		out = append(out, checkMatches(expr, val, getErr, *e.Matches))
	}
	if e.Gt != nil {
		threshold := *e.Gt
		out = append(out, checkNumber("jsonpath.gt", expr, val, getErr, func(f float64) (bool, string) {
			if f > threshold {
				return true, fmt.Sprintf("jsonpath %q: %v > %v", expr, f, threshold)
			}
			return false, fmt.Sprintf("jsonpath %q: expected > %v, got %v", expr, threshold, f)
		}))
	}
	if e.Lt != nil {
		threshold := *e.Lt
		out = append(out, checkNumber("jsonpath.lt", expr, val, getErr, func(f float64) (bool, string) {
			if f < threshold {
				return true, fmt.Sprintf("jsonpath %q: %v < %v", expr, f, threshold)
			}
			return false, fmt.Sprintf("jsonpath %q: expected < %v, got %v", expr, threshold, f)
		}))
	}
	return out
}

func checkExists(expr string, val any, getErr error) domain.AssertionResult {
	if getErr != nil {
		return fail("jsonpath.exists", fmt.Sprintf("invalid jsonpath %q: %v", expr, getErr))
	}
	if isEmptyJSONPathValue(val) {
		return fail("jsonpath.exists", fmt.Sprintf("jsonpath %q: expected value to exist, got empty", expr))
	}
	return domain.AssertionResult{
		Name:    "jsonpath.exists",
		Passed:  true,
		Message: fmt.Sprintf("jsonpath %q exists", expr),
	}
}

func checkString(name, expr string, val any, getErr error, cmp func(string) (bool, string)) domain.AssertionResult {
	if getErr != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, getErr))
	}
	s, err := jsonPathToString(val)
	if err != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, err))
	}
	ok, msg := cmp(s)
	return domain.AssertionResult{Name: name, Passed: ok, Message: msg}
}

func checkNumber(name, expr string, val any, getErr error, cmp func(float64) (bool, string)) domain.AssertionResult {
	if getErr != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, getErr))
	}
	f, err := jsonPathToFloat64(val)
	if err != nil {
		return fail(name, fmt.Sprintf("jsonpath %q: %v", expr, err))
	}
	ok, msg := cmp(f)
	return domain.AssertionResult{Name: name, Passed: ok, Message: msg}
}

func checkMatches(expr string, val any, getErr error, pattern string) domain.AssertionResult {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fail("jsonpath.matches", fmt.Sprintf("jsonpath %q: invalid regex %q: %v", expr, pattern, err))
	}
	return checkString("jsonpath.matches", expr, val, getErr, func(s string) (bool, string) {
		if re.MatchString(s) {
			return true, fmt.Sprintf("jsonpath %q matches %q", expr, pattern)
		}
		return false, fmt.Sprintf("jsonpath %q: %q does not match %q", expr, s, pattern)
	})
}

func fail(name, msg string) domain.AssertionResult {
	return domain.AssertionResult{Name: name, Passed: false, Message: msg}
}

func jsonPathToString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), nil
		}
		return string(b), nil
	}
}

func jsonPathToFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", val)
	}
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isEmptyJSONPathValue(v any) bool {
	if v == nil {
		return true
	}

	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
