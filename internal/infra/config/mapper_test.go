package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/kata/internal/domain"
	"gopkg.in/yaml.v3"
)

func strp(s string) *string { return &s }

func TestMapWorkbookRequiresName(t *testing.T) {
	_, err := MapWorkbook("wb.yaml", YAMLWorkbook{})
	if err == nil || !strings.Contains(err.Error(), "field name") {
		t.Fatalf("expected name error, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig in chain")
	}
}

func TestMapWorkbookFieldErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    YAMLCase
		field string
	}{
		{"missing case name", YAMLCase{Kind: "format", Text: strp("x")}, "cases[0].name"},
		{"unknown kind", YAMLCase{Name: "a", Kind: "fetch"}, "cases[0].kind"},
		{"format without text", YAMLCase{Name: "a", Kind: "format"}, "cases[0].text"},
		{"vehicle without body", YAMLCase{Name: "a", Kind: "vehicle"}, "cases[0].vehicle"},
		{"vehicle without make", YAMLCase{Name: "a", Kind: "vehicle", Vehicle: &YAMLVehicle{Year: 2020}}, "cases[0].vehicle.make"},
		{"value missing", YAMLCase{Name: "a", Kind: "process_value"}, "cases[0].value"},
		{"day missing", YAMLCase{Name: "a", Kind: "day_type"}, "cases[0].day"},
		{"day unknown", YAMLCase{Name: "a", Kind: "day_type", Day: strp("funday")}, "cases[0].day"},
		{"square missing", YAMLCase{Name: "a", Kind: "square"}, "cases[0].number"},
		{"expect without checks", YAMLCase{Name: "a", Kind: "concat", Expect: map[string]YAMLExpectation{"$.result": {}}}, "cases[0].expect"},
		{"expect exists false only", YAMLCase{Name: "a", Kind: "concat", Expect: map[string]YAMLExpectation{"$.result": {Exists: false}}}, "expectation has no checks"},
		{"empty expect path", YAMLCase{Name: "a", Kind: "concat", Expect: map[string]YAMLExpectation{" ": {Exists: true}}}, "cases[0].expect"},
	}
	for _, c := range cases {
		_, err := MapWorkbook("wb.yaml", YAMLWorkbook{Name: "wb", Cases: []YAMLCase{c.in}})
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.field) {
			t.Errorf("%s: expected %q in error, got %v", c.name, c.field, err)
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("%s: expected invalid_config kind", c.name)
		}
	}
}

func TestMapWorkbookDuplicateCaseName(t *testing.T) {
	yw := YAMLWorkbook{Name: "wb", Cases: []YAMLCase{
		{Name: "a", Kind: "concat"},
		{Name: "a", Kind: "concat"},
	}}
	_, err := MapWorkbook("wb.yaml", yw)
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestMapValueRejectsNonScalars(t *testing.T) {
	var doc struct {
		Value yaml.Node `yaml:"value"`
	}
	for _, src := range []string{"value: [1, 2]", "value: true", "value: null"} {
		if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
			t.Fatalf("unmarshal %q: %v", src, err)
		}
		if _, err := mapValue(doc.Value); err == nil {
			t.Errorf("mapValue(%q): expected error", src)
		}
	}
}

func TestMapWorkbookEmptyInputsAreValid(t *testing.T) {
	yw := YAMLWorkbook{Name: "wb", Cases: []YAMLCase{
		{Name: "no items", Kind: "filter_rating"},
		{Name: "no products", Kind: "most_expensive"},
		{Name: "no sequences", Kind: "concat"},
	}}
	wb, err := MapWorkbook("wb.yaml", yw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wb.Cases[0].Items == nil || wb.Cases[1].Products == nil || wb.Cases[2].Sequences == nil {
		t.Fatalf("expected non-nil empty inputs: %+v", wb.Cases)
	}
}
