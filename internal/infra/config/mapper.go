package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/kata/internal/domain"
	"gopkg.in/yaml.v3"
)

func MapWorkbook(path string, yw YAMLWorkbook) (domain.Workbook, error) {
	if strings.TrimSpace(yw.Name) == "" {
		return domain.Workbook{}, invalidField(path, "name", "workbook name is required")
	}

	wb := domain.Workbook{
		Name:  yw.Name,
		Cases: make([]domain.Case, 0, len(yw.Cases)),
	}

	seen := map[string]bool{}
	for i, yc := range yw.Cases {
		fieldPrefix := fmt.Sprintf("cases[%d]", i)

		name := strings.TrimSpace(yc.Name)
		if name == "" {
			return domain.Workbook{}, invalidField(path, fieldPrefix+".name", "case name is required")
		}
		if seen[name] {
			return domain.Workbook{}, invalidField(path, fieldPrefix+".name", fmt.Sprintf("duplicate case name %q", name))
		}
		seen[name] = true

		c, ferr := mapCase(yc)
		if ferr != nil {
			return domain.Workbook{}, invalidField(path, fieldPrefix+ferr.field, ferr.msg)
		}
		c.Name = name

		wb.Cases = append(wb.Cases, c)
	}

	return wb, nil
}

type fieldErr struct {
	field string
	msg   string
}

func mapCase(yc YAMLCase) (domain.Case, *fieldErr) {
	kind := domain.CaseKind(strings.ToLower(strings.TrimSpace(yc.Kind)))
	if !kind.Valid() {
		return domain.Case{}, &fieldErr{".kind", fmt.Sprintf("unsupported kind %q", yc.Kind)}
	}

	c := domain.Case{Kind: kind}

	switch kind {
	case domain.CaseFormat:
		if yc.Text == nil {
			return domain.Case{}, &fieldErr{".text", "text is required"}
		}
		c.Text = *yc.Text
		c.LetterCase = domain.DefaultLetterCase
		if yc.Lower {
			c.LetterCase = domain.Lower
		}

	case domain.CaseFilterRating:
		c.Items = make([]domain.RatedItem, 0, len(yc.Items))
		for _, it := range yc.Items {
			c.Items = append(c.Items, domain.RatedItem{Title: it.Title, Rating: it.Rating})
		}

	case domain.CaseConcat:
		c.Sequences = make([][]any, 0, len(yc.Sequences))
		for _, s := range yc.Sequences {
			if s == nil {
				s = []any{}
			}
			c.Sequences = append(c.Sequences, s)
		}

	case domain.CaseVehicle:
		if yc.Vehicle == nil {
			return domain.Case{}, &fieldErr{".vehicle", "vehicle is required"}
		}
		if strings.TrimSpace(yc.Vehicle.Make) == "" {
			return domain.Case{}, &fieldErr{".vehicle.make", "make is required"}
		}
		c.Car = domain.NewCar(yc.Vehicle.Make, yc.Vehicle.Year, yc.Vehicle.Model)

	case domain.CaseProcessValue:
		v, err := mapValue(yc.Value)
		if err != nil {
			return domain.Case{}, &fieldErr{".value", err.Error()}
		}
		c.Value = v

	case domain.CaseMostExpensive:
		c.Products = make([]domain.Product, 0, len(yc.Products))
		for _, p := range yc.Products {
			c.Products = append(c.Products, domain.Product{Name: p.Name, Price: p.Price})
		}

	case domain.CaseDayType:
		if yc.Day == nil {
			return domain.Case{}, &fieldErr{".day", "day is required"}
		}
		d, err := domain.ParseDay(*yc.Day)
		if err != nil {
			return domain.Case{}, &fieldErr{".day", err.Error()}
		}
		c.Day = d

	case domain.CaseSquare:
		if yc.Number == nil {
			return domain.Case{}, &fieldErr{".number", "number is required"}
		}
		c.Number = *yc.Number
	}

	expect, ferr := mapExpect(yc.Expect)
	if ferr != nil {
		return domain.Case{}, ferr
	}
	c.Expect = expect

	if yc.MaxMS != nil && *yc.MaxMS < 0 {
		return domain.Case{}, &fieldErr{".max_ms", "max_ms must not be negative"}
	}
	c.MaxLatencyMS = yc.MaxMS

	return c, nil
}

// mapValue picks the Value case from the scalar's resolved YAML tag:
// quoted or plain text is Text, ints and floats are Number.
func mapValue(n yaml.Node) (domain.Value, error) {
	if n.Kind == 0 {
		return domain.Value{}, fmt.Errorf("value is required")
	}
	if n.Kind != yaml.ScalarNode {
		return domain.Value{}, fmt.Errorf("value must be text or a number")
	}

	switch n.ShortTag() {
	case "!!str":
		return domain.Text(n.Value), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return domain.Value{}, fmt.Errorf("value %q is not a number: %v", n.Value, err)
		}
		return domain.Number(f), nil
	default:
		return domain.Value{}, fmt.Errorf("value must be text or a number, got %s", n.ShortTag())
	}
}

func mapExpect(in map[string]YAMLExpectation) (domain.Expectations, *fieldErr) {
	out := make(domain.Expectations, len(in))
	for expr, e := range in {
		if strings.TrimSpace(expr) == "" {
			return nil, &fieldErr{".expect", "expectation path is empty"}
		}
		exp := domain.Expectation{
			Exists:   e.Exists,
			Eq:       e.Eq,
			Contains: e.Contains,
			Matches:  e.Matches,
			Gt:       e.Gt,
			Lt:       e.Lt,
		}
		if !exp.HasChecks() {
			return nil, &fieldErr{fmt.Sprintf(".expect[%q]", expr), "expectation has no checks"}
		}
		out[expr] = exp
	}
	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
