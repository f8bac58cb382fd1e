package caserunner

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/kata/internal/domain"
)

func decodeOutput(t *testing.T, res domain.CaseResult) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal(res.Output, &doc); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, res.Output)
	}
	return doc
}

func TestRunner_Outputs(t *testing.T) {
	cases := []struct {
		name string
		in   domain.Case
		want any
	}{
		{
			name: "format upper",
			in:   domain.Case{Kind: domain.CaseFormat, Text: "hello"},
			want: "HELLO",
		},
		{
			name: "format lower",
			in:   domain.Case{Kind: domain.CaseFormat, Text: "HeLLo", LetterCase: domain.Lower},
			want: "hello",
		},
		{
			name: "filter",
			in: domain.Case{Kind: domain.CaseFilterRating, Items: []domain.RatedItem{
				{Title: "A", Rating: 4}, {Title: "B", Rating: 3},
			}},
			want: []any{map[string]any{"title": "A", "rating": float64(4)}},
		},
		{
			name: "concat",
			in:   domain.Case{Kind: domain.CaseConcat, Sequences: [][]any{{1, 2}, {"x"}}},
			want: []any{float64(1), float64(2), "x"},
		},
		{
			name: "vehicle",
			in:   domain.Case{Kind: domain.CaseVehicle, Car: domain.NewCar("Toyota", 2020, "")},
			want: []any{"Make: Toyota, Year: 2020"},
		},
		{
			name: "car",
			in:   domain.Case{Kind: domain.CaseVehicle, Car: domain.NewCar("Honda", 2022, "Civic")},
			want: []any{"Make: Honda, Year: 2022", "Model: Civic"},
		},
		{
			name: "process text",
			in:   domain.Case{Kind: domain.CaseProcessValue, Value: domain.Text("hello")},
			want: float64(5),
		},
		{
			name: "process number",
			in:   domain.Case{Kind: domain.CaseProcessValue, Value: domain.Number(10)},
			want: float64(20),
		},
		{
			name: "most expensive",
			in: domain.Case{Kind: domain.CaseMostExpensive, Products: []domain.Product{
				{Name: "A", Price: 10}, {Name: "B", Price: 20},
			}},
			want: map[string]any{"name": "B", "price": float64(20)},
		},
		{
			name: "most expensive empty",
			in:   domain.Case{Kind: domain.CaseMostExpensive},
			want: nil,
		},
		{
			name: "process overflowing number",
			in:   domain.Case{Kind: domain.CaseProcessValue, Value: domain.Number(1e308)},
			want: "+Inf",
		},
		{
			name: "process negative infinity",
			in:   domain.Case{Kind: domain.CaseProcessValue, Value: domain.Number(math.Inf(-1))},
			want: "-Inf",
		},
		{
			name: "process nan",
			in:   domain.Case{Kind: domain.CaseProcessValue, Value: domain.Number(math.NaN())},
			want: "NaN",
		},
		{
			name: "day type",
			in:   domain.Case{Kind: domain.CaseDayType, Day: domain.Sunday},
			want: "Weekend",
		},
	}

	r := New()
	for _, c := range cases {
		res, err := r.Run(context.Background(), c.in)
		if err != nil {
			t.Errorf("%s: Run error: %v", c.name, err)
			continue
		}
		if res.Error != nil {
			t.Errorf("%s: unexpected run error: %+v", c.name, res.Error)
			continue
		}
		doc := decodeOutput(t, res)
		got, ok := doc["result"]
		if !ok {
			t.Errorf("%s: missing result key in %s", c.name, res.Output)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s: result mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestRunner_SquareNegative(t *testing.T) {
	r := New()
	res, err := r.Run(context.Background(), domain.Case{Name: "neg", Kind: domain.CaseSquare, Number: -1})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Error == nil {
		t.Fatalf("expected run error")
	}
	if res.Error.Kind != domain.RunErrorInvalidInput || res.Error.Message != "Negative number not allowed" {
		t.Fatalf("unexpected run error: %+v", res.Error)
	}

	doc := decodeOutput(t, res)
	want := map[string]any{"kind": "invalid_input", "message": "Negative number not allowed"}
	if diff := cmp.Diff(want, doc["error"]); diff != "" {
		t.Fatalf("error doc mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_SquareWaitsForDelay(t *testing.T) {
	r := New()
	start := time.Now()
	res, err := r.Run(context.Background(), domain.Case{Name: "sq", Kind: domain.CaseSquare, Number: 4})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got := decodeOutput(t, res)["result"]; got != float64(16) {
		t.Fatalf("expected 16, got %v", got)
	}
	if time.Since(start) < time.Second {
		t.Fatalf("square settled before its delay")
	}
	if res.LatencyMS < 1000 {
		t.Fatalf("expected latency >= 1000ms, got %d", res.LatencyMS)
	}
}

func TestRunner_SquareOverflowRendersInf(t *testing.T) {
	res, err := New().Run(context.Background(), domain.Case{Name: "sq", Kind: domain.CaseSquare, Number: 1e200})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Error != nil {
		t.Fatalf("unexpected run error: %+v", res.Error)
	}
	if got := decodeOutput(t, res)["result"]; got != "+Inf" {
		t.Fatalf("expected +Inf, got %v", got)
	}
}

func TestRunner_UnencodableResultFailsOnlyThatCase(t *testing.T) {
	c := domain.Case{Name: "seq", Kind: domain.CaseConcat, Sequences: [][]any{{1.0}, {math.Inf(1)}}}
	res, err := New().Run(context.Background(), c)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Error == nil || res.Error.Kind != domain.RunErrorRender {
		t.Fatalf("expected render run error, got %+v", res.Error)
	}
	doc := decodeOutput(t, res)
	errDoc, ok := doc["error"].(map[string]any)
	if !ok || errDoc["kind"] != "render" {
		t.Fatalf("unexpected error doc: %s", res.Output)
	}
}

func TestRunner_SquareCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := New().Run(ctx, domain.Case{Name: "sq", Kind: domain.CaseSquare, Number: 2})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Error == nil || res.Error.Kind != domain.RunErrorCanceled {
		t.Fatalf("expected canceled run error, got %+v", res.Error)
	}
}

func TestRunner_UnknownKind(t *testing.T) {
	_, err := New().Run(context.Background(), domain.Case{Name: "x", Kind: "fetch"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
