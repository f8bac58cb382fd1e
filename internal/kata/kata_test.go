package kata

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/kata/internal/domain"
)

func TestFormatString(t *testing.T) {
	cases := []struct {
		input string
		lc    domain.LetterCase
		want  string
	}{
		{"Hello World", domain.DefaultLetterCase, "HELLO WORLD"},
		{"Hello World", domain.Upper, "HELLO WORLD"},
		{"Hello World", domain.Lower, "hello world"},
		{"", domain.Upper, ""},
		{"straße", domain.Upper, "STRASSE"},
		{"ÀÉÎ", domain.Lower, "àéî"},
	}
	for _, c := range cases {
		if got := FormatString(c.input, c.lc); got != c.want {
			t.Errorf("FormatString(%q, %s) = %q, want %q", c.input, c.lc, got, c.want)
		}
	}
}

func TestFilterByRating(t *testing.T) {
	in := []domain.RatedItem{
		{Title: "Dune", Rating: 5},
		{Title: "Eragon", Rating: 3.9},
		{Title: "Emma", Rating: 4},
		{Title: "Twilight", Rating: 2},
		{Title: "Hyperion", Rating: 4.5},
	}
	before := append([]domain.RatedItem(nil), in...)

	got := FilterByRating(in)
	want := []domain.RatedItem{
		{Title: "Dune", Rating: 5},
		{Title: "Emma", Rating: 4},
		{Title: "Hyperion", Rating: 4.5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FilterByRating mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(before, in); diff != "" {
		t.Fatalf("input was mutated (-before +after):\n%s", diff)
	}
}

func TestFilterByRating_Empty(t *testing.T) {
	got := FilterByRating(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestConcat(t *testing.T) {
	a := []int{1, 2}
	b := []int{3}
	c := []int{}
	d := []int{4, 5}

	got := Concat(a, b, c, d)
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, got); diff != "" {
		t.Fatalf("Concat mismatch (-want +got):\n%s", diff)
	}

	got[0] = 99
	if a[0] != 1 {
		t.Fatalf("Concat must not alias its inputs")
	}
}

func TestConcat_Properties(t *testing.T) {
	a := []string{"x", "y", "z"}
	b := []string{"p", "q"}
	got := Concat(a, b)

	if len(got) != len(a)+len(b) {
		t.Fatalf("expected length %d, got %d", len(a)+len(b), len(got))
	}
	for i := range got {
		var want string
		if i < len(a) {
			want = a[i]
		} else {
			want = b[i-len(a)]
		}
		if got[i] != want {
			t.Errorf("index %d: got %q, want %q", i, got[i], want)
		}
	}
}

func TestConcat_NoArgs(t *testing.T) {
	got := Concat[int]()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestProcessValue(t *testing.T) {
	cases := []struct {
		in   domain.Value
		want float64
	}{
		{domain.Text("hello"), 5},
		{domain.Text(""), 0},
		{domain.Text("héllo"), 5},
		{domain.Number(10), 20},
		{domain.Number(-2.5), -5},
		{domain.Value{}, 0},
	}
	for _, c := range cases {
		if got := ProcessValue(c.in); got != c.want {
			t.Errorf("ProcessValue(%s) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMostExpensive(t *testing.T) {
	if _, ok := MostExpensive(nil); ok {
		t.Fatalf("expected no product for empty input")
	}

	got, ok := MostExpensive([]domain.Product{{Name: "A", Price: 10}, {Name: "B", Price: 20}})
	if !ok || got.Name != "B" {
		t.Fatalf("expected B, got %+v ok=%v", got, ok)
	}
}

func TestMostExpensive_TieKeepsFirst(t *testing.T) {
	in := []domain.Product{
		{Name: "A", Price: 5},
		{Name: "B", Price: 30},
		{Name: "C", Price: 30},
		{Name: "D", Price: 1},
	}
	got, ok := MostExpensive(in)
	if !ok || got.Name != "B" {
		t.Fatalf("expected earliest maximum B, got %+v", got)
	}
}

func TestDayType(t *testing.T) {
	cases := []struct {
		day  domain.Day
		want string
	}{
		{domain.Monday, Weekday},
		{domain.Wednesday, Weekday},
		{domain.Friday, Weekday},
		{domain.Saturday, Weekend},
		{domain.Sunday, Weekend},
	}
	for _, c := range cases {
		if got := DayType(c.day); got != c.want {
			t.Errorf("DayType(%s) = %q, want %q", c.day, got, c.want)
		}
	}
}
