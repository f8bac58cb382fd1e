package domain

import (
	"encoding/json"
	"strconv"
)

// ValueKind tags the case held by a Value.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueNumber
)

func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "text"
	case ValueNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is either text or a number. The zero Value is empty text.
type Value struct {
	kind ValueKind
	text string
	num  float64
}

func Text(s string) Value { return Value{kind: ValueText, text: s} }

func Number(n float64) Value { return Value{kind: ValueNumber, num: n} }

func (v Value) Kind() ValueKind { return v.kind }

// AsText returns the text case; ok is false for numbers.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == ValueText
}

// AsNumber returns the number case; ok is false for text.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == ValueNumber
}

func (v Value) String() string {
	if v.kind == ValueNumber {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return strconv.Quote(v.text)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == ValueNumber {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.text)
}
