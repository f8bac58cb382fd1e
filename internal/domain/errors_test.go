package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &DomainError{
		Kind:  KindInvalidInput,
		Msg:   "bad workbook case",
		Cause: root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *DomainError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match DomainError")
	}
	if got.Kind != KindInvalidInput {
		t.Fatalf("expected kind %s", KindInvalidInput)
	}
	if err.Error() != "bad workbook case: root" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestIsKindForDomainError(t *testing.T) {
	err := &DomainError{
		Kind: KindInvalidConfig,
		Msg:  "invalid",
	}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match domain error")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
}

func TestIsKindForOpError(t *testing.T) {
	err := &OpError{Op: "workbook.load", Kind: KindNotFound, Path: "x.yaml", Err: ErrNotFound}

	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match op error")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected errors.Is to reach sentinel")
	}
	if got := err.Error(); got != "workbook.load: not_found (path=x.yaml): not found" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestNegativeNumberMessage(t *testing.T) {
	if ErrNegativeNumber.Error() != "Negative number not allowed" {
		t.Fatalf("unexpected message: %q", ErrNegativeNumber.Error())
	}
	if !IsKind(ErrNegativeNumber, KindInvalidInput) {
		t.Fatalf("expected invalid_input kind")
	}
}

func TestNegativeNumberCannotBeAltered(t *testing.T) {
	wrapped := fmt.Errorf("square: %w", ErrNegativeNumber)

	var de *DomainError
	if !errors.As(wrapped, &de) {
		t.Fatalf("expected a DomainError in the chain")
	}
	if de.Kind != KindInvalidInput || de.Msg != NegativeNumberMsg {
		t.Fatalf("unexpected domain error: %+v", de)
	}

	de.Msg = "changed"

	if got := ErrNegativeNumber.Error(); got != NegativeNumberMsg {
		t.Fatalf("sentinel message changed to %q", got)
	}
	if got := NewRunError(wrapped).Message; got != NegativeNumberMsg {
		t.Fatalf("run error message = %q, want %q", got, NegativeNumberMsg)
	}
	if !errors.Is(wrapped, ErrNegativeNumber) {
		t.Fatalf("expected errors.Is to match the sentinel")
	}
}
