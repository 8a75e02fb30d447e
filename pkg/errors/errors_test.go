package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code        Code
		publicMsg   string
		detailsOK   bool
		operational bool
	}{
		{code: CodeValidation, publicMsg: "validation failed", detailsOK: true},
		{code: CodeNotFound, publicMsg: "resource not found"},
		{code: CodeConfiguration, publicMsg: "data configuration invalid", detailsOK: true, operational: true},
		{code: CodeUnavailable, publicMsg: "item not available"},
		{code: CodeStateConflict, publicMsg: "state transition disallowed", detailsOK: true},
		{code: CodeInternal, publicMsg: "internal error", operational: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
		if meta.Operational != tt.operational {
			t.Fatalf("code %s expected operational %v got %v", tt.code, tt.operational, meta.Operational)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.PublicMessage != "internal error" {
		t.Fatalf("expected internal metadata, got %q", meta.PublicMessage)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing tier")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing tier" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatal("details should be nil by default")
	}

	withDetails := base.WithDetails(map[string]string{"tier": "gold"})
	if withDetails.Details() == nil {
		t.Fatal("expected details to be set")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeInternal, cause, "something broke")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatal("expected wrapped cause to unwrap")
	}
	if wrapped.Error() != fmt.Sprintf("%s: %s", CodeInternal, "something broke") {
		t.Fatalf("unexpected error string %q", wrapped.Error())
	}
}

func TestWrapNilCause(t *testing.T) {
	err := Wrap(CodeNotFound, nil, "missing")
	if err.Unwrap() != nil {
		t.Fatal("expected no cause")
	}
	if err.Code() != CodeNotFound {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsTraversesChains(t *testing.T) {
	inner := New(CodeUnavailable, "out of stock")
	wrapped := fmt.Errorf("adding to cart: %w", inner)

	typed := As(wrapped)
	if typed == nil || typed.Code() != CodeUnavailable {
		t.Fatalf("expected unavailable code, got %v", typed)
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeConfiguration, "tier schedule incomplete"))
	if !HasCode(err, CodeConfiguration) {
		t.Fatal("expected configuration code match")
	}
	if HasCode(err, CodeNotFound) {
		t.Fatal("did not expect not-found match")
	}
}
