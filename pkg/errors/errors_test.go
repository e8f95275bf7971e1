package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestError_MessageIncludesOpAndKind(t *testing.T) {
	err := New("widgets.Frame.SetSize", KindArgument, "size may not be negative")
	msg := err.Error()
	for _, want := range []string{"widgets.Frame.SetSize", "size may not be negative"} {
		if !contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
}

func TestKindOf(t *testing.T) {
	err := New("op", KindRange, "out of range")
	if KindOf(err) != KindRange {
		t.Errorf("expected KindRange, got %v", KindOf(err))
	}
	if KindOf(stderrors.New("plain")) != KindUnknown {
		t.Error("expected KindUnknown for a foreign error")
	}
	if KindOf(nil) != KindUnknown {
		t.Error("expected KindUnknown for nil")
	}
}

func TestIsKind_SeesThroughWrapping(t *testing.T) {
	inner := New("inner", KindConstruct, "bad build")
	wrapped := fmt.Errorf("outer context: %w", inner)
	if !IsKind(wrapped, KindConstruct) {
		t.Error("expected IsKind to unwrap to the construct error")
	}
	if IsKind(wrapped, KindRange) {
		t.Error("wrong kind must not match")
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap("op", KindStyle, nil) != nil {
		t.Error("wrapping nil must stay nil")
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap("styles.LoadSheet", KindStyle, cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestErrorKind_String(t *testing.T) {
	kinds := map[ErrorKind]string{
		KindArgument:  "argument",
		KindRange:     "range",
		KindConstruct: "construct",
		KindInvariant: "invariant",
		KindStyle:     "style",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("kind %d: expected %q, got %q", int(kind), want, got)
		}
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
