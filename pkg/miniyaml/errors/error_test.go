package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	err := New(KindOddIndentation, "indentation must be a multiple of 2 spaces", " b: 1", 1)

	msg := err.Error()
	if !strings.Contains(msg, "[odd_indentation]") {
		t.Errorf("Error() = %q, missing kind tag", msg)
	}
	if !strings.Contains(msg, "line 2") {
		t.Errorf("Error() = %q, missing 1-based line number", msg)
	}
	if !strings.Contains(msg, `" b: 1"`) {
		t.Errorf("Error() = %q, missing offending line", msg)
	}
}

func TestParseError_KindProbe(t *testing.T) {
	err := fmt.Errorf("loading config: %w",
		New(KindMissingSeparator, "line has no ':' separator", "oops", 4))

	if !stderrors.Is(err, &ParseError{Kind: KindMissingSeparator}) {
		t.Error("errors.Is should match a bare kind probe through wrapping")
	}
	if stderrors.Is(err, &ParseError{Kind: KindOddIndentation}) {
		t.Error("errors.Is should not match a different kind")
	}

	var perr *ParseError
	if !stderrors.As(err, &perr) {
		t.Fatal("errors.As should unwrap to *ParseError")
	}
	if perr.Index != 4 {
		t.Errorf("Index = %d, want 4", perr.Index)
	}
}
