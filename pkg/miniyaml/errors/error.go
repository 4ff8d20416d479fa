package errors

import "fmt"

// Kind categorizes a parse failure. Each indentation or line-shape defect
// gets its own kind so callers can report precise diagnostics.
type Kind string

const (
	// KindOddIndentation: leading-space count is not a multiple of 2.
	KindOddIndentation Kind = "odd_indentation"
	// KindBrokenIndentContext: a dedent found no matching open frame.
	KindBrokenIndentContext Kind = "broken_indent_context"
	// KindInvalidIndentJump: an indent increase is not exactly +2 columns.
	KindInvalidIndentJump Kind = "invalid_indent_jump"
	// KindMissingNestedKey: an indented block under a mapping with no
	// preceding bare key.
	KindMissingNestedKey Kind = "missing_nested_key"
	// KindUnsupportedContainer: an indented block under a value that is
	// neither a mapping nor a sequence.
	KindUnsupportedContainer Kind = "unsupported_container"
	// KindEmptySequenceExtend: a deeper block under a sequence that has no
	// last item to extend.
	KindEmptySequenceExtend Kind = "empty_sequence_extend"
	// KindMissingSeparator: a non-item line without a ':'.
	KindMissingSeparator Kind = "missing_separator"
	// KindListItemWithoutKey: a "- " item directly under a mapping with no
	// active key context.
	KindListItemWithoutKey Kind = "list_item_without_key"
	// KindMixedContent: mapping-shaped content written into a resolved
	// sequence slot, or item-shaped content into a non-sequence slot.
	KindMixedContent Kind = "mixed_content"
)

// ParseError is a fatal parse failure. The parser stops at the first error;
// there is no partial-result recovery.
type ParseError struct {
	Kind    Kind
	Message string
	Line    string // offending raw line, verbatim
	Index   int    // 0-based line index in the input
}

// Error implements the error interface with the kind, message, and the
// offending line for context.
func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] %s\n  --> line %d: %q", e.Kind, e.Message, e.Index+1, e.Line)
}

// New creates a ParseError for the given line.
func New(kind Kind, message, line string, index int) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: message,
		Line:    line,
		Index:   index,
	}
}

// Newf creates a ParseError with a formatted message.
func Newf(kind Kind, line string, index int, format string, args ...any) *ParseError {
	return New(kind, fmt.Sprintf(format, args...), line, index)
}

// Is lets errors.Is match a ParseError against a bare kind probe, e.g.
// errors.Is(err, &ParseError{Kind: KindOddIndentation}).
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Line == ""
}
