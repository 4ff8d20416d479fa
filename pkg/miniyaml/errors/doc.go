// Package errors provides the typed error taxonomy for miniyaml parsing.
//
// Every failure carries a Kind, a human-readable message, the offending raw
// line, and its 0-based index. All parse errors are fatal and non-retryable:
// the parser stops at the first defect and never skips a bad line.
//
// Callers that need to branch on a failure class use errors.As:
//
//	var perr *errors.ParseError
//	if stderrors.As(err, &perr) && perr.Kind == errors.KindOddIndentation {
//	    ...
//	}
package errors
