package parser

import (
	"os"
	"strings"

	"airgauge-hq/airgauge/pkg/miniyaml/ast"
	myErrors "airgauge-hq/airgauge/pkg/miniyaml/errors"
)

const indentStep = 2

// frame is one open nesting level during the parse. Frames are created and
// destroyed purely by indentation comparisons; the format has no close
// markers.
type frame struct {
	indent    int
	container *ast.Value // the mapping or sequence being filled
	lastKey   string     // most recent key written into a mapping container
	hasKey    bool
}

// Parse reads a miniyaml document from a string buffer and returns the
// finalized value tree. The root is always a mapping. Any line-ending
// convention is accepted.
//
// The parse is a single streaming pass: each non-blank line is classified by
// its indentation delta against a stack of open frames, with no lookahead.
// A key declared with no inline value (or a bare "- " item) becomes a
// Pending placeholder; the shape of the first child line decides whether it
// resolves into a mapping or a sequence. Placeholders that never receive a
// child finalize as empty mappings.
func Parse(src string) (*ast.Value, error) {
	root := ast.NewMapping()
	frames := []*frame{{indent: 0, container: root}}

	for index, raw := range splitLines(src) {
		line := stripComment(raw)
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		indent := leadingSpaces(line)
		if indent%indentStep != 0 {
			return nil, myErrors.Newf(myErrors.KindOddIndentation, raw, index,
				"indentation must be a multiple of %d spaces", indentStep)
		}

		// Dedent: close frames deeper than this line.
		for len(frames) > 0 && indent < frames[len(frames)-1].indent {
			frames = frames[:len(frames)-1]
		}
		if len(frames) == 0 {
			return nil, myErrors.New(myErrors.KindBrokenIndentContext,
				"indentation context lost", raw, index)
		}

		f := frames[len(frames)-1]
		if indent > f.indent {
			child, err := descend(f, indent, trimmed, raw, index)
			if err != nil {
				return nil, err
			}
			f = &frame{indent: indent, container: child}
			frames = append(frames, f)
		}

		if strings.HasPrefix(trimmed, "- ") {
			if err := parseItem(f, trimmed, raw, index); err != nil {
				return nil, err
			}
			continue
		}
		if err := parseEntry(f, trimmed, raw, index); err != nil {
			return nil, err
		}
	}

	return finalize(root), nil
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (*ast.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// descend opens the container the indented line belongs to. It resolves a
// Pending slot now that the first child's shape is known: a "- " child makes
// it a sequence, anything else a mapping.
func descend(f *frame, indent int, trimmed, raw string, index int) (*ast.Value, error) {
	if indent != f.indent+indentStep {
		return nil, myErrors.Newf(myErrors.KindInvalidIndentJump, raw, index,
			"indent jumps from %d to %d; must step by exactly %d", f.indent, indent, indentStep)
	}
	var child *ast.Value

	switch f.container.Kind {
	case ast.KindMapping:
		if !f.hasKey {
			return nil, myErrors.New(myErrors.KindMissingNestedKey,
				"indented block without a preceding key", raw, index)
		}
		child = f.container.Get(f.lastKey)
		if child.IsPending() {
			if strings.HasPrefix(trimmed, "- ") {
				child = ast.NewSequence()
			} else {
				child = ast.NewMapping()
			}
			f.container.Set(f.lastKey, child)
		}
	case ast.KindSequence:
		if f.container.Len() == 0 {
			return nil, myErrors.New(myErrors.KindEmptySequenceExtend,
				"sequence has no item to extend", raw, index)
		}
		last := f.container.Items[len(f.container.Items)-1]
		if last.IsPending() {
			last = ast.NewMapping()
			f.container.Items[len(f.container.Items)-1] = last
		}
		child = last
	default:
		return nil, myErrors.Newf(myErrors.KindUnsupportedContainer, raw, index,
			"cannot nest under %s value", f.container.Kind)
	}

	if child.Kind != ast.KindMapping && child.Kind != ast.KindSequence {
		return nil, myErrors.Newf(myErrors.KindUnsupportedContainer, raw, index,
			"cannot nest under %s value", child.Kind)
	}
	return child, nil
}

// parseItem handles a "- " sequence item line.
func parseItem(f *frame, trimmed, raw string, index int) error {
	target := f.container
	if target.Kind == ast.KindMapping {
		if !f.hasKey {
			return myErrors.New(myErrors.KindListItemWithoutKey,
				"sequence item without a key context", raw, index)
		}
		slot := target.Get(f.lastKey)
		if slot.IsPending() {
			slot = ast.NewSequence()
			target.Set(f.lastKey, slot)
		}
		target = slot
	}
	if target.Kind != ast.KindSequence {
		return myErrors.Newf(myErrors.KindMixedContent, raw, index,
			"sequence item in a slot already holding a %s", target.Kind)
	}

	item := strings.TrimSpace(trimmed[2:])
	if item == "" {
		// Shape unknown until an indented child follows.
		target.Append(ast.NewPending())
		return nil
	}

	if key, rest, ok := strings.Cut(item, ":"); ok {
		key = strings.TrimSpace(key)
		value := strings.TrimSpace(rest)
		entry := ast.NewMapping()
		if value == "" {
			entry.Set(key, ast.NewPending())
		} else {
			entry.Set(key, Lex(value))
		}
		target.Append(entry)
		f.lastKey = key
		f.hasKey = true
		return nil
	}

	target.Append(Lex(item))
	return nil
}

// parseEntry handles a "key: value" or bare "key:" line.
func parseEntry(f *frame, trimmed, raw string, index int) error {
	key, rest, ok := strings.Cut(trimmed, ":")
	if !ok {
		return myErrors.New(myErrors.KindMissingSeparator,
			"line has no ':' separator", raw, index)
	}
	if f.container.Kind != ast.KindMapping {
		return myErrors.Newf(myErrors.KindMixedContent, raw, index,
			"key/value entry inside a %s", f.container.Kind)
	}

	key = strings.TrimSpace(key)
	value := strings.TrimSpace(rest)
	if value == "" {
		f.container.Set(key, ast.NewPending())
	} else {
		f.container.Set(key, Lex(value))
	}
	f.lastKey = key
	f.hasKey = true
	return nil
}

// finalize converts any Pending placeholder that never received a child
// into an empty mapping. Runs once over the completed tree.
func finalize(v *ast.Value) *ast.Value {
	switch v.Kind {
	case ast.KindPending:
		return ast.NewMapping()
	case ast.KindMapping:
		for i := range v.Pairs {
			v.Pairs[i].Value = finalize(v.Pairs[i].Value)
		}
	case ast.KindSequence:
		for i := range v.Items {
			v.Items[i] = finalize(v.Items[i])
		}
	}
	return v
}

// splitLines splits a buffer on '\n', tolerating CRLF endings.
func splitLines(src string) []string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// stripComment removes everything from the first unquoted '#' onward.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}

// leadingSpaces counts leading space characters. Tabs are not indentation
// in this format; a tab counts as content.
func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
