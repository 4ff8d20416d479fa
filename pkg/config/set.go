package config

import (
	"fmt"
	"os"
	"strings"
)

// SetValue rewrites a single "key: value" line in the config file, located
// by a dotted key path such as "thresholds.pm25.warn".
//
// The rewrite is purely line-oriented: it walks the file matching one path
// segment per 2-space indentation level and never round-trips through the
// parser, so comments and formatting elsewhere in the file are untouched.
// The matched line keeps its indentation.
func SetValue(path, dottedKey, value string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %q: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	keys := strings.Split(dottedKey, ".")
	indent := 0
	found := false

	for idx := 0; idx < len(lines); idx++ {
		line := lines[idx]
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		current := len(line) - len(strings.TrimLeft(line, " "))
		key, _, _ := strings.Cut(stripped, ":")
		if current == indent && key == keys[0] {
			if len(keys) == 1 {
				lines[idx] = fmt.Sprintf("%s%s: %s", strings.Repeat(" ", current), key, value)
				found = true
				break
			}
			indent += 2
			keys = keys[1:]
		}
	}

	if !found {
		return fmt.Errorf("key path %q not found in config; edit manually", dottedKey)
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("failed to write config %q: %w", path, err)
	}
	return nil
}
