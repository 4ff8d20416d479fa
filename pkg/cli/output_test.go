package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormatter(t *testing.T) {
	f := NewFormatter(FormatJSON)
	var buf bytes.Buffer
	data := map[string]any{"rco2": 615.0, "model": "I-9PSL"}

	if err := f.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded["rco2"] != 615.0 || decoded["model"] != "I-9PSL" {
		t.Errorf("decoded = %v", decoded)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("JSON output should be indented")
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewFormatter(FormatText)
	var buf bytes.Buffer
	if err := f.FormatTo(&buf, "615 ppm"); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}
	if buf.String() != "615 ppm\n" {
		t.Errorf("FormatTo() wrote %q", buf.String())
	}
}

func TestNewFormatter_DefaultsToText(t *testing.T) {
	if _, ok := NewFormatter("csv").(*TextFormatter); !ok {
		t.Error("unknown formats should fall back to text")
	}
}
