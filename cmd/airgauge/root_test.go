package main

import (
	"errors"
	"fmt"
	"testing"

	"airgauge-hq/airgauge/pkg/cli"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config error", cli.NewConfigError("devices", "empty"), 2},
		{"wrapped config error", fmt.Errorf("outer: %w", cli.NewConfigError("", "bad")), 2},
		{"command error", cli.NewCommandError("status", errors.New("timeout")), 3},
		{"plain error", errors.New("boom"), 3},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("%s: exitCode() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"status": false, "readings": false, "history": false,
		"alerts": false, "config": false, "store": false,
		"watch": false, "version": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestConfigSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range configCmd.Commands() {
		names[c.Name()] = true
	}
	if !names["show"] || !names["set"] {
		t.Errorf("config subcommands = %v, want show and set", names)
	}
}
