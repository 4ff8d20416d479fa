// Package config loads the airgauge configuration file and exposes a typed
// view over it.
//
// The file is written in the miniyaml dialect and is parsed by this
// repository's own parser, never by a YAML library: the dialect and its
// parser are part of the product's contract.
//
// The config path resolves from, in order: the --config flag, the
// AIRGAUGE_CONFIG environment variable, and config/config.yaml.
//
// SetValue implements the "config set" command with a line-oriented rewrite
// that shares the parser's 2-spaces-per-level indentation convention but is
// otherwise independent of it.
package config
