// Package storage persists device readings in an append-only SQLite table.
//
// The schema lifts the well-known telemetry fields into typed columns for
// querying and keeps the complete original payload in raw_json, so readings
// recorded by older or newer firmware stay forward-compatible.
//
// The backend uses modernc.org/sqlite (pure Go, no cgo) with WAL journaling
// and a single writer connection.
package storage
