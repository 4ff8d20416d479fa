package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"airgauge-hq/airgauge/pkg/device"
)

// Store persists device readings in a local SQLite database.
//
// The database is opened in WAL mode with a single writer connection;
// airgauge is a CLI and a single-instance daemon, so one writer is enough.
type Store struct {
	db     *sql.DB
	dbPath string

	insertStmt  *sql.Stmt
	historyStmt *sql.Stmt
}

// telemetryColumns are the numeric fields lifted out of the payload into
// their own columns, in schema order. Column names follow the firmware's
// JSON field names so the schema stays compatible with earlier collectors.
var telemetryColumns = []string{
	"pm01", "pm02", "pm10", "pm02Compensated",
	"atmp", "atmpCompensated", "rhum", "rhumCompensated",
	"rco2", "tvocIndex", "tvocRaw", "noxIndex", "noxRaw", "wifi",
}

// textColumns are the string fields stored alongside.
var textColumns = []string{"ledMode", "serialno", "firmware", "model"}

// Open creates (if needed) and opens the readings database at dbPath.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		dbPath, int((5 * time.Second).Milliseconds()))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		id TEXT PRIMARY KEY,
		device TEXT NOT NULL,
		ts INTEGER NOT NULL,
		pm01 REAL,
		pm02 REAL,
		pm10 REAL,
		pm02Compensated REAL,
		atmp REAL,
		atmpCompensated REAL,
		rhum REAL,
		rhumCompensated REAL,
		rco2 REAL,
		tvocIndex REAL,
		tvocRaw REAL,
		noxIndex REAL,
		noxRaw REAL,
		wifi REAL,
		ledMode TEXT,
		serialno TEXT,
		firmware TEXT,
		model TEXT,
		raw_json TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_readings_device_ts ON readings(device, ts);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) prepareStatements() error {
	var err error

	s.insertStmt, err = s.db.Prepare(`
		INSERT INTO readings (
			id, device, ts,
			pm01, pm02, pm10, pm02Compensated,
			atmp, atmpCompensated, rhum, rhumCompensated,
			rco2, tvocIndex, tvocRaw, noxIndex, noxRaw, wifi,
			ledMode, serialno, firmware, model, raw_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}

	s.historyStmt, err = s.db.Prepare(`
		SELECT ts, pm02Compensated, pm02, rco2, atmpCompensated, atmp, rhumCompensated, rhum
		FROM readings
		WHERE device = ? AND ts >= ?
		ORDER BY ts DESC
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare history statement: %w", err)
	}
	return nil
}

// SaveReading appends one reading for the named device. The full payload is
// serialized verbatim into raw_json so fields this schema does not know
// about survive for later migrations.
func (s *Store) SaveReading(ctx context.Context, deviceName string, r device.Reading) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize reading: %w", err)
	}

	args := make([]any, 0, 22)
	args = append(args, uuid.NewString(), deviceName, time.Now().Unix())
	for _, col := range telemetryColumns {
		args = append(args, nullFloat(r, col))
	}
	for _, col := range textColumns {
		args = append(args, nullText(r, col))
	}
	args = append(args, string(raw))

	if _, err := s.insertStmt.ExecContext(ctx, args...); err != nil {
		return fmt.Errorf("failed to store reading: %w", err)
	}
	return nil
}

// Row is one historical reading with the compensated-over-raw preference
// already applied.
type Row struct {
	Timestamp   time.Time
	PM25        *float64
	CO2         *float64
	Temperature *float64
	Humidity    *float64
}

// History returns the device's readings since the cutoff, newest first.
func (s *Store) History(ctx context.Context, deviceName string, since time.Time) ([]Row, error) {
	rows, err := s.historyStmt.QueryContext(ctx, deviceName, since.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var ts int64
		var pm25c, pm25, co2, tempC, temp, humC, hum sql.NullFloat64
		if err := rows.Scan(&ts, &pm25c, &pm25, &co2, &tempC, &temp, &humC, &hum); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		result = append(result, Row{
			Timestamp:   time.Unix(ts, 0),
			PM25:        firstValid(pm25c, pm25),
			CO2:         firstValid(co2),
			Temperature: firstValid(tempC, temp),
			Humidity:    firstValid(humC, hum),
		})
	}
	return result, rows.Err()
}

// Close releases the prepared statements and the database handle.
func (s *Store) Close() error {
	if s.insertStmt != nil {
		s.insertStmt.Close()
	}
	if s.historyStmt != nil {
		s.historyStmt.Close()
	}
	return s.db.Close()
}

func nullFloat(r device.Reading, key string) sql.NullFloat64 {
	if v, ok := r.Float(key); ok {
		return sql.NullFloat64{Float64: v, Valid: true}
	}
	return sql.NullFloat64{}
}

func nullText(r device.Reading, key string) sql.NullString {
	if s, ok := r[key].(string); ok {
		return sql.NullString{String: s, Valid: true}
	}
	return sql.NullString{}
}

func firstValid(values ...sql.NullFloat64) *float64 {
	for _, v := range values {
		if v.Valid {
			f := v.Float64
			return &f
		}
	}
	return nil
}
