package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	seq           INTEGER PRIMARY KEY AUTOINCREMENT,
	id            TEXT NOT NULL UNIQUE,
	outcome       TEXT NOT NULL,
	kind          TEXT,
	message       TEXT,
	warnings_json TEXT,
	result_id     TEXT,
	risk_level    TEXT,
	probability   REAL,
	started_at    TEXT NOT NULL,
	finished_at   TEXT NOT NULL
);
`

// #endregion schema

// #region ledger
// Ledger records every submit attempt of the session in a private in-memory
// SQLite database. Nothing is written to disk.
type Ledger struct {
	db *sql.DB
}

// OpenLedger creates an empty ledger.
func OpenLedger() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the database; its contents are gone afterwards.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// #endregion ledger

// #region record
// Record appends an attempt. A missing ID or timestamp is filled in.
func (l *Ledger) Record(e AttemptEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.FinishedAt.IsZero() {
		e.FinishedAt = time.Now().UTC()
	}
	if e.StartedAt.IsZero() {
		e.StartedAt = e.FinishedAt
	}

	var warnings interface{}
	if len(e.Warnings) > 0 {
		raw, err := json.Marshal(e.Warnings)
		if err != nil {
			return fmt.Errorf("marshal warnings: %w", err)
		}
		warnings = string(raw)
	}

	var probability interface{}
	if e.ResultID != "" {
		probability = e.Probability
	}

	_, err := l.db.Exec(
		`INSERT INTO attempts (id, outcome, kind, message, warnings_json, result_id, risk_level, probability, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		string(e.Outcome),
		nullIfEmpty(e.Kind),
		nullIfEmpty(e.Message),
		warnings,
		nullIfEmpty(e.ResultID),
		nullIfEmpty(e.RiskLevel),
		probability,
		e.StartedAt.UTC().Format(time.RFC3339Nano),
		e.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// #endregion record

// #region recent
// Recent returns up to limit attempts, newest first.
func (l *Ledger) Recent(limit int) ([]AttemptEntry, error) {
	rows, err := l.db.Query(
		`SELECT id, outcome, kind, message, warnings_json, result_id, risk_level, probability, started_at, finished_at
		 FROM attempts ORDER BY seq DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var entries []AttemptEntry
	for rows.Next() {
		var e AttemptEntry
		var outcome string
		var kind, message, warnings, resultID, risk sql.NullString
		var probability sql.NullFloat64
		var startedStr, finishedStr string

		if err := rows.Scan(&e.ID, &outcome, &kind, &message, &warnings, &resultID, &risk, &probability, &startedStr, &finishedStr); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		e.Outcome = Outcome(outcome)
		e.Kind = kind.String
		e.Message = message.String
		e.ResultID = resultID.String
		e.RiskLevel = risk.String
		e.Probability = probability.Float64
		if warnings.Valid {
			if err := json.Unmarshal([]byte(warnings.String), &e.Warnings); err != nil {
				return nil, fmt.Errorf("unmarshal warnings: %w", err)
			}
		}
		e.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		e.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByOutcome tallies attempts per outcome.
func (l *Ledger) CountByOutcome() (map[Outcome]int, error) {
	rows, err := l.db.Query(`SELECT outcome, COUNT(*) FROM attempts GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}
	defer rows.Close()

	counts := make(map[Outcome]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[Outcome(outcome)] = n
	}
	return counts, rows.Err()
}

// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
