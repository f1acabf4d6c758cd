// Package audit persists a record of each cipher operation to a SQLite
// database: what kind of operation ran, how many bytes went in and came
// out, how many trailing bytes were truncated by the ECB block driver,
// and a SHA3-512 digest of the ciphertext so a record can later be tied
// back to a specific output without storing the output itself.
package audit

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"

	_ "github.com/mattn/go-sqlite3"
)

// OperationRecord is one row of the operations ledger.
type OperationRecord struct {
	ID              int64
	Operation       string // "encrypt" or "decrypt"
	InputLen        int
	OutputLen       int
	TruncatedBytes  int
	CiphertextSHA3  string
	Timestamp       time.Time
}

// Ledger wraps a SQLite-backed operations table.
type Ledger struct {
	conn *sql.DB
	mu   sync.RWMutex
	path string
}

// Open opens (creating if necessary) the operations ledger at path and
// runs its migration.
func Open(path string) (*Ledger, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("audit: failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("audit: failed to ping database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	l := &Ledger{conn: conn, path: path}
	if err := l.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("audit: failed to run migration: %w", err)
	}
	return l, nil
}

func (l *Ledger) migrate() error {
	const schema = `CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		operation TEXT NOT NULL,
		input_len INTEGER NOT NULL,
		output_len INTEGER NOT NULL,
		truncated_bytes INTEGER NOT NULL,
		ciphertext_sha3 TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	_, err := l.conn.Exec(schema)
	return err
}

// Digest computes the hex-encoded SHA3-512 digest of data, for use as
// OperationRecord.CiphertextSHA3.
func Digest(data []byte) string {
	sum := sha3.Sum512(data)
	return fmt.Sprintf("%x", sum)
}

// Record inserts a completed operation into the ledger.
func (l *Ledger) Record(rec OperationRecord) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	const query = `INSERT INTO operations
		(operation, input_len, output_len, truncated_bytes, ciphertext_sha3)
		VALUES (?, ?, ?, ?, ?)`

	result, err := l.conn.Exec(query, rec.Operation, rec.InputLen, rec.OutputLen,
		rec.TruncatedBytes, rec.CiphertextSHA3)
	if err != nil {
		return 0, fmt.Errorf("audit: failed to record operation: %w", err)
	}
	return result.LastInsertId()
}

// Recent returns up to limit operations, most recent first.
func (l *Ledger) Recent(limit int) ([]OperationRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	const query = `SELECT id, operation, input_len, output_len, truncated_bytes,
		ciphertext_sha3, timestamp
		FROM operations ORDER BY timestamp DESC, id DESC LIMIT ?`

	rows, err := l.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: failed to query operations: %w", err)
	}
	defer rows.Close()

	records := make([]OperationRecord, 0)
	for rows.Next() {
		var r OperationRecord
		if err := rows.Scan(&r.ID, &r.Operation, &r.InputLen, &r.OutputLen,
			&r.TruncatedBytes, &r.CiphertextSHA3, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("audit: failed to scan operation: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the underlying database connection.
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn == nil {
		return nil
	}
	return l.conn.Close()
}
