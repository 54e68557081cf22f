package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQL keeps the blob in a one-row key/value table.  The schema is
// created on demand so the service can point at an empty database:
//
//	CREATE TABLE blobs (
//	    blob_key   VARCHAR(64) PRIMARY KEY,
//	    blob_value MEDIUMBLOB NOT NULL,
//	    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
//	                ON UPDATE CURRENT_TIMESTAMP
//	)
type MySQL struct {
	db *sql.DB
}

// NewMySQL binds the store to an open database handle and ensures the
// blobs table exists.
func NewMySQL(ctx context.Context, db *sql.DB) (*MySQL, error) {
	const ddl = `CREATE TABLE IF NOT EXISTS blobs (
        blob_key   VARCHAR(64) PRIMARY KEY,
        blob_value MEDIUMBLOB NOT NULL,
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("create blobs table: %w", err)
	}
	return &MySQL{db: db}, nil
}

// Load reads the single row for Key; no row maps to ErrNotFound.
func (m *MySQL) Load(ctx context.Context) ([]byte, error) {
	const q = `SELECT blob_value FROM blobs WHERE blob_key = ?`
	var data []byte
	err := m.db.QueryRowContext(ctx, q, Key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select blob %s: %w", Key, err)
	}
	return data, nil
}

// Save upserts the row for Key.
func (m *MySQL) Save(ctx context.Context, data []byte) error {
	const q = `INSERT INTO blobs (blob_key, blob_value) VALUES (?, ?)
               ON DUPLICATE KEY UPDATE blob_value = VALUES(blob_value)`
	if _, err := m.db.ExecContext(ctx, q, Key, data); err != nil {
		return fmt.Errorf("upsert blob %s: %w", Key, err)
	}
	return nil
}
