// Package storage persists completed assessments as engine telemetry.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harukit/mekiki/internal/common"
	"github.com/harukit/mekiki/internal/model"
	"github.com/harukit/mekiki/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

var _ service.Storage = (*SQLiteStorage)(nil)

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// SaveAssessment persists a completed assessment. The record's ID and
// CreatedAt are filled in on success.
func (s *SQLiteStorage) SaveAssessment(ctx context.Context, record *model.AssessmentRecord) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if record.ListingHash == "" {
		return fmt.Errorf("record listing hash cannot be empty")
	}

	resultJSON, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment result: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO assessments (listing_hash, title, overall, source, verdict, result)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ListingHash,
		record.Title,
		record.Result.Overall,
		string(record.Result.Source),
		record.Verdict,
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get assessment id: %w", err)
	}
	record.ID = id

	return s.db.QueryRowContext(ctx,
		"SELECT created_at FROM assessments WHERE id = ?", id,
	).Scan(&record.CreatedAt)
}

// GetAssessments returns assessment history, newest first.
func (s *SQLiteStorage) GetAssessments(ctx context.Context, filter service.AssessmentFilter) ([]model.AssessmentRecord, error) {
	query := `
		SELECT id, listing_hash, title, verdict, result, created_at
		FROM assessments`
	args := make([]any, 0, 3)

	if filter.ListingHash != "" {
		query += " WHERE listing_hash = ?"
		args = append(args, filter.ListingHash)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.AssessmentRecord
	for rows.Next() {
		record, scanErr := scanAssessment(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessments: %w", err)
	}

	return records, nil
}

// GetLatestAssessment returns the most recent assessment for a listing,
// or common.ErrNotFound when the listing has never been assessed.
func (s *SQLiteStorage) GetLatestAssessment(ctx context.Context, listingHash string) (*model.AssessmentRecord, error) {
	if listingHash == "" {
		return nil, fmt.Errorf("listing hash cannot be empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, listing_hash, title, verdict, result, created_at
		FROM assessments
		WHERE listing_hash = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, listingHash)

	record, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	var resultJSON string

	err := row.Scan(
		&record.ID,
		&record.ListingHash,
		&record.Title,
		&record.Verdict,
		&resultJSON,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return record, err
		}
		return record, fmt.Errorf("failed to scan assessment: %w", err)
	}

	if err := json.Unmarshal([]byte(resultJSON), &record.Result); err != nil {
		return record, fmt.Errorf("failed to unmarshal assessment result: %w", err)
	}
	return record, nil
}
