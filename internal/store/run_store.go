// Package store records scheduling runs so they can be fetched again by ID.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"

	"os-project/internal/responses"
)

//go:generate mockgen -destination "../../api/mock_store_test.go" -package api_test os-project/internal/store RunStore

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("run not found")

// RunStore persists schedule responses.
type RunStore interface {
	// Save stores the response and returns the generated run ID.
	Save(ctx context.Context, response responses.ScheduleResponse) (string, error)

	// Get returns a previously saved response.
	Get(ctx context.Context, id string) (responses.ScheduleResponse, error)

	Close() error
}

const createRunsTableSQL = `CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	algorithm TEXT NOT NULL,
	aging_threshold INTEGER NOT NULL,
	process_count INTEGER NOT NULL,
	average_waiting_time REAL NOT NULL,
	average_turn_around_time REAL NOT NULL,
	response TEXT NOT NULL
);`

// SQLiteRunStore keeps runs in a SQLite database file.
type SQLiteRunStore struct {
	*sql.DB
}

// NewSQLiteRunStore opens (or creates) the database at path. An empty path
// picks a fresh file name.
func NewSQLiteRunStore(path string) (*SQLiteRunStore, error) {
	if path == "" {
		path = "scheduler_runs_" + xid.New().String() + ".sqlite3"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(createRunsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	log.Println("recording runs in", path)
	return &SQLiteRunStore{DB: db}, nil
}

func (s *SQLiteRunStore) Save(ctx context.Context, response responses.ScheduleResponse) (string, error) {
	id := xid.New().String()
	response.RunID = id

	payload, err := json.Marshal(response)
	if err != nil {
		return "", fmt.Errorf("encode run: %w", err)
	}

	_, err = s.ExecContext(ctx,
		"INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?, ?)",
		id,
		response.Algorithm,
		response.AgingThreshold,
		len(response.Details),
		response.AverageWaitingTime,
		response.AverageTurnAroundTime,
		string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("insert run %s: %w", id, err)
	}
	return id, nil
}

func (s *SQLiteRunStore) Get(ctx context.Context, id string) (responses.ScheduleResponse, error) {
	var payload string
	err := s.QueryRowContext(ctx, "SELECT response FROM runs WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("query run %s: %w", id, err)
	}

	var response responses.ScheduleResponse
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("decode run %s: %w", id, err)
	}
	return response, nil
}
