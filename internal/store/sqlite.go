package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/geosafe/impact-cli/internal/postprocessor"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	scenario   TEXT NOT NULL,
	params     TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS indicator_results (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id   TEXT NOT NULL REFERENCES runs(id),
	position INTEGER NOT NULL,
	name     TEXT NOT NULL,
	value    INTEGER NOT NULL,
	metadata TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
CREATE INDEX IF NOT EXISTS idx_indicator_results_run_id ON indicator_results(run_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateRun(ctx context.Context, scenario string, params postprocessor.Params) (*Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal params")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, scenario, params, created_at) VALUES (?, ?, ?, ?)`,
		id, scenario, string(paramsJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	return &Run{
		ID:        id,
		Scenario:  scenario,
		Params:    params,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) AppendResults(ctx context.Context, runID string, results []postprocessor.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin")
	}
	defer func() { _ = tx.Rollback() }()

	for i, r := range results {
		var meta any
		if r.Metadata != nil {
			data, err := json.Marshal(r.Metadata)
			if err != nil {
				return eris.Wrap(err, "sqlite: marshal metadata")
			}
			meta = string(data)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO indicator_results (run_id, position, name, value, metadata) VALUES (?, ?, ?, ?, ?)`,
			runID, i, r.Name, r.Value, meta,
		)
		if err != nil {
			return eris.Wrapf(err, "sqlite: insert result %s", r.Name)
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit results")
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*Run, error) {
	var r Run
	var paramsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, scenario, params, created_at FROM runs WHERE id = ?`, runID,
	).Scan(&r.ID, &r.Scenario, &paramsJSON, &r.CreatedAt)
	if err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, eris.Errorf("sqlite: run %s not found", runID)
		}
		return nil, eris.Wrapf(err, "sqlite: get run %s", runID)
	}
	if err := json.Unmarshal([]byte(paramsJSON), &r.Params); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal params")
	}
	return &r, nil
}

func (s *SQLiteStore) GetResults(ctx context.Context, runID string) ([]postprocessor.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value, metadata FROM indicator_results WHERE run_id = ? ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get results %s", runID)
	}
	defer rows.Close()

	var out []postprocessor.Result
	for rows.Next() {
		var r postprocessor.Result
		var meta sql.NullString
		if err := rows.Scan(&r.Name, &r.Value, &meta); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan result row")
		}
		if meta.Valid {
			if err := json.Unmarshal([]byte(meta.String), &r.Metadata); err != nil {
				return nil, eris.Wrap(err, "sqlite: unmarshal metadata")
			}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate result rows")
	}
	return out, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scenario, params, created_at FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var paramsJSON string
		if err := rows.Scan(&r.ID, &r.Scenario, &paramsJSON, &r.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run row")
		}
		if err := json.Unmarshal([]byte(paramsJSON), &r.Params); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal params")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate run rows")
	}
	return out, nil
}
