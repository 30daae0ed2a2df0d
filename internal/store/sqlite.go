package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"vedic-astro/internal/errors"
	"vedic-astro/internal/models"
)

// SQLiteStore implements SnapshotStore using SQLite. Chart and yoga payloads
// are stored as JSON columns; the indexed header columns exist so List never
// has to parse a payload.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based snapshot store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Snapshots table for saved chart readings
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		birth_time DATETIME NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		saved_at DATETIME NOT NULL,
		yoga_count INTEGER NOT NULL DEFAULT 0,
		chart TEXT NOT NULL,
		yogas TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_name ON snapshots(name);
	CREATE INDEX IF NOT EXISTS idx_snapshots_saved_at ON snapshots(saved_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save persists a snapshot and returns its assigned id. A zero SavedAt is
// stamped with the current time.
func (s *SQLiteStore) Save(ctx context.Context, snap *models.Snapshot) (int64, error) {
	if snap.Chart == nil {
		return 0, errors.NewStoreError("save", snap.Name, "snapshot has no chart", errors.ErrNoChart)
	}
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now().UTC()
	}

	chartJSON, err := json.Marshal(snap.Chart)
	if err != nil {
		return 0, errors.NewStoreError("save", snap.Name, "failed to encode chart", err)
	}

	var yogasJSON []byte
	yogaCount := 0
	if snap.Yogas != nil {
		yogasJSON, err = json.Marshal(snap.Yogas)
		if err != nil {
			return 0, errors.NewStoreError("save", snap.Name, "failed to encode yogas", err)
		}
		yogaCount = snap.Yogas.Total
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, birth_time, latitude, longitude, saved_at, yoga_count, chart, yogas)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, snap.Name, snap.Chart.BirthTime, snap.Chart.Location.Latitude, snap.Chart.Location.Longitude,
		snap.SavedAt, yogaCount, string(chartJSON), nullableString(yogasJSON))
	if err != nil {
		return 0, errors.NewStoreError("save", snap.Name, "insert failed", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewStoreError("save", snap.Name, "failed to read insert id", err)
	}
	snap.ID = id
	return id, nil
}

// Load returns the most recent snapshot saved under the given name.
func (s *SQLiteStore) Load(ctx context.Context, name string) (*models.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, saved_at, chart, yogas
		FROM snapshots
		WHERE name = ?
		ORDER BY saved_at DESC, id DESC
		LIMIT 1
	`, name)

	snap, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewStoreError("load", name, "no snapshot with that name", errors.ErrChartNotFound)
	}
	if err != nil {
		return nil, errors.NewStoreError("load", name, "query failed", err)
	}
	return snap, nil
}

// LoadByID returns one specific snapshot.
func (s *SQLiteStore) LoadByID(ctx context.Context, id int64) (*models.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, saved_at, chart, yogas
		FROM snapshots
		WHERE id = ?
	`, id)

	snap, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewStoreError("load", fmt.Sprintf("#%d", id), "no snapshot with that id", errors.ErrChartNotFound)
	}
	if err != nil {
		return nil, errors.NewStoreError("load", fmt.Sprintf("#%d", id), "query failed", err)
	}
	return snap, nil
}

// List returns snapshot headers matching the filter, newest first.
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]SnapshotInfo, error) {
	query := "SELECT id, name, birth_time, saved_at, yoga_count FROM snapshots WHERE 1=1"
	args := []interface{}{}

	if filter.Name != "" {
		query += " AND name = ?"
		args = append(args, filter.Name)
	}
	if !filter.StartDate.IsZero() {
		query += " AND saved_at >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND saved_at <= ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY saved_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("list", filter.Name, "query failed", err)
	}
	defer rows.Close()

	var infos []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.BirthTime, &info.SavedAt, &info.YogaCount); err != nil {
			return nil, errors.NewStoreError("list", filter.Name, "scan failed", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("list", filter.Name, "iteration failed", err)
	}
	return infos, nil
}

// Delete removes a snapshot by id.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return errors.NewStoreError("delete", fmt.Sprintf("#%d", id), "delete failed", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.NewStoreError("delete", fmt.Sprintf("#%d", id), "failed to read affected rows", err)
	}
	if affected == 0 {
		return errors.NewStoreError("delete", fmt.Sprintf("#%d", id), "no snapshot with that id", errors.ErrChartNotFound)
	}
	return nil
}

// scanSnapshot decodes one full snapshot row.
func scanSnapshot(row *sql.Row) (*models.Snapshot, error) {
	var snap models.Snapshot
	var chartJSON string
	var yogasJSON sql.NullString

	if err := row.Scan(&snap.ID, &snap.Name, &snap.SavedAt, &chartJSON, &yogasJSON); err != nil {
		return nil, err
	}

	var chart models.Chart
	if err := json.Unmarshal([]byte(chartJSON), &chart); err != nil {
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}
	snap.Chart = &chart

	if yogasJSON.Valid && yogasJSON.String != "" {
		var yogas models.YogaReport
		if err := json.Unmarshal([]byte(yogasJSON.String), &yogas); err != nil {
			return nil, fmt.Errorf("failed to decode yogas: %w", err)
		}
		snap.Yogas = &yogas
	}

	return &snap, nil
}

// nullableString maps an empty payload to SQL NULL.
func nullableString(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
