// Package store provides persistence for computed chart snapshots.
package store

import (
	"context"
	"time"

	"vedic-astro/internal/models"
)

// SnapshotStore defines the interface for snapshot persistence. A snapshot
// is a fully computed chart plus its yoga report; loading one never triggers
// recomputation.
type SnapshotStore interface {
	// Save persists a snapshot and returns its assigned id.
	Save(ctx context.Context, snap *models.Snapshot) (int64, error)

	// Load returns the most recent snapshot saved under the given name.
	Load(ctx context.Context, name string) (*models.Snapshot, error)

	// LoadByID returns one specific snapshot.
	LoadByID(ctx context.Context, id int64) (*models.Snapshot, error)

	// List returns snapshot headers matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]SnapshotInfo, error)

	// Delete removes a snapshot by id.
	Delete(ctx context.Context, id int64) error

	// Lifecycle
	Close() error
}

// ListFilter represents filters for listing snapshots.
type ListFilter struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}

// SnapshotInfo is a snapshot header: enough to identify a saved reading
// without deserializing the chart payload.
type SnapshotInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BirthTime time.Time `json:"birth_datetime"`
	SavedAt   time.Time `json:"saved_at"`
	YogaCount int       `json:"yoga_count"`
}
