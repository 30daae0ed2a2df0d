package store

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"vedic-astro/internal/models"
	"vedic-astro/internal/zodiac"
)

// Property: for any valid chart, saving a snapshot and loading it back by
// name must reproduce every placement exactly. A placement that drifts
// through persistence would silently corrupt later yoga and dasha readings.
func TestProperty_SnapshotRoundTripConsistency(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "snapshots_property.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	seq := 0

	properties.Property("snapshot round-trip: save then load produces equivalent chart", prop.ForAll(
		func(lons []float64, ascIdx int, yogaCount int) bool {
			ctx := context.Background()
			seq++
			name := fmt.Sprintf("native_%d", seq)

			snap := generateTestSnapshot(name, lons, ascIdx, yogaCount)
			id, err := s.Save(ctx, snap)
			if err != nil {
				t.Logf("failed to save snapshot: %v", err)
				return false
			}

			loaded, err := s.Load(ctx, name)
			if err != nil {
				t.Logf("failed to load snapshot: %v", err)
				return false
			}

			if loaded.ID != id || loaded.Name != name {
				t.Logf("header mismatch: got id=%d name=%q", loaded.ID, loaded.Name)
				return false
			}
			if !loaded.Chart.BirthTime.Equal(snap.Chart.BirthTime) {
				t.Logf("birth time mismatch: %v != %v", loaded.Chart.BirthTime, snap.Chart.BirthTime)
				return false
			}
			if len(loaded.Chart.Positions) != len(snap.Chart.Positions) {
				t.Logf("position count mismatch: %d != %d", len(loaded.Chart.Positions), len(snap.Chart.Positions))
				return false
			}
			for planet, orig := range snap.Chart.Positions {
				got, ok := loaded.Chart.Position(planet)
				if !ok {
					t.Logf("missing %s after round trip", planet)
					return false
				}
				if math.Abs(got.Longitude-orig.Longitude) > 1e-9 || got.Sign != orig.Sign {
					t.Logf("%s placement mismatch: got=%+v want=%+v", planet, got, orig)
					return false
				}
			}
			if (loaded.Yogas == nil) != (snap.Yogas == nil) {
				t.Logf("yoga payload presence mismatch")
				return false
			}
			if loaded.Yogas != nil && loaded.Yogas.Total != snap.Yogas.Total {
				t.Logf("yoga total mismatch: %d != %d", loaded.Yogas.Total, snap.Yogas.Total)
				return false
			}
			return true
		},
		gen.SliceOfN(9, gen.Float64Range(0, 359.999)),
		gen.IntRange(0, 11),
		gen.IntRange(0, 3),
	))

	properties.Property("list headers agree with saved payloads", prop.ForAll(
		func(lons []float64, yogaCount int) bool {
			ctx := context.Background()
			seq++
			name := fmt.Sprintf("header_%d", seq)

			snap := generateTestSnapshot(name, lons, 0, yogaCount)
			if _, err := s.Save(ctx, snap); err != nil {
				t.Logf("failed to save snapshot: %v", err)
				return false
			}

			infos, err := s.List(ctx, ListFilter{Name: name})
			if err != nil {
				t.Logf("failed to list snapshots: %v", err)
				return false
			}
			if len(infos) != 1 {
				t.Logf("got %d headers, want 1", len(infos))
				return false
			}
			return infos[0].YogaCount == yogaCount && infos[0].BirthTime.Equal(snap.Chart.BirthTime)
		},
		gen.SliceOfN(9, gen.Float64Range(0, 359.999)),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}

// generateTestSnapshot builds a snapshot with the given planet longitudes
// and a synthetic yoga report of the requested size.
func generateTestSnapshot(name string, lons []float64, ascIdx int, yogaCount int) *models.Snapshot {
	positions := make(map[models.Planet]models.CelestialPosition, len(models.Grahas))
	for i, planet := range models.Grahas {
		pos := zodiac.Normalize(lons[i%len(lons)])
		nak := zodiac.ResolveNakshatra(pos.Longitude)
		pos.Nakshatra = &nak
		positions[planet] = pos
	}

	houses := make([]models.House, 12)
	for i := 0; i < 12; i++ {
		signIdx := (ascIdx + i) % 12
		houses[i] = models.House{Number: i + 1, Sign: zodiac.Signs[signIdx], SignNum: signIdx + 1}
	}

	var yogas *models.YogaReport
	if yogaCount > 0 {
		report := &models.YogaReport{ByCategory: map[string][]models.Yoga{}}
		for i := 0; i < yogaCount; i++ {
			report.Yogas = append(report.Yogas, models.Yoga{
				Name:    fmt.Sprintf("Test Yoga %d", i+1),
				Type:    models.YogaProsperity,
				Planets: []models.Planet{models.Jupiter},
			})
		}
		report.Total = len(report.Yogas)
		yogas = report
	}

	return &models.Snapshot{
		Name:    name,
		SavedAt: time.Now().UTC(),
		Chart: &models.Chart{
			Name:      name,
			BirthTime: time.Date(1985, 3, 21, 6, 45, 0, 0, time.UTC),
			Location:  models.Location{Latitude: 19.076, Longitude: 72.8777},
			Ayanamsa:  23.65,
			Positions: positions,
			Houses:    houses,
		},
		Yogas: yogas,
	}
}
