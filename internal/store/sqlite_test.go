package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"vedic-astro/internal/errors"
	"vedic-astro/internal/models"
	"vedic-astro/internal/zodiac"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSnapshot(name string, savedAt time.Time) *models.Snapshot {
	positions := map[models.Planet]models.CelestialPosition{
		models.Sun:  zodiac.Normalize(130.25),
		models.Moon: zodiac.Normalize(95.5),
	}
	moon := positions[models.Moon]
	nak := zodiac.ResolveNakshatra(moon.Longitude)
	moon.Nakshatra = &nak
	positions[models.Moon] = moon

	houses := make([]models.House, 12)
	for i := 0; i < 12; i++ {
		houses[i] = models.House{Number: i + 1, Sign: zodiac.Signs[i], SignNum: i + 1}
	}

	return &models.Snapshot{
		Name:    name,
		SavedAt: savedAt,
		Chart: &models.Chart{
			Name:      name,
			BirthTime: time.Date(1990, 6, 15, 10, 30, 0, 0, time.UTC),
			Location:  models.Location{Latitude: 28.6139, Longitude: 77.209},
			Ayanamsa:  23.85,
			Positions: positions,
			Houses:    houses,
		},
		Yogas: &models.YogaReport{
			Total: 1,
			Yogas: []models.Yoga{{
				Name:    "Gaja Kesari Yoga",
				Type:    models.YogaProsperity,
				Planets: []models.Planet{models.Jupiter, models.Moon},
			}},
			ByCategory: map[string][]models.Yoga{},
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	snap := testSnapshot("Asha", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	id, err := s.Save(ctx, snap)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("id = %d, want positive", id)
	}
	if snap.ID != id {
		t.Errorf("snapshot id not backfilled: %d != %d", snap.ID, id)
	}

	loaded, err := s.Load(ctx, "Asha")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Name != "Asha" {
		t.Errorf("name = %q, want Asha", loaded.Name)
	}
	if !loaded.Chart.BirthTime.Equal(snap.Chart.BirthTime) {
		t.Errorf("birth time = %v, want %v", loaded.Chart.BirthTime, snap.Chart.BirthTime)
	}
	moon, ok := loaded.Chart.Position(models.Moon)
	if !ok {
		t.Fatal("loaded chart missing Moon")
	}
	if moon.Longitude != 95.5 {
		t.Errorf("Moon longitude = %v, want 95.5", moon.Longitude)
	}
	if moon.Nakshatra == nil || moon.Nakshatra.Name != "Pushya" {
		t.Errorf("Moon nakshatra = %+v, want Pushya", moon.Nakshatra)
	}
	if loaded.Yogas == nil || loaded.Yogas.Total != 1 {
		t.Errorf("yogas = %+v, want total 1", loaded.Yogas)
	}
}

func TestLoadReturnsLatest(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		snap := testSnapshot("Asha", base.Add(time.Duration(i)*time.Hour))
		if _, err := s.Save(ctx, snap); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	loaded, err := s.Load(ctx, "Asha")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := base.Add(2 * time.Hour)
	if !loaded.SavedAt.Equal(want) {
		t.Errorf("saved_at = %v, want %v", loaded.SavedAt, want)
	}
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background(), "Nobody")
	if !errors.Is(err, errors.ErrChartNotFound) {
		t.Errorf("err = %v, want ErrChartNotFound", err)
	}

	var storeErr *errors.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("err = %T, want *StoreError", err)
	}
	if storeErr.Op != "load" {
		t.Errorf("op = %q, want load", storeErr.Op)
	}
}

func TestSaveWithoutChart(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(context.Background(), &models.Snapshot{Name: "Asha"})
	if !errors.Is(err, errors.ErrNoChart) {
		t.Errorf("err = %v, want ErrNoChart", err)
	}
}

func TestListFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	names := []string{"Asha", "Asha", "Ravi"}
	for i, name := range names {
		snap := testSnapshot(name, base.Add(time.Duration(i)*time.Hour))
		if _, err := s.Save(ctx, snap); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	all, err := s.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(all))
	}
	if all[0].Name != "Ravi" {
		t.Errorf("newest = %q, want Ravi", all[0].Name)
	}
	if all[0].YogaCount != 1 {
		t.Errorf("yoga count = %d, want 1", all[0].YogaCount)
	}

	byName, err := s.List(ctx, ListFilter{Name: "Asha"})
	if err != nil {
		t.Fatalf("list by name failed: %v", err)
	}
	if len(byName) != 2 {
		t.Errorf("got %d Asha snapshots, want 2", len(byName))
	}

	limited, err := s.List(ctx, ListFilter{Limit: 1})
	if err != nil {
		t.Fatalf("list with limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d snapshots, want 1", len(limited))
	}

	ranged, err := s.List(ctx, ListFilter{StartDate: base.Add(90 * time.Minute)})
	if err != nil {
		t.Fatalf("list with range failed: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Name != "Ravi" {
		t.Errorf("ranged = %+v, want one Ravi entry", ranged)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	snap := testSnapshot("Asha", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))
	id, err := s.Save(ctx, snap)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.LoadByID(ctx, id); !errors.Is(err, errors.ErrChartNotFound) {
		t.Errorf("load after delete = %v, want ErrChartNotFound", err)
	}
	if err := s.Delete(ctx, id); !errors.Is(err, errors.ErrChartNotFound) {
		t.Errorf("second delete = %v, want ErrChartNotFound", err)
	}
}
