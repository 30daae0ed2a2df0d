// Package integration exercises the full pipeline from birth input to
// persisted snapshot.
package integration

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"vedic-astro/internal/chart"
	"vedic-astro/internal/ephemeris"
	"vedic-astro/internal/models"
	"vedic-astro/internal/store"
	"vedic-astro/internal/varga"
	"vedic-astro/internal/yoga"
)

func computeTestChart(t *testing.T) *models.Chart {
	t.Helper()

	assembler := chart.NewAssembler(ephemeris.NewAnalyticProvider())
	c, err := assembler.Compute(context.Background(), chart.Input{
		Name:      "Integration Subject",
		BirthTime: time.Date(1990, 6, 15, 10, 30, 0, 0, time.UTC),
		Latitude:  28.6139,
		Longitude: 77.2090,
	})
	if err != nil {
		t.Fatalf("compute chart: %v", err)
	}
	return c
}

func TestFullPipeline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := computeTestChart(t)

	// Chart stage: ten bodies, nodes in exact opposition, twelve
	// whole-sign houses starting at the ascendant sign.
	if len(c.Positions) != 10 {
		t.Fatalf("positions = %d, want 10", len(c.Positions))
	}
	rahu := c.Positions[models.Rahu]
	ketu := c.Positions[models.Ketu]
	opposition := math.Mod(rahu.Longitude+180, 360)
	if math.Abs(opposition-ketu.Longitude) > 1e-9 {
		t.Errorf("Ketu = %.6f, want %.6f", ketu.Longitude, opposition)
	}
	if len(c.Houses) != 12 {
		t.Fatalf("houses = %d, want 12", len(c.Houses))
	}
	asc := c.Positions[models.Ascendant]
	if c.Houses[0].SignNum != asc.SignNum {
		t.Errorf("first house sign %d, want ascendant sign %d", c.Houses[0].SignNum, asc.SignNum)
	}
	for _, pos := range c.Positions {
		if pos.Nakshatra == nil {
			t.Fatal("position missing nakshatra placement")
		}
	}

	// Dasha stage: nine contiguous periods spanning 120 nominal years,
	// with the birth instant inside the first period.
	if len(c.Dasha.Periods) != 9 {
		t.Fatalf("dasha periods = %d, want 9", len(c.Dasha.Periods))
	}
	totalYears := 0
	for i, p := range c.Dasha.Periods {
		totalYears += p.Years
		if i > 0 && !p.Start.Equal(c.Dasha.Periods[i-1].End) {
			t.Errorf("period %d start %v does not meet previous end %v", i, p.Start, c.Dasha.Periods[i-1].End)
		}
	}
	if totalYears != 120 {
		t.Errorf("total dasha years = %d, want 120", totalYears)
	}
	if !c.Dasha.Periods[0].Contains(c.BirthTime) {
		t.Error("birth time not inside first dasha period")
	}

	// Divisional stage: every supported varga maps every chart body.
	vargas, err := varga.ComputeCharts(c.Positions, varga.SupportedTypes())
	if err != nil {
		t.Fatalf("compute vargas: %v", err)
	}
	for _, vc := range vargas {
		if len(vc.Positions) != len(c.Positions) {
			t.Errorf("%s positions = %d, want %d", vc.Type, len(vc.Positions), len(c.Positions))
		}
	}

	// Yoga stage: the report partitions cleanly whatever it finds.
	report := yoga.NewDetector().Detect(c)
	counted := 0
	for _, group := range report.ByCategory {
		counted += len(group)
	}
	if counted != report.Total || report.Total != len(report.Yogas) {
		t.Errorf("report buckets %d / total %d / yogas %d disagree", counted, report.Total, len(report.Yogas))
	}

	// Persistence stage: snapshot round-trips through SQLite.
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "charts.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	id, err := st.Save(ctx, &models.Snapshot{Name: c.Name, Chart: c, Yogas: report})
	if err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	loaded, err := st.Load(ctx, c.Name)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if loaded.ID != id {
		t.Errorf("loaded ID = %d, want %d", loaded.ID, id)
	}
	if !loaded.Chart.BirthTime.Equal(c.BirthTime) {
		t.Errorf("birth time = %v, want %v", loaded.Chart.BirthTime, c.BirthTime)
	}
	for planet, pos := range c.Positions {
		got, ok := loaded.Chart.Position(planet)
		if !ok {
			t.Fatalf("loaded chart missing %s", planet)
		}
		if math.Abs(got.Longitude-pos.Longitude) > 1e-9 {
			t.Errorf("%s longitude = %.9f, want %.9f", planet, got.Longitude, pos.Longitude)
		}
	}
	if loaded.Yogas == nil || loaded.Yogas.Total != report.Total {
		t.Error("yoga report did not survive the round trip")
	}
}

func TestPipelineIsDeterministic(t *testing.T) {
	first := computeTestChart(t)
	second := computeTestChart(t)

	for planet, pos := range first.Positions {
		other := second.Positions[planet]
		if pos.Longitude != other.Longitude {
			t.Errorf("%s longitude differs between runs: %.9f vs %.9f", planet, pos.Longitude, other.Longitude)
		}
	}
	if first.Ayanamsa != second.Ayanamsa {
		t.Errorf("ayanamsa differs between runs: %f vs %f", first.Ayanamsa, second.Ayanamsa)
	}
}
