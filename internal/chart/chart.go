// Package chart assembles complete sidereal birth charts from an ephemeris
// provider and the zodiac primitives.
package chart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vedic-astro/internal/dasha"
	"vedic-astro/internal/ephemeris"
	"vedic-astro/internal/errors"
	"vedic-astro/internal/logging"
	"vedic-astro/internal/models"
	"vedic-astro/internal/zodiac"
)

// observedBodies are the bodies requested from the provider. Ketu and the
// Ascendant are derived, never observed.
var observedBodies = []models.Planet{
	models.Sun, models.Moon, models.Mars, models.Mercury,
	models.Jupiter, models.Venus, models.Saturn, models.Rahu,
}

// Input holds the birth data a chart is computed from.
type Input struct {
	Name      string
	BirthTime time.Time
	Latitude  float64
	Longitude float64
}

// Validate checks the coordinate ranges and timestamp.
func (in Input) Validate() error {
	if in.BirthTime.IsZero() {
		return errors.NewValidationError("birth_time", in.BirthTime, "birth time is required")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return errors.NewValidationError("latitude", in.Latitude, "must be between -90 and 90")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return errors.NewValidationError("longitude", in.Longitude, "must be between -180 and 180")
	}
	return nil
}

// Assembler computes charts against a position provider.
type Assembler struct {
	provider ephemeris.Provider
	now      func() time.Time
}

// NewAssembler creates a chart assembler.
func NewAssembler(provider ephemeris.Provider) *Assembler {
	return &Assembler{
		provider: provider,
		now:      time.Now,
	}
}

// Compute assembles the full chart for a birth input: sidereal positions
// and nakshatras for all ten bodies, whole-sign houses, and the Vimshottari
// schedule. Any provider failure aborts the whole chart; there are no
// partial charts.
func (a *Assembler) Compute(ctx context.Context, input Input) (*models.Chart, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := logging.WithChart(logging.FromContext(ctx), input.Name)

	jd := a.provider.JulianDay(input.BirthTime)
	ayanamsa := a.provider.Ayanamsa(jd)

	positions := make(map[models.Planet]models.CelestialPosition, len(observedBodies)+2)
	for _, body := range observedBodies {
		lon, err := a.provider.BodyLongitude(jd, body, true)
		if err != nil {
			return nil, errors.NewChartError("positions", err)
		}
		positions[body] = placement(lon)
		bodyLogger := logging.WithBody(logger, string(body))
		bodyLogger.Debug().Float64("longitude", lon).Msg("Body placed")
	}

	// Ketu sits exactly opposite Rahu on the ecliptic.
	ketuLon := zodiac.Wrap360(positions[models.Rahu].Longitude + 180.0)
	positions[models.Ketu] = placement(ketuLon)

	tropicalAsc, err := a.provider.Ascendant(jd, input.Latitude, input.Longitude)
	if err != nil {
		return nil, errors.NewChartError("ascendant", err)
	}
	ascLon := zodiac.Wrap360(tropicalAsc - ayanamsa)
	ascendant := placement(ascLon)
	positions[models.Ascendant] = ascendant

	houses := Houses(ascendant.SignNum - 1)

	moonLord := positions[models.Moon].Nakshatra.Lord
	schedule := dasha.Generate(input.BirthTime, moonLord, a.now())

	chart := &models.Chart{
		Name:      input.Name,
		BirthTime: input.BirthTime,
		Location:  models.Location{Latitude: input.Latitude, Longitude: input.Longitude},
		Ayanamsa:  ayanamsa,
		Positions: positions,
		Houses:    houses,
		Dasha:     schedule,
	}

	logging.LogChartComputed(logger, input.Name, ascendant.Sign, ayanamsa)
	return chart, nil
}

// placement normalizes a longitude and resolves its nakshatra.
func placement(longitude float64) models.CelestialPosition {
	pos := zodiac.Normalize(longitude)
	nk := zodiac.ResolveNakshatra(longitude)
	pos.Nakshatra = &nk
	return pos
}

// Houses derives the 12 whole-sign houses from a 0-based ascendant sign
// index. House n's sign is the ascendant sign advanced by n-1, mod 12.
func Houses(ascSignIdx int) []models.House {
	houses := make([]models.House, 12)
	for i := 0; i < 12; i++ {
		signIdx := (ascSignIdx + i) % 12
		houses[i] = models.House{
			Number:  i + 1,
			Sign:    zodiac.SignName(signIdx),
			SignNum: signIdx + 1,
		}
	}
	return houses
}

// Summary renders a plain-text overview of positions and the current dasha.
func Summary(c *models.Chart) string {
	var b strings.Builder

	b.WriteString("=== VEDIC BIRTH CHART ===\n\n")
	if c.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", c.Name)
	}
	fmt.Fprintf(&b, "Birth Date: %s\n", c.BirthTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Ayanamsa: %.2f°\n\n", c.Ayanamsa)

	if asc, ok := c.Positions[models.Ascendant]; ok {
		b.WriteString("ASCENDANT (Lagna):\n")
		fmt.Fprintf(&b, "  %s %s - %s (Pada %d)\n\n",
			asc.Sign, asc.DegreeFormatted, asc.Nakshatra.Name, asc.Nakshatra.Pada)
	}

	b.WriteString("PLANETARY POSITIONS:\n")
	for _, planet := range models.Grahas {
		p, ok := c.Positions[planet]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-8s - %-12s %-8s - %s (Pada %d)\n",
			planet, p.Sign, p.DegreeFormatted, p.Nakshatra.Name, p.Nakshatra.Pada)
	}

	if c.Dasha.Current != nil {
		cur := c.Dasha.Current
		fmt.Fprintf(&b, "\nCURRENT MAHADASHA: %s (%s to %s)\n",
			cur.Lord, cur.Start.Format("2006-01-02"), cur.End.Format("2006-01-02"))
	}

	return b.String()
}
