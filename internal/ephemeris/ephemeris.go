// Package ephemeris defines the celestial position source consumed by the
// chart assembler, plus an in-process analytic implementation.
package ephemeris

import (
	"time"

	"vedic-astro/internal/models"
)

// Provider supplies raw celestial positions. The chart engine treats every
// failure from a Provider as fatal for the whole chart: an approximate
// substitute position would corrupt every dependent sign, nakshatra, dasha
// and yoga result.
type Provider interface {
	// JulianDay converts a timestamp to a Julian Day number.
	JulianDay(t time.Time) float64

	// Ayanamsa returns the sidereal correction in degrees for a Julian Day.
	Ayanamsa(jd float64) float64

	// BodyLongitude returns the ecliptic longitude of a body in [0,360).
	// Ketu and the Ascendant are derived by the chart assembler and are not
	// valid bodies here.
	BodyLongitude(jd float64, body models.Planet, sidereal bool) (float64, error)

	// Ascendant returns the tropical ascendant angle in degrees for the
	// given Julian Day and geographic coordinates.
	Ascendant(jd, latitude, longitude float64) (float64, error)
}
