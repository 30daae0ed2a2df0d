// Package zodiac provides the sidereal zodiac primitives: sign and nakshatra
// tables, longitude normalization, and nakshatra resolution.
//
// All longitudes passed into this package must already be reduced to
// [0,360); callers own that precondition.
package zodiac

import (
	"fmt"
	"math"

	"vedic-astro/internal/models"
)

// Signs lists the 12 zodiac signs in order, index 0 = Aries.
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Nakshatras lists the 27 lunar mansions in order, index 0 = Ashwini.
var Nakshatras = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// VimshottariLords is the canonical 9-lord cycle. It orders both the
// nakshatra rulerships (index mod 9) and the dasha rotation, so it is the
// single shared constant for the two.
var VimshottariLords = [9]models.Planet{
	models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
	models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
}

// NakshatraLength is the arc of one lunar mansion in degrees.
const NakshatraLength = 360.0 / 27.0

// SignIndex returns the 0-based sign index for a longitude in [0,360).
func SignIndex(longitude float64) int {
	return int(longitude / 30.0)
}

// SignName returns the name for a 0-based sign index, wrapping mod 12.
func SignName(index int) string {
	return Signs[((index%12)+12)%12]
}

// FormatDegree renders a degree-in-sign value as a d°m' string.
func FormatDegree(degree float64) string {
	d := int(degree)
	m := int((degree - math.Trunc(degree)) * 60)
	return fmt.Sprintf("%d°%d'", d, m)
}

// Normalize converts a longitude in [0,360) into its sign placement.
// The nakshatra field is left unset; ResolveNakshatra fills it when needed.
func Normalize(longitude float64) models.CelestialPosition {
	signNum := SignIndex(longitude)
	degree := math.Mod(longitude, 30.0)
	return models.CelestialPosition{
		Longitude:       longitude,
		Sign:            Signs[signNum],
		SignNum:         signNum + 1,
		Degree:          degree,
		DegreeFormatted: FormatDegree(degree),
	}
}

// ResolveNakshatra maps a longitude in [0,360) to its lunar mansion,
// quarter and ruling planet.
func ResolveNakshatra(longitude float64) models.NakshatraPlacement {
	idx := int(longitude / NakshatraLength)
	pada := int(math.Mod(longitude, NakshatraLength)/(NakshatraLength/4)) + 1
	return models.NakshatraPlacement{
		Name:   Nakshatras[idx],
		Number: idx + 1,
		Pada:   pada,
		Lord:   VimshottariLords[idx%9],
	}
}

// Wrap360 reduces any angle to [0,360). Helper for callers assembling
// longitudes from raw arithmetic (e.g. tropical minus ayanamsa).
func Wrap360(angle float64) float64 {
	a := math.Mod(angle, 360.0)
	if a < 0 {
		a += 360.0
	}
	return a
}
