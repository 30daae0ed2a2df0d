// Package dasha generates Vimshottari planetary period schedules.
package dasha

import (
	"time"

	"vedic-astro/internal/models"
	"vedic-astro/internal/zodiac"
)

// System is the name of the period system produced by this package.
const System = "Vimshottari"

// TotalYears is the length of the full cycle.
const TotalYears = 120

// Years holds the fixed major-period length for each lord. The nine values
// sum to exactly 120.
var Years = map[models.Planet]int{
	models.Ketu:    7,
	models.Venus:   20,
	models.Sun:     6,
	models.Moon:    10,
	models.Mars:    7,
	models.Rahu:    18,
	models.Jupiter: 16,
	models.Saturn:  19,
	models.Mercury: 17,
}

const daysPerYear = 365.25

// Generate builds the nine contiguous major periods for a birth instant.
// The rotation starts from the birth Moon's nakshatra lord and follows the
// canonical lord order shared with the nakshatra rulerships. The first
// period is allocated its full nominal duration: the traditional
// balance-of-dasha discount for the nakshatra fraction already elapsed at
// birth is intentionally not applied, and downstream dates depend on that.
//
// The current period is the one whose interval contains evalTime; when
// evalTime falls before birth or past the 120-year horizon, Current is nil.
func Generate(birth time.Time, startingLord models.Planet, evalTime time.Time) models.DashaSchedule {
	startIdx := 0
	for i, lord := range zodiac.VimshottariLords {
		if lord == startingLord {
			startIdx = i
			break
		}
	}

	periods := make([]models.DashaPeriod, 0, len(zodiac.VimshottariLords))
	cursor := birth
	for i := range zodiac.VimshottariLords {
		lord := zodiac.VimshottariLords[(startIdx+i)%len(zodiac.VimshottariLords)]
		years := Years[lord]
		end := cursor.Add(time.Duration(float64(years) * daysPerYear * 24 * float64(time.Hour)))

		periods = append(periods, models.DashaPeriod{
			Lord:  lord,
			Start: cursor,
			End:   end,
			Years: years,
		})
		cursor = end
	}

	return models.DashaSchedule{
		System:  System,
		Periods: periods,
		Current: CurrentAt(periods, evalTime),
	}
}

// CurrentAt returns the period containing t, or nil when t lies outside the
// cycle. An absent current period is a valid result, not an error.
func CurrentAt(periods []models.DashaPeriod, t time.Time) *models.DashaPeriod {
	for i := range periods {
		if periods[i].Contains(t) {
			p := periods[i]
			return &p
		}
	}
	return nil
}
