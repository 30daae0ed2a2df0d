// Package yoga detects classical planetary combinations in a birth chart.
// Each rule is an independent predicate over the chart: it contributes zero
// or more findings and never fails the detection pass, even when a planet
// it needs is absent from the chart.
package yoga

import (
	"fmt"
	"math"
	"strings"

	"vedic-astro/internal/models"
)

// Detector evaluates all combination rules over a chart.
type Detector struct {
	orb float64 // default conjunction orb, degrees
}

// NewDetector creates a yoga detector with the default orb.
func NewDetector() *Detector {
	return &Detector{orb: defaultOrb}
}

// Detect runs every rule and buckets the findings by category. An empty
// report (total = 0) is a valid result.
func (d *Detector) Detect(chart *models.Chart) *models.YogaReport {
	var all []models.Yoga

	all = append(all, d.detectRajaYoga(chart)...)
	all = append(all, d.detectDhanaYoga(chart)...)
	all = append(all, d.detectGajaKesariYoga(chart)...)
	all = append(all, d.detectMahapurushaYogas(chart)...)
	all = append(all, d.detectNeechaBhangaYoga(chart)...)
	all = append(all, d.detectBudhadityaYoga(chart)...)
	all = append(all, d.detectChandraMangalaYoga(chart)...)

	byCategory := map[string][]models.Yoga{
		"prosperity":   {},
		"wealth":       {},
		"intelligence": {},
		"mahapurusha":  {},
		"cancellation": {},
		"other":        {},
	}
	for _, y := range all {
		key := strings.ToLower(string(y.Type))
		if _, ok := byCategory[key]; !ok {
			key = "other"
		}
		byCategory[key] = append(byCategory[key], y)
	}

	return &models.YogaReport{
		Total:      len(all),
		Yogas:      all,
		ByCategory: byCategory,
	}
}

// planetHouse returns the whole-sign house a placement occupies. With 12
// houses covering all 12 signs exactly one house matches; house 1 is the
// fallback for a malformed house list.
func planetHouse(pos models.CelestialPosition, houses []models.House) int {
	for _, h := range houses {
		if h.SignNum == pos.SignNum {
			return h.Number
		}
	}
	return 1
}

// houseLord returns the planet whose own-sign set contains the house's
// sign. Rahu and Ketu own no sign and never lord a house.
func houseLord(houseNum int, houses []models.House) (models.Planet, bool) {
	var sign string
	for _, h := range houses {
		if h.Number == houseNum {
			sign = h.Sign
			break
		}
	}
	if sign == "" {
		return "", false
	}
	return signLord(sign)
}

// signLord returns the owner of a sign.
func signLord(sign string) (models.Planet, bool) {
	for planet, signs := range ownSigns {
		for _, s := range signs {
			if s == sign {
				return planet, true
			}
		}
	}
	return "", false
}

// inConjunction reports whether two placements sit within orb of each other
// along the circular zodiac.
func inConjunction(a, b models.CelestialPosition, orb float64) bool {
	return angularDistance(a.Longitude, b.Longitude) <= orb
}

// angularDistance is the circular separation of two longitudes, in [0,180].
func angularDistance(lon1, lon2 float64) float64 {
	d := math.Abs(lon1 - lon2)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func isExalted(planet models.Planet, sign string) bool {
	return exaltation[planet] == sign
}

func isDebilitated(planet models.Planet, sign string) bool {
	return debilitation[planet] == sign
}

func isOwnSign(planet models.Planet, sign string) bool {
	for _, s := range ownSigns[planet] {
		if s == sign {
			return true
		}
	}
	return false
}

func inKendra(house int) bool   { return containsInt(kendraHouses, house) }
func inTrikona(house int) bool  { return containsInt(trikonaHouses, house) }
func inDusthana(house int) bool { return containsInt(dusthanaHouses, house) }

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// detectRajaYoga finds conjunctions between Kendra lords and Trikona lords.
// The luminaries are excluded as lords for this rule.
func (d *Detector) detectRajaYoga(chart *models.Chart) []models.Yoga {
	var yogas []models.Yoga

	type lordship struct {
		lord  models.Planet
		house int
	}

	var kendraLords, trikonaLords []lordship
	for _, houseNum := range kendraHouses {
		if lord, ok := houseLord(houseNum, chart.Houses); ok && lord != models.Sun && lord != models.Moon {
			kendraLords = append(kendraLords, lordship{lord, houseNum})
		}
	}
	for _, houseNum := range trikonaHouses {
		if lord, ok := houseLord(houseNum, chart.Houses); ok && lord != models.Sun && lord != models.Moon {
			trikonaLords = append(trikonaLords, lordship{lord, houseNum})
		}
	}

	for _, k := range kendraLords {
		for _, t := range trikonaLords {
			if k.lord == t.lord {
				continue
			}
			kPos, kOK := chart.Position(k.lord)
			tPos, tOK := chart.Position(t.lord)
			if !kOK || !tOK {
				continue
			}
			if inConjunction(kPos, tPos, d.orb) {
				yogas = append(yogas, models.Yoga{
					Name: "Raja Yoga",
					Type: models.YogaProsperity,
					Description: fmt.Sprintf("Lord of %dth house (%s) conjunct with lord of %dth house (%s)",
						k.house, k.lord, t.house, t.lord),
					Planets:  []models.Planet{k.lord, t.lord},
					Strength: "Strong",
					Effects:  "Power, authority, success, prosperity, recognition",
				})
			}
		}
	}

	return yogas
}

// detectDhanaYoga finds conjunctions among the lords of the wealth houses
// (2nd, 5th, 9th, 11th).
func (d *Detector) detectDhanaYoga(chart *models.Chart) []models.Yoga {
	var yogas []models.Yoga

	wealthHouses := []int{2, 5, 9, 11}

	type lordship struct {
		lord  models.Planet
		house int
	}
	var lords []lordship
	for _, houseNum := range wealthHouses {
		if lord, ok := houseLord(houseNum, chart.Houses); ok {
			lords = append(lords, lordship{lord, houseNum})
		}
	}

	for i := 0; i < len(lords); i++ {
		for j := i + 1; j < len(lords); j++ {
			a, b := lords[i], lords[j]
			if a.lord == b.lord {
				continue
			}
			aPos, aOK := chart.Position(a.lord)
			bPos, bOK := chart.Position(b.lord)
			if !aOK || !bOK {
				continue
			}
			if inConjunction(aPos, bPos, d.orb) {
				yogas = append(yogas, models.Yoga{
					Name: "Dhana Yoga",
					Type: models.YogaWealth,
					Description: fmt.Sprintf("Lord of %dth house (%s) conjunct with lord of %dth house (%s)",
						a.house, a.lord, b.house, b.lord),
					Planets:  []models.Planet{a.lord, b.lord},
					Strength: "Moderate",
					Effects:  "Wealth accumulation, financial prosperity, material success",
				})
			}
		}
	}

	return yogas
}

// detectGajaKesariYoga checks Jupiter's whole-sign house distance from the
// Moon. A zero distance normalizes to 12 and does not qualify.
func (d *Detector) detectGajaKesariYoga(chart *models.Chart) []models.Yoga {
	moonPos, moonOK := chart.Position(models.Moon)
	jupPos, jupOK := chart.Position(models.Jupiter)
	if !moonOK || !jupOK {
		return nil
	}

	moonHouse := planetHouse(moonPos, chart.Houses)
	jupHouse := planetHouse(jupPos, chart.Houses)

	houseDiff := (jupHouse - moonHouse) % 12
	if houseDiff < 0 {
		houseDiff += 12
	}
	if houseDiff == 0 {
		houseDiff = 12
	}

	if !containsInt(kendraHouses, houseDiff) {
		return nil
	}

	return []models.Yoga{{
		Name:        "Gaja Kesari Yoga",
		Type:        models.YogaProsperity,
		Description: fmt.Sprintf("Jupiter in %dth house from Moon (Kendra position)", houseDiff),
		Planets:     []models.Planet{models.Jupiter, models.Moon},
		Strength:    "Very Strong",
		Effects:     "Wisdom, wealth, good character, respect, leadership qualities, longevity",
	}}
}

// detectMahapurushaYogas checks the five great-person yogas: Mars, Mercury,
// Jupiter, Venus or Saturn in own or exaltation sign while in a Kendra.
func (d *Detector) detectMahapurushaYogas(chart *models.Chart) []models.Yoga {
	var yogas []models.Yoga

	// Fixed evaluation order keeps findings reproducible.
	for _, planet := range []models.Planet{models.Mars, models.Mercury, models.Jupiter, models.Venus, models.Saturn} {
		pos, ok := chart.Position(planet)
		if !ok {
			continue
		}

		house := planetHouse(pos, chart.Houses)
		if !inKendra(house) {
			continue
		}
		if !isOwnSign(planet, pos.Sign) && !isExalted(planet, pos.Sign) {
			continue
		}

		info := mahapurusha[planet]
		yogas = append(yogas, models.Yoga{
			Name: info.name,
			Type: models.YogaMahapurusha,
			Description: fmt.Sprintf("%s in %s (own/exaltation) in %dth house (Kendra)",
				planet, pos.Sign, house),
			Planets:  []models.Planet{planet},
			Strength: "Very Strong",
			Effects:  info.qualities,
		})
	}

	return yogas
}

// detectNeechaBhangaYoga finds debilitated planets whose debilitation is
// cancelled by the debilitation sign's lord sitting in a Kendra.
func (d *Detector) detectNeechaBhangaYoga(chart *models.Chart) []models.Yoga {
	var yogas []models.Yoga

	for _, planet := range models.Grahas {
		if planet == models.Rahu || planet == models.Ketu {
			continue
		}
		pos, ok := chart.Position(planet)
		if !ok {
			continue
		}
		if !isDebilitated(planet, pos.Sign) {
			continue
		}

		lord, ok := signLord(pos.Sign)
		if !ok {
			continue
		}
		lordPos, ok := chart.Position(lord)
		if !ok {
			continue
		}

		if inKendra(planetHouse(lordPos, chart.Houses)) {
			yogas = append(yogas, models.Yoga{
				Name: "Neecha Bhanga Raja Yoga",
				Type: models.YogaCancellation,
				Description: fmt.Sprintf("%s debilitated in %s, but cancelled by %s in Kendra",
					planet, pos.Sign, lord),
				Planets:  []models.Planet{planet, lord},
				Strength: "Strong",
				Effects:  "Transformation of weakness into strength, unexpected rise, overcoming obstacles",
			})
		}
	}

	return yogas
}

// detectBudhadityaYoga checks the Sun-Mercury conjunction with its widened
// orb, downgrading the finding when Mercury is combust.
func (d *Detector) detectBudhadityaYoga(chart *models.Chart) []models.Yoga {
	sunPos, sunOK := chart.Position(models.Sun)
	merPos, merOK := chart.Position(models.Mercury)
	if !sunOK || !merOK {
		return nil
	}
	if !inConjunction(sunPos, merPos, sunMercuryOrb) {
		return nil
	}

	strength := "Moderate"
	effects := "Intelligence, learning, communication skills"
	if angularDistance(sunPos.Longitude, merPos.Longitude) < combustionArc {
		strength = "Weak (Combust)"
		effects += ", but Mercury is combust (weakened)"
	}

	return []models.Yoga{{
		Name:        "Budhaditya Yoga",
		Type:        models.YogaIntelligence,
		Description: fmt.Sprintf("Sun and Mercury conjunction in %s", sunPos.Sign),
		Planets:     []models.Planet{models.Sun, models.Mercury},
		Strength:    strength,
		Effects:     effects,
	}}
}

// detectChandraMangalaYoga checks the Moon-Mars conjunction.
func (d *Detector) detectChandraMangalaYoga(chart *models.Chart) []models.Yoga {
	moonPos, moonOK := chart.Position(models.Moon)
	marsPos, marsOK := chart.Position(models.Mars)
	if !moonOK || !marsOK {
		return nil
	}
	if !inConjunction(moonPos, marsPos, d.orb) {
		return nil
	}

	return []models.Yoga{{
		Name:        "Chandra Mangala Yoga",
		Type:        models.YogaWealth,
		Description: fmt.Sprintf("Moon and Mars conjunction in %s", moonPos.Sign),
		Planets:     []models.Planet{models.Moon, models.Mars},
		Strength:    "Moderate",
		Effects:     "Wealth through property, mother, courage with emotions",
	}}
}
