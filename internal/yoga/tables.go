package yoga

import (
	"vedic-astro/internal/models"
)

// Dignity tables. Exaltation and debilitation include the lunar nodes;
// sign ownership does not, because Rahu and Ketu rule no sign.

var exaltation = map[models.Planet]string{
	models.Sun:     "Aries",
	models.Moon:    "Taurus",
	models.Mars:    "Capricorn",
	models.Mercury: "Virgo",
	models.Jupiter: "Cancer",
	models.Venus:   "Pisces",
	models.Saturn:  "Libra",
	models.Rahu:    "Taurus",
	models.Ketu:    "Scorpio",
}

var debilitation = map[models.Planet]string{
	models.Sun:     "Libra",
	models.Moon:    "Scorpio",
	models.Mars:    "Cancer",
	models.Mercury: "Pisces",
	models.Jupiter: "Capricorn",
	models.Venus:   "Virgo",
	models.Saturn:  "Aries",
	models.Rahu:    "Scorpio",
	models.Ketu:    "Taurus",
}

var ownSigns = map[models.Planet][]string{
	models.Sun:     {"Leo"},
	models.Moon:    {"Cancer"},
	models.Mars:    {"Aries", "Scorpio"},
	models.Mercury: {"Gemini", "Virgo"},
	models.Jupiter: {"Sagittarius", "Pisces"},
	models.Venus:   {"Taurus", "Libra"},
	models.Saturn:  {"Capricorn", "Aquarius"},
}

// House classes used as membership tests by the rules.

var kendraHouses = []int{1, 4, 7, 10}

var trikonaHouses = []int{1, 5, 9}

var dusthanaHouses = []int{6, 8, 12}

// Conjunction orbs in degrees.
const (
	defaultOrb    = 10.0
	sunMercuryOrb = 15.0
	combustionArc = 3.0
)

// mahapurusha maps each of the five qualifying planets to its yoga.
var mahapurusha = map[models.Planet]struct {
	name      string
	qualities string
}{
	models.Mars:    {"Ruchaka Yoga", "Courage, leadership, physical strength"},
	models.Mercury: {"Bhadra Yoga", "Intelligence, eloquence, learning"},
	models.Jupiter: {"Hamsa Yoga", "Wisdom, righteousness, spirituality"},
	models.Venus:   {"Malavya Yoga", "Beauty, luxury, artistic talents"},
	models.Saturn:  {"Sasa Yoga", "Authority, discipline, longevity"},
}
