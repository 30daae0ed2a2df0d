// Package models provides domain models for the astrology application.
package models

import (
	"time"
)

// Planet identifies a chart body. The Ascendant is carried alongside the
// nine grahas because it receives the same sign/nakshatra treatment.
type Planet string

const (
	Sun       Planet = "Sun"
	Moon      Planet = "Moon"
	Mars      Planet = "Mars"
	Mercury   Planet = "Mercury"
	Jupiter   Planet = "Jupiter"
	Venus     Planet = "Venus"
	Saturn    Planet = "Saturn"
	Rahu      Planet = "Rahu"
	Ketu      Planet = "Ketu"
	Ascendant Planet = "Ascendant"
)

// Grahas lists the nine planets in traditional display order.
var Grahas = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// NakshatraPlacement locates a longitude within one of the 27 lunar mansions.
type NakshatraPlacement struct {
	Name   string `json:"nakshatra"`
	Number int    `json:"nakshatra_num"` // 1..27
	Pada   int    `json:"pada"`          // 1..4
	Lord   Planet `json:"lord"`
}

// CelestialPosition is a normalized zodiac placement. Immutable once computed.
type CelestialPosition struct {
	Longitude       float64             `json:"longitude"` // [0,360)
	Sign            string              `json:"sign"`
	SignNum         int                 `json:"sign_num"` // 1..12
	Degree          float64             `json:"degree"`   // [0,30)
	DegreeFormatted string              `json:"degree_formatted"`
	Nakshatra       *NakshatraPlacement `json:"nakshatra,omitempty"`
}

// House is a whole-sign house: the house IS its sign.
type House struct {
	Number  int    `json:"house"` // 1..12
	Sign    string `json:"sign"`
	SignNum int    `json:"sign_num"` // 1..12
}

// Location holds the birth coordinates in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DashaPeriod is one Vimshottari ruling period.
type DashaPeriod struct {
	Lord  Planet    `json:"lord"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Years int       `json:"years"`
}

// Contains reports whether t falls within the period.
func (p DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// DashaSchedule is the full 120-year Vimshottari cycle for a chart.
// Current is nil when the evaluation instant falls outside the cycle.
type DashaSchedule struct {
	System  string        `json:"system"`
	Periods []DashaPeriod `json:"periods"`
	Current *DashaPeriod  `json:"current_mahadasha,omitempty"`
}

// Chart is a complete sidereal birth chart. Immutable after assembly; the
// only way to change one is to recompute it from new birth input.
type Chart struct {
	Name      string                       `json:"name,omitempty"`
	BirthTime time.Time                    `json:"birth_datetime"`
	Location  Location                     `json:"location"`
	Ayanamsa  float64                      `json:"ayanamsa"`
	Positions map[Planet]CelestialPosition `json:"planets"`
	Houses    []House                      `json:"houses"`
	Dasha     DashaSchedule                `json:"dasha"`
}

// Position returns the placement of a body and whether it is present.
func (c *Chart) Position(p Planet) (CelestialPosition, bool) {
	pos, ok := c.Positions[p]
	return pos, ok
}

// YogaType categorizes a detected combination.
type YogaType string

const (
	YogaProsperity   YogaType = "Prosperity"
	YogaWealth       YogaType = "Wealth"
	YogaIntelligence YogaType = "Intelligence"
	YogaMahapurusha  YogaType = "Mahapurusha"
	YogaCancellation YogaType = "Cancellation"
)

// Yoga is a detected planetary combination. Yogas are derived facts,
// recomputed fresh from a chart and never stored on their own.
type Yoga struct {
	Name        string   `json:"name"`
	Type        YogaType `json:"type"`
	Description string   `json:"description"`
	Planets     []Planet `json:"planets"`
	Strength    string   `json:"strength"`
	Effects     string   `json:"effects"`
}

// YogaReport aggregates all findings for one chart.
type YogaReport struct {
	Total      int               `json:"total_yogas"`
	Yogas      []Yoga            `json:"all_yogas"`
	ByCategory map[string][]Yoga `json:"by_category"`
}

// DivisionalChart holds every planet remapped into one divisional zodiac.
type DivisionalChart struct {
	Type          string                       `json:"chart_type"`
	Name          string                       `json:"name"`
	Signification string                       `json:"signification"`
	Positions     map[Planet]CelestialPosition `json:"positions"`
}

// Snapshot is a persisted chart plus its yoga report, keyed by person name
// and save date.
type Snapshot struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	SavedAt time.Time   `json:"saved_at"`
	Chart   *Chart      `json:"chart"`
	Yogas   *YogaReport `json:"yogas,omitempty"`
}
