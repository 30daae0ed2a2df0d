// Package varga computes divisional (varga) charts by remapping each natal
// sign placement through a fixed subdivision rule. Every chart type is a
// row in one rule table consumed by a single evaluator, so the transforms
// stay mutually consistent and independently testable.
package varga

import (
	"math"
	"sort"

	"vedic-astro/internal/errors"
	"vedic-astro/internal/models"
	"vedic-astro/internal/zodiac"
)

// selector picks which offset applies for a natal sign.
type selector int

const (
	selNone   selector = iota // one offset for every sign
	selParity                 // natal sign index mod 2
	selTriad                  // natal sign index mod 3 (movable/fixed/dual)
)

// rule describes one divisional transform. When absolute is set the offsets
// are start signs counted from Aries; otherwise they are counted from the
// natal sign. The trimsamsa rule (D30) bypasses equal subdivision and is
// handled by its own segment table.
type rule struct {
	divisions int
	sel       selector
	offsets   [3]int
	absolute  bool
	trimsamsa bool

	name          string
	signification string
}

var rules = map[string]rule{
	"D1":  {divisions: 1, sel: selNone, name: "Rasi", signification: "Physical body, overall life"},
	"D7":  {divisions: 7, sel: selParity, offsets: [3]int{0, 6}, name: "Saptamsa", signification: "Children, progeny"},
	"D9":  {divisions: 9, sel: selTriad, offsets: [3]int{0, 8, 4}, name: "Navamsa", signification: "Spouse, dharma, fortune"},
	"D10": {divisions: 10, sel: selParity, offsets: [3]int{0, 8}, name: "Dasamsa", signification: "Career, profession"},
	"D12": {divisions: 12, sel: selNone, name: "Dwadasamsa", signification: "Parents"},
	"D16": {divisions: 16, sel: selTriad, offsets: [3]int{0, 4, 8}, name: "Shodasamsa", signification: "Vehicles, luxuries"},
	"D20": {divisions: 20, sel: selTriad, offsets: [3]int{0, 8, 4}, absolute: true, name: "Vimsamsa", signification: "Spiritual practices"},
	"D24": {divisions: 24, sel: selParity, offsets: [3]int{4, 3}, absolute: true, name: "Chaturvimsamsa", signification: "Education, learning"},
	"D30": {divisions: 30, trimsamsa: true, name: "Trimsamsa", signification: "Misfortunes, evils"},
	"D60": {divisions: 60, sel: selNone, name: "Shashtiamsa", signification: "Past life karma"},
}

// trimsamsaSegment is one of the five unequal arcs of the D30 rule.
type trimsamsaSegment struct {
	until  float64 // exclusive upper bound of the segment, degrees
	offset int     // sign offset from the natal sign
}

// Odd and even natal signs use different segment tables. "Odd" follows the
// zero-indexed convention of the sign table: Aries (index 0) belongs to the
// odd group.
var trimsamsaOdd = []trimsamsaSegment{
	{5, 0}, {10, 6}, {18, 8}, {25, 2}, {30, 4},
}

var trimsamsaEven = []trimsamsaSegment{
	{5, 4}, {12, 2}, {20, 8}, {25, 6}, {30, 0},
}

// DefaultTypes is the set computed when a caller asks for no particular
// charts: the three most consulted vargas.
var DefaultTypes = []string{"D9", "D10", "D12"}

// SupportedTypes returns the chart type codes in stable order.
func SupportedTypes() []string {
	types := make([]string, 0, len(rules))
	for code := range rules {
		types = append(types, code)
	}
	sort.Slice(types, func(i, j int) bool {
		return rules[types[i]].divisions < rules[types[j]].divisions
	})
	return types
}

// Compute maps a natal longitude in [0,360) into the divisional zodiac of
// the given chart type. Unknown chart types fail immediately with
// ErrUnknownVarga; there is no partial computation.
func Compute(chartType string, longitude float64) (models.CelestialPosition, error) {
	r, ok := rules[chartType]
	if !ok {
		return models.CelestialPosition{}, errors.Wrapf(errors.ErrUnknownVarga, "%q", chartType)
	}

	natalSign := zodiac.SignIndex(longitude)
	degree := math.Mod(longitude, 30.0)

	if r.trimsamsa {
		return computeTrimsamsa(natalSign, degree), nil
	}

	width := 30.0 / float64(r.divisions)
	divisionIdx := int(degree / width)

	var sel int
	switch r.sel {
	case selParity:
		sel = natalSign % 2
	case selTriad:
		sel = natalSign % 3
	}

	base := natalSign
	if r.absolute {
		base = 0
	}
	divSign := (base + r.offsets[sel] + divisionIdx) % 12
	divDegree := math.Mod(degree, width) * float64(r.divisions)

	return divisionalPosition(divSign, divDegree), nil
}

// computeTrimsamsa applies the D30 five-segment table. Each trimsamsa spans
// one natal degree, so the degree inside the divisional sign is the
// fractional degree expanded by 30, which keeps it in [0,30) despite the
// unequal segment widths.
func computeTrimsamsa(natalSign int, degree float64) models.CelestialPosition {
	segments := trimsamsaOdd
	if natalSign%2 == 1 {
		segments = trimsamsaEven
	}

	divDegree := math.Mod(degree, 1.0) * 30.0
	for _, seg := range segments {
		if degree < seg.until {
			return divisionalPosition((natalSign+seg.offset)%12, divDegree)
		}
	}
	// degree is always < 30, so the last segment catches everything.
	last := segments[len(segments)-1]
	return divisionalPosition((natalSign+last.offset)%12, divDegree)
}

func divisionalPosition(signIdx int, degree float64) models.CelestialPosition {
	return models.CelestialPosition{
		Longitude:       float64(signIdx)*30.0 + degree,
		Sign:            zodiac.SignName(signIdx),
		SignNum:         signIdx + 1,
		Degree:          degree,
		DegreeFormatted: zodiac.FormatDegree(degree),
	}
}

// ComputeChart transforms every supplied placement into one divisional
// chart. The input map typically comes straight from Chart.Positions.
func ComputeChart(chartType string, positions map[models.Planet]models.CelestialPosition) (*models.DivisionalChart, error) {
	r, ok := rules[chartType]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownVarga, "%q", chartType)
	}

	divisional := make(map[models.Planet]models.CelestialPosition, len(positions))
	for planet, pos := range positions {
		dp, err := Compute(chartType, pos.Longitude)
		if err != nil {
			return nil, err
		}
		divisional[planet] = dp
	}

	return &models.DivisionalChart{
		Type:          chartType,
		Name:          r.name,
		Signification: r.signification,
		Positions:     divisional,
	}, nil
}

// ComputeCharts transforms the placements into each requested chart type.
// A nil or empty type list falls back to DefaultTypes.
func ComputeCharts(positions map[models.Planet]models.CelestialPosition, chartTypes []string) (map[string]*models.DivisionalChart, error) {
	if len(chartTypes) == 0 {
		chartTypes = DefaultTypes
	}

	charts := make(map[string]*models.DivisionalChart, len(chartTypes))
	for _, chartType := range chartTypes {
		dc, err := ComputeChart(chartType, positions)
		if err != nil {
			return nil, err
		}
		charts[chartType] = dc
	}
	return charts, nil
}
