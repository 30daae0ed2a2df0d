package ephemeris

import (
	"math"
	"time"

	"vedic-astro/internal/errors"
	"vedic-astro/internal/models"
)

// AnalyticProvider computes positions from closed-form mean-element theory:
// truncated trigonometric series for the Sun and Moon, Keplerian mean
// elements for Mercury through Saturn, and the mean lunar node for Rahu.
// It needs no ephemeris files or network access. Accuracy is on the order
// of arcminutes for the planets, which is adequate for sign-level work.
type AnalyticProvider struct{}

// NewAnalyticProvider creates an analytic position provider.
func NewAnalyticProvider() *AnalyticProvider {
	return &AnalyticProvider{}
}

const (
	j2000      = 2451545.0
	degPerRad  = 180.0 / math.Pi
	radPerDeg  = math.Pi / 180.0
	daysPerCen = 36525.0
)

// kepElements holds J2000 Keplerian elements and per-century rates:
// semi-major axis (AU), eccentricity, inclination, mean longitude,
// longitude of perihelion, longitude of ascending node (degrees).
type kepElements struct {
	a, aDot     float64
	e, eDot     float64
	i, iDot     float64
	l, lDot     float64
	pi, piDot   float64
	om, omDot   float64
}

// Mean elements valid 1800-2050 AD.
var planetElements = map[models.Planet]kepElements{
	models.Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	models.Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	models.Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	models.Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	models.Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
}

// Earth-Moon barycenter, used to translate heliocentric to geocentric.
var earthElements = kepElements{1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
	100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0.0, 0.0}

// JulianDay converts a timestamp to a Julian Day number.
func (p *AnalyticProvider) JulianDay(t time.Time) float64 {
	u := t.UTC()
	seconds := float64(u.Unix()) + float64(u.Nanosecond())/1e9
	return seconds/86400.0 + 2440587.5
}

// Ayanamsa returns the Lahiri sidereal correction in degrees. Quadratic fit
// anchored at 22.460148 deg for J1900 with the general precession rate.
func (p *AnalyticProvider) Ayanamsa(jd float64) float64 {
	t := (jd - 2415020.0) / daysPerCen // centuries since J1900.0
	return 22.460148 + 1.396042*t + 0.000308*t*t
}

// BodyLongitude returns the ecliptic longitude of a body in [0,360).
func (p *AnalyticProvider) BodyLongitude(jd float64, body models.Planet, sidereal bool) (float64, error) {
	var lon float64
	switch body {
	case models.Sun:
		lon = sunLongitude(jd)
	case models.Moon:
		lon = moonLongitude(jd)
	case models.Rahu:
		lon = meanNodeLongitude(jd)
	case models.Mercury, models.Venus, models.Mars, models.Jupiter, models.Saturn:
		lon = planetLongitude(jd, planetElements[body])
	default:
		return 0, errors.NewEphemerisError(string(body), "BodyLongitude",
			"body is derived, not observed", nil)
	}

	if sidereal {
		lon -= p.Ayanamsa(jd)
	}
	return wrap360(lon), nil
}

// Ascendant returns the tropical ascendant in degrees from local sidereal
// time and the obliquity of the ecliptic.
func (p *AnalyticProvider) Ascendant(jd, latitude, longitude float64) (float64, error) {
	if math.Abs(latitude) >= 89.9 {
		return 0, errors.NewEphemerisError("Ascendant", "Ascendant",
			"latitude too close to pole for a defined ascendant", nil)
	}

	t := (jd - j2000) / daysPerCen
	gmst := 280.46061837 + 360.98564736629*(jd-j2000) + 0.000387933*t*t
	ramc := wrap360(gmst+longitude) * radPerDeg

	eps := (23.4392911 - 0.0130042*t) * radPerDeg
	phi := latitude * radPerDeg

	asc := math.Atan2(math.Cos(ramc),
		-(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))
	return wrap360(asc * degPerRad), nil
}

// sunLongitude returns the apparent geometric solar longitude (tropical).
func sunLongitude(jd float64) float64 {
	t := (jd - j2000) / daysPerCen
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := (357.52911 + 35999.05029*t - 0.0001537*t*t) * radPerDeg
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)
	return l0 + c
}

// moonLongitude returns the lunar longitude from the principal terms of the
// lunar theory. Truncated to the six largest periodic terms.
func moonLongitude(jd float64) float64 {
	t := (jd - j2000) / daysPerCen
	lp := 218.3164477 + 481267.88123421*t
	d := (297.8501921 + 445267.1114034*t) * radPerDeg
	m := (357.5291092 + 35999.0502909*t) * radPerDeg
	mp := (134.9633964 + 477198.8675055*t) * radPerDeg
	f := (93.2720950 + 483202.0175233*t) * radPerDeg

	lon := lp +
		6.288774*math.Sin(mp) +
		1.274027*math.Sin(2*d-mp) +
		0.658314*math.Sin(2*d) +
		0.213618*math.Sin(2*mp) -
		0.185116*math.Sin(m) -
		0.114332*math.Sin(2*f)
	return lon
}

// meanNodeLongitude returns the mean ascending lunar node (Rahu).
func meanNodeLongitude(jd float64) float64 {
	t := (jd - j2000) / daysPerCen
	return 125.0445479 - 1934.1362891*t + 0.0020754*t*t
}

// planetLongitude returns the geocentric ecliptic longitude of a planet
// from its heliocentric Keplerian position and the Earth's.
func planetLongitude(jd float64, el kepElements) float64 {
	px, py := heliocentric(jd, el)
	ex, ey := heliocentric(jd, earthElements)
	return wrap360(math.Atan2(py-ey, px-ex) * degPerRad)
}

// heliocentric returns the heliocentric ecliptic x,y of a body in AU.
func heliocentric(jd float64, el kepElements) (float64, float64) {
	t := (jd - j2000) / daysPerCen

	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	inc := (el.i + el.iDot*t) * radPerDeg
	l := el.l + el.lDot*t
	pi := el.pi + el.piDot*t
	om := el.om + el.omDot*t

	mAnom := wrap360(l-pi) * radPerDeg
	ecc := solveKepler(mAnom, e)

	// Position in the orbital plane.
	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	// Rotate by argument of perihelion, inclination, ascending node.
	w := (pi - om) * radPerDeg
	omr := om * radPerDeg

	cosw, sinw := math.Cos(w), math.Sin(w)
	coso, sino := math.Cos(omr), math.Sin(omr)
	cosi := math.Cos(inc)

	x := (cosw*coso-sinw*sino*cosi)*xp + (-sinw*coso-cosw*sino*cosi)*yp
	y := (cosw*sino+sinw*coso*cosi)*xp + (-sinw*sino+cosw*coso*cosi)*yp
	return x, y
}

// solveKepler iterates Kepler's equation M = E - e sin E for the eccentric
// anomaly. Converges in a handful of steps for planetary eccentricities.
func solveKepler(m, e float64) float64 {
	ecc := m + e*math.Sin(m)
	for i := 0; i < 20; i++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return ecc
}

func wrap360(angle float64) float64 {
	a := math.Mod(angle, 360.0)
	if a < 0 {
		a += 360.0
	}
	return a
}
