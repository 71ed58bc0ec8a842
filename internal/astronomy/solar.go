// Package astronomy computes sun and moon ephemeris for a coordinate and
// instant. The formulas are the low-precision series used by most
// sunrise/sunset calculators and are good to about a minute away from the poles.
package astronomy

import (
	"math"
	"time"

	"ulascansenturk/hiking-weather-service/internal/weather"
)

const (
	rad       = math.Pi / 180
	dayMillis = 1000 * 60 * 60 * 24
	j1970     = 2440588.0
	j2000     = 2451545.0
	j0        = 0.0009

	// obliquity of the earth
	obliquity = rad * 23.4397

	sunriseAngle    = -0.833
	goldenHourAngle = 6.0

	timeLayout  = "15:04"
	missingTime = "--:--"
)

// SolarEvents holds the day's sun events. A zero time means the sun never
// crosses that altitude on the day (polar day or night).
type SolarEvents struct {
	Sunrise       time.Time
	GoldenHourEnd time.Time
	Sunset        time.Time
}

// SunTimes formats the solar events of the day containing now as local time
// of day in loc, whatever the coordinate's own timezone is.
func SunTimes(coord weather.Coordinate, now time.Time, loc *time.Location) weather.SunTimes {
	events := SolarDay(coord, now)

	return weather.SunTimes{
		Sunrise:    formatClock(events.Sunrise, loc),
		Sunset:     formatClock(events.Sunset, loc),
		GoldenHour: formatClock(events.GoldenHourEnd, loc),
	}
}

func SolarDay(coord weather.Coordinate, now time.Time) SolarEvents {
	lw := rad * -coord.Longitude
	phi := rad * coord.Latitude

	d := toDays(now)
	n := julianCycle(d, lw)
	ds := approxTransit(0, lw, n)

	m := solarMeanAnomaly(ds)
	l := eclipticLongitude(m)
	dec := declination(l, 0)

	noon := solarTransitJ(ds, m, l)

	riseSet := func(angle float64) (time.Time, time.Time) {
		set := getSetJ(angle*rad, lw, phi, dec, n, m, l)
		if math.IsNaN(set) {
			return time.Time{}, time.Time{}
		}
		rise := noon - (set - noon)
		return fromJulian(rise), fromJulian(set)
	}

	sunrise, sunset := riseSet(sunriseAngle)
	goldenEnd, _ := riseSet(goldenHourAngle)

	return SolarEvents{
		Sunrise:       sunrise,
		GoldenHourEnd: goldenEnd,
		Sunset:        sunset,
	}
}

func formatClock(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return missingTime
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timeLayout)
}

func toJulian(t time.Time) float64 {
	return float64(t.UnixMilli())/dayMillis - 0.5 + j1970
}

func fromJulian(j float64) time.Time {
	return time.UnixMilli(int64(math.Round((j + 0.5 - j1970) * dayMillis))).UTC()
}

func toDays(t time.Time) float64 {
	return toJulian(t) - j2000
}

func rightAscension(l, b float64) float64 {
	return math.Atan2(math.Sin(l)*math.Cos(obliquity)-math.Tan(b)*math.Sin(obliquity), math.Cos(l))
}

func declination(l, b float64) float64 {
	return math.Asin(math.Sin(b)*math.Cos(obliquity) + math.Cos(b)*math.Sin(obliquity)*math.Sin(l))
}

func solarMeanAnomaly(d float64) float64 {
	return rad * (357.5291 + 0.98560028*d)
}

func eclipticLongitude(m float64) float64 {
	center := rad * (1.9148*math.Sin(m) + 0.02*math.Sin(2*m) + 0.0003*math.Sin(3*m))
	perihelion := rad * 102.9372

	return m + center + perihelion + math.Pi
}

type equatorial struct {
	ra  float64
	dec float64
}

func sunCoords(d float64) equatorial {
	l := eclipticLongitude(solarMeanAnomaly(d))

	return equatorial{ra: rightAscension(l, 0), dec: declination(l, 0)}
}

func julianCycle(d, lw float64) float64 {
	return math.Round(d - j0 - lw/(2*math.Pi))
}

func approxTransit(ht, lw, n float64) float64 {
	return j0 + (ht+lw)/(2*math.Pi) + n
}

func solarTransitJ(ds, m, l float64) float64 {
	return j2000 + ds + 0.0053*math.Sin(m) - 0.0069*math.Sin(2*l)
}

// hourAngle is NaN when the sun never reaches altitude h at latitude phi.
func hourAngle(h, phi, dec float64) float64 {
	cos := (math.Sin(h) - math.Sin(phi)*math.Sin(dec)) / (math.Cos(phi) * math.Cos(dec))
	if cos < -1 || cos > 1 {
		return math.NaN()
	}
	return math.Acos(cos)
}

func getSetJ(h, lw, phi, dec, n, m, l float64) float64 {
	w := hourAngle(h, phi, dec)
	if math.IsNaN(w) {
		return math.NaN()
	}
	a := approxTransit(w, lw, n)
	return solarTransitJ(a, m, l)
}
