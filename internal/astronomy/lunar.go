package astronomy

import (
	"math"
	"time"

	"ulascansenturk/hiking-weather-service/internal/weather"
)

// sun-earth distance in km
const sunDistance = 149598000.0

type lunarPosition struct {
	equatorial
	dist float64
}

func moonCoords(d float64) lunarPosition {
	l := rad * (218.316 + 13.176396*d)
	m := rad * (134.963 + 13.064993*d)
	f := rad * (93.272 + 13.229350*d)

	lng := l + rad*6.289*math.Sin(m)
	lat := rad * 5.128 * math.Sin(f)

	return lunarPosition{
		equatorial: equatorial{ra: rightAscension(lng, lat), dec: declination(lng, lat)},
		dist:       385001 - 20905*math.Cos(m),
	}
}

// Illumination returns the illuminated fraction of the moon and its phase as
// a fraction of the synodic cycle, 0 being new moon and 0.5 full moon.
func Illumination(now time.Time) (fraction, phase float64) {
	d := toDays(now)
	s := sunCoords(d)
	m := moonCoords(d)

	elongation := math.Acos(math.Sin(s.dec)*math.Sin(m.dec) + math.Cos(s.dec)*math.Cos(m.dec)*math.Cos(s.ra-m.ra))
	inc := math.Atan2(sunDistance*math.Sin(elongation), m.dist-sunDistance*math.Cos(elongation))
	angle := math.Atan2(
		math.Cos(s.dec)*math.Sin(s.ra-m.ra),
		math.Sin(s.dec)*math.Cos(m.dec)-math.Cos(s.dec)*math.Sin(m.dec)*math.Cos(s.ra-m.ra),
	)

	sign := 1.0
	if angle < 0 {
		sign = -1
	}

	fraction = (1 + math.Cos(inc)) / 2
	phase = 0.5 + 0.5*inc*sign/math.Pi
	return fraction, phase
}

func MoonPhase(now time.Time) weather.MoonPhase {
	fraction, phase := Illumination(now)

	return weather.MoonPhase{
		PhaseName:    ClassifyPhase(phase),
		Illumination: math.Round(fraction*100) / 100,
	}
}

// ClassifyPhase maps a cycle fraction in [0,1] to one of the eight named phases.
func ClassifyPhase(phase float64) weather.PhaseName {
	switch {
	case phase < 0.03 || phase > 0.97:
		return weather.PhaseNewMoon
	case phase < 0.25:
		return weather.PhaseWaxingCrescent
	case phase < 0.27:
		return weather.PhaseFirstQuarter
	case phase < 0.50:
		return weather.PhaseWaxingGibbous
	case phase < 0.53:
		return weather.PhaseFullMoon
	case phase < 0.75:
		return weather.PhaseWaningGibbous
	case phase < 0.77:
		return weather.PhaseLastQuarter
	default:
		return weather.PhaseWaningCrescent
	}
}
