// Package coords converts between horizon (azimuth, elevation) and
// equatorial (hour angle, declination) coordinates for a ground
// observer. All angles are radians unless a name says otherwise.
package coords

import "math"

// MWALatitudeRad is the latitude of the MWA site in radians.
const MWALatitudeRad = -0.4660608448386394

// AzEl is a horizon coordinate pair.
type AzEl struct {
	// Azimuth, measured north through east [radians]
	Az float64
	// Elevation above the horizon [radians]
	El float64
}

func AzElFromRadians(az, el float64) AzEl {
	return AzEl{Az: az, El: el}
}

func AzElFromDegrees(az, el float64) AzEl {
	return AzEl{Az: az * math.Pi / 180, El: el * math.Pi / 180}
}

// ZA returns the zenith angle.
func (a AzEl) ZA() float64 {
	return math.Pi/2 - a.El
}

// ToHADec converts to equatorial coordinates for an observer at the
// given latitude, via the closed-form ERFA Ae2hd transform.
func (a AzEl) ToHADec(latitude float64) HADec {
	sa, ca := math.Sincos(a.Az)
	se, ce := math.Sincos(a.El)
	sp, cp := math.Sincos(latitude)

	x := -ca*ce*sp + se*cp
	y := -sa * ce
	z := ca*ce*cp + se*sp

	r := math.Hypot(x, y)
	ha := 0.0
	if r != 0 {
		ha = math.Atan2(y, x)
	}
	return HADec{HA: ha, Dec: math.Atan2(z, r)}
}

// ToHADecMWA converts to equatorial coordinates at the MWA site.
func (a AzEl) ToHADecMWA() HADec {
	return a.ToHADec(MWALatitudeRad)
}

func (a AzEl) String() string {
	return formatDegreePair(a.Az, a.El)
}

// HADec is an equatorial coordinate pair.
type HADec struct {
	// Hour angle [radians]
	HA float64
	// Declination [radians]
	Dec float64
}

func HADecFromRadians(ha, dec float64) HADec {
	return HADec{HA: ha, Dec: dec}
}

func HADecFromDegrees(ha, dec float64) HADec {
	return HADec{HA: ha * math.Pi / 180, Dec: dec * math.Pi / 180}
}

// ToAzEl converts to horizon coordinates for an observer at the given
// latitude, via the closed-form ERFA Hd2ae transform.
func (h HADec) ToAzEl(latitude float64) AzEl {
	sh, ch := math.Sincos(h.HA)
	sd, cd := math.Sincos(h.Dec)
	sp, cp := math.Sincos(latitude)

	x := -ch*cd*sp + sd*cp
	y := -sh * cd
	z := ch*cd*cp + sd*sp

	r := math.Hypot(x, y)
	az := 0.0
	if r != 0 {
		az = math.Atan2(y, x)
		if az < 0 {
			az += 2 * math.Pi
		}
	}
	return AzEl{Az: az, El: math.Atan2(z, r)}
}

// ToAzElMWA converts to horizon coordinates at the MWA site.
func (h HADec) ToAzElMWA() AzEl {
	return h.ToAzEl(MWALatitudeRad)
}

func (h HADec) String() string {
	return formatDegreePair(h.HA, h.Dec)
}
