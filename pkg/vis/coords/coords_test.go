package coords

import (
	"math"
	"testing"
)

func TestToHADec(t *testing.T) {
	tests := []struct {
		name     string
		azel     AzEl
		latitude float64
		want     HADec
	}{{
		"degrees",
		AzElFromDegrees(45.0, 30.0),
		-0.497600,
		HADec{-0.6968754873551053, 0.3041176697804004},
	}, {
		"radians",
		AzElFromRadians(0.261700, 0.785400),
		-0.897600,
		HADec{-0.185499449332533, -0.12732312479328656},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.azel.ToHADec(tt.latitude)
			if math.Abs(got.HA-tt.want.HA) > 1e-10 || math.Abs(got.Dec-tt.want.Dec) > 1e-10 {
				t.Errorf("ToHADec() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToAzElRoundTrip(t *testing.T) {
	orig := AzElFromDegrees(120.0, 55.0)
	back := orig.ToHADec(MWALatitudeRad).ToAzEl(MWALatitudeRad)
	if math.Abs(back.Az-orig.Az) > 1e-10 || math.Abs(back.El-orig.El) > 1e-10 {
		t.Errorf("round trip = %v, want %v", back, orig)
	}
}

func TestZenith(t *testing.T) {
	zenith := AzElFromRadians(0, math.Pi/2)
	if za := zenith.ZA(); math.Abs(za) > 1e-12 {
		t.Errorf("ZA() at zenith = %v, want 0", za)
	}
	hd := zenith.ToHADecMWA()
	// the zenith declination equals the site latitude
	if math.Abs(hd.Dec-MWALatitudeRad) > 1e-10 {
		t.Errorf("zenith dec = %v, want %v", hd.Dec, MWALatitudeRad)
	}
}

func TestZA(t *testing.T) {
	ae := AzElFromRadians(0.261700, 0.785400)
	if za := ae.ZA(); math.Abs(za-0.7853963268) > 1e-10 {
		t.Errorf("ZA() = %v, want 0.7853963268", za)
	}
}

func TestStringInDegrees(t *testing.T) {
	ae := AzElFromDegrees(45, 30)
	if got := ae.String(); got != "(45.0000°, 30.0000°)" {
		t.Errorf("String() = %q", got)
	}
}
