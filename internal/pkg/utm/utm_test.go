package utm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLatLon_CentralMeridianAtEquator(t *testing.T) {
	lat, lng := ToLatLon(500000, 0)

	assert.InDelta(t, 0.0, lat, 1e-9)
	assert.InDelta(t, 9.0, lng, 1e-9)
}

func TestFromLatLon_CentralMeridianAtEquator(t *testing.T) {
	x, y := FromLatLon(0, 9)

	assert.Equal(t, 500000, x)
	assert.Equal(t, 0, y)
}

func TestFromLatLon_Truncates(t *testing.T) {
	easting, northing := project(59.9111, 10.7528)
	x, y := FromLatLon(59.9111, 10.7528)

	assert.Equal(t, int(math.Trunc(easting)), x)
	assert.Equal(t, int(math.Trunc(northing)), y)
}

func TestToLatLon_Oslo(t *testing.T) {
	// Oslo S lies in zone 32, a few kilometres east of the central meridian.
	lat, lng := ToLatLon(598000, 6643000)

	assert.InDelta(t, 59.91, lat, 0.05)
	assert.InDelta(t, 10.75, lng, 0.1)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"oslo centre", 597000, 6643000},
		{"bærum", 585000, 6644500},
		{"lillestrøm", 617000, 6649000},
		{"drammen", 569000, 6624000},
		{"central meridian", 500000, 6650000},
		{"southern edge", 600000, 6500000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng := ToLatLon(float64(tt.x), float64(tt.y))
			x, y := FromLatLon(lat, lng)

			assert.LessOrEqual(t, abs(x-tt.x), 1, "easting drifted: got %d want %d", x, tt.x)
			assert.LessOrEqual(t, abs(y-tt.y), 1, "northing drifted: got %d want %d", y, tt.y)
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
