// Package utm converts between WGS84 latitude/longitude and UTM grid
// coordinates in the fixed zone 32, northern hemisphere, which is the grid
// used by the upstream transit API.
package utm

import "math"

const (
	// Zone - зона UTM, в которой работает upstream API
	Zone = 32

	k0             = 0.9996
	e              = 0.00669438
	e2             = e * e
	e3             = e2 * e
	eP2            = e / (1 - e)
	radius         = 6378137.0
	falseEasting   = 500000.0
	falseNorthing  = 10000000.0
	centralDegrees = float64((Zone-1)*6 - 180 + 3)
)

var (
	sqrtE  = math.Sqrt(1 - e)
	e1     = (1 - sqrtE) / (1 + sqrtE)
	e1pow2 = e1 * e1
	e1pow3 = e1pow2 * e1
	e1pow4 = e1pow3 * e1
	e1pow5 = e1pow4 * e1

	m1 = 1 - e/4 - 3*e2/64 - 5*e3/256
	m2 = 3*e/8 + 3*e2/32 + 45*e3/1024
	m3 = 15*e2/256 + 45*e3/1024
	m4 = 35 * e3 / 3072

	p2 = 3.0/2*e1 - 27.0/32*e1pow3 + 269.0/512*e1pow5
	p3 = 21.0/16*e1pow2 - 55.0/32*e1pow4
	p4 = 151.0/96*e1pow3 - 417.0/128*e1pow5
	p5 = 1097.0 / 512 * e1pow4
)

// ToLatLon converts a zone 32N easting/northing pair to latitude and longitude in degrees.
func ToLatLon(x, y float64) (lat, lng float64) {
	x -= falseEasting

	m := y / k0
	mu := m / (radius * m1)

	pRad := mu +
		p2*math.Sin(2*mu) +
		p3*math.Sin(4*mu) +
		p4*math.Sin(6*mu) +
		p5*math.Sin(8*mu)

	pSin := math.Sin(pRad)
	pSin2 := pSin * pSin
	pCos := math.Cos(pRad)
	pTan := pSin / pCos
	pTan2 := pTan * pTan
	pTan4 := pTan2 * pTan2

	epSin := 1 - e*pSin2
	n := radius / math.Sqrt(epSin)
	r := (1 - e) / epSin

	c := eP2 * pCos * pCos
	c2 := c * c

	d := x / (n * k0)
	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	latRad := pRad - (pTan/r)*(d2/2-
		d4/24*(5+3*pTan2+10*c-4*c2-9*eP2)+
		d6/720*(61+90*pTan2+298*c+45*pTan4-252*eP2-3*c2))

	lngRad := (d -
		d3/6*(1+2*pTan2+c) +
		d5/120*(5-2*c+28*pTan2-3*c2+8*eP2+24*pTan4)) / pCos

	return degrees(latRad), degrees(lngRad) + centralDegrees
}

// FromLatLon converts latitude and longitude in degrees to zone 32N grid
// coordinates. Results are truncated toward zero, matching the integer
// coordinates the upstream API expects.
func FromLatLon(lat, lng float64) (x, y int) {
	easting, northing := project(lat, lng)
	return int(easting), int(northing)
}

func project(lat, lng float64) (easting, northing float64) {
	latRad := radians(lat)
	latSin := math.Sin(latRad)
	latCos := math.Cos(latRad)
	latTan := latSin / latCos
	latTan2 := latTan * latTan
	latTan4 := latTan2 * latTan2

	n := radius / math.Sqrt(1-e*latSin*latSin)
	c := eP2 * latCos * latCos

	a := latCos * (radians(lng) - radians(centralDegrees))
	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	m := radius * (m1*latRad -
		m2*math.Sin(2*latRad) +
		m3*math.Sin(4*latRad) -
		m4*math.Sin(6*latRad))

	easting = k0*n*(a+
		a3/6*(1-latTan2+c)+
		a5/120*(5-18*latTan2+latTan4+72*c-58*eP2)) + falseEasting

	northing = k0 * (m + n*latTan*(a2/2+
		a4/24*(5-latTan2+9*c+4*c*c)+
		a6/720*(61-58*latTan2+latTan4+600*c-330*eP2)))

	if lat < 0 {
		northing += falseNorthing
	}

	return easting, northing
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
