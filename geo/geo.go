package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Distance returns the haversine great-circle distance between origin and
// destination in kilometres.
//
// Distance is pure and symmetric: Distance(a, b) == Distance(b, a) and
// Distance(p, p) == 0 for every finite p.
func Distance(origin, destination Point) float64 {
	dLat := radians(destination.Lat - origin.Lat)
	dLng := radians(destination.Lng - origin.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(origin.Lat))*math.Cos(radians(destination.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// PathLength sums Distance over consecutive points, left to right.
// Fewer than two points yield 0.
func PathLength(points ...Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(points); i++ {
		total += Distance(points[i], points[i+1])
	}

	return total
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
