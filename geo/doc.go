// Package geo provides the great-circle distance metric used to rank routes
// through a subway network.
//
// What
//
//   - Point: a latitude/longitude pair in decimal degrees.
//   - Distance: haversine distance between two Points, in kilometres,
//     on a sphere of radius EarthRadiusKm (6371 km).
//
// Inputs are not range-checked: values outside [-90,90] / [-180,180] yield a
// mathematically defined but physically meaningless result, never an error.
//
// Complexity
//
//   - Time:  O(1)
//   - Space: O(1)
//
// Example:
//
//	d := geo.Distance(geo.Point{Lat: 39.98, Lng: 116.31}, geo.Point{Lat: 39.99, Lng: 116.33})
//	fmt.Printf("%.3f km\n", d)
package geo
