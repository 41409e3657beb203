package geo

import "math"

const earthRadiusKm = 6371.0

type Coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between two points in
// kilometres, rounded to one decimal place. Display and sorting only; the
// backend does the authoritative distance filtering.
func Distance(a, b Coord) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*10) / 10
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

type Bounds struct {
	SouthWest Coord `json:"southWest"`
	NorthEast Coord `json:"northEast"`
}

// FitBounds computes the bounding box containing every given point, for the
// map view to fit to. With a single point the box collapses onto it.
func FitBounds(points ...Coord) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}

	b := Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		b.SouthWest.Lat = math.Min(b.SouthWest.Lat, p.Lat)
		b.SouthWest.Lng = math.Min(b.SouthWest.Lng, p.Lng)
		b.NorthEast.Lat = math.Max(b.NorthEast.Lat, p.Lat)
		b.NorthEast.Lng = math.Max(b.NorthEast.Lng, p.Lng)
	}
	return b
}
