package matching

import (
	"math"

	"github.com/communityroots/volunteer-match/pkg/core/model"
)

const earthRadiusMiles = 3958.8

// DistanceMiles returns the great-circle distance between two points using
// the haversine formula. The second return is false when either point is
// missing, in which case the distance is unknown rather than zero.
func DistanceMiles(a, b *model.GeoPoint) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h))), true
}
