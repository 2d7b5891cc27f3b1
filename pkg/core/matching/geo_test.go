package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/communityroots/volunteer-match/pkg/core/model"
)

func TestDistanceMiles_KnownDistance(t *testing.T) {
	nyc := &model.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	la := &model.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}

	d, ok := DistanceMiles(nyc, la)
	assert.True(t, ok)
	assert.InDelta(t, 2445, d, 20)
}

func TestDistanceMiles_SamePoint(t *testing.T) {
	p := &model.GeoPoint{Latitude: 51.5074, Longitude: -0.1278}

	d, ok := DistanceMiles(p, p)
	assert.True(t, ok)
	assert.InDelta(t, 0, d, 0.001)
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	a := &model.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	b := &model.GeoPoint{Latitude: 42.3601, Longitude: -71.0589}

	ab, _ := DistanceMiles(a, b)
	ba, _ := DistanceMiles(b, a)
	assert.InDelta(t, ab, ba, 0.0001)
}

func TestDistanceMiles_MissingCoordinates(t *testing.T) {
	p := &model.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}

	_, ok := DistanceMiles(nil, p)
	assert.False(t, ok)

	_, ok = DistanceMiles(p, nil)
	assert.False(t, ok)

	_, ok = DistanceMiles(nil, nil)
	assert.False(t, ok)
}
