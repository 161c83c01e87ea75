package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/model"
)

func TestNormalizeLocationLegacyKeys(t *testing.T) {
	loc := NormalizeLocation(bson.M{"latitude": 12.9716, "longitude": 77.5946})
	require.NotNil(t, loc)
	assert.Equal(t, 12.9716, loc.Lat)
	assert.Equal(t, 77.5946, loc.Lng)
	assert.Nil(t, loc.AccuracyM)
}

func TestNormalizeLocationShortKeysAndStrings(t *testing.T) {
	loc := NormalizeLocation(bson.M{"lat": "13.01", "lng": "77.55", "accuracy": 8})
	require.NotNil(t, loc)
	assert.Equal(t, 13.01, loc.Lat)
	assert.Equal(t, 77.55, loc.Lng)
	require.NotNil(t, loc.AccuracyM)
	assert.Equal(t, 8.0, *loc.AccuracyM)
}

func TestNormalizeLocationUnparseable(t *testing.T) {
	assert.Nil(t, NormalizeLocation(bson.M{"lat": "bad", "lng": 77.5}))
	assert.Nil(t, NormalizeLocation(bson.M{"lat": 12.9}))
	assert.Nil(t, NormalizeLocation("nowhere"))
	assert.Nil(t, NormalizeLocation(nil))
}

func TestLocationUnchanged(t *testing.T) {
	canonical := bson.M{"lat": 12.9, "lng": 77.5}
	norm := NormalizeLocation(canonical)
	require.NotNil(t, norm)
	assert.True(t, locationUnchanged(canonical, norm))

	// legacy keys always force a rewrite
	legacy := bson.M{"latitude": 12.9, "longitude": 77.5}
	assert.False(t, locationUnchanged(legacy, NormalizeLocation(legacy)))

	// accuracy mismatch forces a rewrite
	acc := 5.0
	assert.False(t, locationUnchanged(canonical, &model.Location{Lat: 12.9, Lng: 77.5, AccuracyM: &acc}))

	withAcc := bson.M{"lat": 12.9, "lng": 77.5, "accuracy_m": 5.0}
	assert.True(t, locationUnchanged(withAcc, NormalizeLocation(withAcc)))
}
