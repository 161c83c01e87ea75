package migration

import (
	"github.com/aaryashetye/survey-API/internal/model"
)

// NormalizeLocation reshapes a legacy location payload into {lat, lng,
// accuracy_m}. Coordinates are accepted under {latitude, longitude} first,
// then {lat, lng}; accuracy under accuracy_m then accuracy. When either
// coordinate cannot be parsed as a number there is no location, which is an
// enumerable outcome rather than an error.
func NormalizeLocation(raw interface{}) *model.Location {
	m := asMap(raw)
	if m == nil {
		return nil
	}

	var lat, lng float64
	var latOK, lngOK bool
	if _, hasLat := m["latitude"]; hasLat {
		if _, hasLng := m["longitude"]; hasLng {
			lat, latOK = ToFloat(m["latitude"])
			lng, lngOK = ToFloat(m["longitude"])
		}
	}
	if !latOK {
		lat, latOK = ToFloat(PickValue(m, "lat", "latitude"))
	}
	if !lngOK {
		lng, lngOK = ToFloat(PickValue(m, "lng", "longitude"))
	}
	if !latOK || !lngOK {
		return nil
	}

	loc := &model.Location{Lat: lat, Lng: lng}
	if v := PickValue(m, "accuracy_m", "accuracy"); v != nil {
		if acc, ok := ToFloat(v); ok {
			loc.AccuracyM = &acc
		}
	}
	return loc
}

// locationUnchanged reports whether the stored payload already carries the
// canonical shape that NormalizeLocation produced from it, so an untouched
// document is not rewritten.
func locationUnchanged(stored interface{}, norm *model.Location) bool {
	m := asMap(stored)
	if m == nil || norm == nil {
		return false
	}
	for _, legacyKey := range []string{"latitude", "longitude", "accuracy"} {
		if _, ok := m[legacyKey]; ok {
			return false
		}
	}

	lat, ok := m["lat"].(float64)
	if !ok || lat != norm.Lat {
		return false
	}
	lng, ok := m["lng"].(float64)
	if !ok || lng != norm.Lng {
		return false
	}

	acc, present := m["accuracy_m"]
	if norm.AccuracyM == nil {
		return !present || acc == nil
	}
	f, ok := acc.(float64)
	return ok && f == *norm.AccuracyM
}
