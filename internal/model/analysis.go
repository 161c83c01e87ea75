package model

// MapPin is one plotted response location.
type MapPin struct {
	Lat   float64 `json:"lat" bson:"lat"`
	Lng   float64 `json:"lng" bson:"lng"`
	Label string  `json:"label,omitempty" bson:"label,omitempty"`
}

// Analysis is a per-cycle summary of a survey's responses.
type Analysis struct {
	ID       string   `json:"id" bson:"_id"`
	SurveyID string   `json:"survey_id" bson:"survey_id"`
	Cycle    int      `json:"cycle" bson:"cycle"`
	MapPins  []MapPin `json:"map_pins" bson:"map_pins"`
	Summary  string   `json:"summary" bson:"summary"`
}
