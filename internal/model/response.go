package model

// Location is a normalized geolocation payload.
type Location struct {
	Lat       float64  `json:"lat" bson:"lat"`
	Lng       float64  `json:"lng" bson:"lng"`
	AccuracyM *float64 `json:"accuracy_m" bson:"accuracy_m"`
}

// Answer is one answered question inside a Response. QuestionID and OptionID
// stay untyped because legacy submissions reference questions by numeric
// index as well as by canonical id. Exactly one of ValueText/ValueNumber is
// populated once normalized; Legacy marks answers that could not be resolved
// against a known question or option.
type Answer struct {
	QuestionID   interface{} `json:"question_id" bson:"question_id"`
	QuestionType string      `json:"question_type,omitempty" bson:"question_type,omitempty"`
	OptionID     interface{} `json:"option_id,omitempty" bson:"option_id,omitempty"`
	Value        interface{} `json:"value,omitempty" bson:"value,omitempty"`
	ValueText    *string     `json:"value_text" bson:"value_text"`
	ValueNumber  *float64    `json:"value_number" bson:"value_number"`
	Rating       int         `json:"rating,omitempty" bson:"rating,omitempty"`
	Legacy       bool        `json:"legacy,omitempty" bson:"legacy,omitempty"`
}

// Response is one survey submission.
type Response struct {
	ID            string    `json:"id" bson:"_id"`
	SurveyID      string    `json:"survey_id" bson:"survey_id"`
	CycleID       string    `json:"cycle_id,omitempty" bson:"cycle_id,omitempty"`
	SurveyorID    string    `json:"surveyor_id,omitempty" bson:"surveyor_id,omitempty"`
	ParticipantID string    `json:"participant_id,omitempty" bson:"participant_id,omitempty"`
	Status        string    `json:"status" bson:"status"`
	Answers       []Answer  `json:"answers" bson:"answers"`
	Location      *Location `json:"location" bson:"location"`
	Rating        *float64  `json:"rating" bson:"rating"`
	Timestamp     string    `json:"timestamp" bson:"timestamp"`
	CreatedAt     string    `json:"created_at" bson:"created_at"`
}
