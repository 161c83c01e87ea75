package model

import "time"

// Survey is the top-level survey record owned by an admin or surveyor.
type Survey struct {
	ID               string `json:"id" bson:"_id"`
	Title            string `json:"title" bson:"title"`
	Description      string `json:"description" bson:"description"`
	CreatedBy        string `json:"created_by,omitempty" bson:"created_by,omitempty"`
	ParticipantCount int    `json:"participant_count" bson:"participant_count"`
	QuestionCount    int    `json:"question_count" bson:"question_count"`
	CreatedAt        string `json:"created_at" bson:"created_at"`
	UpdatedAt        string `json:"updated_at" bson:"updated_at"`
}

// SurveyCycle is one scheduled run of a survey.
type SurveyCycle struct {
	ID        string `json:"id" bson:"_id"`
	SurveyID  string `json:"survey_id" bson:"survey_id"`
	StartDate string `json:"start_date" bson:"start_date"`
	EndDate   string `json:"end_date" bson:"end_date"`
}

// ISONow returns the current UTC instant as an ISO-8601 string, the timestamp
// format stored across all collections.
func ISONow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
