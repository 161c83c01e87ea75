package model

// Admin manages surveys and surveyors.
type Admin struct {
	ID       string `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password" bson:"password"`
}

// Surveyor collects responses in the field.
type Surveyor struct {
	ID       string `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"password" bson:"password"`
}

// Participant is a person answering a survey.
type Participant struct {
	ID        string    `json:"id" bson:"_id"`
	FirstName string    `json:"name" bson:"first_name"`
	Age       *int      `json:"age" bson:"age"`
	Gender    string    `json:"gender,omitempty" bson:"gender,omitempty"`
	SurveyID  string    `json:"survey_id,omitempty" bson:"survey_id,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Location  *Location `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt string    `json:"created_at" bson:"created_at"`
	UpdatedAt string    `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
