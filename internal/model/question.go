package model

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	QuestionTypeMCQ         QuestionType = "mcq"
	QuestionTypeYesNo       QuestionType = "yes_no"
	QuestionTypeText        QuestionType = "text"
	QuestionTypeNumber      QuestionType = "number"
	QuestionTypeDropdown    QuestionType = "dropdown"
	QuestionTypeMultiSelect QuestionType = "multi_select"
)

// ValidQuestionType reports whether t is one of the six canonical types.
func ValidQuestionType(t string) bool {
	switch QuestionType(t) {
	case QuestionTypeMCQ, QuestionTypeYesNo, QuestionTypeText,
		QuestionTypeNumber, QuestionTypeDropdown, QuestionTypeMultiSelect:
		return true
	}
	return false
}

// Choice reports whether an answer to this type must reference one of the
// offered options.
func (t QuestionType) Choice() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeDropdown, QuestionTypeMultiSelect, QuestionTypeYesNo:
		return true
	}
	return false
}

// Option is one selectable choice inside a question.
type Option struct {
	OptionID string  `json:"option_id" bson:"option_id"`
	Label    *string `json:"label" bson:"label"`
	Value    *string `json:"value" bson:"value"`
	Rating   int     `json:"rating,omitempty" bson:"rating,omitempty"`
}

// Question is a single survey question embedded in a QuestionSet.
type Question struct {
	QuestionID   string                 `json:"question_id" bson:"question_id"`
	QuestionText *string                `json:"question_text" bson:"question_text"`
	QuestionType QuestionType           `json:"question_type" bson:"question_type"`
	Options      []Option               `json:"options" bson:"options"`
	Required     bool                   `json:"required" bson:"required"`
	Order        int                    `json:"order" bson:"order"`
	Metadata     map[string]interface{} `json:"metadata" bson:"metadata"`
}

// QuestionSet holds the ordered questions of one survey. LegacyID carries the
// original primary key when a migration pass had to re-mint it.
type QuestionSet struct {
	ID        string     `json:"id" bson:"_id"`
	LegacyID  string     `json:"legacy_id,omitempty" bson:"legacy_id,omitempty"`
	SurveyID  string     `json:"survey_id" bson:"survey_id"`
	Questions []Question `json:"questions" bson:"questions"`
	CreatedAt string     `json:"created_at" bson:"created_at"`
	UpdatedAt string     `json:"updated_at" bson:"updated_at"`
}
