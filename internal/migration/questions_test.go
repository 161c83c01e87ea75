package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/model"
)

func TestNormalizeQuestionSetLegacyShapes(t *testing.T) {
	doc := bson.M{
		"_id":      1,
		"surveyId": "550e8400-e29b-41d4-a716-446655440000",
		"question": bson.A{
			"What is your primary water source?",
			bson.M{
				"text":    "Favorite color?",
				"choices": bson.A{"Red", "Blue", bson.M{"option": "Green", "rating": 4}},
				"qno":     7,
			},
			bson.M{
				"q":        "How many people live in your household?",
				"type":     "number",
				"required": "yes",
			},
		},
	}

	set, changed := NormalizeQuestionSet(doc)
	require.True(t, changed)
	require.Len(t, set.Questions, 3)

	// the numeric primary key is re-minted and archived
	assert.True(t, IsGUID(set.ID))
	assert.Equal(t, "1", set.LegacyID)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", set.SurveyID)
	assert.NotEmpty(t, set.CreatedAt)
	assert.NotEmpty(t, set.UpdatedAt)

	// bare string becomes a minimal text question
	q1 := set.Questions[0]
	assert.True(t, IsGUID(q1.QuestionID))
	require.NotNil(t, q1.QuestionText)
	assert.Equal(t, "What is your primary water source?", *q1.QuestionText)
	assert.Equal(t, model.QuestionTypeText, q1.QuestionType)
	assert.Empty(t, q1.Options)
	assert.Equal(t, 1, q1.Order)

	// options present and no declared type infers mcq
	q2 := set.Questions[1]
	require.NotNil(t, q2.QuestionText)
	assert.Equal(t, "Favorite color?", *q2.QuestionText)
	assert.Equal(t, model.QuestionTypeMCQ, q2.QuestionType)
	assert.Equal(t, 7, q2.Order)
	require.Len(t, q2.Options, 3)
	for _, opt := range q2.Options {
		assert.True(t, IsGUID(opt.OptionID))
		require.NotNil(t, opt.Label)
		require.NotNil(t, opt.Value)
	}
	assert.Equal(t, "Red", *q2.Options[0].Label)
	assert.Equal(t, "Red", *q2.Options[0].Value)
	assert.Equal(t, "Green", *q2.Options[2].Label)
	assert.Equal(t, 4, q2.Options[2].Rating)

	// declared valid type wins over inference
	q3 := set.Questions[2]
	assert.Equal(t, model.QuestionTypeNumber, q3.QuestionType)
	assert.True(t, q3.Required)
	assert.Equal(t, 3, q3.Order)
}

func TestNormalizeQuestionSetKeepsCanonicalIDs(t *testing.T) {
	qid := NewGUID()
	oid := NewGUID()
	doc := bson.M{
		"_id":       NewGUID(),
		"survey_id": NewGUID(),
		"questions": bson.A{
			bson.M{
				"question_id":   qid,
				"question_text": "Favorite color?",
				"question_type": "mcq",
				"options": bson.A{
					bson.M{"option_id": oid, "label": "Red", "value": "Red"},
				},
			},
		},
	}

	set, changed := NormalizeQuestionSet(doc)
	assert.False(t, changed)
	assert.Equal(t, doc["_id"], set.ID)
	assert.Empty(t, set.LegacyID)
	assert.Equal(t, qid, set.Questions[0].QuestionID)
	assert.Equal(t, oid, set.Questions[0].Options[0].OptionID)
}

func TestNormalizeQuestionSetIdempotent(t *testing.T) {
	legacy := bson.M{
		"_id":      "set-1",
		"surveyId": NewGUID(),
		"question": bson.A{
			"Any comments?",
			bson.M{"text": "Rate us", "choices": bson.A{"Good", "Bad"}},
		},
	}

	first, changed := NormalizeQuestionSet(legacy)
	require.True(t, changed)

	// rebuild the persisted shape and run it through again
	options := bson.A{}
	for _, opt := range first.Questions[1].Options {
		options = append(options, bson.M{
			"option_id": opt.OptionID,
			"label":     *opt.Label,
			"value":     *opt.Value,
		})
	}
	persisted := bson.M{
		"_id":       first.ID,
		"survey_id": first.SurveyID,
		"questions": bson.A{
			bson.M{
				"question_id":   first.Questions[0].QuestionID,
				"question_text": *first.Questions[0].QuestionText,
				"question_type": string(first.Questions[0].QuestionType),
			},
			bson.M{
				"question_id":   first.Questions[1].QuestionID,
				"question_text": *first.Questions[1].QuestionText,
				"question_type": string(first.Questions[1].QuestionType),
				"options":       options,
			},
		},
		"created_at": first.CreatedAt,
	}

	second, changed := NormalizeQuestionSet(persisted)
	assert.False(t, changed)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Questions[0].QuestionID, second.Questions[0].QuestionID)
	assert.Equal(t, first.Questions[1].Options[0].OptionID, second.Questions[1].Options[0].OptionID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestNormalizeOptionShapes(t *testing.T) {
	opt, minted := normalizeOption("Blue")
	require.NotNil(t, opt)
	assert.True(t, minted)
	assert.Equal(t, "Blue", *opt.Label)
	assert.Equal(t, "Blue", *opt.Value)

	opt, minted = normalizeOption(bson.M{"label": "Yes", "value": "y", "option_id": NewGUID()})
	require.NotNil(t, opt)
	assert.False(t, minted)
	assert.Equal(t, "Yes", *opt.Label)
	assert.Equal(t, "y", *opt.Value)

	// non-canonical id is replaced
	opt, minted = normalizeOption(bson.M{"label": "No", "id": 2})
	require.NotNil(t, opt)
	assert.True(t, minted)
	assert.True(t, IsGUID(opt.OptionID))

	opt, _ = normalizeOption(nil)
	assert.Nil(t, opt)
}

func TestQuestionSetUpdateDropsLegacyKeys(t *testing.T) {
	set := &model.QuestionSet{
		ID:        NewGUID(),
		SurveyID:  NewGUID(),
		CreatedAt: model.ISONow(),
		UpdatedAt: model.ISONow(),
	}

	update := questionSetUpdate(set)

	setDoc, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, set.SurveyID, setDoc["survey_id"])
	assert.Contains(t, setDoc, "questions")
	assert.Contains(t, setDoc, "created_at")
	assert.Contains(t, setDoc, "updated_at")

	// legacy spellings are removed so the document converges
	unset, ok := update["$unset"].(bson.M)
	require.True(t, ok)
	for _, key := range []string{"question", "qs", "surveyId", "survey"} {
		assert.Contains(t, unset, key)
	}
}

func TestInferQuestionType(t *testing.T) {
	assert.Equal(t, model.QuestionTypeText, inferQuestionType(nil))
	assert.Equal(t, model.QuestionTypeMCQ, inferQuestionType([]model.Option{{}}))
}
