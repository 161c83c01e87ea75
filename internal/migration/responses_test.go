package migration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/aaryashetye/survey-API/internal/model"
)

type stubFinder struct {
	questions map[string]*model.Question
	calls     int
}

func (f *stubFinder) FindQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	f.calls++
	return f.questions[questionID], nil
}

func strPtr(s string) *string { return &s }

func colorQuestion(qid string) *model.Question {
	return &model.Question{
		QuestionID:   qid,
		QuestionText: strPtr("Favorite color?"),
		QuestionType: model.QuestionTypeMCQ,
		Options: []model.Option{
			{OptionID: NewGUID(), Label: strPtr("Red"), Value: strPtr("Red")},
			{OptionID: NewGUID(), Label: strPtr("Blue"), Value: strPtr("Blue")},
			{OptionID: NewGUID(), Label: strPtr("Strongly Agree"), Value: strPtr("5")},
		},
	}
}

func TestNormalizeAnswerMatchesOptionCaseInsensitive(t *testing.T) {
	qid := NewGUID()
	q := colorQuestion(qid)
	finder := &stubFinder{questions: map[string]*model.Question{qid: q}}
	stats := &ResponseStats{}

	ans := bson.M{"question_id": qid, "value": "red"}
	changed, err := normalizeAnswer(context.Background(), ans, finder, stats)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, q.Options[0].OptionID, ans["option_id"])
	assert.Equal(t, "mcq", ans["question_type"])
	assert.Equal(t, "red", ans["value_text"])
	assert.Nil(t, ans["value_number"])
	assert.Equal(t, 1, stats.AnswersFixed)
}

func TestNormalizeAnswerSubstringFallback(t *testing.T) {
	qid := NewGUID()
	q := colorQuestion(qid)
	finder := &stubFinder{questions: map[string]*model.Question{qid: q}}
	stats := &ResponseStats{}

	ans := bson.M{"question_id": qid, "value": "agree"}
	changed, err := normalizeAnswer(context.Background(), ans, finder, stats)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, q.Options[2].OptionID, ans["option_id"])
}

func TestNormalizeAnswerUnresolvableIsLegacy(t *testing.T) {
	finder := &stubFinder{questions: map[string]*model.Question{}}

	cases := []bson.M{
		{"value": "42"},                 // no question reference at all
		{"question_id": 2, "value": 5},  // numeric index, not a canonical id
		{"question_id": NewGUID(), "value": "x"}, // unknown question
	}
	for _, ans := range cases {
		stats := &ResponseStats{}
		changed, err := normalizeAnswer(context.Background(), ans, finder, stats)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, true, ans["legacy"])
		assert.Equal(t, 1, stats.AnswersLegacy)
	}
}

func TestNormalizeAnswerNonChoiceCoercion(t *testing.T) {
	qid := NewGUID()
	finder := &stubFinder{questions: map[string]*model.Question{
		qid: {QuestionID: qid, QuestionType: model.QuestionTypeNumber},
	}}
	stats := &ResponseStats{}

	ans := bson.M{"questionId": qid, "answer": "42"}
	changed, err := normalizeAnswer(context.Background(), ans, finder, stats)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 42.0, ans["value_number"])
	assert.Nil(t, ans["value_text"])
}

func TestNormalizeAnswerExistingOptionGetsTypedValue(t *testing.T) {
	qid := NewGUID()
	q := colorQuestion(qid)
	finder := &stubFinder{questions: map[string]*model.Question{qid: q}}
	stats := &ResponseStats{}

	// option already resolved but typed projections missing
	ans := bson.M{"question_id": qid, "option_id": q.Options[2].OptionID, "value": 5}
	changed, err := normalizeAnswer(context.Background(), ans, finder, stats)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 5.0, ans["value_number"])
	assert.Nil(t, ans["value_text"])
}

func TestNormalizeAnswerSkipsAlreadyNormalized(t *testing.T) {
	finder := &stubFinder{questions: map[string]*model.Question{}}
	stats := &ResponseStats{}

	ans := bson.M{"question_id": NewGUID(), "question_type": "text", "value_text": "done"}
	changed, err := normalizeAnswer(context.Background(), ans, finder, stats)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, stats.AnswersSkipped)
	assert.Zero(t, finder.calls)
}

func TestMarkLegacyReRunIsNotAChange(t *testing.T) {
	finder := &stubFinder{questions: map[string]*model.Question{}}
	stats := &ResponseStats{}

	ans := bson.M{"value": "orphan", "legacy": true}
	changed, err := normalizeAnswer(context.Background(), ans, finder, stats)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, stats.AnswersLegacy)
}

func TestQuestionCacheMemoizesMisses(t *testing.T) {
	qid := NewGUID()
	finder := &stubFinder{questions: map[string]*model.Question{}}
	cached := newQuestionCache(finder)

	for i := 0; i < 3; i++ {
		q, err := cached.FindQuestion(context.Background(), qid)
		require.NoError(t, err)
		assert.Nil(t, q)
	}
	assert.Equal(t, 1, finder.calls)
}

func TestNormalizeResponseReshapesLocation(t *testing.T) {
	finder := &stubFinder{questions: map[string]*model.Question{}}
	stats := &ResponseStats{}

	doc := bson.M{
		"_id":      "r1",
		"location": bson.M{"latitude": 12.9716, "longitude": 77.5946},
		"answers":  bson.A{},
	}
	upd, err := normalizeResponse(context.Background(), doc, finder, stats)
	require.NoError(t, err)
	assert.True(t, upd.LocationChanged)
	require.NotNil(t, upd.Location)
	assert.Equal(t, 12.9716, upd.Location.Lat)

	// canonical location does not force a write
	canonical := bson.M{
		"_id":      "r2",
		"location": bson.M{"lat": 12.9716, "lng": 77.5946},
		"answers":  bson.A{},
	}
	upd, err = normalizeResponse(context.Background(), canonical, finder, stats)
	require.NoError(t, err)
	assert.False(t, upd.LocationChanged)

	// unparseable location is left alone
	junk := bson.M{
		"_id":      "r3",
		"location": bson.M{"lat": "bad"},
		"answers":  bson.A{},
	}
	upd, err = normalizeResponse(context.Background(), junk, finder, stats)
	require.NoError(t, err)
	assert.False(t, upd.LocationChanged)
}

func TestNormalizeResponseKeepsEveryAnswer(t *testing.T) {
	qid := NewGUID()
	q := colorQuestion(qid)
	finder := &stubFinder{questions: map[string]*model.Question{qid: q}}
	stats := &ResponseStats{}

	doc := bson.M{
		"_id": "r1",
		"answers": bson.A{
			bson.M{"question_id": qid, "value": "Blue"},
			bson.M{"value": "orphan"},
			"not-even-an-object",
		},
	}
	upd, err := normalizeResponse(context.Background(), doc, finder, stats)
	require.NoError(t, err)
	assert.True(t, upd.AnswersChanged)
	require.Len(t, upd.Answers, 3)
	assert.Equal(t, "not-even-an-object", upd.Answers[2])
	assert.Equal(t, 3, stats.AnswersScanned)
	assert.Equal(t, 1, stats.AnswersFixed)
	assert.Equal(t, 1, stats.AnswersLegacy)
}

func TestNormalizeResponseScansNonObjectEntries(t *testing.T) {
	finder := &stubFinder{questions: map[string]*model.Question{}}
	stats := &ResponseStats{}

	doc := bson.M{
		"_id":     "r1",
		"answers": bson.A{"free text", 7},
	}
	upd, err := normalizeResponse(context.Background(), doc, finder, stats)
	require.NoError(t, err)
	assert.False(t, upd.AnswersChanged)
	require.Len(t, upd.Answers, 2)
	// every element of the sequence counts, objects or not
	assert.Equal(t, 2, stats.AnswersScanned)
	assert.Zero(t, stats.AnswersFixed)
	assert.Zero(t, stats.AnswersLegacy)
}

func TestLegacyAnswerTypeAdoptionIsPersisted(t *testing.T) {
	qid := NewGUID()
	q := colorQuestion(qid)
	finder := &stubFinder{questions: map[string]*model.Question{qid: q}}

	// already flagged, still unresolvable, but the question now exists:
	// the adopted type is a real change the first time around
	ans := bson.M{"question_id": qid, "value": "charcoal", "legacy": true}
	stats := &ResponseStats{}
	changed, err := normalizeAnswer(context.Background(), ans, finder, stats)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "mcq", ans["question_type"])
	assert.Equal(t, true, ans["legacy"])

	// second pass finds nothing left to adopt
	changed, err = normalizeAnswer(context.Background(), ans, finder, stats)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMatchOptionDeclarationOrderWins(t *testing.T) {
	q := &model.Question{Options: []model.Option{
		{OptionID: "a", Label: strPtr("Agree")},
		{OptionID: "b", Label: strPtr("Strongly Agree")},
	}}

	// exact match beats substring containment
	matched := matchOption(q, " agree ")
	require.NotNil(t, matched)
	assert.Equal(t, "a", matched.OptionID)

	// substring scans in declaration order
	matched = matchOption(q, "strongly")
	require.NotNil(t, matched)
	assert.Equal(t, "b", matched.OptionID)

	assert.Nil(t, matchOption(q, "disliked it"))
	assert.Nil(t, matchOption(q, nil))
}
