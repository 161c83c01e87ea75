package migration

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aaryashetye/survey-API/internal/model"
)

// ResponseStats tallies one response migration run.
type ResponseStats struct {
	Scanned        int
	Modified       int
	AnswersScanned int
	AnswersFixed   int
	AnswersLegacy  int
	AnswersSkipped int
}

// QuestionFinder resolves a canonical question id to its definition by
// searching the question-set collection's embedded question arrays.
type QuestionFinder interface {
	FindQuestion(ctx context.Context, questionID string) (*model.Question, error)
}

// mongoQuestionFinder queries questions.question_id with a positional
// projection so only the matching embedded question comes back.
type mongoQuestionFinder struct {
	col *mongo.Collection
}

func (f *mongoQuestionFinder) FindQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	findOpts := options.FindOne().SetProjection(bson.M{"questions.$": 1})
	var doc struct {
		Questions []model.Question `bson:"questions"`
	}
	err := f.col.FindOne(ctx, bson.M{"questions.question_id": questionID}, findOpts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(doc.Questions) == 0 {
		return nil, nil
	}
	return &doc.Questions[0], nil
}

// questionCache memoizes lookups, misses included, for the lifetime of one
// run. It is created per run and discarded with it; no state survives.
type questionCache struct {
	finder QuestionFinder
	seen   map[string]*model.Question
}

func newQuestionCache(finder QuestionFinder) *questionCache {
	return &questionCache{finder: finder, seen: map[string]*model.Question{}}
}

func (c *questionCache) FindQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	if q, ok := c.seen[questionID]; ok {
		return q, nil
	}
	q, err := c.finder.FindQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	c.seen[questionID] = q
	return q, nil
}

// responseUpdate carries the fields one normalization pass wants written
// back. Answers and location are updated independently.
type responseUpdate struct {
	Answers         []interface{}
	Location        *model.Location
	AnswersChanged  bool
	LocationChanged bool
}

func (u *responseUpdate) needsWrite() bool {
	return u.AnswersChanged || u.LocationChanged
}

// normalizeResponse rewrites the answers and location of one legacy response
// document. Answers that cannot be resolved are flagged legacy and kept in
// place; nothing is ever dropped from the sequence.
func normalizeResponse(ctx context.Context, doc bson.M, finder QuestionFinder, stats *ResponseStats) (*responseUpdate, error) {
	upd := &responseUpdate{}

	if rawLoc, ok := doc["location"]; ok {
		if loc := NormalizeLocation(rawLoc); loc != nil && !locationUnchanged(rawLoc, loc) {
			upd.Location = loc
			upd.LocationChanged = true
		}
	}

	rawAnswers := asSlice(doc["answers"])
	answers := make([]interface{}, 0, len(rawAnswers))
	for _, raw := range rawAnswers {
		stats.AnswersScanned++
		ans := asMap(raw)
		if ans == nil {
			// not an object; carried through untouched
			answers = append(answers, raw)
			continue
		}
		changed, err := normalizeAnswer(ctx, ans, finder, stats)
		if err != nil {
			return nil, err
		}
		if changed {
			upd.AnswersChanged = true
		}
		answers = append(answers, ans)
	}
	upd.Answers = answers

	return upd, nil
}

// normalizeAnswer resolves one answer against the normalized question sets
// and projects its raw value onto the typed fields. The bool reports whether
// the answer actually changed.
func normalizeAnswer(ctx context.Context, ans bson.M, finder QuestionFinder, stats *ResponseStats) (bool, error) {
	if answerNormalized(ans) {
		stats.AnswersSkipped++
		return false, nil
	}

	rawValue := PickValue(ans, "value", "answer")

	qref := PickValue(ans, "question_id", "questionId")
	if qref == nil {
		return markLegacy(ans, stats), nil
	}
	qid, ok := qref.(string)
	if !ok || qid == "" {
		// numeric-index references cannot match canonical ids
		return markLegacy(ans, stats), nil
	}

	question, err := finder.FindQuestion(ctx, qid)
	if err != nil {
		return false, err
	}
	if question == nil {
		return markLegacy(ans, stats), nil
	}

	// an adopted type is persisted even when the answer stays legacy,
	// otherwise the adoption would be recomputed on every run
	typeAdopted := false
	if t, _ := ans["question_type"].(string); t == "" {
		ans["question_type"] = string(question.QuestionType)
		typeAdopted = true
	}
	qtype, _ := ans["question_type"].(string)

	if model.QuestionType(qtype).Choice() {
		if hasValue(ans, "option_id") {
			// option already resolved; only the typed value projections
			// still need deriving
			if rawValue == nil {
				return typeAdopted, nil
			}
			setTypedValue(ans, rawValue)
			stats.AnswersFixed++
			return true, nil
		}

		matched := matchOption(question, rawValue)
		if matched == nil {
			return markLegacy(ans, stats) || typeAdopted, nil
		}
		ans["option_id"] = matched.OptionID
		setTypedValue(ans, rawValue)
		stats.AnswersFixed++
		return true, nil
	}

	if rawValue == nil {
		return markLegacy(ans, stats) || typeAdopted, nil
	}
	setTypedValue(ans, rawValue)
	stats.AnswersFixed++
	return true, nil
}

// answerNormalized is the idempotence guard: an answer bearing a question
// type and at least one resolved projection was handled by an earlier pass.
func answerNormalized(ans bson.M) bool {
	if t, _ := ans["question_type"].(string); t == "" {
		return false
	}
	return hasValue(ans, "option_id") || hasValue(ans, "value_text") || hasValue(ans, "value_number")
}

func hasValue(ans bson.M, key string) bool {
	v, ok := ans[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}

// markLegacy flags an unresolvable answer for manual review. Re-marking an
// already flagged answer is not a change, otherwise every rerun would
// rewrite the same documents forever.
func markLegacy(ans bson.M, stats *ResponseStats) bool {
	stats.AnswersLegacy++
	if flagged, _ := ans["legacy"].(bool); flagged {
		return false
	}
	ans["legacy"] = true
	return true
}

// setTypedValue projects the raw answer value onto exactly one of value_text
// or value_number. Number-like values populate value_number and leave
// value_text null, and vice versa.
func setTypedValue(ans bson.M, raw interface{}) {
	if f, ok := ToFloat(raw); ok {
		ans["value_number"] = f
		ans["value_text"] = nil
		return
	}
	ans["value_text"] = fmt.Sprint(raw)
	ans["value_number"] = nil
}

// matchOption resolves a raw answer value against the question's options:
// case/whitespace-insensitive exact match on label or value first, then
// substring containment of the value within a label. The first match in
// declaration order wins.
func matchOption(q *model.Question, raw interface{}) *model.Option {
	nv := foldString(raw)
	if nv == "" {
		return nil
	}
	for i := range q.Options {
		opt := &q.Options[i]
		if foldPtr(opt.Label) == nv || foldPtr(opt.Value) == nv {
			return opt
		}
	}
	for i := range q.Options {
		opt := &q.Options[i]
		if label := foldPtr(opt.Label); label != "" && strings.Contains(label, nv) {
			return opt
		}
	}
	return nil
}

func foldPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*s))
}

// ResponseMigrator rewrites legacy response documents against the already
// normalized question-set collection. Run the question migrator first.
type ResponseMigrator struct {
	responses *mongo.Collection
	questions *mongo.Collection
}

// NewResponseMigrator creates a migrator over the responses collection with
// read-only access to question sets.
func NewResponseMigrator(db *mongo.Database) *ResponseMigrator {
	return &ResponseMigrator{
		responses: db.Collection("responses"),
		questions: db.Collection("questions"),
	}
}

// Run scans responses carrying answers, one document at a time. The question
// lookup cache lives exactly as long as the run. Writes are targeted $set
// updates on answers and/or location, never full replaces.
func (m *ResponseMigrator) Run(ctx context.Context, opts Options) (*ResponseStats, error) {
	filter := bson.M{"answers": bson.M{"$exists": true, "$ne": bson.A{}}}
	if opts.SurveyID != "" {
		filter["survey_id"] = opts.SurveyID
	}
	findOpts := options.Find().SetBatchSize(100)
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := m.responses.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	finder := newQuestionCache(&mongoQuestionFinder{col: m.questions})

	stats := &ResponseStats{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return stats, err
		}
		stats.Scanned++

		upd, err := normalizeResponse(ctx, doc, finder, stats)
		if err != nil {
			return stats, err
		}

		log.Printf("[%s] response %v changed=%t", runMode(opts.DryRun), doc["_id"], upd.needsWrite())
		if !upd.needsWrite() {
			continue
		}

		if !opts.DryRun {
			set := bson.M{}
			if upd.AnswersChanged {
				set["answers"] = upd.Answers
			}
			if upd.LocationChanged {
				set["location"] = upd.Location
			}
			if _, err := m.responses.UpdateOne(ctx, bson.M{"_id": doc["_id"]}, bson.M{"$set": set}); err != nil {
				return stats, err
			}
		}
		stats.Modified++
	}
	if err := cursor.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}
