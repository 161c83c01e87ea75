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

// Options configure a migration run.
type Options struct {
	// DryRun computes and logs every decision without writing.
	DryRun bool
	// Limit caps the number of documents scanned; 0 scans everything.
	Limit int64
	// SurveyID restricts the scan to one survey when non-empty.
	SurveyID string
}

// QuestionStats tallies one question-set migration run.
type QuestionStats struct {
	Scanned  int
	Modified int
	Skipped  int
}

// NormalizeQuestionSet rewrites a legacy question-set document into canonical
// shape. The second return value is the write decision: false exactly when
// every identifier was already canonical and every field already sat under
// its canonical name, which makes a second pass over normalized data a no-op.
//
// Identifiers already canonical are never replaced; everything else is
// coerced to a best-effort default rather than failing the document.
func NormalizeQuestionSet(doc bson.M) (*model.QuestionSet, bool) {
	changed := false
	set := &model.QuestionSet{Questions: []model.Question{}}

	if id, ok := guidValue(doc["_id"]); ok {
		set.ID = id
	} else {
		set.ID = NewGUID()
		if doc["_id"] != nil {
			// archive the replaced key instead of losing the old reference
			set.LegacyID = strings.TrimSpace(fmt.Sprint(doc["_id"]))
		}
		changed = true
	}

	// A non-canonical survey reference is a foreign key we cannot safely
	// coerce; keep its value but move it under the canonical field name.
	set.SurveyID = PickString(doc, "survey_id", "surveyId", "survey")
	if cur, _ := doc["survey_id"].(string); set.SurveyID != "" && cur != set.SurveyID {
		changed = true
	}

	order := 1
	for _, item := range asSlice(PickValue(doc, "questions", "question", "qs")) {
		q, minted := normalizeQuestion(item, order)
		if minted {
			changed = true
		}
		set.Questions = append(set.Questions, q)
		order++
	}

	set.CreatedAt = PickString(doc, "created_at")
	if set.CreatedAt == "" {
		set.CreatedAt = model.ISONow()
	}
	set.UpdatedAt = model.ISONow()

	return set, changed
}

// normalizeQuestion resolves the legacy shapes a question arrives in: a
// document with any of several key spellings, or a bare string that becomes
// a minimal text-only question. The bool reports whether an identifier had
// to be minted.
func normalizeQuestion(item interface{}, fallbackOrder int) (model.Question, bool) {
	q := model.Question{
		Order:    fallbackOrder,
		Options:  []model.Option{},
		Metadata: map[string]interface{}{},
	}

	m := asMap(item)
	if m == nil {
		q.QuestionID = NewGUID()
		q.QuestionText = trimString(item)
		q.QuestionType = model.QuestionTypeText
		return q, true
	}

	minted := false
	q.QuestionText = trimString(PickValue(m, "question_text", "text", "label", "q"))

	for _, raw := range asSlice(PickValue(m, "options", "choices", "opts")) {
		opt, optMinted := normalizeOption(raw)
		if opt == nil {
			continue
		}
		if optMinted {
			minted = true
		}
		q.Options = append(q.Options, *opt)
	}

	if t := PickString(m, "question_type", "type"); model.ValidQuestionType(t) {
		q.QuestionType = model.QuestionType(t)
	} else {
		q.QuestionType = inferQuestionType(q.Options)
	}

	if v := PickValue(m, "required"); v != nil {
		q.Required = toBool(v)
	}
	if n, ok := toInt(PickValue(m, "order", "qno")); ok {
		q.Order = n
	}
	if meta := asMap(m["metadata"]); meta != nil {
		q.Metadata = meta
	}

	if id, ok := guidValue(m["question_id"]); ok {
		q.QuestionID = id
	} else {
		q.QuestionID = NewGUID()
		minted = true
	}

	return q, minted
}

// normalizeOption accepts the legacy option shapes: a document under any of
// several key spellings, a bare string, or another scalar. An existing
// option_id is reused only when it is already canonical.
func normalizeOption(raw interface{}) (*model.Option, bool) {
	if raw == nil {
		return nil, false
	}

	m := asMap(raw)
	if m == nil {
		s := trimString(raw)
		return &model.Option{OptionID: NewGUID(), Label: s, Value: s}, true
	}

	label := PickValue(m, "label", "option", "text", "value")
	value := PickValue(m, "value")
	if value == nil {
		value = label
	}

	opt := &model.Option{Label: trimString(label), Value: trimString(value)}
	if r, ok := toInt(m["rating"]); ok {
		opt.Rating = r
	}

	if id, ok := guidValue(PickValue(m, "option_id", "optionId", "id")); ok {
		opt.OptionID = id
		return opt, false
	}
	opt.OptionID = NewGUID()
	return opt, true
}

// inferQuestionType applies the options-presence heuristic: choices offered
// means mcq, otherwise free text.
func inferQuestionType(opts []model.Option) model.QuestionType {
	if len(opts) > 0 {
		return model.QuestionTypeMCQ
	}
	return model.QuestionTypeText
}

// QuestionMigrator rewrites legacy question-set documents in place.
type QuestionMigrator struct {
	col *mongo.Collection
}

// NewQuestionMigrator creates a migrator over the question-set collection.
func NewQuestionMigrator(db *mongo.Database) *QuestionMigrator {
	return &QuestionMigrator{col: db.Collection("questions")}
}

// Run scans the collection once, normalizing document by document. Store
// errors abort the run and propagate; a rerun is safe because documents that
// are already canonical are detected and skipped.
func (m *QuestionMigrator) Run(ctx context.Context, opts Options) (*QuestionStats, error) {
	filter := bson.M{}
	if opts.SurveyID != "" {
		filter["survey_id"] = opts.SurveyID
	}
	findOpts := options.Find().SetBatchSize(100)
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := m.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := &QuestionStats{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return stats, err
		}
		stats.Scanned++

		set, needsWrite := NormalizeQuestionSet(doc)
		log.Printf("[%s] question set %s need_update=%t", runMode(opts.DryRun), set.ID, needsWrite)
		if !needsWrite {
			stats.Skipped++
			continue
		}

		if !opts.DryRun {
			if err := m.write(ctx, doc, set); err != nil {
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

// questionSetUpdate builds the in-place rewrite: canonical fields are set and
// the legacy key spellings they superseded are dropped, so the stored
// document converges to the canonical shape instead of carrying both.
func questionSetUpdate(set *model.QuestionSet) bson.M {
	return bson.M{
		"$set": bson.M{
			"survey_id":  set.SurveyID,
			"questions":  set.Questions,
			"created_at": set.CreatedAt,
			"updated_at": set.UpdatedAt,
		},
		"$unset": bson.M{
			"question": "",
			"qs":       "",
			"surveyId": "",
			"survey":   "",
		},
	}
}

func (m *QuestionMigrator) write(ctx context.Context, orig bson.M, set *model.QuestionSet) error {
	if id, ok := guidValue(orig["_id"]); ok && id == set.ID {
		_, err := m.col.UpdateOne(ctx, bson.M{"_id": set.ID}, questionSetUpdate(set))
		return err
	}

	// The primary key itself was re-minted; $set cannot rewrite _id, so the
	// canonical document is upserted under its new id.
	replaceOpts := options.Replace().SetUpsert(true)
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": set.ID}, set, replaceOpts)
	return err
}

func runMode(dryRun bool) string {
	if dryRun {
		return "DRY"
	}
	return "LIVE"
}
