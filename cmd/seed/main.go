package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aaryashetye/survey-API/internal/config"
	"github.com/aaryashetye/survey-API/internal/model"
)

// Seeds one survey with a deliberately legacy-shaped question set and two
// legacy responses, so the migrators have something real to chew on.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.DBName)

	surveyID := uuid.NewString()
	survey := model.Survey{
		ID:          surveyID,
		Title:       "Household Water Access",
		Description: "Baseline survey on household water sources and satisfaction.",
		CreatedAt:   model.ISONow(),
		UpdatedAt:   model.ISONow(),
	}
	if _, err := db.Collection("surveys").InsertOne(ctx, survey); err != nil {
		log.Fatalf("Failed to seed survey: %v", err)
	}

	// Legacy question set: bare string questions, ad hoc option shapes,
	// numeric identifiers. Nothing here is canonical on purpose.
	questionSet := bson.M{
		"_id":      1,
		"surveyId": surveyID,
		"question": bson.A{
			"What is your primary water source?",
			bson.M{
				"text":    "Favorite color?",
				"choices": bson.A{"Red", "Blue", bson.M{"option": "Green", "rating": 4}},
				"qno":     2,
			},
			bson.M{
				"q":        "How many people live in your household?",
				"type":     "number",
				"required": "yes",
			},
		},
	}
	if _, err := db.Collection("questions").InsertOne(ctx, questionSet); err != nil {
		log.Fatalf("Failed to seed question set: %v", err)
	}

	responses := []interface{}{
		bson.M{
			"_id":       uuid.NewString(),
			"survey_id": surveyID,
			"status":    "submitted",
			"location":  bson.M{"latitude": 12.9716, "longitude": 77.5946},
			"answers": bson.A{
				bson.M{"question_id": 2, "value": "red"},
				bson.M{"value": "42"},
			},
			"timestamp": model.ISONow(),
		},
		bson.M{
			"_id":       uuid.NewString(),
			"survey_id": surveyID,
			"status":    "submitted",
			"location":  bson.M{"lat": "13.01", "lng": "77.55", "accuracy": 8},
			"answers": bson.A{
				bson.M{"questionId": 3, "answer": 5},
			},
			"timestamp": model.ISONow(),
		},
	}
	if _, err := db.Collection("responses").InsertMany(ctx, responses); err != nil {
		log.Fatalf("Failed to seed responses: %v", err)
	}

	log.Printf("Seeded survey %s with 1 legacy question set and %d legacy responses", surveyID, len(responses))
}
