package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aaryashetye/survey-API/internal/config"
	"github.com/aaryashetye/survey-API/internal/migration"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "compute and log every decision without writing")
	limit := flag.Int64("limit", 0, "cap the number of documents scanned (0 = all)")
	surveyID := flag.String("survey-id", "", "restrict the scan to one survey")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer client.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	migrator := migration.NewResponseMigrator(client.Database(cfg.DBName))
	stats, err := migrator.Run(ctx, migration.Options{
		DryRun:   *dryRun,
		Limit:    *limit,
		SurveyID: *surveyID,
	})
	if err != nil {
		log.Fatal("response migration failed:", err)
	}

	log.Printf("response migration done: docs=%d modified=%d answers_scanned=%d answers_fixed=%d answers_legacy=%d answers_skipped=%d dry_run=%t",
		stats.Scanned, stats.Modified, stats.AnswersScanned, stats.AnswersFixed, stats.AnswersLegacy, stats.AnswersSkipped, *dryRun)
}
