// Copyright 2025 Roamly Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/roamly/waypoint"
	"github.com/roamly/waypoint/ai"
	"github.com/roamly/waypoint/answer"
	"github.com/roamly/waypoint/core"
	"github.com/roamly/waypoint/geo"
	"github.com/roamly/waypoint/ingestion"
	"github.com/roamly/waypoint/reembed"
	"github.com/roamly/waypoint/search"
)

func main() {
	app := &cli.App{
		Name:  "waypoint",
		Usage: "Landmark question answering for location-aware guides",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "add-landmark",
				Usage:  "Register a landmark, deriving its geohash cell from the coordinate",
				Action: addLandmarkCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Landmark name",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lat",
						Usage:    "Latitude in degrees",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lon",
						Usage:    "Longitude in degrees",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "city",
						Usage: "City the landmark is in",
					},
					&cli.StringFlag{
						Name:  "country",
						Usage: "Country the landmark is in",
					},
				),
			},
			{
				Name:   "seed",
				Usage:  "Register landmarks and embed their QA pairs and facts from a JSON seed file",
				Action: seedCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "src",
						Aliases:  []string{"s"},
						Usage:    "Path to the JSON seed file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for concurrent embedding",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of seeds to embed per request",
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Regenerate stored QA pair and fact vectors with the configured embedding model",
				Action: reembedCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of items to embed per request",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Progress report frequency in items",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Retry attempts for failed embedding requests",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: time.Second,
					},
				),
			},
			{
				Name:      "ask",
				Usage:     "Answer a question about a landmark",
				ArgsUsage: "QUESTION",
				Action:    askCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:  "landmark",
						Usage: "Landmark name (omit to resolve from --lat/--lon)",
					},
					&cli.Float64Flag{
						Name:  "lat",
						Usage: "Visitor latitude in degrees",
					},
					&cli.Float64Flag{
						Name:  "lon",
						Usage: "Visitor longitude in degrees",
					},
					&cli.IntFlag{
						Name:  "age",
						Usage: "Visitor age for answer personalization",
					},
					&cli.StringFlag{
						Name:  "interest",
						Usage: "Visitor interest for answer personalization",
					},
					&cli.StringFlag{
						Name:  "from",
						Usage: "Visitor country of origin",
					},
				),
			},
			{
				Name:      "interpret",
				Usage:     "Extract a landmark reference from free-form text",
				ArgsUsage: "TEXT",
				Action:    interpretCommand,
				Flags: append(databaseFlags(),
					&cli.Float64Flag{
						Name:  "lat",
						Usage: "Visitor latitude for proximity suggestions",
					},
					&cli.Float64Flag{
						Name:  "lon",
						Usage: "Visitor longitude for proximity suggestions",
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search a landmark's stored QA pairs and facts",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "landmark",
						Usage:    "Landmark name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 10,
					},
				),
			},
			{
				Name:   "introduce",
				Usage:  "Assemble a spoken welcome for a landmark",
				Action: introduceCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "landmark",
						Usage:    "Landmark name",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "interest",
						Usage: "Visitor interests (repeatable)",
					},
					&cli.IntFlag{
						Name:  "age",
						Usage: "Visitor age, selecting the response tier",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// databaseFlags are the flags shared by every command that opens the
// database.
func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "generator-model",
			Usage: "Answer generation model name",
			Value: "qwen2.5:3b",
		},
		&cli.IntFlag{
			Name:  "precision",
			Usage: "Geohash precision for proximity cells",
			Value: geo.DefaultPrecision,
		},
	}
}

// openDatabase opens the database configured by the shared flags.
func openDatabase(c *cli.Context) (*waypoint.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGeneratorModel(c.String("generator-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := waypoint.NewDatabase(c.String("db"),
		waypoint.WithAIConfig(aiConfig),
		waypoint.WithGeohashPrecision(c.Int("precision")))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// coordinateFromFlags returns the coordinate when both --lat and --lon
// are set.
func coordinateFromFlags(c *cli.Context) *core.Coordinate {
	if !c.IsSet("lat") || !c.IsSet("lon") {
		return nil
	}
	return &core.Coordinate{
		Latitude:  c.Float64("lat"),
		Longitude: c.Float64("lon"),
	}
}

func addLandmarkCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	landmark, err := db.RegisterLandmark(context.Background(), &core.Landmark{
		Name: c.String("name"),
		Coordinate: core.Coordinate{
			Latitude:  c.Float64("lat"),
			Longitude: c.Float64("lon"),
		},
		City:    c.String("city"),
		Country: c.String("country"),
	})
	if err != nil {
		return fmt.Errorf("failed to register landmark: %w", err)
	}

	fmt.Printf("Registered %q (%d) in cell %s\n", landmark.Name, landmark.Id, landmark.Geohash)
	return nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	file, err := ingestion.LoadSeedFile(c.String("src"))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []ingestion.Option
	if c.IsSet("pool-size") {
		opts = append(opts, ingestion.WithPoolSize(c.Int("pool-size")))
	}
	if c.IsSet("batch-size") {
		opts = append(opts, ingestion.WithBatchSize(c.Int("batch-size")))
	}

	pipeline, err := db.NewSeedPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	for _, seed := range file.Landmarks {
		landmark, err := db.RegisterLandmark(ctx, seed.Landmark())
		if err != nil {
			return fmt.Errorf("failed to register %q: %w", seed.Name, err)
		}

		report, err := pipeline.Seed(ctx, landmark.Id, seed.QAPairs, seed.Facts)
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", seed.Name, err)
		}

		fmt.Printf("Seeded %q (%d): %d qa pairs, %d facts\n",
			landmark.Name, landmark.Id, report.QAPairs, report.Facts)
	}

	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	embedder := db.AIProvider().Embedder()

	qaReembedder, err := reembed.NewQAReembedder(
		db.LandmarkRepository(), db.QARepository(), embedder, config, os.Stderr)
	if err != nil {
		return err
	}
	if err := qaReembedder.Run(ctx); err != nil {
		return fmt.Errorf("qa pair reembedding failed: %w", err)
	}

	factReembedder, err := reembed.NewFactReembedder(
		db.LandmarkRepository(), db.FactRepository(), embedder, config, os.Stderr)
	if err != nil {
		return err
	}
	if err := factReembedder.Run(ctx); err != nil {
		return fmt.Errorf("fact reembedding failed: %w", err)
	}

	return nil
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := db.NewEngine()
	if err != nil {
		return err
	}

	result, err := engine.AnswerQuestion(context.Background(), answer.AskRequest{
		Question:       question,
		LandmarkName:   c.String("landmark"),
		Coordinate:     coordinateFromFlags(c),
		Age:            c.Int("age"),
		Interest:       c.String("interest"),
		VisitorCountry: c.String("from"),
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Answer)
	fmt.Fprintf(os.Stderr, "strategy=%s key=%s confidence=%0.3f\n",
		result.Strategy, result.MatchedKey, result.Confidence)
	return nil
}

func interpretCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("text to interpret is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := db.NewEngine()
	if err != nil {
		return err
	}

	interpretation, err := engine.InterpretVoiceQuery(context.Background(), text, coordinateFromFlags(c))
	if err != nil {
		return err
	}

	switch interpretation.Type {
	case answer.InterpretationGeneral:
		fmt.Printf("landmark: %s\n", interpretation.LandmarkName)
	case answer.InterpretationSuggestion:
		fmt.Println(interpretation.Prompt)
	default:
		fmt.Println(interpretation.Prompt)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	landmark, err := db.LandmarkRepository().GetLandmarkByName(ctx, c.String("landmark"))
	if err != nil {
		return fmt.Errorf("failed to resolve landmark %q: %w", c.String("landmark"), err)
	}

	searcher, err := search.NewSearcher(db.QARepository(), db.FactRepository(), db.AIProvider())
	if err != nil {
		return err
	}

	results, err := searcher.FindSimilar(ctx, landmark.Id, query, c.Int("limit"))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for _, result := range results {
		kind := "fact"
		if result.Pair != nil {
			kind = "qa"
		}
		fmt.Printf("%5.2f  %-4s  %-24s  %s\n", result.Score, kind, result.Key(), result.Text())
	}
	return nil
}

func introduceCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := db.NewEngine()
	if err != nil {
		return err
	}

	text, err := engine.Introduce(context.Background(),
		c.String("landmark"), c.StringSlice("interest"), c.Int("age"))
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
