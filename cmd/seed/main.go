// Package main implements the seeder: it loads study activities, groups,
// and words (with their group membership) from a JSON file into the
// database. The whole load runs as one transaction, so a bad seed file
// leaves the database untouched.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/lang-portal/internal/config"
	"github.com/phrazzld/lang-portal/internal/domain"
	"github.com/phrazzld/lang-portal/internal/platform/logger"
	"github.com/phrazzld/lang-portal/internal/platform/postgres"
	"github.com/phrazzld/lang-portal/internal/store"
)

// seedFile is the on-disk shape of a seed data file.
type seedFile struct {
	StudyActivities []seedActivity `json:"study_activities"`
	Groups          []string       `json:"groups"`
	Words           []seedWord     `json:"words"`
}

type seedActivity struct {
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type seedWord struct {
	Korean          string         `json:"korean"`
	Transliteration string         `json:"transliteration"`
	English         string         `json:"english"`
	Parts           map[string]any `json:"parts"`
	Groups          []string       `json:"groups"`
}

func main() {
	seedPath := flag.String("file", "seed.json", "path to the seed data file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database connection", "error", err)
		}
	}()

	data, err := loadSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	if err := seed(context.Background(), db, data, appLogger); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	appLogger.Info("seeding completed",
		"activities", len(data.StudyActivities),
		"groups", len(data.Groups),
		"words", len(data.Words))
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func loadSeedFile(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &data, nil
}

// seed inserts the seed data in dependency order: activities and groups
// first, then words with their group links.
func seed(ctx context.Context, db *sql.DB, data *seedFile, appLogger *slog.Logger) error {
	activityStore := postgres.NewStudyActivityStore(db, appLogger)
	groupStore := postgres.NewGroupStore(db, appLogger)
	wordStore := postgres.NewWordStore(db, appLogger)

	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txActivities := activityStore.WithTx(tx)
		for _, entry := range data.StudyActivities {
			activity, err := domain.NewStudyActivity(entry.Name, entry.Thumbnail, entry.Description, entry.URL)
			if err != nil {
				return fmt.Errorf("invalid activity %q: %w", entry.Name, err)
			}
			if err := txActivities.Create(ctx, activity); err != nil {
				return fmt.Errorf("failed to create activity %q: %w", entry.Name, err)
			}
		}

		groupIDs := make(map[string]int64, len(data.Groups))
		txGroups := groupStore.WithTx(tx)
		for _, name := range data.Groups {
			group, err := domain.NewGroup(name)
			if err != nil {
				return fmt.Errorf("invalid group %q: %w", name, err)
			}
			if err := txGroups.Create(ctx, group); err != nil {
				return fmt.Errorf("failed to create group %q: %w", name, err)
			}
			groupIDs[name] = group.ID
		}

		txWords := wordStore.WithTx(tx)
		for _, entry := range data.Words {
			word, err := domain.NewWord(entry.Korean, entry.Transliteration, entry.English, entry.Parts)
			if err != nil {
				return fmt.Errorf("invalid word %q: %w", entry.Korean, err)
			}

			ids := make([]int64, 0, len(entry.Groups))
			for _, name := range entry.Groups {
				id, ok := groupIDs[name]
				if !ok {
					return fmt.Errorf("word %q references unknown group %q", entry.Korean, name)
				}
				ids = append(ids, id)
			}

			if err := txWords.Create(ctx, word, ids); err != nil {
				return fmt.Errorf("failed to create word %q: %w", entry.Korean, err)
			}
		}

		return nil
	})
}
