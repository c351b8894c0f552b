package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/aravhawk/vetpath/internal/config"
	dbpostgres "github.com/aravhawk/vetpath/internal/database/postgres"
	"github.com/aravhawk/vetpath/internal/database/seeder"
	"github.com/aravhawk/vetpath/internal/infrastructure/ingest"
	"github.com/aravhawk/vetpath/internal/repository"
)

func main() {
	_ = godotenv.Load()

	crosswalkURL := flag.String("crosswalk-url", "", "optional dataset URL with supplemental MOS crosswalk rows")
	catalogURL := flag.String("catalog-url", "", "optional certification catalog URL to scrape for training resources")
	entrySelector := flag.String("catalog-entry-selector", "", "CSS selector for one catalog entry")
	skillSelector := flag.String("catalog-skill-selector", "", "CSS selector for the skill name inside an entry")
	nameSelector := flag.String("catalog-name-selector", "", "CSS selector for the certification name inside an entry")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall seeding timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	runner := seeder.Runner{
		Seeders: []seeder.Seeder{
			seeder.SchemaSeeder{},
			seeder.OccupationsSeeder{},
			seeder.CrosswalkSeeder{},
			seeder.TrainingSeeder{},
		},
		Logger: logger,
	}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	if fetcher := ingest.NewCrosswalkFetcher(*crosswalkURL, logger); fetcher != nil {
		entries, err := fetcher.Fetch(ctx)
		if err != nil {
			log.Fatalf("crosswalk ingest failed: %v", err)
		}
		n, err := seeder.InsertCrosswalkEntries(ctx, db, entries)
		if err != nil {
			log.Fatalf("crosswalk upsert failed: %v", err)
		}
		logger.Printf("[Seed] crosswalk dataset: %d rows upserted", n)
	}

	if *catalogURL != "" {
		scraper := ingest.NewCertCatalogScraper(repository.NewPostgresTrainingRepository(db), logger)
		err := scraper.Scrape(ctx, []ingest.CertCatalogTarget{{
			CatalogURL:    *catalogURL,
			EntrySelector: *entrySelector,
			SkillSelector: *skillSelector,
			NameSelector:  *nameSelector,
		}})
		if err != nil {
			log.Fatalf("catalog ingest failed: %v", err)
		}
	}

	logger.Println("[Seed] database seeded successfully")
}
