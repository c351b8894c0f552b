package app

import (
	"context"
	"log"
	"time"

	"github.com/aravhawk/vetpath/internal/config"
	"github.com/aravhawk/vetpath/internal/database"
	dbpostgres "github.com/aravhawk/vetpath/internal/database/postgres"
	"github.com/aravhawk/vetpath/internal/database/seeder"
	"github.com/aravhawk/vetpath/internal/domain/gap"
	"github.com/aravhawk/vetpath/internal/domain/matching"
	"github.com/aravhawk/vetpath/internal/infrastructure/ai"
	"github.com/aravhawk/vetpath/internal/infrastructure/cache"
	"github.com/aravhawk/vetpath/internal/pkg/jwt"
	"github.com/aravhawk/vetpath/internal/repository"
	"github.com/aravhawk/vetpath/internal/usecase"
	"github.com/aravhawk/vetpath/internal/ws"
)

// Container owns every long-lived dependency: connections, clients,
// repositories, and usecases.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	AI     *ai.GeminiClient
	Hub    *ws.Hub
	JWT    jwt.Service

	Occupations repository.OccupationRepository
	Skills      repository.OccupationSkillRepository
	Crosswalk   repository.CrosswalkRepository
	Training    repository.TrainingRepository

	Parse  usecase.ParseUsecase
	Match  usecase.MatchUsecase
	Gap    usecase.GapUsecase
	Resume usecase.ResumeUsecase
	Career usecase.OccupationUsecase
	Auth   usecase.AuthUsecase
	Admin  usecase.AdminUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		AI:     ai.NewGeminiClient(cfg.AI, logger),
		Hub:    ws.NewHub(logger),
		JWT:    jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpiresIn),
	}

	c.Occupations = repository.NewPostgresOccupationRepository(db)
	c.Skills = repository.NewPostgresOccupationSkillRepository(db)
	c.Crosswalk = repository.NewPostgresCrosswalkRepository(db)
	c.Training = repository.NewPostgresTrainingRepository(db)

	analyzer := gap.NewAnalyzer(gap.DefaultTraining(), gap.DefaultTunables())

	c.Parse = usecase.NewParseUsecase(c.AI, logger)
	c.Match = usecase.NewMatchUsecase(c.Occupations, c.Skills, c.Crosswalk, c.Cache, matching.DefaultTunables(), logger)
	c.Gap = usecase.NewGapUsecase(c.Occupations, c.Skills, c.Training, analyzer, c.AI, logger)
	c.Resume = usecase.NewResumeUsecase(c.AI, logger)
	c.Career = usecase.NewOccupationUsecase(c.Occupations, c.Skills, c.Crosswalk)
	c.Auth = usecase.NewAuthUsecase(cfg.Auth, c.JWT)

	notifier := ws.NewSeedNotifier(c.Hub)
	runner := seeder.Runner{
		Seeders: []seeder.Seeder{
			seeder.SchemaSeeder{},
			seeder.OccupationsSeeder{},
			seeder.CrosswalkSeeder{},
			seeder.TrainingSeeder{},
		},
		Logger:   logger,
		Progress: notifier.SeedProgress,
	}
	c.Admin = usecase.NewAdminUsecase(
		func(ctx context.Context) error { return runner.Run(ctx, db) },
		c.Cache,
		notifier,
		logger,
	)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
