package seeder

import (
	"context"
	"fmt"
	"log"

	"github.com/aravhawk/vetpath/internal/database"
)

// ProgressFunc receives one message per completed seeder. Optional.
type ProgressFunc func(name string)

type Runner struct {
	Seeders  []Seeder
	Logger   *log.Logger
	Progress ProgressFunc
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seed] %s done", s.Name())
		}
		if r.Progress != nil {
			r.Progress(s.Name())
		}
	}
	return nil
}
