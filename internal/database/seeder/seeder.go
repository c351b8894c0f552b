package seeder

import (
	"context"

	"github.com/aravhawk/vetpath/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
