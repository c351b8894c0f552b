package usecase

import (
	"context"
	"log"
	"time"
)

// ReseedFunc replaces the catalog data. Wired to the seeder runner.
type ReseedFunc func(ctx context.Context) error

// ReseedNotifier receives progress events during a reseed. Wired to the
// websocket hub; nil when nobody is listening.
type ReseedNotifier interface {
	ReseedStarted()
	ReseedFinished(err error)
}

type AdminUsecase interface {
	Reseed(ctx context.Context) error
}

// Admin coordinates catalog reseeds: run the seeders, then drop every
// cached match result so stale rows cannot be served.
type Admin struct {
	reseed   ReseedFunc
	cache    PatternCache
	notifier ReseedNotifier
	logger   *log.Logger
}

// PatternCache is the invalidation surface of the match cache.
type PatternCache interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

func NewAdminUsecase(reseed ReseedFunc, cache PatternCache, notifier ReseedNotifier, logger *log.Logger) *Admin {
	if logger == nil {
		logger = log.Default()
	}
	return &Admin{reseed: reseed, cache: cache, notifier: notifier, logger: logger}
}

func (u *Admin) Reseed(ctx context.Context) error {
	if u.reseed == nil {
		return ErrInternal
	}

	if u.notifier != nil {
		u.notifier.ReseedStarted()
	}

	start := time.Now()
	err := u.reseed(ctx)
	if u.notifier != nil {
		u.notifier.ReseedFinished(err)
	}
	if err != nil {
		u.logger.Printf("[Admin] reseed failed after %s: %v", time.Since(start), err)
		return err
	}

	if u.cache != nil {
		if cerr := u.cache.DeleteByPattern(ctx, "match:*"); cerr != nil {
			u.logger.Printf("[Admin] cache invalidation after reseed: %v", cerr)
		}
	}

	u.logger.Printf("[Admin] reseed completed in %s", time.Since(start))
	return nil
}
