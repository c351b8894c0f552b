package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

const matchCacheTTL = 10 * time.Minute

// MatchCache stores computed match lists keyed by normalized input. The
// catalog is immutable between seedings, so a short TTL is purely a
// memory bound.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type matchCacheKeyInput struct {
	Skills     []string `json:"skills"`
	MinSalary  *int     `json:"min_salary,omitempty"`
	Industries []string `json:"industries,omitempty"`
	Limit      int      `json:"limit"`
}

// MatchCacheKey hashes the normalized skill set plus preferences so
// equivalent requests share an entry.
func MatchCacheKey(normalizedSkills []string, prefs *Preferences, limit int) string {
	in := matchCacheKeyInput{
		Skills: normalizedSkills,
		Limit:  limit,
	}
	if prefs != nil {
		in.MinSalary = prefs.MinSalary
		in.Industries = prefs.Industries
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "match:" + hex.EncodeToString(sum[:])
}
