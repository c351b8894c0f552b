package ingest

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/aravhawk/vetpath/internal/domain/occupation"
	"github.com/aravhawk/vetpath/internal/repository"
)

// CertCatalogTarget describes one certification catalog page and the
// CSS selectors that locate a training entry inside it.
type CertCatalogTarget struct {
	CatalogURL       string
	EntrySelector    string
	SkillSelector    string
	NameSelector     string
	ProviderSelector string
	DurationSelector string
	CostSelector     string
}

// CertCatalogScraper crawls certification catalogs and upserts each
// entry as a training resource keyed by skill name.
type CertCatalogScraper struct {
	training repository.TrainingRepository
	logger   *log.Logger
}

func NewCertCatalogScraper(training repository.TrainingRepository, logger *log.Logger) *CertCatalogScraper {
	if logger == nil {
		logger = log.Default()
	}
	return &CertCatalogScraper{training: training, logger: logger}
}

func (s *CertCatalogScraper) Scrape(ctx context.Context, targets []CertCatalogTarget) error {
	if s == nil || s.training == nil {
		return errors.New("nil scraper/repository")
	}

	var firstErr error
	for _, t := range targets {
		if strings.TrimSpace(t.CatalogURL) == "" || strings.TrimSpace(t.EntrySelector) == "" {
			continue
		}
		if err := s.scrapeCatalog(ctx, t); err != nil {
			s.logger.Printf("[Ingest] catalog scrape error url=%s err=%v", t.CatalogURL, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *CertCatalogScraper) scrapeCatalog(ctx context.Context, t CertCatalogTarget) error {
	allowed := hostFromURL(t.CatalogURL)
	var c *colly.Collector
	if allowed == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	var resources []occupation.TrainingResource
	c.OnHTML(t.EntrySelector, func(e *colly.HTMLElement) {
		skill := selectText(e, t.SkillSelector)
		name := selectText(e, t.NameSelector)
		if skill == "" || name == "" {
			return
		}

		resources = append(resources, occupation.TrainingResource{
			SkillName:     strings.ToLower(skill),
			Certification: name,
			Provider:      selectText(e, t.ProviderSelector),
			EstimatedTime: selectText(e, t.DurationSelector),
			Cost:          selectText(e, t.CostSelector),
			VAEligible:    strings.Contains(strings.ToLower(e.Text), "gi bill"),
		})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := c.Visit(t.CatalogURL); err != nil {
		return err
	}
	c.Wait()
	if reqErr != nil {
		return reqErr
	}

	stored := 0
	for _, r := range resources {
		if err := s.training.Upsert(ctx, r); err != nil {
			s.logger.Printf("[Ingest] upsert training resource skill=%s err=%v", r.SkillName, err)
			continue
		}
		stored++
	}
	s.logger.Printf("[Ingest] catalog %s: %d entries scraped, %d stored", t.CatalogURL, len(resources), stored)
	return nil
}

func selectText(e *colly.HTMLElement, selector string) string {
	if strings.TrimSpace(selector) == "" {
		return ""
	}
	return strings.TrimSpace(e.DOM.Find(selector).Text())
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u == nil {
		return ""
	}
	return u.Hostname()
}
