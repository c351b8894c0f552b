package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

// CrosswalkFetcher pulls MOS-to-occupation crosswalk rows from an
// external dataset endpoint. It supplements the seed data; a nil
// fetcher (no URL configured) simply means no supplemental rows.
type CrosswalkFetcher struct {
	datasetURL string
	client     *http.Client
	logger     *log.Logger
}

type crosswalkRecord struct {
	MOSCode        string `json:"mos_code"`
	Branch         string `json:"branch"`
	MilitaryTitle  string `json:"military_title"`
	OccupationCode string `json:"occupation_code"`
	MatchStrength  int    `json:"match_strength"`
}

func NewCrosswalkFetcher(datasetURL string, logger *log.Logger) *CrosswalkFetcher {
	datasetURL = strings.TrimSpace(datasetURL)
	if datasetURL == "" {
		return nil
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CrosswalkFetcher{
		datasetURL: datasetURL,
		client:     &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (f *CrosswalkFetcher) Fetch(ctx context.Context) ([]occupation.CrosswalkEntry, error) {
	if f == nil {
		return nil, errors.New("nil crosswalk fetcher")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.datasetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("crosswalk fetch failed: status=%d body=%s", resp.StatusCode, bodyStr)
		f.logger.Printf("[Ingest] crosswalk fetch error url=%s status=%d", f.datasetURL, resp.StatusCode)
		return nil, err
	}

	var records []crosswalkRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode crosswalk dataset: %w", err)
	}

	entries := make([]occupation.CrosswalkEntry, 0, len(records))
	for _, r := range records {
		code := strings.TrimSpace(strings.ToUpper(r.MOSCode))
		occ := strings.TrimSpace(r.OccupationCode)
		if code == "" || occ == "" {
			continue
		}
		entries = append(entries, occupation.CrosswalkEntry{
			MOSCode:        code,
			Branch:         strings.TrimSpace(r.Branch),
			MilitaryTitle:  strings.TrimSpace(r.MilitaryTitle),
			OccupationCode: occ,
			MatchStrength:  occupation.ClampImportance(r.MatchStrength),
		})
	}

	f.logger.Printf("[Ingest] fetched %d crosswalk rows from dataset", len(entries))
	return entries, nil
}
