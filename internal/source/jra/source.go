package jra

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"racing_analyzer/internal/domain"
	"racing_analyzer/internal/metrics"
)

const (
	SourceID   = "jra"
	SourceName = "Japan Racing Association"
)

// Config holds JRA source configuration.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	MaxAttempts int
	RetryDelay  time.Duration
}

// Source implements service.Source for the JRA site.
type Source struct {
	client  *Client
	baseURL string
	logger  *slog.Logger
}

// New creates a new JRA source.
func New(cfg Config, recorder *metrics.Recorder, logger *slog.Logger) *Source {
	logger = logger.With("source", SourceID)
	return &Source{
		client: NewClient(ClientConfig{
			Timeout:     cfg.Timeout,
			MaxAttempts: cfg.MaxAttempts,
			RetryDelay:  cfg.RetryDelay,
			UserAgent:   cfg.UserAgent,
		}, recorder, logger),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchListing returns the races scheduled on date.
func (s *Source) FetchListing(ctx context.Context, date time.Time) ([]domain.RaceListingEntry, error) {
	page, err := s.client.Fetch(ctx, PageListing, s.listingURL(date))
	if err != nil {
		return nil, err
	}

	entries := ParseListing(page, date)
	s.logger.Debug("fetched listing",
		"date", date.Format(time.DateOnly),
		"races", len(entries),
	)
	return entries, nil
}

// FetchDetail returns the parsed result page for one listed race.
func (s *Source) FetchDetail(ctx context.Context, entry domain.RaceListingEntry) (*domain.RaceDetail, error) {
	page, err := s.client.Fetch(ctx, PageDetail, s.raceURL("race/result.html", entry.ExternalRaceID))
	if err != nil {
		return nil, err
	}

	detail := ParseDetail(page, entry)
	return &detail, nil
}

// FetchOdds returns win odds for a race. Odds are optional enrichment, so a
// failed fetch yields an empty map instead of an error.
func (s *Source) FetchOdds(ctx context.Context, raceID string) domain.OddsMap {
	page, err := s.client.Fetch(ctx, PageOdds, s.raceURL("odds/index.html", raceID))
	if err != nil {
		s.logger.Warn("odds unavailable",
			"race_id", raceID,
			"error", err,
		)
		return domain.OddsMap{}
	}
	return ParseOdds(page)
}

// Close releases the HTTP client's idle connections.
func (s *Source) Close() {
	s.client.Close()
}

func (s *Source) listingURL(date time.Time) string {
	q := url.Values{}
	q.Set("kaisai_date", date.Format("20060102"))
	return fmt.Sprintf("%s/race_list.html?%s", s.baseURL, q.Encode())
}

func (s *Source) raceURL(path, raceID string) string {
	q := url.Values{}
	q.Set("race_id", raceID)
	return fmt.Sprintf("%s/%s?%s", s.baseURL, path, q.Encode())
}
