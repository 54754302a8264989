package kooora

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/upstream"
)

const (
	// DefaultBaseURL is the Kooora site root
	DefaultBaseURL = "https://www.kooora.com"

	providerName = "kooora"
)

// ErrLeagueNotFound is returned when a league page has no league on it
var ErrLeagueNotFound = errors.New("league not found")

// Config holds the client settings
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client reads match days, league pages and search results from Kooora
type Client struct {
	fetcher *upstream.Fetcher
}

// New creates a Kooora client
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		fetcher: upstream.NewFetcher(providerName, upstream.Config{
			BaseURL:   cfg.BaseURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		}),
	}
}

// MatchesOn returns the leagues with matches on day, each carrying its matches.
// Only the calendar date of day is used.
func (c *Client) MatchesOn(ctx context.Context, day time.Time) ([]League, error) {
	params := url.Values{
		"region": {"-1"},
		"dd":     {strconv.Itoa(day.Day())},
		"mm":     {strconv.Itoa(int(day.Month()))},
		"yy":     {strconv.Itoa(day.Year())},
		"format": {"json"},
	}

	var feed dayFeed
	if err := c.fetcher.GetJSON(ctx, "matches", "/", params, &feed); err != nil {
		return nil, err
	}

	return feed.Leagues, nil
}

// League fetches and parses a league page
func (c *Client) League(ctx context.Context, leagueID int64) (*LeaguePage, error) {
	body, err := c.fetcher.Get(ctx, "league", "/", url.Values{"c": {strconv.FormatInt(leagueID, 10)}})
	if err != nil {
		return nil, err
	}

	page, err := parseLeaguePage(bytes.NewReader(body))
	if err != nil {
		return nil, &upstream.Error{Provider: providerName, Op: "league", Err: err}
	}
	if page.Title == "" && page.Table == nil && page.Scorers == nil {
		return nil, ErrLeagueNotFound
	}

	page.ID = leagueID
	return page, nil
}

// MatchStats returns the raw statistics block of a match, or nil when the
// match has none.
func (c *Client) MatchStats(ctx context.Context, matchID int64) (json.RawMessage, error) {
	params := url.Values{
		"m":      {strconv.FormatInt(matchID, 10)},
		"format": {"json"},
	}

	var stats matchStats
	if err := c.fetcher.GetJSON(ctx, "match stats", "/", params, &stats); err != nil {
		return nil, err
	}

	if len(stats.Stats) == 0 || string(stats.Stats) == "null" {
		return nil, nil
	}
	return stats.Stats, nil
}

// Search looks up leagues, teams and players by name
func (c *Client) Search(ctx context.Context, query string) ([]SearchHit, error) {
	params := url.Values{
		"q":      {query},
		"format": {"json"},
	}

	var results searchResults
	if err := c.fetcher.GetJSON(ctx, "search", "/search", params, &results); err != nil {
		return nil, err
	}

	return results.Results, nil
}

// Close releases idle connections
func (c *Client) Close() {
	c.fetcher.Close()
}
