package livesoccer

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/upstream"
)

const (
	// DefaultBaseURL is the livescore-api.com client endpoint
	DefaultBaseURL = "https://livescore-api.com/api-client"

	// DateLayout is the DD.MM.YYYY format the API expects for dates
	DateLayout = "02.01.2006"

	providerName = "livesoccer"
)

// Config holds the client settings
type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string
	UserAgent string
	Timeout   time.Duration
}

// Client talks to the LiveSoccer API
type Client struct {
	fetcher *upstream.Fetcher
}

// New creates a LiveSoccer client
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	var query url.Values
	if cfg.APIKey != "" {
		query = url.Values{"key": {cfg.APIKey}, "secret": {cfg.APISecret}}
	}

	return &Client{
		fetcher: upstream.NewFetcher(providerName, upstream.Config{
			BaseURL:   cfg.BaseURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
			Query:     query,
		}),
	}
}

// LiveScores returns every match currently in progress
func (c *Client) LiveScores(ctx context.Context) ([]Match, error) {
	return c.matches(ctx, "live scores", "/scores/live.json", nil)
}

// Fixtures returns the matches played on date (DD.MM.YYYY).
// An empty date means today.
func (c *Client) Fixtures(ctx context.Context, date string) ([]Match, error) {
	if date == "" {
		date = time.Now().Format(DateLayout)
	}
	return c.matches(ctx, "fixtures", "/scores/history.json", url.Values{"date": {date}})
}

// LeagueMatches returns the live matches of one competition
func (c *Client) LeagueMatches(ctx context.Context, leagueID int64) ([]Match, error) {
	params := url.Values{"competition_id": {strconv.FormatInt(leagueID, 10)}}
	return c.matches(ctx, "league matches", "/scores/live.json", params)
}

// Leagues returns all competitions known to the API
func (c *Client) Leagues(ctx context.Context) ([]Competition, error) {
	data, err := c.data(ctx, "leagues", "/competitions/list.json", nil)
	if err != nil || data == nil {
		return nil, err
	}

	var list competitionList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, c.decodeError("leagues", err)
	}
	return list.Competition, nil
}

// MatchDetails returns the raw detail payload for a match, or nil when the
// API has nothing for that id.
func (c *Client) MatchDetails(ctx context.Context, matchID int64) (json.RawMessage, error) {
	params := url.Values{"match_id": {strconv.FormatInt(matchID, 10)}}
	return c.data(ctx, "match details", "/match/data.json", params)
}

// SearchTeam looks teams up by name
func (c *Client) SearchTeam(ctx context.Context, query string) ([]Team, error) {
	data, err := c.data(ctx, "search team", "/teams/search.json", url.Values{"name": {query}})
	if err != nil || data == nil {
		return nil, err
	}

	var list teamList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, c.decodeError("search team", err)
	}
	return list.Team, nil
}

// Close releases idle connections
func (c *Client) Close() {
	c.fetcher.Close()
}

func (c *Client) matches(ctx context.Context, op, path string, params url.Values) ([]Match, error) {
	data, err := c.data(ctx, op, path, params)
	if err != nil || data == nil {
		return nil, err
	}

	var list matchList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, c.decodeError(op, err)
	}
	return list.Match, nil
}

// data unwraps the response envelope. A nil result with a nil error means
// the API answered successfully with no data.
func (c *Client) data(ctx context.Context, op, path string, params url.Values) (json.RawMessage, error) {
	var env envelope
	if err := c.fetcher.GetJSON(ctx, op, path, params, &env); err != nil {
		return nil, err
	}

	if !env.Success {
		if env.Error != "" {
			return nil, &upstream.Error{Provider: providerName, Op: op, Err: errors.New(env.Error)}
		}
		return nil, nil
	}
	if env.empty() {
		return nil, nil
	}

	return env.Data, nil
}

func (c *Client) decodeError(op string, err error) error {
	return &upstream.Error{Provider: providerName, Op: op, Err: err}
}
