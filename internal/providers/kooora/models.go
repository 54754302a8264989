package kooora

import "encoding/json"

// Team is one side of a match in the day feed
type Team struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// Match is a fixture from the day feed
type Match struct {
	ID        int64  `json:"id"`
	Home      Team   `json:"home"`
	Away      Team   `json:"away"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

// League groups the matches of one competition in the day feed
type League struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Matches []Match `json:"matches"`
}

// TableRow is one standings row scraped from a league page
type TableRow struct {
	Position       int
	Team           string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// ScorerRow is one top scorer row scraped from a league page
type ScorerRow struct {
	Rank   int
	Player string
	Team   string
	Goals  int
}

// LeaguePage is what a league page yields. Table and Scorers stay nil
// when the page has no such section.
type LeaguePage struct {
	ID      int64
	Title   string
	Country string
	Logo    string
	Table   []TableRow
	Scorers []ScorerRow
}

// SearchHit is a league, team or player returned by search
type SearchHit struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type dayFeed struct {
	Leagues []League `json:"leagues"`
}

type matchStats struct {
	Stats json.RawMessage `json:"stats"`
}

type searchResults struct {
	Results []SearchHit `json:"results"`
}
