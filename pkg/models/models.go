package models

import "encoding/json"

// Match status values reported by the Kooora feed
const (
	StatusLive      = "live"
	StatusScheduled = "scheduled"
	StatusFinished  = "finished"
	StatusUnknown   = "unknown"
)

// Match is the canonical match served by the kooora service
type Match struct {
	ID         string `json:"id"`
	LeagueID   string `json:"league_id"`
	LeagueName string `json:"league_name"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeTeamID *int64 `json:"home_team_id"`
	AwayTeamID *int64 `json:"away_team_id"`
	HomeScore  *int   `json:"home_score"`
	AwayScore  *int   `json:"away_score"`
	Time       string `json:"time"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	IsLive     bool   `json:"is_live"`
}

// MatchDetail is a match plus its statistics block.
// Stats is null when the provider has none for the match.
type MatchDetail struct {
	Match
	Stats json.RawMessage `json:"stats"`
}

// LiveScore is the canonical match served by the livesoccer service
type LiveScore struct {
	ID        int64  `json:"id"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Status    string `json:"status"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	League    string `json:"league"`
	LeagueID  *int64 `json:"league_id"`
	IsLive    bool   `json:"is_live"`
}

// ErrorResponse is the envelope returned for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
