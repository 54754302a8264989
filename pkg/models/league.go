package models

// League is a competition with its optional standings and scorer lists.
// Table and TopScorers are null when the provider page did not carry them.
type League struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Country    string      `json:"country,omitempty"`
	Logo       string      `json:"logo,omitempty"`
	Table      []Standing  `json:"table"`
	TopScorers []TopScorer `json:"top_scorers"`
}

// Standing is one row of a league table
type Standing struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// TopScorer is one row of a league's scorer list
type TopScorer struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Team   string `json:"team"`
	Goals  int    `json:"goals"`
}

// LeagueSummary describes a league with matches on the current day
type LeagueSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MatchCount int    `json:"match_count"`
}

// Competition is a league as listed by the livesoccer service
type Competition struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Country *string `json:"country"`
	Logo    string  `json:"logo"`
}

// Team is a team search hit
type Team struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// SearchResult is a league, team or player matching a search query
type SearchResult struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}
