package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/providers/kooora"
	"github.com/XavierBriggs/fortuna/services/football-feeds/pkg/models"
)

// KoooraLiveStatus is the status Kooora reports for a match in play
const KoooraLiveStatus = models.StatusLive

// UnknownName replaces missing team and league names
const UnknownName = "Unknown"

// KoooraLeagueName returns the league title, or "League <id>" when the
// feed has none.
func KoooraLeagueName(league kooora.League) string {
	if title := strings.TrimSpace(league.Title); title != "" {
		return title
	}
	return fmt.Sprintf("League %d", league.ID)
}

// KoooraMatch maps a feed match to the canonical match
func KoooraMatch(league kooora.League, m kooora.Match) models.Match {
	status := strings.TrimSpace(m.Status)
	if status == "" {
		status = models.StatusUnknown
	}

	return models.Match{
		ID:         strconv.FormatInt(m.ID, 10),
		LeagueID:   strconv.FormatInt(league.ID, 10),
		LeagueName: KoooraLeagueName(league),
		HomeTeam:   nameOrUnknown(m.Home.Name),
		AwayTeam:   nameOrUnknown(m.Away.Name),
		HomeTeamID: m.Home.ID,
		AwayTeamID: m.Away.ID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Time:       m.Time,
		Date:       m.Date,
		Status:     status,
		IsLive:     status == KoooraLiveStatus,
	}
}

// KoooraMatches flattens a day feed into matches, keeping feed order
func KoooraMatches(leagues []kooora.League) []models.Match {
	matches := make([]models.Match, 0)
	for _, league := range leagues {
		for _, m := range league.Matches {
			matches = append(matches, KoooraMatch(league, m))
		}
	}
	return matches
}

// KoooraActiveLeagues lists the leagues of a day feed with their match counts
func KoooraActiveLeagues(leagues []kooora.League) []models.LeagueSummary {
	summaries := make([]models.LeagueSummary, 0, len(leagues))
	for _, league := range leagues {
		summaries = append(summaries, models.LeagueSummary{
			ID:         strconv.FormatInt(league.ID, 10),
			Name:       KoooraLeagueName(league),
			MatchCount: len(league.Matches),
		})
	}
	return summaries
}

// KoooraLeague maps a parsed league page to the canonical league
func KoooraLeague(page *kooora.LeaguePage) models.League {
	league := models.League{
		ID:      strconv.FormatInt(page.ID, 10),
		Name:    page.Title,
		Country: page.Country,
		Logo:    page.Logo,
	}
	if league.Name == "" {
		league.Name = fmt.Sprintf("League %d", page.ID)
	}

	if page.Table != nil {
		league.Table = make([]models.Standing, 0, len(page.Table))
		for _, row := range page.Table {
			league.Table = append(league.Table, models.Standing{
				Position:       row.Position,
				Team:           row.Team,
				Played:         row.Played,
				Won:            row.Won,
				Drawn:          row.Drawn,
				Lost:           row.Lost,
				GoalsFor:       row.GoalsFor,
				GoalsAgainst:   row.GoalsAgainst,
				GoalDifference: row.GoalDifference,
				Points:         row.Points,
			})
		}
	}

	if page.Scorers != nil {
		league.TopScorers = make([]models.TopScorer, 0, len(page.Scorers))
		for _, row := range page.Scorers {
			league.TopScorers = append(league.TopScorers, models.TopScorer{
				Rank:   row.Rank,
				Player: row.Player,
				Team:   row.Team,
				Goals:  row.Goals,
			})
		}
	}

	return league
}

// KoooraSearch maps search hits to search results
func KoooraSearch(hits []kooora.SearchHit) []models.SearchResult {
	results := make([]models.SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, models.SearchResult{
			Type: hit.Type,
			ID:   strconv.FormatInt(hit.ID, 10),
			Name: hit.Name,
		})
	}
	return results
}

func nameOrUnknown(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return UnknownName
}
