package normalizer

import (
	"strings"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/providers/livesoccer"
	"github.com/XavierBriggs/fortuna/services/football-feeds/pkg/models"
)

// LiveSoccerLiveStatus is the status LiveSoccer reports for a match in play
const LiveSoccerLiveStatus = "inprogress"

// LiveSoccerLive maps a match for the live and league endpoints.
// Missing goals count as 0.
func LiveSoccerLive(m livesoccer.Match) models.LiveScore {
	score := liveSoccerScore(m)
	if score.HomeScore == nil {
		score.HomeScore = intPtr(0)
	}
	if score.AwayScore == nil {
		score.AwayScore = intPtr(0)
	}
	return score
}

// LiveSoccerFixture maps a match for the fixtures endpoint.
// Missing goals stay null since the match may not have started.
func LiveSoccerFixture(m livesoccer.Match) models.LiveScore {
	return liveSoccerScore(m)
}

// LiveSoccerLiveScores maps a list with LiveSoccerLive
func LiveSoccerLiveScores(matches []livesoccer.Match) []models.LiveScore {
	scores := make([]models.LiveScore, 0, len(matches))
	for _, m := range matches {
		scores = append(scores, LiveSoccerLive(m))
	}
	return scores
}

// LiveSoccerFixtures maps a list with LiveSoccerFixture
func LiveSoccerFixtures(matches []livesoccer.Match) []models.LiveScore {
	scores := make([]models.LiveScore, 0, len(matches))
	for _, m := range matches {
		scores = append(scores, LiveSoccerFixture(m))
	}
	return scores
}

// LiveSoccerCompetition maps a competition; country is null when the API
// gives no location.
func LiveSoccerCompetition(c livesoccer.Competition) models.Competition {
	comp := models.Competition{
		ID:   c.ID.Value,
		Name: c.Name,
		Logo: c.Logo,
	}
	if c.Location != nil {
		country := c.Location.Name
		comp.Country = &country
	}
	return comp
}

// LiveSoccerCompetitions maps a list of competitions
func LiveSoccerCompetitions(list []livesoccer.Competition) []models.Competition {
	comps := make([]models.Competition, 0, len(list))
	for _, c := range list {
		comps = append(comps, LiveSoccerCompetition(c))
	}
	return comps
}

// LiveSoccerTeams maps team search hits
func LiveSoccerTeams(list []livesoccer.Team) []models.Team {
	teams := make([]models.Team, 0, len(list))
	for _, t := range list {
		teams = append(teams, models.Team{
			ID:      t.ID.Value,
			Name:    nameOrUnknown(t.Name),
			Country: t.Country,
			Logo:    t.Logo,
		})
	}
	return teams
}

func liveSoccerScore(m livesoccer.Match) models.LiveScore {
	status := strings.TrimSpace(m.Status)
	if status == "" {
		status = models.StatusUnknown
	}

	score := models.LiveScore{
		ID:       m.ID.Value,
		HomeTeam: UnknownName,
		AwayTeam: UnknownName,
		Status:   status,
		Time:     m.Time,
		Date:     m.Date,
		League:   UnknownName,
		IsLive:   status == LiveSoccerLiveStatus,
	}

	if m.Home != nil {
		score.HomeTeam = nameOrUnknown(m.Home.Name)
		score.HomeScore = m.Home.Goals.IntPtr()
	}
	if m.Away != nil {
		score.AwayTeam = nameOrUnknown(m.Away.Name)
		score.AwayScore = m.Away.Goals.IntPtr()
	}
	if m.Competition != nil {
		score.League = nameOrUnknown(m.Competition.Name)
		score.LeagueID = m.Competition.ID.Int64Ptr()
	}

	return score
}

func intPtr(v int) *int {
	return &v
}
