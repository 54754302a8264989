package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/config"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/normalizer"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/providers/livesoccer"
	"github.com/go-chi/chi/v5"
)

// LiveSoccerSource is attached to every successful livesoccer-service response
const LiveSoccerSource = "LiveSoccer API"

// LiveSoccerProvider is the subset of the livescore API client the handlers use
type LiveSoccerProvider interface {
	LiveScores(ctx context.Context) ([]livesoccer.Match, error)
	Fixtures(ctx context.Context, date string) ([]livesoccer.Match, error)
	Leagues(ctx context.Context) ([]livesoccer.Competition, error)
	LeagueMatches(ctx context.Context, leagueID int64) ([]livesoccer.Match, error)
	MatchDetails(ctx context.Context, matchID int64) (json.RawMessage, error)
	SearchTeam(ctx context.Context, query string) ([]livesoccer.Team, error)
}

// LiveSoccerHandler serves the livesoccer-service API
type LiveSoccerHandler struct {
	provider LiveSoccerProvider
	options
}

// NewLiveSoccerHandler creates a handler backed by provider
func NewLiveSoccerHandler(provider LiveSoccerProvider, opts ...Option) *LiveSoccerHandler {
	return &LiveSoccerHandler{
		provider: provider,
		options:  newOptions(opts),
	}
}

// Routes mounts the livesoccer-service endpoints on r
func (h *LiveSoccerHandler) Routes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/live", h.GetLiveScores)
		r.Get("/fixtures", h.GetFixtures)
		r.Get("/leagues", h.GetLeagues)
		r.Get("/league/{leagueID}/matches", h.GetLeagueMatches)
		r.Get("/match/{matchID}", h.GetMatch)
		r.Get("/search/team", h.SearchTeam)
	})
}

// HealthCheck reports the service as healthy
func (h *LiveSoccerHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondHealth(w, config.LiveSoccerService)
}

// GetLiveScores returns the matches in progress
func (h *LiveSoccerHandler) GetLiveScores(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	matches, err := h.provider.LiveScores(ctx)
	if err != nil && !h.absorb("live", err) {
		h.fail(w, "live", err)
		return
	}

	scores := normalizer.LiveSoccerLiveScores(matches)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    scores,
		"count":   len(scores),
		"source":  LiveSoccerSource,
	})
}

// GetFixtures returns the matches of one day
// Query params: date (DD.MM.YYYY, defaults to today)
func (h *LiveSoccerHandler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	date := queryParam(r, "date")
	if date == "" {
		date = h.now().Format(livesoccer.DateLayout)
	} else if _, err := time.Parse(livesoccer.DateLayout, date); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date, expected DD.MM.YYYY")
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	matches, err := h.provider.Fixtures(ctx, date)
	if err != nil && !h.absorb("fixtures", err) {
		h.fail(w, "fixtures", err)
		return
	}

	fixtures := normalizer.LiveSoccerFixtures(matches)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    fixtures,
		"count":   len(fixtures),
		"date":    date,
		"source":  LiveSoccerSource,
	})
}

// GetLeagues lists the competitions known to the provider
func (h *LiveSoccerHandler) GetLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	list, err := h.provider.Leagues(ctx)
	if err != nil && !h.absorb("leagues", err) {
		h.fail(w, "leagues", err)
		return
	}

	leagues := normalizer.LiveSoccerCompetitions(list)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    leagues,
		"count":   len(leagues),
		"source":  LiveSoccerSource,
	})
}

// GetLeagueMatches returns the current matches of one competition
func (h *LiveSoccerHandler) GetLeagueMatches(w http.ResponseWriter, r *http.Request) {
	leagueID, ok := parseIDParam(r, "leagueID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid league id")
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	matches, err := h.provider.LeagueMatches(ctx, leagueID)
	if err != nil && !h.absorb("league matches", err) {
		h.fail(w, "league matches", err)
		return
	}

	scores := normalizer.LiveSoccerLiveScores(matches)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"data":      scores,
		"count":     len(scores),
		"league_id": chi.URLParam(r, "leagueID"),
		"source":    LiveSoccerSource,
	})
}

// GetMatch returns the provider's match payload untouched
func (h *LiveSoccerHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, ok := parseIDParam(r, "matchID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid match id")
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	details, err := h.provider.MatchDetails(ctx, matchID)
	if err != nil && !h.absorb("match", err) {
		h.fail(w, "match", err)
		return
	}

	if details == nil {
		respondError(w, http.StatusNotFound, "Match not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    details,
		"source":  LiveSoccerSource,
	})
}

// SearchTeam looks teams up by name
// Query params: q (required)
func (h *LiveSoccerHandler) SearchTeam(w http.ResponseWriter, r *http.Request) {
	query := queryParam(r, "q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Search query required")
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	list, err := h.provider.SearchTeam(ctx, query)
	if err != nil && !h.absorb("search team", err) {
		h.fail(w, "search team", err)
		return
	}

	teams := normalizer.LiveSoccerTeams(list)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    teams,
		"count":   len(teams),
		"query":   query,
		"source":  LiveSoccerSource,
	})
}
