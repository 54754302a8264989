package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/config"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/normalizer"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/providers/kooora"
	"github.com/XavierBriggs/fortuna/services/football-feeds/pkg/models"
	"github.com/go-chi/chi/v5"
)

// KoooraProvider is the subset of the Kooora client the handlers use
type KoooraProvider interface {
	MatchesOn(ctx context.Context, day time.Time) ([]kooora.League, error)
	League(ctx context.Context, leagueID int64) (*kooora.LeaguePage, error)
	MatchStats(ctx context.Context, matchID int64) (json.RawMessage, error)
	Search(ctx context.Context, query string) ([]kooora.SearchHit, error)
}

// KoooraHandler serves the kooora-service API
type KoooraHandler struct {
	provider KoooraProvider
	options
}

// NewKoooraHandler creates a handler backed by provider
func NewKoooraHandler(provider KoooraProvider, opts ...Option) *KoooraHandler {
	return &KoooraHandler{
		provider: provider,
		options:  newOptions(opts),
	}
}

// Routes mounts the kooora-service endpoints on r
func (h *KoooraHandler) Routes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/matches/today", h.GetTodayMatches)
		r.Get("/matches/yesterday", h.GetYesterdayMatches)
		r.Get("/matches/tomorrow", h.GetTomorrowMatches)
		r.Get("/match/{matchID}", h.GetMatch)
		r.Get("/league/{leagueID}", h.GetLeague)
		r.Get("/league/{leagueID}/matches", h.GetLeagueMatches)
		r.Get("/leagues/active", h.GetActiveLeagues)
		r.Get("/search", h.Search)
		r.Get("/team/{teamID}", h.GetTeam)
	})
}

// HealthCheck reports the service as healthy
func (h *KoooraHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondHealth(w, config.KoooraService)
}

// GetTodayMatches returns every match played today
func (h *KoooraHandler) GetTodayMatches(w http.ResponseWriter, r *http.Request) {
	h.matchesForDay(w, r, 0)
}

// GetYesterdayMatches returns every match played yesterday
func (h *KoooraHandler) GetYesterdayMatches(w http.ResponseWriter, r *http.Request) {
	h.matchesForDay(w, r, -1)
}

// GetTomorrowMatches returns every match scheduled tomorrow
func (h *KoooraHandler) GetTomorrowMatches(w http.ResponseWriter, r *http.Request) {
	h.matchesForDay(w, r, 1)
}

func (h *KoooraHandler) matchesForDay(w http.ResponseWriter, r *http.Request, offset int) {
	ctx, cancel := h.context(r)
	defer cancel()

	leagues, err := h.provider.MatchesOn(ctx, h.now().AddDate(0, 0, offset))
	if err != nil && !h.absorb("matches", err) {
		h.fail(w, "matches", err)
		return
	}

	matches := normalizer.KoooraMatches(leagues)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    matches,
		"count":   len(matches),
	})
}

// GetMatch returns one of today's matches with its statistics.
// Kooora has no lookup by match id, so today's feed is scanned.
func (h *KoooraHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	matchID := chi.URLParam(r, "matchID")

	leagues, err := h.provider.MatchesOn(ctx, h.now())
	if err != nil && !h.absorb("match", err) {
		h.fail(w, "match", err)
		return
	}

	for _, league := range leagues {
		for _, m := range league.Matches {
			if strconv.FormatInt(m.ID, 10) != matchID {
				continue
			}

			detail := models.MatchDetail{Match: normalizer.KoooraMatch(league, m)}

			stats, err := h.provider.MatchStats(ctx, m.ID)
			if err != nil {
				h.logger.Debug("match stats unavailable", "match_id", matchID, "error", err)
			} else {
				detail.Stats = stats
			}

			respondJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"data":    detail,
			})
			return
		}
	}

	respondError(w, http.StatusNotFound, "Match not found")
}

// GetLeague returns a league with its table and top scorers
func (h *KoooraHandler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	leagueID, ok := parseIDParam(r, "leagueID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid league id")
		return
	}

	page, err := h.provider.League(ctx, leagueID)
	if err != nil {
		if errors.Is(err, kooora.ErrLeagueNotFound) {
			respondError(w, http.StatusNotFound, "League not found")
			return
		}
		h.fail(w, "league", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    normalizer.KoooraLeague(page),
	})
}

// GetLeagueMatches returns today's matches of one league
func (h *KoooraHandler) GetLeagueMatches(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	leagueID, ok := parseIDParam(r, "leagueID")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid league id")
		return
	}

	leagues, err := h.provider.MatchesOn(ctx, h.now())
	if err != nil && !h.absorb("league matches", err) {
		h.fail(w, "league matches", err)
		return
	}

	for _, league := range leagues {
		if league.ID != leagueID {
			continue
		}

		matches := normalizer.KoooraMatches([]kooora.League{league})
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    matches,
			"count":   len(matches),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    []models.Match{},
		"count":   0,
		"message": "No matches today for this league",
	})
}

// GetActiveLeagues lists the leagues with matches today
func (h *KoooraHandler) GetActiveLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	leagues, err := h.provider.MatchesOn(ctx, h.now())
	if err != nil && !h.absorb("active leagues", err) {
		h.fail(w, "active leagues", err)
		return
	}

	active := normalizer.KoooraActiveLeagues(leagues)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    active,
		"count":   len(active),
	})
}

// Search looks up leagues, teams and players
// Query params: q (required)
func (h *KoooraHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := queryParam(r, "q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Search query required")
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	hits, err := h.provider.Search(ctx, query)
	if err != nil && !h.absorb("search", err) {
		h.fail(w, "search", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    normalizer.KoooraSearch(hits),
		"query":   query,
	})
}

// GetTeam is not supported by Kooora
func (h *KoooraHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotImplemented, "Team info endpoint not implemented for the Kooora provider")
}
