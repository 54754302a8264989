package kooora_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/providers/kooora"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/upstream"
)

const leagueHTML = `<html>
<head><title>La Liga - Kooora</title></head>
<body>
  <h1 class="league-title">La Liga</h1>
  <span class="league-country">Spain</span>
  <img class="league-logo" src="/logos/22393.png">
  <table id="standings">
    <thead><tr><th>#</th><th>Team</th><th>P</th><th>W</th><th>D</th><th>L</th><th>F</th><th>A</th><th>GD</th><th>Pts</th></tr></thead>
    <tbody>
      <tr><td>1</td><td>Real Madrid</td><td>10</td><td>8</td><td>2</td><td>0</td><td>25</td><td>6</td><td>+19</td><td>26</td></tr>
      <tr><td>2</td><td>Barcelona</td><td>10</td><td>7</td><td>2</td><td>1</td><td>22</td><td>9</td><td>+13</td><td>23</td></tr>
      <tr><td colspan="10">Relegation zone</td></tr>
    </tbody>
  </table>
  <table id="scorers">
    <tr><td>1.</td><td>Player One</td><td>Real Madrid</td><td>9</td></tr>
  </table>
</body>
</html>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *kooora.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := kooora.New(kooora.Config{BaseURL: srv.URL})
	t.Cleanup(client.Close)

	return client
}

func TestMatchesOn_Success(t *testing.T) {
	var gotDay, gotMonth, gotYear string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotDay, gotMonth, gotYear = q.Get("dd"), q.Get("mm"), q.Get("yy")
		w.Write([]byte(`{"leagues":[
			{"id":22393,"title":"La Liga","matches":[
				{"id":1001,"home":{"id":5,"name":"Real Madrid"},"away":{"name":"Barcelona"},
				 "home_score":2,"away_score":null,"time":"21:00","date":"2024-03-09","status":"live"}
			]}
		]}`))
	})

	day := time.Date(2024, time.March, 9, 15, 0, 0, 0, time.UTC)
	leagues, err := client.MatchesOn(context.Background(), day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotDay != "9" || gotMonth != "3" || gotYear != "2024" {
		t.Errorf("expected dd=9 mm=3 yy=2024, got dd=%s mm=%s yy=%s", gotDay, gotMonth, gotYear)
	}
	if len(leagues) != 1 || len(leagues[0].Matches) != 1 {
		t.Fatalf("expected 1 league with 1 match, got %+v", leagues)
	}

	m := leagues[0].Matches[0]
	if m.Home.ID == nil || *m.Home.ID != 5 {
		t.Errorf("expected home id 5, got %v", m.Home.ID)
	}
	if m.Away.ID != nil {
		t.Errorf("expected nil away id, got %v", *m.Away.ID)
	}
	if m.AwayScore != nil {
		t.Errorf("expected nil away score, got %d", *m.AwayScore)
	}
}

func TestMatchesOn_UpstreamDown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.MatchesOn(context.Background(), time.Now())

	var upErr *upstream.Error
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *upstream.Error, got %v", err)
	}
}

func TestLeague_ParsesPage(t *testing.T) {
	var gotID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("c")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(leagueHTML))
	})

	page, err := client.League(context.Background(), 22393)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotID != "22393" {
		t.Errorf("expected c=22393, got %s", gotID)
	}
	if page.Title != "La Liga" {
		t.Errorf("expected title 'La Liga', got %q", page.Title)
	}
	if page.Country != "Spain" {
		t.Errorf("expected country 'Spain', got %q", page.Country)
	}
	if page.Logo != "/logos/22393.png" {
		t.Errorf("expected logo '/logos/22393.png', got %q", page.Logo)
	}

	if len(page.Table) != 2 {
		t.Fatalf("expected 2 table rows, got %d", len(page.Table))
	}
	if page.Table[0].Team != "Real Madrid" || page.Table[0].Points != 26 || page.Table[0].GoalDifference != 19 {
		t.Errorf("unexpected first row: %+v", page.Table[0])
	}
	if page.Table[1].Position != 2 {
		t.Errorf("expected second row position 2, got %d", page.Table[1].Position)
	}

	if len(page.Scorers) != 1 {
		t.Fatalf("expected 1 scorer, got %d", len(page.Scorers))
	}
	if page.Scorers[0].Rank != 1 || page.Scorers[0].Goals != 9 {
		t.Errorf("unexpected scorer: %+v", page.Scorers[0])
	}
}

func TestLeague_MissingSections(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1 class="league-title">Cup</h1></body></html>`))
	})

	page, err := client.League(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Table != nil {
		t.Errorf("expected nil table, got %+v", page.Table)
	}
	if page.Scorers != nil {
		t.Errorf("expected nil scorers, got %+v", page.Scorers)
	}
}

func TestLeague_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty page", `<html><body><p>nothing here</p></body></html>`},
		{"site title only", `<html><head><title>Kooora - Arabic Sports</title></head><body><p>nothing here</p></body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.League(context.Background(), 99)
			if !errors.Is(err, kooora.ErrLeagueNotFound) {
				t.Errorf("expected ErrLeagueNotFound, got %v", err)
			}
		})
	}
}

func TestLeague_TitleFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Serie A</title></head><body>
<table id="scorers"><tbody><tr><td>1</td><td>Lautaro</td><td>Inter</td><td>18</td></tr></tbody></table>
</body></html>`))
	})

	page, err := client.League(context.Background(), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Title != "Serie A" {
		t.Errorf("expected title 'Serie A', got %q", page.Title)
	}
	if len(page.Scorers) != 1 {
		t.Errorf("expected 1 scorer, got %d", len(page.Scorers))
	}
}

func TestMatchStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("m") == "1" {
			w.Write([]byte(`{"stats":{"possession":[55,45]}}`))
			return
		}
		w.Write([]byte(`{"stats":null}`))
	})

	stats, err := client.MatchStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(stats) != `{"possession":[55,45]}` {
		t.Errorf("unexpected stats: %s", stats)
	}

	none, err := client.MatchStats(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil stats, got %s", none)
	}
}

func TestSearch(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"results":[{"type":"team","id":12,"name":"Al Hilal"}]}`))
	})

	hits, err := client.Search(context.Background(), "hilal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "hilal" {
		t.Errorf("expected q 'hilal', got %q", gotQuery)
	}
	if len(hits) != 1 || hits[0].Name != "Al Hilal" {
		t.Errorf("unexpected hits: %+v", hits)
	}
}
