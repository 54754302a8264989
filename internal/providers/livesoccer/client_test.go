package livesoccer_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/providers/livesoccer"
	"github.com/XavierBriggs/fortuna/services/football-feeds/internal/upstream"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *livesoccer.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := livesoccer.New(livesoccer.Config{BaseURL: srv.URL, APIKey: "k", APISecret: "s"})
	t.Cleanup(client.Close)

	return client
}

func TestLiveScores_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scores/live.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "k" || r.URL.Query().Get("secret") != "s" {
			t.Errorf("expected credentials in query, got %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"success":true,"data":{"match":[
			{"id":"42","home":{"name":"Team X","goals":"2"},"away":{"name":"Team Y","goals":1},
			 "status":"inprogress","competition":{"id":7,"name":"Premier League"}}
		]}}`))
	})

	matches, err := client.LiveScores(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	m := matches[0]
	if !m.ID.Valid || m.ID.Value != 42 {
		t.Errorf("expected id 42, got %+v", m.ID)
	}
	if m.Home.Goals.Value != 2 || m.Away.Goals.Value != 1 {
		t.Errorf("expected goals 2-1, got %d-%d", m.Home.Goals.Value, m.Away.Goals.Value)
	}
	if m.Competition.ID.Value != 7 {
		t.Errorf("expected competition 7, got %d", m.Competition.ID.Value)
	}
}

func TestLiveScores_EmptyData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no data", `{"success":true}`},
		{"null data", `{"success":true,"data":null}`},
		{"empty object", `{"success":true,"data":{}}`},
		{"unsuccessful without message", `{"success":false}`},
		{"empty array", `{"success":true,"data":[]}`},
		{"false data", `{"success":true,"data":false}`},
		{"empty string", `{"success":true,"data":""}`},
		{"zero data", `{"success":true,"data":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			matches, err := client.LiveScores(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(matches) != 0 {
				t.Errorf("expected no matches, got %d", len(matches))
			}
		})
	}
}

func TestLiveScores_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"invalid api key"}`))
	})

	_, err := client.LiveScores(context.Background())

	var upErr *upstream.Error
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *upstream.Error, got %v", err)
	}
}

func TestLiveScores_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.LiveScores(context.Background())

	var upErr *upstream.Error
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *upstream.Error, got %v", err)
	}
	if upErr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", upErr.StatusCode)
	}
}

func TestFixtures_PassesDate(t *testing.T) {
	var gotDate string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		w.Write([]byte(`{"success":true,"data":{"match":[]}}`))
	})

	if _, err := client.Fixtures(context.Background(), "24.12.2024"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotDate != "24.12.2024" {
		t.Errorf("expected date '24.12.2024', got %q", gotDate)
	}
}

func TestLeagueMatches_PassesCompetition(t *testing.T) {
	var gotID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("competition_id")
		w.Write([]byte(`{"success":true,"data":{"match":[{"id":1},{"id":2}]}}`))
	})

	matches, err := client.LeagueMatches(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "2" {
		t.Errorf("expected competition_id '2', got %q", gotID)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}
}

func TestLeagues_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"competition":[
			{"id":"2","name":"Premier League","location":{"name":"England"}},
			{"id":"3","name":"Friendlies"}
		]}}`))
	})

	leagues, err := client.Leagues(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leagues) != 2 {
		t.Fatalf("expected 2 leagues, got %d", len(leagues))
	}
	if leagues[0].Location == nil || leagues[0].Location.Name != "England" {
		t.Errorf("expected location England, got %+v", leagues[0].Location)
	}
	if leagues[1].Location != nil {
		t.Errorf("expected no location, got %+v", leagues[1].Location)
	}
}

func TestMatchDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("match_id") == "1" {
			w.Write([]byte(`{"success":true,"data":{"match":{"id":1},"event":[]}}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":null}`))
	})

	details, err := client.MatchDetails(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details == nil {
		t.Fatal("expected details for match 1")
	}

	missing, err := client.MatchDetails(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil details, got %s", missing)
	}
}

func TestSearchTeam(t *testing.T) {
	var gotName string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		w.Write([]byte(`{"success":true,"data":{"team":[{"id":19,"name":"Chelsea"}]}}`))
	})

	teams, err := client.SearchTeam(context.Background(), "chel sea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "chel sea" {
		t.Errorf("expected name 'chel sea', got %q", gotName)
	}
	if len(teams) != 1 || teams[0].Name != "Chelsea" {
		t.Errorf("unexpected teams: %+v", teams)
	}
}

func TestSearchTeam_NoHits(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	teams, err := client.SearchTeam(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(teams) != 0 {
		t.Errorf("expected no teams, got %+v", teams)
	}
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		in    string
		want  int64
		valid bool
	}{
		{`5`, 5, true},
		{`"5"`, 5, true},
		{`3.0`, 3, true},
		{`null`, 0, false},
		{`""`, 0, false},
		{`"?"`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f livesoccer.FlexInt
			if err := f.UnmarshalJSON([]byte(tt.in)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Valid != tt.valid || f.Value != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %+v, want {%d %v}", tt.in, f, tt.want, tt.valid)
			}
		})
	}
}
