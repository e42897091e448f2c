package supabase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hydrohomies/waterbot/internal/models"
)

// capture records the last request the fake PostgREST server saw.
type capture struct {
	method string
	path   string
	query  string
	header http.Header
	body   string
}

func newTestClient(t *testing.T, status int, response string) (*Client, *capture) {
	t.Helper()

	rec := &capture{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.header = r.Header.Clone()
		rec.body = string(body)
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)

	return New(server.URL, "test-key"), rec
}

func TestAuthHeaders(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, "[]")

	if _, err := client.GetUser(context.Background(), "1"); err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}

	if got := rec.header.Get("apikey"); got != "test-key" {
		t.Errorf("apikey header = %q, want test-key", got)
	}
	if got := rec.header.Get("Authorization"); got != "Bearer test-key" {
		t.Errorf("Authorization header = %q, want Bearer test-key", got)
	}
}

func TestUpsertUser(t *testing.T) {
	client, rec := newTestClient(t, http.StatusCreated, "")

	err := client.UpsertUser(context.Background(), &models.User{ID: "1", Name: "alice"})
	if err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/rest/v1/users" {
		t.Errorf("request = %s %s, want POST /rest/v1/users", rec.method, rec.path)
	}
	if got := rec.header.Get("Prefer"); got != "resolution=merge-duplicates" {
		t.Errorf("Prefer header = %q, want resolution=merge-duplicates", got)
	}

	var rows []map[string]any
	if err := json.Unmarshal([]byte(rec.body), &rows); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(rows) != 1 || rows[0]["id"] != "1" || rows[0]["name"] != "alice" {
		t.Errorf("body = %s, want one row with id=1 name=alice", rec.body)
	}
}

func TestGetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[{"id":"1","name":"alice","goal_oz":80}]`)

		user, err := client.GetUser(context.Background(), "1")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if user == nil || user.ID != "1" || user.Name != "alice" {
			t.Fatalf("user = %+v, want id=1 name=alice", user)
		}
		if user.GoalOz == nil || *user.GoalOz != 80 {
			t.Errorf("GoalOz = %v, want 80", user.GoalOz)
		}
		if !strings.Contains(rec.query, "id=eq.1") {
			t.Errorf("query = %q, want id=eq.1 filter", rec.query)
		}
	})

	t.Run("absent maps empty array to nil", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, "[]")

		user, err := client.GetUser(context.Background(), "404")
		if err != nil {
			t.Fatalf("GetUser failed: %v", err)
		}
		if user != nil {
			t.Errorf("user = %+v, want nil for unregistered ID", user)
		}
	})
}

func TestInsertRecord(t *testing.T) {
	client, rec := newTestClient(t, http.StatusCreated, "")

	record := &models.Record{UserID: "1", Oz: 60, Points: 1, Date: "2025-03-01"}
	if err := client.InsertRecord(context.Background(), record); err != nil {
		t.Fatalf("InsertRecord failed: %v", err)
	}

	if rec.method != http.MethodPost || rec.path != "/rest/v1/records" {
		t.Errorf("request = %s %s, want POST /rest/v1/records", rec.method, rec.path)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(rec.body), &rows); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(rows) != 1 || rows[0]["user_id"] != "1" || rows[0]["date"] != "2025-03-01" {
		t.Errorf("body = %s, want one row for user 1 on 2025-03-01", rec.body)
	}
	if _, hasID := rows[0]["id"]; hasID {
		t.Error("insert must not send an id; the store assigns it")
	}
}

func TestDailyPoints(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[{"points":0.5},{"points":1},{"points":-0.5}]`)

	total, err := client.DailyPoints(context.Background(), "1", "2025-03-01")
	if err != nil {
		t.Fatalf("DailyPoints failed: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %v, want 1", total)
	}
	if !strings.Contains(rec.query, "user_id=eq.1") || !strings.Contains(rec.query, "date=eq.2025-03-01") {
		t.Errorf("query = %q, want user and date filters", rec.query)
	}
}

func TestLeaderboards(t *testing.T) {
	t.Run("daily", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK,
			`[{"user_id":"1","total_points":2},{"user_id":"2","total_points":0.5}]`)

		entries, err := client.DailyLeaderboard(context.Background(), "2025-03-01")
		if err != nil {
			t.Fatalf("DailyLeaderboard failed: %v", err)
		}
		if rec.method != http.MethodPost || rec.path != "/rest/v1/rpc/daily_leaderboard" {
			t.Errorf("request = %s %s, want POST /rest/v1/rpc/daily_leaderboard", rec.method, rec.path)
		}
		if !strings.Contains(rec.body, `"today":"2025-03-01"`) {
			t.Errorf("body = %s, want today argument", rec.body)
		}
		if len(entries) != 2 || entries[0].UserKey != "1" || entries[0].TotalPoints != 2 {
			t.Errorf("entries = %+v, want leader user 1 with 2 points", entries)
		}
	})

	t.Run("all time", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[{"user_id":"2","total_points":7}]`)

		entries, err := client.AllTimeLeaderboard(context.Background())
		if err != nil {
			t.Fatalf("AllTimeLeaderboard failed: %v", err)
		}
		if rec.path != "/rest/v1/rpc/alltime_leaderboard" {
			t.Errorf("path = %s, want /rest/v1/rpc/alltime_leaderboard", rec.path)
		}
		if len(entries) != 1 || entries[0].TotalPoints != 7 {
			t.Errorf("entries = %+v, want one entry with 7 points", entries)
		}
	})
}

func TestSetUserGoal(t *testing.T) {
	client, rec := newTestClient(t, http.StatusNoContent, "")

	if err := client.SetUserGoal(context.Background(), "1", 80, "08:00"); err != nil {
		t.Fatalf("SetUserGoal failed: %v", err)
	}
	if rec.method != http.MethodPatch {
		t.Errorf("method = %s, want PATCH", rec.method)
	}
	if !strings.Contains(rec.query, "id=eq.1") {
		t.Errorf("query = %q, want id filter", rec.query)
	}
}

func TestRemoteErrorPropagates(t *testing.T) {
	client, _ := newTestClient(t, http.StatusInternalServerError, `{"message":"boom"}`)

	_, err := client.GetUser(context.Background(), "1")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v, want status and body snippet", err)
	}
}
