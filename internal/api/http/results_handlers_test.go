package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	auth "github.com/prepstack/prepstack-engine/internal/auth/middleware"
	"github.com/prepstack/prepstack-engine/internal/db"
	"github.com/prepstack/prepstack-engine/internal/results"
)

func seedResultStore(t *testing.T) *results.Store {
	t.Helper()
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)"
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	if _, err := dbh.ExecContext(ctx,
		`INSERT INTO banks (id,title,mode,time_limit_sec,questions_json,created_at) VALUES ('mock-1','Mock 1','exam',600,'[]',0)`); err != nil {
		t.Fatalf("seed bank row: %v", err)
	}
	store := results.NewStore(dbh)
	for _, user := range []string{"alice", "bob"} {
		if _, err := store.Insert(ctx, results.Record{BankID: "mock-1", UserID: user, Mode: "exam", FinishReason: "manual"}); err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}
	return store
}

func listResultsAs(t *testing.T, store *results.Store, user, role string) []results.Record {
	t.Helper()
	req := httptest.NewRequest("GET", "/results", nil)
	ctx := auth.WithSubject(req.Context(), user)
	ctx = auth.WithRole(ctx, role)
	w := httptest.NewRecorder()
	ListResultsHandler(store)(w, req.WithContext(ctx))
	if w.Code != 200 {
		t.Fatalf("list results: %d %s", w.Code, w.Body.String())
	}
	var recs []results.Record
	if err := json.NewDecoder(w.Body).Decode(&recs); err != nil {
		t.Fatalf("decoding records: %v", err)
	}
	return recs
}

// Scope follows the rbac grant table, not a hardcoded role name.
func TestListResultsScopedByGrant(t *testing.T) {
	store := seedResultStore(t)

	mine := listResultsAs(t, store, "alice", "student")
	if len(mine) != 1 || mine[0].UserID != "alice" {
		t.Fatalf("student must only see own records: %+v", mine)
	}

	all := listResultsAs(t, store, "root", "admin")
	if len(all) != 2 {
		t.Fatalf("view-all grant must see every record, got %d", len(all))
	}
}
