package http

import (
	"encoding/json"
	"net/http"

	auth "github.com/prepstack/prepstack-engine/internal/auth/middleware"
	"github.com/prepstack/prepstack-engine/internal/rbac"
	"github.com/prepstack/prepstack-engine/internal/results"
)

// ListResultsHandler serves callers with the view-all grant everything and
// everyone else their own history.
func ListResultsHandler(store *results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			recs []results.Record
			err  error
		)
		if rbac.Allowed(auth.RoleFromContext(r.Context()), "results:view-all") {
			recs, err = store.List(r.Context())
		} else {
			recs, err = store.ListByUser(r.Context(), auth.SubjectFromContext(r.Context()))
		}
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if recs == nil {
			recs = []results.Record{}
		}
		_ = json.NewEncoder(w).Encode(recs)
	}
}

// ExportResultsHandler streams the full results table as a spreadsheet.
func ExportResultsHandler(store *results.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
		if err := results.WriteXLSX(w, recs); err != nil {
			http.Error(w, err.Error(), 500)
		}
	}
}
