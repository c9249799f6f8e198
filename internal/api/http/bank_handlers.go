package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prepstack/prepstack-engine/internal/bank"
)

func ListBanksHandler(provider bank.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sums, err := provider.ListBanks(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if sums == nil {
			sums = []bank.Summary{}
		}
		_ = json.NewEncoder(w).Encode(sums)
	}
}

// GetBankHandler serves a bank for browsing with correct indices stripped.
// The engine gets the unredacted snapshot server-side at session start.
func GetBankHandler(provider bank.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "bankID")
		b, err := provider.GetBank(r.Context(), id)
		if err != nil {
			if errors.Is(err, bank.ErrNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(b.Redacted())
	}
}

// ImportBankHandler accepts a schema-validated JSON bank from the admin
// console.
func ImportBankHandler(provider bank.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 8<<20))
		if err != nil {
			http.Error(w, "read body", 400)
			return
		}
		b, err := bank.DecodeBank(data)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if err := provider.PutBank(r.Context(), b); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(b.Summary())
	}
}
