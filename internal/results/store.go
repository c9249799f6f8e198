package results

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Record is one finished session's outcome. Recording results is the gateway
// adapter's downstream responsibility; in-flight session progress is never
// persisted.
type Record struct {
	ID              string  `json:"id"`
	BankID          string  `json:"bank_id"`
	UserID          string  `json:"user_id"`
	Mode            string  `json:"mode"`
	RawScore        float64 `json:"raw_score"`
	Attempted       int     `json:"attempted"`
	CorrectCount    int     `json:"correct_count"`
	AccuracyPercent int     `json:"accuracy_percent"`
	FinishReason    string  `json:"finish_reason"`
	FinishedAt      int64   `json:"finished_at"`
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, r Record) (Record, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.FinishedAt == 0 {
		r.FinishedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO results
		(id,bank_id,user_id,mode,raw_score,attempted,correct_count,accuracy_percent,finish_reason,finished_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		r.ID, r.BankID, r.UserID, r.Mode, r.RawScore, r.Attempted, r.CorrectCount,
		r.AccuracyPercent, r.FinishReason, r.FinishedAt)
	if err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	return s.query(ctx, `SELECT id,bank_id,user_id,mode,raw_score,attempted,correct_count,accuracy_percent,finish_reason,finished_at
		FROM results ORDER BY finished_at DESC`)
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	return s.query(ctx, `SELECT id,bank_id,user_id,mode,raw_score,attempted,correct_count,accuracy_percent,finish_reason,finished_at
		FROM results WHERE user_id=$1 ORDER BY finished_at DESC`, userID)
}

func (s *Store) query(ctx context.Context, q string, args ...interface{}) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.BankID, &r.UserID, &r.Mode, &r.RawScore, &r.Attempted,
			&r.CorrectCount, &r.AccuracyPercent, &r.FinishReason, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
