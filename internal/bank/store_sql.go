package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/prepstack/prepstack-engine/internal/session"
)

// SQLStore persists banks as JSON blobs over sqlite or postgres, the same shape
// the admin CRUD writes.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutBank(ctx context.Context, b Bank) error {
	if err := b.Validate(); err != nil {
		return err
	}
	qj, err := json.Marshal(b.Questions)
	if err != nil {
		return err
	}
	var sj string
	if b.Scheme != nil {
		buf, err := json.Marshal(b.Scheme)
		if err != nil {
			return err
		}
		sj = string(buf)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO banks (id,title,mode,time_limit_sec,scheme_json,questions_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, mode=EXCLUDED.mode,
			time_limit_sec=EXCLUDED.time_limit_sec, scheme_json=EXCLUDED.scheme_json,
			questions_json=EXCLUDED.questions_json`,
		b.ID, b.Title, b.Mode, b.TimeLimitSec, sj, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetBank(ctx context.Context, id string) (Bank, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,mode,time_limit_sec,scheme_json,questions_json,created_at
		FROM banks WHERE id=$1`, id)
	var b Bank
	var sj, qj string
	if err := row.Scan(&b.ID, &b.Title, &b.Mode, &b.TimeLimitSec, &sj, &qj, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Bank{}, ErrNotFound
		}
		return Bank{}, err
	}
	if err := json.Unmarshal([]byte(qj), &b.Questions); err != nil {
		return Bank{}, err
	}
	if sj != "" {
		var sc session.Scheme
		if err := json.Unmarshal([]byte(sj), &sc); err != nil {
			return Bank{}, err
		}
		b.Scheme = &sc
	}
	return b, nil
}

func (s *SQLStore) ListBanks(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,title,mode,time_limit_sec,questions_json FROM banks ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Summary
	for rows.Next() {
		var sum Summary
		var qj string
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Mode, &sum.TimeLimitSec, &qj); err != nil {
			return nil, err
		}
		var qs []session.Question
		if err := json.Unmarshal([]byte(qj), &qs); err != nil {
			return nil, err
		}
		sum.QuestionCount = len(qs)
		out = append(out, sum)
	}
	return out, rows.Err()
}
