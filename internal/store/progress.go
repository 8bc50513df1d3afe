package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Entry is one durable record of a user having solved a question. The log
// is append-only: entries are never rewritten or deleted, and no uniqueness
// is enforced, so solving the same question twice leaves two entries.
type Entry struct {
	User       string
	QuestionID int
}

// ProgressRepo provides append and read access to the durable progress log.
type ProgressRepo interface {
	// Append records one solved-question entry. Every call appends,
	// including repeat solves of the same question.
	Append(ctx context.Context, user string, questionID int) error

	// Solved returns the distinct question IDs the user has ever solved,
	// in ascending order.
	Solved(ctx context.Context, user string) ([]int, error)

	// Entries returns the raw log for a user in insertion order,
	// duplicates included.
	Entries(ctx context.Context, user string) ([]Entry, error)

	// CountByUser returns the number of log entries per user.
	CountByUser(ctx context.Context) (map[string]int, error)
}

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Append(ctx context.Context, user string, questionID int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO progress (user, question_id) VALUES (?, ?)`, user, questionID)
	if err != nil {
		return fmt.Errorf("append progress entry: %w", err)
	}
	return nil
}

func (r *progressRepo) Solved(ctx context.Context, user string) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT question_id FROM progress WHERE user = ? ORDER BY question_id`, user)
	if err != nil {
		return nil, fmt.Errorf("query solved questions: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan question id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate solved questions: %w", err)
	}
	return ids, nil
}

func (r *progressRepo) Entries(ctx context.Context, user string) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user, question_id FROM progress WHERE user = ? ORDER BY rowid`, user)
	if err != nil {
		return nil, fmt.Errorf("query progress entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.User, &e.QuestionID); err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress entries: %w", err)
	}
	return entries, nil
}

func (r *progressRepo) CountByUser(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user, COUNT(*) FROM progress GROUP BY user ORDER BY user`)
	if err != nil {
		return nil, fmt.Errorf("count progress by user: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var user string
		var n int
		if err := rows.Scan(&user, &n); err != nil {
			return nil, fmt.Errorf("scan user count: %w", err)
		}
		counts[user] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user counts: %w", err)
	}
	return counts, nil
}
