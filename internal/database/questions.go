package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/otychat/server/internal/models"
)

const questionColumns = `q.id, q.user_id, u.name, q.presentation_id, q.text, q.image, q.votes, q.created_at`

func scanQuestion(row rowScanner) (models.Question, error) {
	var q models.Question
	var pres sql.NullInt64
	var created int64
	if err := row.Scan(&q.ID, &q.UserID, &q.Author, &pres, &q.Text, &q.Image, &q.Votes, &created); err != nil {
		return q, err
	}
	if pres.Valid {
		v := pres.Int64
		q.PresentationID = &v
	}
	q.CreatedAt = fromMillis(created)
	return q, nil
}

// CreateQuestion stores a question. presentationID may be zero when no
// session is live.
func (db *DB) CreateQuestion(ctx context.Context, userID, presentationID int64, text, image string, at time.Time) (*models.Question, error) {
	var pres sql.NullInt64
	if presentationID > 0 {
		pres = sql.NullInt64{Int64: presentationID, Valid: true}
	}
	var id int64
	err := db.queryRow(ctx,
		`INSERT INTO questions (user_id, presentation_id, text, image, created_at)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		userID, pres, text, image, toMillis(at)).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return db.GetQuestion(ctx, id)
}

// GetQuestion fetches a question with its author's name.
func (db *DB) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	q, err := scanQuestion(db.queryRow(ctx,
		`SELECT `+questionColumns+` FROM questions q JOIN users u ON u.id = q.user_id WHERE q.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return &q, nil
}

// ListQuestions returns the questions of a presentation, most voted first.
func (db *DB) ListQuestions(ctx context.Context, presentationID int64) ([]models.Question, error) {
	rows, err := db.query(ctx,
		`SELECT `+questionColumns+` FROM questions q JOIN users u ON u.id = q.user_id
		 WHERE q.presentation_id = ? ORDER BY q.votes DESC, q.created_at ASC, q.id ASC`, presentationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var out []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// DeleteQuestion removes a question and its votes.
func (db *DB) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	if _, err := db.exec(ctx, `DELETE FROM question_votes WHERE question_id = ?`, id); err != nil {
		return false, fmt.Errorf("failed to delete votes of question %d: %w", id, err)
	}
	res, err := db.exec(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return affected(res)
}

// UpvoteQuestion records a vote by userID. The vote count only moves the
// first time a user votes on a question; counted reports whether it did.
func (db *DB) UpvoteQuestion(ctx context.Context, questionID, userID int64) (counted bool, votes int64, err error) {
	res, err := db.exec(ctx,
		`INSERT INTO question_votes (question_id, user_id) VALUES (?, ?)
		 ON CONFLICT (question_id, user_id) DO NOTHING`, questionID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("failed to record vote: %w", err)
	}
	counted, err = affected(res)
	if err != nil {
		return false, 0, fmt.Errorf("failed to record vote: %w", err)
	}

	if counted {
		err = db.queryRow(ctx, `UPDATE questions SET votes = votes + 1 WHERE id = ? RETURNING votes`, questionID).Scan(&votes)
	} else {
		err = db.queryRow(ctx, `SELECT votes FROM questions WHERE id = ?`, questionID).Scan(&votes)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, 0, ErrNotFound
	}
	if err != nil {
		return false, 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return counted, votes, nil
}
