// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package drafts

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ADH-17/DBMSFINALPROJECT/db"
	"github.com/ADH-17/DBMSFINALPROJECT/models"
)

// ErrRejected is the single outcome for a publish/delete/like whose
// preconditions fail. Wrong owner, already published and nonexistent id
// are deliberately indistinguishable so the CLI never reveals whether a
// post exists under another account.
var ErrRejected = errors.New("draft not found, already published, or not yours")

// foreignKeyViolation is the Postgres error code for a broken reference.
const foreignKeyViolation = "23503"

// SnippetLen is how many characters of a description listings show.
const SnippetLen = 50

// Create inserts a new post, published immediately or saved as a
// draft, plus one photo row per image path. The caller's transaction
// makes the post and its photos a single atomic unit.
func Create(s db.Session, ownerID int, description string, imagePaths []string, publish bool) (int, error) {
	var postID int
	err := s.QueryRow(`
		INSERT INTO post (user_id, description, is_published)
		VALUES ($1, $2, $3)
		RETURNING post_id
	`, ownerID, description, publish).Scan(&postID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	for _, path := range imagePaths {
		_, err := s.Exec(`
			INSERT INTO photo (post_id, image_path)
			VALUES ($1, $2)
		`, postID, path)
		if err != nil {
			return 0, fmt.Errorf("failed to insert photo %q: %w", path, err)
		}
	}

	return postID, nil
}

// List returns the owner's unpublished posts, most recent first.
// An empty result is a normal outcome, not an error.
func List(s db.Session, ownerID int) ([]models.Draft, error) {
	rows, err := s.Query(`
		SELECT post_id, description, created_at
		FROM post
		WHERE user_id = $1 AND is_published = FALSE
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts: %w", err)
	}
	defer rows.Close()

	var result []models.Draft
	for rows.Next() {
		var d models.Draft
		if err := rows.Scan(&d.PostID, &d.Description, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read drafts: %w", err)
	}

	return result, nil
}

// Publish flips a draft to published and resets its creation time, so
// published ordering reflects publish time rather than draft time. The
// ownership and state checks ride on the UPDATE itself; two concurrent
// publishes of one draft cannot both see a row to update.
func Publish(s db.Session, postID, ownerID int) error {
	res, err := s.Exec(`
		UPDATE post
		SET is_published = TRUE, created_at = NOW()
		WHERE post_id = $1 AND user_id = $2 AND is_published = FALSE
	`, postID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to publish draft %d: %w", postID, err)
	}

	return rejectWhenNoRows(res)
}

// Delete removes a draft; the store cascades to its photo rows.
// Published posts are never deletable through this path.
func Delete(s db.Session, postID, ownerID int) error {
	res, err := s.Exec(`
		DELETE FROM post
		WHERE post_id = $1 AND user_id = $2 AND is_published = FALSE
	`, postID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete draft %d: %w", postID, err)
	}

	return rejectWhenNoRows(res)
}

// Like records that a user liked a post. Liking twice is a no-op;
// liking a nonexistent post is reported as the same undifferentiated
// rejection as the other mutations.
func Like(s db.Session, userID, postID int) error {
	_, err := s.Exec(`
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, postID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return ErrRejected
		}
		return fmt.Errorf("failed to like post %d: %w", postID, err)
	}
	return nil
}

// Comment attaches a comment to a post. Commenting on a nonexistent
// post is reported as the same undifferentiated rejection as the
// other mutations.
func Comment(s db.Session, userID, postID int, body string) (int, error) {
	var commentID int
	err := s.QueryRow(`
		INSERT INTO comment (created_by, post_id, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id
	`, userID, postID, body).Scan(&commentID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return 0, ErrRejected
		}
		return 0, fmt.Errorf("failed to comment on post %d: %w", postID, err)
	}
	return commentID, nil
}

// Snippet truncates a description for listings, appending an ellipsis
// marker only when something was cut. Rune-safe.
func Snippet(description string) string {
	runes := []rune(description)
	if len(runes) <= SnippetLen {
		return description
	}
	return string(runes[:SnippetLen]) + "..."
}

func rejectWhenNoRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrRejected
	}
	return nil
}
