// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rankings

import (
	"fmt"

	"github.com/ADH-17/DBMSFINALPROJECT/db"
	"github.com/ADH-17/DBMSFINALPROJECT/models"
)

// Each report's tie discipline, bound once so the contract is
// visible in one place.
var (
	topPostsRanks Strategy = Dense
	topUsersRanks Strategy = Competition
	avgLikesRanks Strategy = Competition
)

// TopPosts ranks published posts by distinct-liker count, densely.
// The limit bounds the rank value, not the row count: ties straddling
// the boundary rank all come back, so more than limit rows is a normal
// result. Posts nobody liked still appear, ranked last.
func TopPosts(s db.Session, limit int) ([]models.RankedPost, error) {
	rows, err := s.Query(`
		SELECT p.post_id, p.description, u.username, COUNT(l.user_id) AS like_count
		FROM post p
		JOIN users u ON p.user_id = u.user_id
		LEFT JOIN likes l ON p.post_id = l.post_id
		WHERE p.is_published = TRUE
		GROUP BY p.post_id, p.description, u.username
		ORDER BY like_count DESC, p.post_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query top posts: %w", err)
	}
	defer rows.Close()

	var posts []models.RankedPost
	var counts []float64
	for rows.Next() {
		var p models.RankedPost
		if err := rows.Scan(&p.PostID, &p.Description, &p.Username, &p.LikeCount); err != nil {
			return nil, fmt.Errorf("failed to scan ranked post: %w", err)
		}
		posts = append(posts, p)
		counts = append(counts, float64(p.LikeCount))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top posts: %w", err)
	}

	ranks := topPostsRanks(counts)
	var result []models.RankedPost
	for i, p := range posts {
		if ranks[i] > limit {
			break
		}
		p.Rank = ranks[i]
		result = append(result, p)
	}
	return result, nil
}

// TopUsers ranks users by how many posts they have, drafts included,
// with competition ranks. Users with zero posts count too. Unlike
// TopPosts, the limit here caps the row count exactly.
func TopUsers(s db.Session, limit int) ([]models.UserPostCount, error) {
	rows, err := s.Query(`
		SELECT u.username, COUNT(p.post_id) AS post_count
		FROM users u
		LEFT JOIN post p ON u.user_id = p.user_id
		GROUP BY u.user_id, u.username
		ORDER BY post_count DESC, u.username ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users: %w", err)
	}
	defer rows.Close()

	var users []models.UserPostCount
	var counts []float64
	for rows.Next() {
		var u models.UserPostCount
		if err := rows.Scan(&u.Username, &u.PostCount); err != nil {
			return nil, fmt.Errorf("failed to scan user post count: %w", err)
		}
		users = append(users, u)
		counts = append(counts, float64(u.PostCount))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top users: %w", err)
	}

	// Competition ranks of a descending prefix only depend on the
	// prefix, so ranking after LIMIT is still exact.
	ranks := topUsersRanks(counts)
	for i := range users {
		users[i].Rank = ranks[i]
	}
	return users, nil
}

// AvgLikes ranks users by average like count across their published
// posts. A user with no published posts averages 0 and still appears.
// Competition ranks, row-count limit, same as TopUsers.
func AvgLikes(s db.Session, limit int) ([]models.UserAvgLikes, error) {
	rows, err := s.Query(`
		SELECT u.username, COALESCE(AVG(pl.likes_count), 0) AS avg_likes
		FROM users u
		LEFT JOIN (
			SELECT p.post_id, p.user_id, COUNT(l.user_id) AS likes_count
			FROM post p
			LEFT JOIN likes l ON p.post_id = l.post_id
			WHERE p.is_published = TRUE
			GROUP BY p.post_id, p.user_id
		) pl ON u.user_id = pl.user_id
		GROUP BY u.user_id, u.username
		ORDER BY avg_likes DESC, u.username ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query average likes: %w", err)
	}
	defer rows.Close()

	var users []models.UserAvgLikes
	var avgs []float64
	for rows.Next() {
		var u models.UserAvgLikes
		if err := rows.Scan(&u.Username, &u.AvgLikes); err != nil {
			return nil, fmt.Errorf("failed to scan average likes: %w", err)
		}
		users = append(users, u)
		avgs = append(avgs, u.AvgLikes)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read average likes: %w", err)
	}

	ranks := avgLikesRanks(avgs)
	for i := range users {
		users[i].Rank = ranks[i]
	}
	return users, nil
}

// SelfLikes lists users who liked their own posts, most self-likes
// first. Users with none are omitted, and there is no limit.
func SelfLikes(s db.Session) ([]models.SelfLikeCount, error) {
	rows, err := s.Query(`
		SELECT u.username, COUNT(*) AS self_likes
		FROM likes l
		JOIN post p ON l.post_id = p.post_id
		JOIN users u ON l.user_id = u.user_id
		WHERE l.user_id = p.user_id
		GROUP BY u.username
		ORDER BY self_likes DESC, u.username ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query self likes: %w", err)
	}
	defer rows.Close()

	var result []models.SelfLikeCount
	for rows.Next() {
		var c models.SelfLikeCount
		if err := rows.Scan(&c.Username, &c.SelfLikes); err != nil {
			return nil, fmt.Errorf("failed to scan self likes: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read self likes: %w", err)
	}
	return result, nil
}
