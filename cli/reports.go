// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"flag"
	"fmt"

	"github.com/ADH-17/DBMSFINALPROJECT/drafts"
	"github.com/ADH-17/DBMSFINALPROJECT/rankings"
)

func (a *App) parseLimit(args []string, name string) (int, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	limit := fs.Int("limit", a.cfg.Limit, "Number of top entries to display")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *limit <= 0 {
		return 0, fmt.Errorf("--limit must be positive, got %d", *limit)
	}
	return *limit, nil
}

func (a *App) topLiked(args []string) error {
	limit, err := a.parseLimit(args, "post top-liked")
	if err != nil {
		return err
	}

	posts, err := rankings.TopPosts(a.s, limit)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts found.")
		return nil
	}

	fmt.Fprintf(a.out, "--- Top %d Posts by Likes ---\n", limit)
	for _, p := range posts {
		fmt.Fprintf(a.out, "Rank: %d | Post ID: %d | User: %s | Likes: %d | Desc: '%s'\n",
			p.Rank, p.PostID, p.Username, p.LikeCount, drafts.Snippet(p.Description))
	}
	return nil
}

func (a *App) topUsers(args []string) error {
	limit, err := a.parseLimit(args, "post top-users")
	if err != nil {
		return err
	}

	users, err := rankings.TopUsers(a.s, limit)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}

	fmt.Fprintf(a.out, "--- Top %d Users by Post Count ---\n", limit)
	for _, u := range users {
		fmt.Fprintf(a.out, "Rank %d: %s with %d posts\n", u.Rank, u.Username, u.PostCount)
	}
	return nil
}

func (a *App) avgLikes(args []string) error {
	limit, err := a.parseLimit(args, "post avg-likes")
	if err != nil {
		return err
	}

	users, err := rankings.AvgLikes(a.s, limit)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}

	fmt.Fprintf(a.out, "--- Top %d Users by Average Likes per Post ---\n", limit)
	for _, u := range users {
		fmt.Fprintf(a.out, "Rank %d: %s with %.2f average likes per post\n", u.Rank, u.Username, u.AvgLikes)
	}
	return nil
}

func (a *App) selfLikes() error {
	counts, err := rankings.SelfLikes(a.s)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "--- Users Who Like Their Own Posts ---")
	for _, c := range counts {
		fmt.Fprintf(a.out, "%s liked their own posts %d times\n", c.Username, c.SelfLikes)
	}
	return nil
}
