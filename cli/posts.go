// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ADH-17/DBMSFINALPROJECT/drafts"
)

// rejectedf prints the undifferentiated rejection outcome. It is a
// normal reported result, not a process-fatal error, so the process
// still exits 0.
func (a *App) rejectedf(format string, args ...any) error {
	fmt.Fprintf(a.out, format+"\n", args...)
	return nil
}

// photoList collects one path per --photos occurrence.
type photoList []string

func (p *photoList) String() string { return strings.Join(*p, " ") }

func (p *photoList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func (a *App) create(actorID int, args []string) error {
	fs := flag.NewFlagSet("post create", flag.ContinueOnError)
	description := fs.String("description", "", "The body text of the post")
	publish := fs.Bool("publish", false, "Immediately publish instead of saving as a draft")
	var photos photoList
	fs.Var(&photos, "photos", "Image path (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *description == "" {
		return errors.New("--description is required")
	}

	// Trailing arguments are also photo paths, so the space-separated
	// form `--photos a.jpg b.jpg` takes all of them.
	photos = append(photos, fs.Args()...)

	postID, err := drafts.Create(a.s, actorID, *description, photos, *publish)
	if err != nil {
		return err
	}
	slog.Info("post created", "post_id", postID, "published", *publish, "photos", len(photos))

	if len(photos) > 0 {
		fmt.Fprintf(a.out, "Added %d photos to post %d.\n", len(photos), postID)
	}
	if *publish {
		fmt.Fprintf(a.out, "Published. Post ID: %d\n", postID)
	} else {
		fmt.Fprintf(a.out, "Draft saved. Post ID: %d\n", postID)
	}
	return nil
}

func (a *App) listDrafts(actorID int) error {
	ds, err := drafts.List(a.s, actorID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "--- Your Drafts ---")
	if len(ds) == 0 {
		fmt.Fprintln(a.out, "You have no saved drafts.")
		return nil
	}

	for _, d := range ds {
		fmt.Fprintf(a.out, "ID: %d | Created: %s (%s) | Desc: '%s'\n",
			d.PostID,
			d.CreatedAt.Format("2006-01-02 15:04"),
			humanize.Time(d.CreatedAt),
			drafts.Snippet(d.Description))
	}
	return nil
}

func (a *App) publishDraft(actorID int, args []string) error {
	postID, err := parsePostID(args, "post publish-draft")
	if err != nil {
		return err
	}

	if err := drafts.Publish(a.s, postID, actorID); err != nil {
		if errors.Is(err, drafts.ErrRejected) {
			return a.rejectedf("Error: Draft ID %d not found, already published, or doesn't belong to you.", postID)
		}
		return err
	}

	fmt.Fprintf(a.out, "Successfully published draft ID %d.\n", postID)
	return nil
}

func (a *App) deleteDraft(actorID int, args []string) error {
	postID, err := parsePostID(args, "post delete-draft")
	if err != nil {
		return err
	}

	if err := drafts.Delete(a.s, postID, actorID); err != nil {
		if errors.Is(err, drafts.ErrRejected) {
			return a.rejectedf("Error: Draft ID %d not found, already published, or doesn't belong to you.", postID)
		}
		return err
	}

	fmt.Fprintf(a.out, "Successfully deleted draft ID %d (and associated photos).\n", postID)
	return nil
}

func (a *App) like(actorID int, args []string) error {
	postID, err := parsePostID(args, "post like")
	if err != nil {
		return err
	}

	if err := drafts.Like(a.s, actorID, postID); err != nil {
		if errors.Is(err, drafts.ErrRejected) {
			return a.rejectedf("Error: Post ID %d not found.", postID)
		}
		return err
	}

	fmt.Fprintf(a.out, "Liked post %d.\n", postID)
	return nil
}

func (a *App) comment(actorID int, args []string) error {
	fs := flag.NewFlagSet("post comment", flag.ContinueOnError)
	postID := fs.Int("post-id", 0, "The ID of the post")
	body := fs.String("body", "", "The comment text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *postID <= 0 {
		return errors.New("--post-id is required")
	}
	if *body == "" {
		return errors.New("--body is required")
	}

	commentID, err := drafts.Comment(a.s, actorID, *postID, *body)
	if err != nil {
		if errors.Is(err, drafts.ErrRejected) {
			return a.rejectedf("Error: Post ID %d not found.", *postID)
		}
		return err
	}

	fmt.Fprintf(a.out, "Comment %d added to post %d.\n", commentID, *postID)
	return nil
}

func parsePostID(args []string, name string) (int, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	postID := fs.Int("post-id", 0, "The ID of the post")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *postID <= 0 {
		return 0, errors.New("--post-id is required")
	}
	return *postID, nil
}
