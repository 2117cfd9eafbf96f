// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ADH-17/DBMSFINALPROJECT/cliparse"
	"github.com/ADH-17/DBMSFINALPROJECT/db"
	"github.com/ADH-17/DBMSFINALPROJECT/identity"
)

// ErrUsage reports an unknown or incomplete command line.
var ErrUsage = errors.New(`usage: social --user NAME <command>

post commands:
  post create --description TEXT [--publish] [--photos PATH ...]
  post list-drafts
  post publish-draft --post-id N
  post delete-draft --post-id N
  post like --post-id N
  post comment --post-id N --body TEXT
  post top-liked [--limit N]
  post top-users [--limit N]
  post avg-likes [--limit N]
  post self-likes

user commands:
  user register --email EMAIL --password PASSWORD
  user login --email EMAIL --password PASSWORD`)

// App carries one invocation's session and configuration. Every
// command runs against the same transaction; main commits it once
// after Run returns nil.
type App struct {
	s   db.Session
	cfg cliparse.Config
	out io.Writer
}

func New(s db.Session, cfg cliparse.Config, out io.Writer) *App {
	return &App{s: s, cfg: cfg, out: out}
}

// Run dispatches one command. The acting username is resolved up
// front for every command except registration, which creates the
// account instead; nothing mutates before that gate passes.
func Run(s db.Session, cfg cliparse.Config, out io.Writer, words []string) error {
	if len(words) < 2 {
		return ErrUsage
	}

	app := New(s, cfg, out)

	if words[0] == "user" && words[1] == "register" {
		return app.register(words[2:])
	}

	actorID, err := identity.Resolve(s, cfg.User)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fmt.Errorf("user %q not found: create the user first or check the username: %w", cfg.User, err)
		}
		return err
	}
	slog.Info("acting user resolved", "username", cfg.User, "user_id", actorID)

	switch words[0] {
	case "user":
		switch words[1] {
		case "login":
			return app.login(words[2:])
		}
	case "post":
		switch words[1] {
		case "create":
			return app.create(actorID, words[2:])
		case "list-drafts":
			return app.listDrafts(actorID)
		case "publish-draft":
			return app.publishDraft(actorID, words[2:])
		case "delete-draft":
			return app.deleteDraft(actorID, words[2:])
		case "like":
			return app.like(actorID, words[2:])
		case "comment":
			return app.comment(actorID, words[2:])
		case "top-liked":
			return app.topLiked(words[2:])
		case "top-users":
			return app.topUsers(words[2:])
		case "avg-likes":
			return app.avgLikes(words[2:])
		case "self-likes":
			return app.selfLikes()
		}
	}

	return ErrUsage
}
