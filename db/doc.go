// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and defines the session
handle consumed by the core packages.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: accounts (unique username and email, bcrypt password hash, streak)
  - post: drafts and published posts, owner-scoped
  - photo: image paths attached to a post
  - likes: (user_id, post_id) pairs; existence means "liked"
  - comment: text replies on a post, indexed by post_id

# Relationships

	users 1──* post
	post  1──* photo
	post  1──* comment
	users *──* post (via likes)

All foreign keys use ON DELETE CASCADE, so deleting a draft removes its
photo rows in the store, not in application code.

# Session

Session is the subset of *sql.DB and *sql.Tx the identity, drafts and
rankings packages operate on. The CLI hands each operation a *sql.Tx and
commits once after it succeeds, so a partial photo insert or a failed
conditional update never leaves half an operation behind.
*/
package db
