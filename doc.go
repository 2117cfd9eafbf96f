// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the social CLI.

The tool manages post drafting and publishing for a social-media
database and computes ranked leaderboards over posts, users and likes.

# Running

Every command names the acting user:

	social --user ayden post create --description "hello world"
	social --user ayden post list-drafts
	social --user ayden post publish-draft --post-id 3
	social --user ayden post top-liked --limit 5

# Configuration

Connection settings come from flags, the environment, or a .env file
(loaded via godotenv):

  - DATABASE_URL (-d): PostgreSQL connection string, or the discrete
    DB_HOST / DB_PORT / DB_NAME / DB_USER / DB_PASSWORD variables
  - JWT_SECRET (--jwt-secret): required only for register/login

# Architecture

One invocation maps to one transaction: main opens the connection,
ensures the schema, begins a transaction, runs exactly one command
through the cli package and commits once on success.

  - cli: command dispatch and line-oriented rendering
  - identity: username → user id resolution (the authorization gate)
  - drafts: draft lifecycle with ownership-gated conditional mutations
  - rankings: the four leaderboard reports and their rank strategies
  - auth: bcrypt password hashing and JWT issuance
  - db: schema creation and the session interface
  - cliparse: configuration parsing
  - models: shared domain and report row types

See package documentation for each component.
*/
package main
