// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and report row types shared across
the CLI.

# Domain Types

  - User: account row (username, email, password hash, streak)
  - Post: post row with draft/published state and creation time
  - Photo: child image record of a post
  - Draft: one row of the owner's draft listing

# Report Rows

  - RankedPost: top-liked report (dense ranks)
  - UserPostCount: top-users report (competition ranks)
  - UserAvgLikes: avg-likes report (competition ranks, zero-default)
  - SelfLikeCount: self-likes report (unranked, count-ordered)

The two ranking disciplines are deliberate and documented on the types
that carry them; see the rankings package for the strategies themselves.
*/
package models
