// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rankings computes the four read-only reports over posts, users
and likes.

# Strategies

Two rank disciplines coexist and are kept as separate functions:

  - Dense: no gaps after ties, [5,5,3,1] → [1,1,2,3]. Used by TopPosts.
  - Competition: gap equals tie-group size, [5,5,3,1] → [1,1,3,4].
    Used by TopUsers and AvgLikes.

Both take a metric sequence already sorted descending; the report
queries provide that ordering, with an id/username secondary sort for
determinism.

# Limit Semantics

TopPosts bounds the rank value (a tie straddling the boundary rank can
return more than limit rows). TopUsers and AvgLikes bound the row count
exactly. The asymmetry is inherited behavior and intentional; do not
unify it.

# Sparse Relations

Zero-like posts and zero-post users are produced by LEFT JOINs, never
dropped: a zero-like published post ranks last in TopPosts, a user with
no published posts averages 0.00 in AvgLikes. Only SelfLikes omits the
zero case. All reports consider published posts only, except TopUsers,
which counts drafts too.
*/
package rankings
