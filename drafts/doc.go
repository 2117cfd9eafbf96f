// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package drafts manages the post lifecycle: draft → published, or
draft → deleted.

# State Machine

A post starts as a draft (or directly published when created with the
publish flag). Publishing is one-way; there is no unpublish. Only
drafts are deletable, and deletion cascades to photo rows in the store.

# Ownership-Gated Mutations

Publish and Delete are single conditional statements keyed on
(post_id, owner, is_published = FALSE). The check and the mutation are
one statement, so there is no window between "still a draft and mine"
and the state change - the store's transaction isolation is the only
synchronization needed.

Every precondition failure - wrong owner, already published, no such
post - comes back as the one ErrRejected value. Callers must not try
to tell these apart; the ambiguity is what keeps other users' post ids
unguessable.
*/
package drafts
