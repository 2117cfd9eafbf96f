// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	_ "github.com/lib/pq"

	"github.com/ADH-17/DBMSFINALPROJECT/identity"
	"github.com/ADH-17/DBMSFINALPROJECT/testutil"
)

func TestRun_EndToEndDraftLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.User = "alice"

	// Register alice
	var out bytes.Buffer
	err := Run(db, cfg, &out, []string{"user", "register", "--email", "alice@example.com", "--password", "pw"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !strings.Contains(out.String(), "Registered user 'alice'") {
		t.Errorf("unexpected register output: %s", out.String())
	}

	// Create a draft with no photos
	out.Reset()
	err = Run(db, cfg, &out, []string{"post", "create", "--description", "hello world"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out.String(), "Draft saved. Post ID:") {
		t.Errorf("unexpected create output: %s", out.String())
	}

	var postID int
	var published bool
	if err := db.QueryRow(`SELECT post_id, is_published FROM post`).Scan(&postID, &published); err != nil {
		t.Fatalf("Failed to read post: %v", err)
	}
	if published {
		t.Error("expected the new post to be a draft")
	}

	// List drafts: exactly one entry, snippet not ellipsized
	out.Reset()
	if err := Run(db, cfg, &out, []string{"post", "list-drafts"}); err != nil {
		t.Fatalf("list-drafts failed: %v", err)
	}
	listing := out.String()
	if !strings.Contains(listing, fmt.Sprintf("ID: %d", postID)) {
		t.Errorf("expected draft %d in listing: %s", postID, listing)
	}
	if !strings.Contains(listing, "'hello world'") || strings.Contains(listing, "...") {
		t.Errorf("expected non-ellipsized snippet: %s", listing)
	}

	// Publish succeeds once
	out.Reset()
	if err := Run(db, cfg, &out, []string{"post", "publish-draft", "--post-id", fmt.Sprint(postID)}); err != nil {
		t.Fatalf("publish-draft failed: %v", err)
	}
	if !strings.Contains(out.String(), fmt.Sprintf("Successfully published draft ID %d.", postID)) {
		t.Errorf("unexpected publish output: %s", out.String())
	}

	// Second publish is a reported rejection, not an error
	out.Reset()
	if err := Run(db, cfg, &out, []string{"post", "publish-draft", "--post-id", fmt.Sprint(postID)}); err != nil {
		t.Fatalf("second publish should not error: %v", err)
	}
	if !strings.Contains(out.String(), "doesn't belong to you") {
		t.Errorf("expected rejection message, got: %s", out.String())
	}
}

func TestRun_CreateWithPhotos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "ayden")
	cfg := testutil.GetTestConfig()
	cfg.User = "ayden"

	// The space-separated form: the flag takes the first path, the
	// rest arrive as trailing arguments
	var out bytes.Buffer
	err := Run(db, cfg, &out, []string{"post", "create", "--description", "with pictures", "--photos", "a.jpg", "b.jpg"})
	if err != nil {
		t.Fatalf("create with photos failed: %v", err)
	}
	if !strings.Contains(out.String(), "Added 2 photos to post") {
		t.Errorf("unexpected create output: %s", out.String())
	}

	var postID, photoCount int
	if err := db.QueryRow(`SELECT post_id FROM post`).Scan(&postID); err != nil {
		t.Fatalf("Failed to read post: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM photo WHERE post_id = $1`, postID).Scan(&photoCount); err != nil {
		t.Fatalf("Failed to count photos: %v", err)
	}
	if photoCount != 2 {
		t.Errorf("expected 2 photo rows, got %d", photoCount)
	}

	// The repeated-flag form works too
	out.Reset()
	err = Run(db, cfg, &out, []string{"post", "create", "--description", "more pictures", "--photos", "c.jpg", "--photos", "d.jpg"})
	if err != nil {
		t.Fatalf("create with repeated --photos failed: %v", err)
	}
	if !strings.Contains(out.String(), "Added 2 photos to post") {
		t.Errorf("unexpected create output: %s", out.String())
	}
}

func TestRun_Comment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ayden := testutil.CreateTestUser(t, db, "ayden")
	testutil.CreateTestUser(t, db, "bea")
	postID := testutil.CreateTestPost(t, db, ayden, "discuss", true)

	cfg := testutil.GetTestConfig()
	cfg.User = "bea"

	var out bytes.Buffer
	err := Run(db, cfg, &out, []string{"post", "comment", "--post-id", fmt.Sprint(postID), "--body", "nice one"})
	if err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	if !strings.Contains(out.String(), fmt.Sprintf("added to post %d.", postID)) {
		t.Errorf("unexpected comment output: %s", out.String())
	}

	var body string
	if err := db.QueryRow(`SELECT body FROM comment WHERE post_id = $1`, postID).Scan(&body); err != nil {
		t.Fatalf("Failed to read comment: %v", err)
	}
	if body != "nice one" {
		t.Errorf("expected comment body to round-trip, got %q", body)
	}

	// Commenting on a missing post is a reported rejection, exit 0
	out.Reset()
	if err := Run(db, cfg, &out, []string{"post", "comment", "--post-id", "424242", "--body", "void"}); err != nil {
		t.Fatalf("comment on missing post should not error: %v", err)
	}
	if !strings.Contains(out.String(), "Error: Post ID 424242 not found.") {
		t.Errorf("expected rejection message, got: %s", out.String())
	}
}

func TestRun_UnknownUserAbortsBeforeAnything(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.User = "ghost"

	var out bytes.Buffer
	err := Run(db, cfg, &out, []string{"post", "create", "--description", "never stored"})
	if !errors.Is(err, identity.ErrNotFound) {
		t.Fatalf("expected identity.ErrNotFound, got %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM post`).Scan(&count); err != nil {
		t.Fatalf("Failed to count posts: %v", err)
	}
	if count != 0 {
		t.Errorf("no mutation may happen before the identity gate, found %d posts", count)
	}
}

func TestRun_ReportsThroughDispatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ayden := testutil.CreateTestUser(t, db, "ayden")
	fan := testutil.CreateTestUser(t, db, "fan")
	postID := testutil.CreateTestPost(t, db, ayden, "liked once", true)
	testutil.AddTestLike(t, db, fan, postID)
	testutil.AddTestLike(t, db, ayden, postID)

	cfg := testutil.GetTestConfig()
	cfg.User = "ayden"

	var out bytes.Buffer
	if err := Run(db, cfg, &out, []string{"post", "top-liked", "--limit", "5"}); err != nil {
		t.Fatalf("top-liked failed: %v", err)
	}
	if !strings.Contains(out.String(), "Rank: 1 | Post ID: "+fmt.Sprint(postID)+" | User: ayden | Likes: 2") {
		t.Errorf("unexpected top-liked output: %s", out.String())
	}

	out.Reset()
	if err := Run(db, cfg, &out, []string{"post", "avg-likes"}); err != nil {
		t.Fatalf("avg-likes failed: %v", err)
	}
	// fan has no published posts and still shows up with the zero default
	if !strings.Contains(out.String(), "fan with 0.00 average likes per post") {
		t.Errorf("expected zero-default average for fan: %s", out.String())
	}

	out.Reset()
	if err := Run(db, cfg, &out, []string{"post", "self-likes"}); err != nil {
		t.Fatalf("self-likes failed: %v", err)
	}
	if !strings.Contains(out.String(), "ayden liked their own posts 1 times") {
		t.Errorf("unexpected self-likes output: %s", out.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	testutil.CreateTestUser(t, db, "ayden")
	cfg := testutil.GetTestConfig()
	cfg.User = "ayden"

	var out bytes.Buffer
	if err := Run(db, cfg, &out, []string{"post", "frobnicate"}); !errors.Is(err, ErrUsage) {
		t.Errorf("expected ErrUsage, got %v", err)
	}
	if err := Run(db, cfg, &out, []string{"post"}); !errors.Is(err, ErrUsage) {
		t.Errorf("expected ErrUsage for bare group, got %v", err)
	}
}

func TestRun_RegisterDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.User = "alice"

	var out bytes.Buffer
	if err := Run(db, cfg, &out, []string{"user", "register", "--email", "shared@example.com", "--password", "pw"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	cfg.User = "bob"
	err := Run(db, cfg, &out, []string{"user", "register", "--email", "shared@example.com", "--password", "pw"})
	if !errors.Is(err, identity.ErrEmailTaken) {
		t.Fatalf("expected identity.ErrEmailTaken, got %v", err)
	}
}

func TestRun_Login(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.User = "alice"

	var out bytes.Buffer
	if err := Run(db, cfg, &out, []string{"user", "register", "--email", "alice@example.com", "--password", "pw"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	out.Reset()
	if err := Run(db, cfg, &out, []string{"user", "login", "--email", "alice@example.com", "--password", "pw"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !strings.Contains(out.String(), "Token: ") {
		t.Errorf("expected a token in login output: %s", out.String())
	}

	// Wrong password and unknown email fail identically
	err := Run(db, cfg, &out, []string{"user", "login", "--email", "alice@example.com", "--password", "nope"})
	err2 := Run(db, cfg, &out, []string{"user", "login", "--email", "nobody@example.com", "--password", "pw"})
	if err == nil || err2 == nil || err.Error() != err2.Error() {
		t.Errorf("expected identical failures, got %v and %v", err, err2)
	}
}
