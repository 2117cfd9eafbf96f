package models

import "time"

// Domain types

type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Streak       int
}

type Post struct {
	ID          int
	UserID      int
	Description string
	IsPublished bool
	CreatedAt   time.Time
}

type Photo struct {
	ID        int
	PostID    int
	ImagePath string
}

// Draft is a row in the owner's draft listing. Description holds the
// full text; rendering truncates it to a snippet.
type Draft struct {
	PostID      int
	Description string
	CreatedAt   time.Time
}

// Report rows

// RankedPost is one row of the top-liked report. Ranks are dense:
// equal like counts share a rank and the next distinct count resumes
// at the previous rank plus one.
type RankedPost struct {
	Rank        int
	PostID      int
	Username    string
	LikeCount   int
	Description string
}

// UserPostCount is one row of the top-users report. Ranks are
// competition-style: equal counts share a rank and the next distinct
// count skips ahead by the tie-group size.
type UserPostCount struct {
	Rank      int
	Username  string
	PostCount int
}

// UserAvgLikes is one row of the avg-likes report. AvgLikes is 0 for
// users with no published posts, never omitted.
type UserAvgLikes struct {
	Rank     int
	Username string
	AvgLikes float64
}

// SelfLikeCount is one row of the self-likes report.
type SelfLikeCount struct {
	Username  string
	SelfLikes int
}
