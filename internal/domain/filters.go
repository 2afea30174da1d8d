package domain

import "time"

// DateRange bounds a query by race or calculation date. Nil ends are open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

type RaceFilter struct {
	Date  *time.Time
	Venue string
}

type CommentFilter struct {
	RaceID  *int64
	HorseID *int64
}

// CommentPatch lists the fields a comment update may change.
type CommentPatch struct {
	Content  *string `json:"content"`
	IsPublic *bool   `json:"is_public"`
}

type StatsFilter struct {
	Category string
	DateRange
}
