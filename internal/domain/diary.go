package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Mood string

const (
	MoodVeryBad   Mood = "very_bad"
	MoodBad       Mood = "bad"
	MoodNeutral   Mood = "neutral"
	MoodGood      Mood = "good"
	MoodExcellent Mood = "excellent"
)

// DiaryEntry is keyed by (user, date): the date is stored as an ISO
// yyyy-mm-dd string so range queries compare lexicographically.
type DiaryEntry struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          string        `bson:"user_id" json:"user_id"`
	Date            string        `bson:"date" json:"date"`
	Title           string        `bson:"title,omitempty" json:"title,omitempty"`
	Content         string        `bson:"content" json:"content"`
	Mood            Mood          `bson:"mood,omitempty" json:"mood,omitempty"`
	Activities      []string      `bson:"activities" json:"activities"`
	Accomplishments []string      `bson:"accomplishments" json:"accomplishments"`
	Challenges      []string      `bson:"challenges" json:"challenges"`
	Gratitude       []string      `bson:"gratitude" json:"gratitude"`
	TomorrowGoals   []string      `bson:"tomorrow_goals" json:"tomorrow_goals"`
	Tags            []string      `bson:"tags" json:"tags"`
	Weather         string        `bson:"weather,omitempty" json:"weather,omitempty"`
	Location        string        `bson:"location,omitempty" json:"location,omitempty"`
	IsPrivate       bool          `bson:"is_private" json:"is_private"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

type DiaryFilter struct {
	StartDate string
	EndDate   string
	Mood      Mood
	Tag       string
}

// MoodSummary maps mood value to entry count over the reporting window.
type MoodSummary struct {
	Days   int            `json:"days"`
	Counts map[Mood]int64 `json:"counts"`
}
