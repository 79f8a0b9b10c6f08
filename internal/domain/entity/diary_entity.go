package entity

import "time"

// Mood tags a diary entry.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodExcited  Mood = "excited"
	MoodAnxious  Mood = "anxious"
	MoodCalm     Mood = "calm"
	MoodAngry    Mood = "angry"
	MoodContent  Mood = "content"
	MoodConfused Mood = "confused"
)

var moods = map[Mood]struct{}{
	MoodHappy: {}, MoodSad: {}, MoodExcited: {}, MoodAnxious: {},
	MoodCalm: {}, MoodAngry: {}, MoodContent: {}, MoodConfused: {},
}

func (m Mood) Valid() bool {
	_, ok := moods[m]
	return ok
}

const (
	MaxTitleLength   = 200
	MaxContentLength = 5000
	MaxEntriesListed = 50
)

// DiaryEntry is a single diary page owned by one user.
type DiaryEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	Tags      []string  `json:"tags"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
