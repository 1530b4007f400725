package db

import (
	"strings"
	"time"

	"calmcollective/internal/analyzer"
	"calmcollective/internal/content"
)

// TimestampLayout matches the stored entry timestamps: local time to the
// second, no zone offset.
const TimestampLayout = "2006-01-02T15:04:05"

// Entry is one stored journal submission.
type Entry struct {
	ID         string          `json:"id"`
	Timestamp  string          `json:"timestamp"`
	Text       string          `json:"text"`
	MoodSlider float64         `json:"mood_slider"`
	Flavor     string          `json:"flavor"`
	Analysis   analyzer.Result `json:"analysis"`
	Support    []string        `json:"support"`
	Quote      *string         `json:"quote"`
	Spiritual  *string         `json:"spiritual"`
	Wisdom     *content.Wisdom `json:"wisdom"`
}

// Time parses the entry timestamp, tolerating a space instead of the T
// separator in legacy rows. Returns the zero time when unparseable.
func (e Entry) Time() time.Time {
	ts := strings.Replace(strings.TrimSpace(e.Timestamp), " ", "T", 1)
	t, err := time.Parse(TimestampLayout, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayTime renders the timestamp as "2006-01-02 15:04" for pages and
// exports, falling back to the raw string when unparseable.
func (e Entry) DisplayTime() string {
	t := e.Time()
	if t.IsZero() {
		return e.Timestamp
	}
	return t.Format("2006-01-02 15:04")
}
