package model

import "time"

// TimestampLayout matches the ISO-8601 form produced by browsers' Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Play is a single "now playing" observation sent to the log endpoint.
type Play struct {
	Song      string `json:"song"`
	Timestamp string `json:"timestamp"`
	Station   string `json:"station"`
}

// NewPlay stamps song with t in UTC.
func NewPlay(song, station string, t time.Time) Play {
	return Play{
		Song:      song,
		Timestamp: t.UTC().Format(TimestampLayout),
		Station:   station,
	}
}
