package store

import "time"

type Publication struct {
	PublicationID string
	WorkerID      string
	BuildID       string
	Verdict       bool
	Timestamp     int64
	Report        string
	RecordedAt    time.Time
}
