// Package publish writes test reports to the CI Realtime Database.
package publish

import (
	"context"
	"time"

	"cireport/internal/errors"
	"cireport/internal/report"
	"cireport/internal/rtdb"
)

// Database is the write side of the Realtime Database used for reports.
type Database interface {
	Set(ctx context.Context, path string, v any) error
}

// DialFunc connects to the database at databaseURL.
type DialFunc func(ctx context.Context, databaseURL string, creds Credentials) (Database, error)

type Options struct {
	Credentials Credentials
	DatabaseURL string
	// Timeout bounds the whole publish. Zero leaves it to the client.
	Timeout time.Duration

	Dial DialFunc
	Now  func() time.Time
}

type Publisher struct {
	opts Options
}

func New(opts Options) *Publisher {
	if opts.DatabaseURL == "" {
		opts.DatabaseURL = rtdb.DefaultURL
	}
	if opts.Dial == nil {
		opts.Dial = dialFirebase
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Publisher{opts: opts}
}

func dialFirebase(ctx context.Context, databaseURL string, creds Credentials) (Database, error) {
	return rtdb.Open(ctx, databaseURL, creds.JSON)
}

// Publish replaces the reports of workerID with a single record for buildID.
// Reports of other builds under the same worker are removed by the write.
func (p *Publisher) Publish(ctx context.Context, workerID, buildID string, verdict bool, html string) (report.Publication, error) {
	if len(p.opts.Credentials.JSON) == 0 {
		return report.Publication{}, errors.ConfigError("load credentials", ErrMissingCredentials)
	}
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	database, err := p.opts.Dial(ctx, p.opts.DatabaseURL, p.opts.Credentials)
	if err != nil {
		return report.Publication{}, errors.RemoteError("connect "+p.opts.DatabaseURL, err)
	}

	pub := report.Publication{
		WorkerID: workerID,
		BuildID:  buildID,
		Record: report.Record{
			Report:    html,
			Timestamp: p.opts.Now().Unix(),
			Verdict:   verdict,
		},
	}
	path := rtdb.ReportsPath(workerID)
	if err := database.Set(ctx, path, map[string]report.Record{buildID: pub.Record}); err != nil {
		return report.Publication{}, errors.RemoteError("write "+path, err)
	}
	return pub, nil
}
