package cli

import (
	"context"
	"fmt"
	"io"

	"cireport/internal/config"
	"cireport/internal/publish"
	"cireport/internal/report"
	"cireport/internal/store"
)

type historyStore interface {
	RecordPublication(ctx context.Context, p report.Publication) error
	Close()
}

func openStore(ctx context.Context, dsn string) (historyStore, error) {
	st, err := store.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := st.EnsureSchema(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// envPublisher reads credentials only when a suite actually publishes. The
// history store is touched only after the Realtime Database write succeeded
// and its failures are reported on errOut without failing the run.
type envPublisher struct {
	cfg    *config.Config
	dsn    string
	d      deps
	errOut io.Writer
}

func (p *envPublisher) Publish(ctx context.Context, workerID, buildID string, verdict bool, html string) (report.Publication, error) {
	creds, err := publish.LoadCredentials(p.d.getenv)
	if err != nil {
		return report.Publication{}, err
	}
	pub, err := publish.New(publish.Options{
		Credentials: creds,
		DatabaseURL: p.cfg.DatabaseURL,
		Timeout:     p.cfg.Timeout,
		Dial:        p.d.dial,
		Now:         p.d.now,
	}).Publish(ctx, workerID, buildID, verdict, html)
	if err != nil {
		return pub, err
	}
	if p.dsn != "" {
		if err := p.recordHistory(ctx, pub); err != nil {
			fmt.Fprintln(p.errOut, "warning: history not recorded:", err)
		}
	}
	return pub, nil
}

func (p *envPublisher) recordHistory(ctx context.Context, pub report.Publication) error {
	open := p.d.openHistory
	if open == nil {
		open = openStore
	}
	st, err := open(ctx, p.dsn)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer st.Close()
	return st.RecordPublication(ctx, pub)
}
